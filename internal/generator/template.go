package generator

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

const pageTemplateName = "page"

// PageContext captures the data contract passed to TemplateRenderer implementations.
type PageContext struct {
	Site  SiteContext
	Guide GuideContext
	Theme ThemeContext
}

// SiteContext exposes site-level information required by the page shell.
type SiteContext struct {
	Title        string
	BaseURL      string
	RepoURL      string
	LogoInitial  string
	GithubCorner bool
}

// GuideContext contains the rendered guide for a single publish.
type GuideContext struct {
	Title   string
	Summary string
	Author  string
	HTML    template.HTML
}

// ThemeContext surfaces theme selection data to the page shell.
type ThemeContext struct {
	Name       string
	StyleBlock template.CSS
}

// NewHTMLRenderer returns the built-in html/template page renderer. Output is
// deterministic for identical input so repeated publishes stay byte-identical.
func NewHTMLRenderer() (interfaces.TemplateRenderer, error) {
	tpl, err := template.New(pageTemplateName).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("generator: parse page template: %w", err)
	}
	return &htmlRenderer{tpl: tpl}, nil
}

type htmlRenderer struct {
	tpl *template.Template
}

func (r *htmlRenderer) Render(ctx context.Context, name string, data any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("generator: execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// pageTemplate is the single-page shell. Styling references theme tokens via
// CSS custom properties so every built-in and custom theme shares one layout.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Site.Title}}</title>{{if .Guide.Summary}}
    <meta name="description" content="{{.Guide.Summary}}">{{end}}{{if .Site.BaseURL}}
    <link rel="canonical" href="{{.Site.BaseURL}}">
    <meta property="og:url" content="{{.Site.BaseURL}}">{{end}}
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap" rel="stylesheet">
    <style>
{{.Theme.StyleBlock}}
        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--background-color);
            color: var(--text-primary);
            margin: 0;
            padding: 0;
            min-height: 100vh;
        }
        .container {
            max-width: 900px;
            margin: 0 auto;
            padding: 2rem 1rem;
        }
        .header {
            background: var(--surface-color);
            border-bottom: 1px solid var(--border-color);
            position: sticky;
            top: 0;
            z-index: 100;
            box-shadow: var(--shadow-sm);
        }
        .header-content {
            display: flex;
            align-items: center;
            max-width: 900px;
            margin: 0 auto;
            padding: 1rem;
        }
        .logo {
            display: flex;
            align-items: center;
            gap: 0.75rem;
            text-decoration: none;
            color: var(--primary-color);
        }
        .logo-icon {
            width: 36px;
            height: 36px;
            background: var(--primary-color);
            border-radius: 6px;
            display: flex;
            align-items: center;
            justify-content: center;
            color: var(--surface-color);
            font-weight: 700;
            font-size: 1.1rem;
        }
        .logo-text {
            font-size: 1.3rem;
            font-weight: 700;
            color: var(--primary-color);
        }
        .main-content {
            background: var(--surface-color);
            border-radius: 12px;
            box-shadow: var(--shadow-md);
            margin: 2rem 0;
            overflow: hidden;
        }
        .markdown-body {
            box-sizing: border-box;
            min-width: 200px;
            margin: 0;
            padding: 2.5rem 2rem;
            color: var(--text-primary);
        }
        .markdown-body h1 {
            font-size: 2.2rem;
            font-weight: 700;
            color: var(--primary-color);
            margin-bottom: 1.2rem;
            border-bottom: 2px solid var(--border-color);
            padding-bottom: 0.5rem;
        }
        .markdown-body h2 {
            font-size: 1.5rem;
            font-weight: 600;
            color: var(--primary-color);
            margin-top: 2rem;
            margin-bottom: 1rem;
            border-bottom: 1px solid var(--border-color);
            padding-bottom: 0.3rem;
        }
        .markdown-body h3 {
            font-size: 1.15rem;
            font-weight: 600;
            color: var(--primary-color);
            margin-top: 1.5rem;
            margin-bottom: 0.75rem;
        }
        .markdown-body h4 {
            font-size: 1.05rem;
            font-weight: 600;
            color: var(--primary-color);
            margin-top: 1.2rem;
            margin-bottom: 0.5rem;
        }
        .markdown-body p {
            margin-bottom: 1.1rem;
            color: var(--text-secondary);
        }
        .markdown-body strong {
            color: var(--text-primary);
            font-weight: 600;
        }
        .markdown-body code {
            background: var(--code-bg);
            color: var(--primary-color);
            padding: 0.18rem 0.35rem;
            border-radius: 4px;
            font-size: 0.95em;
            border: 1px solid var(--border-color);
        }
        .markdown-body pre {
            background: var(--code-bg);
            border-radius: 8px;
            padding: 1.1rem;
            overflow-x: auto;
            border: 1px solid var(--border-color);
        }
        .markdown-body pre code {
            background: none;
            padding: 0;
            border: none;
            font-size: 0.95em;
        }
        .markdown-body blockquote {
            background: var(--code-bg);
            color: var(--primary-color);
            padding: 1rem 1.5rem;
            border-radius: 6px;
            margin: 1.2rem 0;
            border-left: 4px solid var(--primary-color);
        }
        .markdown-body blockquote p {
            color: var(--primary-color);
            margin: 0;
        }
        .markdown-body table {
            border-collapse: collapse;
            width: 100%;
            margin: 1.2rem 0;
            border-radius: 6px;
            overflow: hidden;
        }
        .markdown-body th {
            background: var(--primary-color);
            color: var(--surface-color);
            padding: 0.7rem;
            text-align: left;
            font-weight: 600;
        }
        .markdown-body td {
            padding: 0.7rem;
            border-bottom: 1px solid var(--border-color);
        }
        .markdown-body tr:nth-child(even) td {
            background: var(--background-color);
        }
        .markdown-body ul, .markdown-body ol {
            padding-left: 1.3rem;
            margin-bottom: 1.1rem;
        }
        .markdown-body li {
            margin-bottom: 0.4rem;
            color: var(--text-secondary);
        }
        .markdown-body a {
            color: var(--primary-color);
            text-decoration: underline;
            font-weight: 500;
            transition: color 0.2s ease;
        }
        .markdown-body a:hover {
            color: var(--primary-hover);
        }
        .github-corner {
            position: fixed;
            top: 0;
            right: 0;
            z-index: 1000;
        }
        .github-corner:hover .octo-arm {
            animation: octocat-wave 560ms ease-in-out;
        }
        @keyframes octocat-wave {
            0%, 100% { transform: rotate(0); }
            20%, 60% { transform: rotate(-25deg); }
            40%, 80% { transform: rotate(10deg); }
        }
        .github-corner svg {
            fill: var(--primary-color);
            color: var(--surface-color);
            position: fixed;
            top: 0;
            border: 0;
            right: 0;
        }
        .github-corner .octo-arm {
            transform-origin: 130px 106px;
        }
        .footer {
            background: var(--surface-color);
            border-top: 1px solid var(--border-color);
            padding: 1.5rem 0;
            text-align: center;
            color: var(--text-secondary);
            margin-top: 2rem;
        }
        .footer-content {
            max-width: 900px;
            margin: 0 auto;
        }
        .footer a {
            color: var(--primary-color);
            text-decoration: underline;
            font-weight: 500;
        }
        .footer a:hover {
            color: var(--primary-hover);
        }
        @media (max-width: 768px) {
            .container {
                padding: 1rem;
            }
            .markdown-body {
                padding: 1rem 0.5rem;
            }
            .main-content {
                margin: 1rem 0;
            }
            .logo-text {
                font-size: 1rem;
            }
        }
    </style>
</head>
<body>{{if and .Site.GithubCorner .Site.RepoURL}}
    <a href="{{.Site.RepoURL}}" class="github-corner" aria-label="View source on GitHub">
        <svg width="80" height="80" viewBox="0 0 250 250" aria-hidden="true">
            <path d="M0,0 L115,115 L130,115 L142,142 L250,250 L250,0 Z"></path>
            <path d="M128.3,109.0 C113.8,99.7 119.0,89.6 119.0,89.6 C122.0,82.7 120.5,78.6 120.5,78.6 C119.2,72.0 123.4,76.3 123.4,76.3 C127.3,80.9 125.5,87.3 125.5,87.3 C122.9,97.6 130.6,101.9 134.4,103.2" fill="currentColor" style="transform-origin: 130px 106px;" class="octo-arm"></path>
            <path d="M115.0,115.0 C114.9,115.1 118.7,116.5 119.8,115.4 L133.7,101.6 C136.9,99.2 139.9,98.4 142.2,98.6 C133.8,88.0 127.5,74.4 143.8,58.0 C148.5,53.4 154.0,51.2 159.7,51.0 C160.3,49.4 163.2,43.6 171.4,40.1 C171.4,40.1 176.1,42.5 178.8,56.2 C183.1,58.6 187.2,61.8 190.9,65.4 C194.5,69.0 197.7,73.2 200.1,77.6 C213.8,80.2 216.3,84.9 216.3,84.9 C212.7,91.3 206.9,94.7 205.4,96.6 C205.1,102.4 203.0,107.8 198.3,112.5 C181.9,128.9 168.3,122.5 157.7,114.1 C157.9,116.9 156.7,120.9 152.7,124.9 L141.0,136.5 C139.8,137.7 141.6,141.9 141.8,141.8 Z" fill="currentColor" class="octo-body"></path>
        </svg>
    </a>{{end}}

    <header class="header">
        <div class="header-content">
            <a href="#" class="logo">
                <div class="logo-icon">{{.Site.LogoInitial}}</div>
                <div class="logo-text">{{.Site.Title}}</div>
            </a>
        </div>
    </header>

    <div class="container">
        <main class="main-content">
            <article class="markdown-body">
{{.Guide.HTML}}
            </article>
        </main>
    </div>

    <footer class="footer">
        <div class="footer-content">
            <p>{{.Guide.Title}}{{if .Site.RepoURL}} &middot; <a href="{{.Site.RepoURL}}">GitHub</a>{{end}}</p>
        </div>
    </footer>
</body>
</html>
`
