package generator

import (
	"fmt"
	"html/template"

	"github.com/goliatone/go-pages/internal/themes"
)

// renderDocsReadme produces the short README placed next to index.html so
// repository browsers understand the directory is generated.
func renderDocsReadme(title, source string) string {
	return fmt.Sprintf(`# %s

This directory contains the GitHub Pages site for %s.

The main content is in `+"`index.html`"+`, generated from `+"`%s`"+` by go-pages.
Do not edit the HTML by hand; update the Markdown source and re-run the
publisher instead.
`, title, title, source)
}

func htmlBody(body []byte) template.HTML {
	return template.HTML(body)
}

func styleBlock(theme themes.Theme, prefix string) template.CSS {
	return template.CSS(theme.StyleBlock(prefix))
}
