package generator

import (
	"context"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/goliatone/go-pages/internal/identity"
	"github.com/goliatone/go-pages/internal/logging"
	"github.com/goliatone/go-pages/internal/markdown"
	"github.com/goliatone/go-pages/internal/themes"
	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Config captures the generator's output layout and site metadata.
type Config struct {
	OutputDir         string
	ManifestName      string
	CSSVariablePrefix string
	Site              SiteSettings
	Parser            interfaces.ParseOptions
}

// SiteSettings holds the page-level metadata substituted into the shell.
type SiteSettings struct {
	Title        string
	BaseURL      string
	RepoURL      string
	GithubCorner bool
}

// Service renders the guide document and writes the docs/ artifacts.
type Service struct {
	cfg      Config
	fs       afero.Fs
	loader   *markdown.Loader
	parser   interfaces.MarkdownParser
	renderer interfaces.TemplateRenderer
	writer   artifactWriter
	theme    themes.Theme
	logger   interfaces.Logger
}

// NewService constructs a generator bound to the provided filesystem and
// theme. When parser or renderer are nil, the goldmark parser and the built-in
// html/template shell are used.
func NewService(cfg Config, fs afero.Fs, theme themes.Theme, parser interfaces.MarkdownParser, logger interfaces.Logger) (*Service, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if parser == nil {
		parser = markdown.NewGoldmarkParser(cfg.Parser)
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, fmt.Errorf("generator: output directory is required")
	}
	if strings.TrimSpace(cfg.ManifestName) == "" {
		cfg.ManifestName = ".pages-manifest.json"
	}

	renderer, err := NewHTMLRenderer()
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:      cfg,
		fs:       fs,
		loader:   markdown.NewLoader(afero.NewIOFS(fs), "."),
		parser:   parser,
		renderer: renderer,
		writer:   newArtifactWriter(fs),
		theme:    theme,
		logger:   logger,
	}, nil
}

// PublishOptions tune a single publish run.
type PublishOptions struct {
	InputPath string
	Force     bool
	DryRun    bool
}

// PublishResult reports what a publish run produced.
type PublishResult struct {
	GuideID    uuid.UUID
	BuildID    uuid.UUID
	Title      string
	Slug       string
	Checksum   string
	OutputPath string
	ReadmePath string
	Skipped    bool
	DryRun     bool
	Duration   time.Duration
}

// Publish loads the guide, renders it through the themed page shell, and
// writes docs/index.html, docs/README.md, and the build manifest. Unchanged
// guides are skipped unless Force is set.
func (s *Service) Publish(ctx context.Context, opts PublishOptions) (*PublishResult, error) {
	started := time.Now()

	inputPath := strings.TrimSpace(opts.InputPath)
	if inputPath == "" {
		return nil, fmt.Errorf("generator: input path is required")
	}

	result, err := s.loader.LoadFile(ctx, inputPath)
	if err != nil {
		return nil, err
	}
	doc := result.Document

	checksum := hex.EncodeToString(doc.Checksum)
	guideID := identity.GuideUUID(doc.FilePath)
	buildID := identity.BuildUUID(guideID, checksum)

	title := s.resolveTitle(doc)
	guideSlug := resolveSlug(doc.FrontMatter.Slug, title)

	outputPath := path.Join(s.cfg.OutputDir, "index.html")
	readmePath := path.Join(s.cfg.OutputDir, "README.md")
	manifestPath := path.Join(s.cfg.OutputDir, s.cfg.ManifestName)

	logger := logging.WithPublishContext(s.logger, doc.FilePath, s.theme.Name, "publish")

	manifest, err := s.loadManifest(ctx, manifestPath)
	if err != nil {
		return nil, err
	}

	publish := &PublishResult{
		GuideID:    guideID,
		BuildID:    buildID,
		Title:      title,
		Slug:       guideSlug,
		Checksum:   checksum,
		OutputPath: outputPath,
		ReadmePath: readmePath,
		DryRun:     opts.DryRun,
	}

	if !opts.Force && manifest.shouldSkipGuide(doc.FilePath, checksum, s.theme.Name, outputPath) {
		publish.Skipped = true
		publish.Duration = time.Since(started)
		logger.Info("generator.publish.skipped", "checksum", checksum)
		return publish, nil
	}

	bodyHTML, err := s.parser.Parse(doc.Body)
	if err != nil {
		return nil, err
	}
	doc.BodyHTML = bodyHTML

	page, err := s.renderPage(ctx, doc, title)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		publish.Duration = time.Since(started)
		logger.Info("generator.publish.dry_run", "output", outputPath)
		return publish, nil
	}

	if err := s.writer.EnsureDir(ctx, s.cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("generator: ensure output dir: %w", err)
	}

	if err := s.writer.WriteFile(ctx, writeFileRequest{
		Path:     outputPath,
		Content:  page,
		Category: categoryPage,
	}); err != nil {
		return nil, fmt.Errorf("generator: write page: %w", err)
	}

	if err := s.writer.WriteFile(ctx, writeFileRequest{
		Path:     readmePath,
		Content:  []byte(renderDocsReadme(title, inputPath)),
		Category: categoryReadme,
	}); err != nil {
		return nil, fmt.Errorf("generator: write readme: %w", err)
	}

	now := time.Now().UTC()
	manifest.GeneratedAt = now
	manifest.setGuide(manifestGuide{
		GuideID:    guideID.String(),
		Path:       doc.FilePath,
		Checksum:   checksum,
		Theme:      s.theme.Name,
		Output:     outputPath,
		RenderedAt: now,
	})

	encoded, err := manifest.marshal()
	if err != nil {
		return nil, err
	}
	if err := s.writer.WriteFile(ctx, writeFileRequest{
		Path:     manifestPath,
		Content:  encoded,
		Category: categoryManifest,
	}); err != nil {
		return nil, fmt.Errorf("generator: write manifest: %w", err)
	}

	publish.Duration = time.Since(started)
	logger.Info("generator.publish.completed",
		"output", outputPath,
		"checksum", checksum,
		"duration_ms", publish.Duration.Milliseconds(),
	)
	return publish, nil
}

func (s *Service) loadManifest(ctx context.Context, manifestPath string) (*buildManifest, error) {
	data, err := s.writer.ReadFile(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("generator: read manifest: %w", err)
	}
	return parseManifest(data)
}

func (s *Service) renderPage(ctx context.Context, doc *interfaces.Document, title string) ([]byte, error) {
	siteTitle := strings.TrimSpace(s.cfg.Site.Title)
	if siteTitle == "" {
		siteTitle = title
	}

	pageCtx := PageContext{
		Site: SiteContext{
			Title:        siteTitle,
			BaseURL:      strings.TrimRight(s.cfg.Site.BaseURL, "/"),
			RepoURL:      s.cfg.Site.RepoURL,
			LogoInitial:  logoInitial(siteTitle),
			GithubCorner: s.cfg.Site.GithubCorner,
		},
		Guide: GuideContext{
			Title:   title,
			Summary: doc.FrontMatter.Summary,
			Author:  doc.FrontMatter.Author,
			HTML:    htmlBody(doc.BodyHTML),
		},
		Theme: ThemeContext{
			Name:       s.theme.Name,
			StyleBlock: styleBlock(s.theme, s.cfg.CSSVariablePrefix),
		},
	}

	return s.renderer.Render(ctx, pageTemplateName, pageCtx)
}

// resolveTitle prefers frontmatter, then the first ATX heading, then the
// file name.
func (s *Service) resolveTitle(doc *interfaces.Document) string {
	if title := strings.TrimSpace(doc.FrontMatter.Title); title != "" {
		return title
	}
	if heading := firstHeading(doc.Body); heading != "" {
		return heading
	}
	base := path.Base(doc.FilePath)
	return strings.TrimSuffix(base, path.Ext(base))
}

func firstHeading(body []byte) string {
	for _, line := range strings.Split(string(body), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return ""
}

func resolveSlug(explicit, title string) string {
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		if slug.IsValid(trimmed) {
			return trimmed
		}
	}
	normalized, err := slug.Normalize(title)
	if err != nil || normalized == "" {
		return "guide"
	}
	return normalized
}

func logoInitial(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "G"
	}
	return strings.ToUpper(string([]rune(trimmed)[0]))
}
