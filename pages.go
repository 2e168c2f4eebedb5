// Package pages publishes a single Markdown guide as a styled GitHub Pages
// site: it renders the guide into a themed HTML page under docs/ and
// scaffolds the GitHub Actions workflow that deploys it.
package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	publishcmd "github.com/goliatone/go-pages/internal/commands/publish"
	"github.com/goliatone/go-pages/internal/generator"
	"github.com/goliatone/go-pages/internal/gitrepo"
	"github.com/goliatone/go-pages/internal/history"
	"github.com/goliatone/go-pages/internal/logging"
	"github.com/goliatone/go-pages/internal/logging/gologger"
	"github.com/goliatone/go-pages/internal/runtimeconfig"
	"github.com/goliatone/go-pages/internal/scaffold"
	"github.com/goliatone/go-pages/internal/themes"
	"github.com/goliatone/go-pages/pkg/interfaces"
)

// PublishOptions exports the generator publish options.
type PublishOptions = generator.PublishOptions

// PublishResult exports the generator publish result.
type PublishResult = generator.PublishResult

// ScaffoldResult exports the scaffold outcome.
type ScaffoldResult = scaffold.Result

// HistoryRepository exports the publish log contract.
type HistoryRepository = history.Repository

// PublishRecord exports the publish log record.
type PublishRecord = history.PublishRecord

// Option customises module construction.
type Option func(*Module)

// WithFS overrides the filesystem used for all reads and writes. Defaults to
// the OS filesystem; tests use afero.NewMemMapFs.
func WithFS(fs afero.Fs) Option {
	return func(m *Module) {
		if fs != nil {
			m.fs = fs
		}
	}
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithParser overrides the Markdown parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(m *Module) {
		m.parser = parser
	}
}

// WithHistory injects a publish log repository. When the history feature is
// enabled and no repository is supplied, a sqlite-backed one is opened at the
// configured path.
func WithHistory(repo history.Repository) Option {
	return func(m *Module) {
		m.history = repo
	}
}

// Module is the top level publisher runtime facade.
type Module struct {
	cfg      Config
	fs       afero.Fs
	provider interfaces.LoggerProvider
	parser   interfaces.MarkdownParser
	history  history.Repository
	theme    themes.Theme

	generator *generator.Service
	scaffold  *scaffold.Service
	remote    *gitrepo.Remote

	publishHandler  *publishcmd.PublishGuideHandler
	scaffoldHandler *publishcmd.ScaffoldWorkflowHandler
}

// New validates the configuration and wires the publisher services.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{
		cfg: cfg,
		fs:  afero.NewOsFs(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.provider == nil && cfg.Features.Logger {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	theme, err := resolveTheme(m.fs, cfg.Theme)
	if err != nil {
		return nil, err
	}
	m.theme = theme

	site, err := resolveSite(cfg.Site)
	if err != nil {
		return nil, err
	}

	gen, err := generator.NewService(generator.Config{
		OutputDir:         cfg.Output.Dir,
		ManifestName:      cfg.Output.ManifestName,
		CSSVariablePrefix: cfg.Theme.CSSVariablePrefix,
		Site:              site,
		Parser: interfaces.ParseOptions{
			Extensions:     cfg.Parser.Extensions,
			HardWraps:      cfg.Parser.HardWraps,
			SafeMode:       cfg.Parser.SafeMode,
			HighlightStyle: cfg.Parser.HighlightStyle,
		},
	}, m.fs, theme, m.parser, logging.RenderLogger(m.provider))
	if err != nil {
		return nil, err
	}
	m.generator = gen

	if cfg.Features.Scaffold {
		svc, err := scaffold.NewService(scaffold.Config{
			WorkflowPath: cfg.Output.WorkflowPath,
			Workflow:     scaffold.DefaultWorkflowConfig(),
		}, m.fs, logging.ScaffoldLogger(m.provider))
		if err != nil {
			return nil, err
		}
		m.scaffold = svc
	}

	if cfg.Features.History && m.history == nil {
		repo, err := openHistory(cfg)
		if err != nil {
			return nil, err
		}
		m.history = repo
	}

	m.publishHandler = publishcmd.NewPublishGuideHandler(m.generator, logging.RenderLogger(m.provider))
	m.scaffoldHandler = publishcmd.NewScaffoldWorkflowHandler(
		m.scaffold,
		logging.ScaffoldLogger(m.provider),
		func() bool { return m.scaffold != nil },
	)

	return m, nil
}

// Theme returns the resolved theme.
func (m *Module) Theme() themes.Theme {
	return m.theme
}

// History returns the publish log repository, nil when the feature is off.
func (m *Module) History() history.Repository {
	return m.history
}

// Publish renders the configured guide and writes the site artifacts. The
// run is dispatched through the publish command handler so message validation
// and error categorisation apply. A publish record is appended to the history
// log when the feature is enabled.
func (m *Module) Publish(ctx context.Context, opts PublishOptions) (*PublishResult, error) {
	if strings.TrimSpace(opts.InputPath) == "" {
		opts.InputPath = m.cfg.Input.Path
	}

	result, err := m.publishHandler.Publish(ctx, publishcmd.PublishGuideCommand{
		InputPath: opts.InputPath,
		Force:     opts.Force,
		DryRun:    opts.DryRun,
	})
	if err != nil {
		return nil, err
	}

	if m.history != nil && !result.DryRun {
		record := &history.PublishRecord{
			GuideID:    result.GuideID,
			InputPath:  opts.InputPath,
			OutputPath: result.OutputPath,
			Checksum:   result.Checksum,
			Theme:      m.theme.Name,
			Skipped:    result.Skipped,
			DurationMS: result.Duration.Milliseconds(),
		}
		if _, err := m.history.Record(ctx, record); err != nil {
			logging.HistoryLogger(m.provider).Warn("pages.history.record_failed", "error", err)
		} else if _, err := m.history.Prune(ctx, m.cfg.HistoryRetention()); err != nil {
			logging.HistoryLogger(m.provider).Warn("pages.history.prune_failed", "error", err)
		}
	}

	return result, nil
}

// Scaffold ensures the GitHub Actions deployment workflow exists, dispatching
// through the scaffold command handler. Branches, when given, replace the
// default deploy trigger branches. It is a no-op returning nil when the
// scaffold feature is disabled.
func (m *Module) Scaffold(ctx context.Context, branches ...string) (*ScaffoldResult, error) {
	if m.scaffold == nil {
		return nil, nil
	}
	return m.scaffoldHandler.Scaffold(ctx, publishcmd.ScaffoldWorkflowCommand{Branches: branches})
}

// Instructions writes the post-publish setup steps to w.
func (m *Module) Instructions(w io.Writer) {
	data := scaffold.InstructionsData{
		WorkflowPath: m.cfg.Output.WorkflowPath,
		OutputDir:    m.cfg.Output.Dir,
	}
	if m.remote != nil {
		data.RepoURL = m.remote.RepoURL()
		data.PagesURL = m.remote.PagesURL()
	}
	scaffold.WriteInstructions(w, data)
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "noop":
		return nil, nil
	case "", "gologger", "console":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, ErrLoggingProviderUnknown
	}
}

func resolveTheme(fs afero.Fs, cfg runtimeconfig.ThemeConfig) (themes.Theme, error) {
	if strings.TrimSpace(cfg.File) != "" {
		return themes.LoadFile(fs, cfg.File)
	}
	return themes.Resolve(cfg.Name)
}

// resolveSite turns the configured owner/name pair into browsable URLs. An
// empty repo leaves the GitHub corner and footer link out of the page.
func resolveSite(cfg runtimeconfig.SiteConfig) (generator.SiteSettings, error) {
	site := generator.SiteSettings{
		Title:        cfg.Title,
		BaseURL:      cfg.BaseURL,
		GithubCorner: cfg.GithubCorner,
	}
	repo := strings.TrimSpace(cfg.Repo)
	if repo == "" {
		return site, nil
	}
	parts := strings.Split(strings.Trim(repo, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return site, fmt.Errorf("pages: repo must be owner/name, got %q", cfg.Repo)
	}
	remote := gitrepo.Remote{Owner: parts[0], Repo: parts[1]}
	site.RepoURL = remote.RepoURL()
	return site, nil
}

// SetRemote records the detected git remote so Instructions can print the
// repository and pages URLs.
func (m *Module) SetRemote(remote gitrepo.Remote) {
	m.remote = &remote
}

func openHistory(cfg Config) (history.Repository, error) {
	db, err := history.OpenSQLite(cfg.History.Path)
	if err != nil {
		return nil, err
	}
	repo := history.NewBunRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}
