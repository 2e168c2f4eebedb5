package runtimeconfig

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInputPathRequired indicates the guide source path was left empty.
var ErrInputPathRequired = errors.New("pages config: input path is required")

// ErrOutputDirRequired indicates the docs output directory was left empty.
var ErrOutputDirRequired = errors.New("pages config: output directory is required")

// ErrWorkflowPathRequired ensures scaffolding has a workflow destination.
var ErrWorkflowPathRequired = errors.New("pages config: workflow path is required when scaffolding is enabled")

// ErrThemeRequired indicates neither a built-in theme name nor a theme file was configured.
var ErrThemeRequired = errors.New("pages config: theme name or theme file is required")

// ErrHistoryPathRequired ensures the publish log has a database path.
var ErrHistoryPathRequired = errors.New("pages config: history path is required when history is enabled")

// ErrHistoryFeatureRequired keeps history configuration behind the feature flag.
var ErrHistoryFeatureRequired = errors.New("pages config: history feature must be enabled to configure history")

var ErrLoggingProviderRequired = errors.New("pages config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("pages config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("pages config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("pages config: logging format is invalid")

// ErrSiteRepoInvalid rejects repository references that are not an
// "owner/name" pair.
var ErrSiteRepoInvalid = errors.New("pages config: site repo must be owner/name")

var repoPattern = regexp.MustCompile(`^[^/\s]+/[^/\s]+$`)

// Config aggregates feature flags and adapter bindings for the publisher
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	Site     SiteConfig
	Input    InputConfig
	Output   OutputConfig
	Theme    ThemeConfig
	Parser   ParserConfig
	History  HistoryConfig
	Logging  LoggingConfig
	Features Features
}

// SiteConfig captures page-level metadata surfaced by the HTML shell.
type SiteConfig struct {
	Title   string
	BaseURL string
	// Repo holds the "owner/name" pair used for the GitHub corner link and
	// the derived pages URL. Left empty, it is resolved from the git remote.
	Repo         string
	GithubCorner bool
}

// InputConfig selects the Markdown guide to publish.
type InputConfig struct {
	Path string
}

// OutputConfig controls where artifacts land relative to the repository root.
type OutputConfig struct {
	Dir          string
	WorkflowPath string
	ManifestName string
}

// ThemeConfig selects a built-in theme or an external token document.
type ThemeConfig struct {
	Name              string
	File              string
	CSSVariablePrefix string
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions     []string
	HardWraps      bool
	SafeMode       bool
	HighlightStyle string
}

// HistoryConfig captures the publish log behaviour.
type HistoryConfig struct {
	Enabled bool
	Path    string
	// Keep bounds how many records List returns by default.
	Keep int
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Scaffold bool
	History  bool
	Logger   bool
}

// DefaultConfig returns the opinionated publisher defaults: render GUIDE.md
// into docs/ and scaffold the deploy workflow.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			GithubCorner: true,
		},
		Input: InputConfig{
			Path: "GUIDE.md",
		},
		Output: OutputConfig{
			Dir:          "docs",
			WorkflowPath: ".github/workflows/deploy.yml",
			ManifestName: ".pages-manifest.json",
		},
		Theme: ThemeConfig{
			Name:              "calm",
			CSSVariablePrefix: "--",
		},
		Parser: ParserConfig{
			Extensions:     []string{"gfm", "footnote", "definition"},
			HighlightStyle: "github",
		},
		History: HistoryConfig{
			Path: ".go-pages/history.db",
			Keep: 50,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "console",
		},
		Features: Features{
			Scaffold: true,
			Logger:   true,
		},
	}
}

// Validate enforces cross-field invariants before the module boots.
// Requiredness and feature gating are reported through the sentinel errors so
// hosts can branch with errors.Is; value formats are checked with ozzo rules.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return ErrInputPathRequired
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return ErrOutputDirRequired
	}
	if c.Features.Scaffold && strings.TrimSpace(c.Output.WorkflowPath) == "" {
		return ErrWorkflowPathRequired
	}
	if strings.TrimSpace(c.Theme.Name) == "" && strings.TrimSpace(c.Theme.File) == "" {
		return ErrThemeRequired
	}
	if repo := strings.TrimSpace(c.Site.Repo); repo != "" {
		if err := validation.Validate(repo, validation.Match(repoPattern)); err != nil {
			return ErrSiteRepoInvalid
		}
	}
	if c.History.Enabled && !c.Features.History {
		return ErrHistoryFeatureRequired
	}
	if c.Features.History && strings.TrimSpace(c.History.Path) == "" {
		return ErrHistoryPathRequired
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c Config) validateLogging() error {
	if !c.Features.Logger {
		return nil
	}
	provider := strings.ToLower(strings.TrimSpace(c.Logging.Provider))
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if err := validation.Validate(provider, validation.In("gologger", "console", "noop")); err != nil {
		return ErrLoggingProviderUnknown
	}
	if level := strings.ToLower(strings.TrimSpace(c.Logging.Level)); level != "" {
		if err := validation.Validate(level,
			validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")); err != nil {
			return ErrLoggingLevelInvalid
		}
	}
	if format := strings.ToLower(strings.TrimSpace(c.Logging.Format)); format != "" {
		if err := validation.Validate(format, validation.In("console", "json", "pretty")); err != nil {
			return ErrLoggingFormatInvalid
		}
	}
	return nil
}

// HistoryRetention normalises the configured record cap.
func (c Config) HistoryRetention() int {
	if c.History.Keep <= 0 {
		return 50
	}
	return c.History.Keep
}
