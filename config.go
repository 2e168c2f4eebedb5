package pages

import (
	"github.com/goliatone/go-pages/internal/runtimeconfig"
)

// Config aggregates runtime options for the publisher module.
type Config = runtimeconfig.Config

// SiteConfig exports the site metadata section.
type SiteConfig = runtimeconfig.SiteConfig

// InputConfig exports the guide source section.
type InputConfig = runtimeconfig.InputConfig

// OutputConfig exports the artifact layout section.
type OutputConfig = runtimeconfig.OutputConfig

// ThemeConfig exports the theme selection section.
type ThemeConfig = runtimeconfig.ThemeConfig

// ParserConfig exports the Markdown parser section.
type ParserConfig = runtimeconfig.ParserConfig

// HistoryConfig exports the publish log section.
type HistoryConfig = runtimeconfig.HistoryConfig

// LoggingConfig exports the logging section.
type LoggingConfig = runtimeconfig.LoggingConfig

// Features exports the feature toggle section.
type Features = runtimeconfig.Features

// Configuration validation errors re-exported for callers.
var (
	ErrInputPathRequired       = runtimeconfig.ErrInputPathRequired
	ErrOutputDirRequired       = runtimeconfig.ErrOutputDirRequired
	ErrWorkflowPathRequired    = runtimeconfig.ErrWorkflowPathRequired
	ErrThemeRequired           = runtimeconfig.ErrThemeRequired
	ErrHistoryPathRequired     = runtimeconfig.ErrHistoryPathRequired
	ErrHistoryFeatureRequired  = runtimeconfig.ErrHistoryFeatureRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrSiteRepoInvalid         = runtimeconfig.ErrSiteRepoInvalid
)

// DefaultConfig returns the standard publisher defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
