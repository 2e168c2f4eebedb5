package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-pages/pkg/interfaces"
)

const (
	rootModule     = "pages"
	renderModule   = "pages.render"
	scaffoldModule = "pages.scaffold"
	historyModule  = "pages.history"
)

const (
	fieldGuidePath = "guide_path"
	fieldTheme     = "theme"
	fieldAction    = "publish_action"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RenderLogger returns the logger namespace reserved for the render pipeline.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// ScaffoldLogger returns the logger namespace reserved for deployment scaffolding.
func ScaffoldLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, scaffoldModule)
}

// HistoryLogger returns the logger namespace reserved for the publish log.
func HistoryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, historyModule)
}

// WithPublishContext enriches the provided logger with common publish fields
// such as guide path, theme, and action. Empty values are ignored.
func WithPublishContext(logger interfaces.Logger, path, theme, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldGuidePath] = trimmed
	}
	if trimmed := strings.TrimSpace(theme); trimmed != "" {
		fields[fieldTheme] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
