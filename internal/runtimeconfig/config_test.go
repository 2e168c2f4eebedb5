package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Input.Path != "GUIDE.md" {
		t.Fatalf("unexpected default input: %q", cfg.Input.Path)
	}
	if cfg.Output.Dir != "docs" {
		t.Fatalf("unexpected default output dir: %q", cfg.Output.Dir)
	}
	if cfg.Output.WorkflowPath != ".github/workflows/deploy.yml" {
		t.Fatalf("unexpected default workflow path: %q", cfg.Output.WorkflowPath)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"missing input", func(c *Config) { c.Input.Path = "" }, ErrInputPathRequired},
		{"missing output", func(c *Config) { c.Output.Dir = " " }, ErrOutputDirRequired},
		{"missing workflow", func(c *Config) { c.Output.WorkflowPath = "" }, ErrWorkflowPathRequired},
		{"missing theme", func(c *Config) { c.Theme.Name = ""; c.Theme.File = "" }, ErrThemeRequired},
		{"malformed repo", func(c *Config) { c.Site.Repo = "acme" }, ErrSiteRepoInvalid},
		{"repo with extra segment", func(c *Config) { c.Site.Repo = "acme/widget/extra" }, ErrSiteRepoInvalid},
		{"history without feature", func(c *Config) { c.History.Enabled = true }, ErrHistoryFeatureRequired},
		{"history without path", func(c *Config) { c.Features.History = true; c.History.Path = "" }, ErrHistoryPathRequired},
		{"unknown logging provider", func(c *Config) { c.Logging.Provider = "zap" }, ErrLoggingProviderUnknown},
		{"invalid logging level", func(c *Config) { c.Logging.Level = "loud" }, ErrLoggingLevelInvalid},
		{"invalid logging format", func(c *Config) { c.Logging.Format = "xml" }, ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateAcceptsOwnerNameRepo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.Repo = "acme/widget"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected owner/name repo to validate, got %v", err)
	}
}

func TestValidateSkipsWorkflowWhenScaffoldOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Scaffold = false
	cfg.Output.WorkflowPath = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateSkipsLoggingWhenFeatureOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = false
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestHistoryRetention(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.HistoryRetention() != 50 {
		t.Fatalf("expected default retention 50, got %d", cfg.HistoryRetention())
	}
	cfg.History.Keep = -1
	if cfg.HistoryRetention() != 50 {
		t.Fatalf("expected fallback retention, got %d", cfg.HistoryRetention())
	}
	cfg.History.Keep = 7
	if cfg.HistoryRetention() != 7 {
		t.Fatalf("expected configured retention, got %d", cfg.HistoryRetention())
	}
}
