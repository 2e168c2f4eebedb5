package pages_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/afero"

	pages "github.com/goliatone/go-pages"
	"github.com/goliatone/go-pages/internal/gitrepo"
	"github.com/goliatone/go-pages/internal/history"
)

const guideSource = `---
title: Widget Guide
summary: Everything about widgets.
---

# Widget Guide

Widgets are **great**.
`

func newTestModule(t *testing.T, fs afero.Fs, mutate func(*pages.Config)) *pages.Module {
	t.Helper()

	cfg := pages.DefaultConfig()
	cfg.Site.Repo = "acme/widget"
	cfg.Features.Logger = false
	if mutate != nil {
		mutate(&cfg)
	}

	module, err := pages.New(cfg, pages.WithFS(fs))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module
}

func TestModulePublishEndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(guideSource), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	module := newTestModule(t, fs, nil)
	ctx := context.Background()

	result, err := module.Publish(ctx, pages.PublishOptions{})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if result.Skipped {
		t.Fatal("expected first publish to render")
	}

	page, err := afero.ReadFile(fs, "docs/index.html")
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "<strong>great</strong>") {
		t.Fatalf("expected rendered body, got %s", html)
	}
	if !strings.Contains(html, "https://github.com/acme/widget") {
		t.Fatal("expected repo link derived from owner/name")
	}

	if _, err := afero.ReadFile(fs, "docs/README.md"); err != nil {
		t.Fatalf("read readme: %v", err)
	}

	scaffolded, err := module.Scaffold(ctx)
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if !scaffolded.Created {
		t.Fatal("expected workflow to be created")
	}
	if _, err := afero.ReadFile(fs, ".github/workflows/deploy.yml"); err != nil {
		t.Fatalf("read workflow: %v", err)
	}
}

func TestModuleRerunsAreByteIdentical(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(guideSource), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	module := newTestModule(t, fs, nil)
	ctx := context.Background()

	if _, err := module.Publish(ctx, pages.PublishOptions{}); err != nil {
		t.Fatalf("first publish: %v", err)
	}
	if _, err := module.Scaffold(ctx); err != nil {
		t.Fatalf("first scaffold: %v", err)
	}

	snapshot := map[string][]byte{}
	for _, path := range []string{"docs/index.html", "docs/README.md", ".github/workflows/deploy.yml"} {
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		snapshot[path] = content
	}

	if _, err := module.Publish(ctx, pages.PublishOptions{}); err != nil {
		t.Fatalf("second publish: %v", err)
	}
	if _, err := module.Scaffold(ctx); err != nil {
		t.Fatalf("second scaffold: %v", err)
	}

	for path, before := range snapshot {
		after, err := afero.ReadFile(fs, path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if !bytes.Equal(before, after) {
			t.Fatalf("expected %s to be byte-identical across runs", path)
		}
	}
}

func TestModulePublishFailuresAreCategorised(t *testing.T) {
	fs := afero.NewMemMapFs()
	module := newTestModule(t, fs, nil)

	_, err := module.Publish(context.Background(), pages.PublishOptions{})
	if err == nil {
		t.Fatal("expected error for missing guide")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category from the handler pipeline, got %v", err)
	}
}

func TestModuleScaffoldBranchOverride(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(guideSource), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	module := newTestModule(t, fs, nil)

	if _, err := module.Scaffold(context.Background(), "release"); err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	workflow, err := afero.ReadFile(fs, ".github/workflows/deploy.yml")
	if err != nil {
		t.Fatalf("read workflow: %v", err)
	}
	if !strings.Contains(string(workflow), "refs/heads/release") {
		t.Fatal("expected branch override to reach the workflow")
	}
}

func TestModuleRecordsHistory(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(guideSource), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}

	repo := history.NewMemoryRepository()
	cfg := pages.DefaultConfig()
	cfg.Site.Repo = "acme/widget"
	cfg.Features.Logger = false
	cfg.Features.History = true
	cfg.History.Enabled = true

	module, err := pages.New(cfg, pages.WithFS(fs), pages.WithHistory(repo))
	if err != nil {
		t.Fatalf("new module: %v", err)
	}

	if _, err := module.Publish(context.Background(), pages.PublishOptions{}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	records, err := repo.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one history record, got %d", len(records))
	}
	if records[0].InputPath != "GUIDE.md" {
		t.Fatalf("expected input path recorded, got %q", records[0].InputPath)
	}
}

func TestModuleCustomThemeFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(guideSource), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	theme := `{"name": "brand", "tokens": {
        "primary-color": "#101010",
        "primary-hover": "#202020",
        "secondary-color": "#303030",
        "background-color": "#fafafa",
        "surface-color": "#ffffff",
        "border-color": "#dddddd",
        "text-primary": "#111111",
        "text-secondary": "#444444",
        "code-bg": "#eeeeee",
        "shadow-sm": "none",
        "shadow-md": "none"
    }}`
	if err := afero.WriteFile(fs, "theme.json", []byte(theme), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	module := newTestModule(t, fs, func(cfg *pages.Config) {
		cfg.Theme.File = "theme.json"
	})
	if module.Theme().Name != "brand" {
		t.Fatalf("expected custom theme, got %q", module.Theme().Name)
	}

	if _, err := module.Publish(context.Background(), pages.PublishOptions{}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	page, err := afero.ReadFile(fs, "docs/index.html")
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(page), "--primary-color: #101010;") {
		t.Fatal("expected custom tokens in page")
	}
}

func TestModuleInstructionsIncludeURLs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(guideSource), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	module := newTestModule(t, fs, nil)
	module.SetRemote(gitrepo.Remote{Owner: "acme", Repo: "widget"})

	var buf bytes.Buffer
	module.Instructions(&buf)
	out := buf.String()
	if !strings.Contains(out, "https://acme.github.io/widget/") {
		t.Fatalf("expected pages url in instructions, got %s", out)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := pages.DefaultConfig()
	cfg.Input.Path = ""
	if _, err := pages.New(cfg); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestNewRejectsUnknownTheme(t *testing.T) {
	cfg := pages.DefaultConfig()
	cfg.Site.Repo = "acme/widget"
	cfg.Features.Logger = false
	cfg.Theme.Name = "neon"
	if _, err := pages.New(cfg, pages.WithFS(afero.NewMemMapFs())); err == nil {
		t.Fatal("expected unknown theme error")
	}
}
