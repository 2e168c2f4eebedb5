package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"

	pages "github.com/goliatone/go-pages"
	"github.com/goliatone/go-pages/cmd/publish/internal/bootstrap"
	"github.com/goliatone/go-pages/internal/gitrepo"
)

const testGuide = "---\ntitle: CLI Guide\n---\n\n# CLI Guide\n\nbody\n"

func stubBuilder(t *testing.T, fs afero.Fs) (*bootstrap.Options, func()) {
	t.Helper()

	captured := &bootstrap.Options{}
	original := moduleBuilder
	moduleBuilder = func(ctx context.Context, opts bootstrap.Options) (*bootstrap.Module, error) {
		*captured = opts
		opts.FS = fs
		opts.SkipGitProbe = true
		return bootstrap.BuildModule(ctx, opts)
	}
	return captured, func() { moduleBuilder = original }
}

func TestRunGeneratesSite(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(testGuide), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	captured, restore := stubBuilder(t, fs)
	defer restore()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--repo", "acme/widget"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if captured.Input != "GUIDE.md" {
		t.Fatalf("expected default input, got %q", captured.Input)
	}
	if !captured.Scaffold {
		t.Fatal("expected scaffold enabled by default")
	}

	if exists, _ := afero.Exists(fs, "docs/index.html"); !exists {
		t.Fatal("expected generated page")
	}
	if exists, _ := afero.Exists(fs, ".github/workflows/deploy.yml"); !exists {
		t.Fatal("expected scaffolded workflow")
	}
	if !strings.Contains(stdout.String(), "generated docs/index.html") {
		t.Fatalf("expected success output, got %s", stdout.String())
	}
}

func TestRunGenerateOnlySkipsScaffold(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(testGuide), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	captured, restore := stubBuilder(t, fs)
	defer restore()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--generate-only", "--repo", "acme/widget"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if captured.Scaffold {
		t.Fatal("expected scaffold disabled with --generate-only")
	}

	if exists, _ := afero.Exists(fs, "docs/index.html"); !exists {
		t.Fatal("expected generated page")
	}
	if exists, _ := afero.Exists(fs, ".github/workflows/deploy.yml"); exists {
		t.Fatal("expected no workflow with --generate-only")
	}
}

func TestRunMissingGuideFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, restore := stubBuilder(t, fs)
	defer restore()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--repo", "acme/widget"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "publish failed") {
		t.Fatalf("expected publish failure message, got %s", stderr.String())
	}
}

func TestRunOutsideGitRepositoryFails(t *testing.T) {
	original := moduleBuilder
	moduleBuilder = func(context.Context, bootstrap.Options) (*bootstrap.Module, error) {
		return nil, gitrepo.ErrNotRepository
	}
	defer func() { moduleBuilder = original }()

	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "git repository") {
		t.Fatalf("expected git error message, got %s", stderr.String())
	}
}

func TestRunRemoteUnavailableFails(t *testing.T) {
	original := moduleBuilder
	moduleBuilder = func(context.Context, bootstrap.Options) (*bootstrap.Module, error) {
		return nil, fmt.Errorf("resolve origin: %w", gitrepo.ErrRemoteUnavailable)
	}
	defer func() { moduleBuilder = original }()

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "origin remote") {
		t.Fatalf("expected remote error message, got %s", stderr.String())
	}
}

func TestRunInvalidFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--nope"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2 for bad flag, got %d", code)
	}
}

func TestRunDryRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "GUIDE.md", []byte(testGuide), 0o644); err != nil {
		t.Fatalf("write guide: %v", err)
	}
	_, restore := stubBuilder(t, fs)
	defer restore()

	var stdout, stderr bytes.Buffer
	code := run([]string{"--dry-run", "--repo", "acme/widget"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}
	if exists, _ := afero.Exists(fs, "docs/index.html"); exists {
		t.Fatal("expected no output on dry run")
	}
	if !strings.Contains(stdout.String(), "dry run") {
		t.Fatalf("expected dry run output, got %s", stdout.String())
	}
}

func TestPagesPublishOptions(t *testing.T) {
	opts := pagesPublishOptions(true, false)
	if want := (pages.PublishOptions{Force: true}); opts != want {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
