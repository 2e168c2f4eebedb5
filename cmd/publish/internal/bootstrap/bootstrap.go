// Package bootstrap wires CLI flags into a configured publisher module.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	pages "github.com/goliatone/go-pages"
	"github.com/goliatone/go-pages/internal/gitrepo"
)

// Options captures configuration for the publish CLI bootstrap.
type Options struct {
	Input         string
	OutputDir     string
	Theme         string
	ThemeFile     string
	Title         string
	BaseURL       string
	Repo          string
	History       bool
	HistoryPath   string
	LogLevel      string
	LogFormat     string
	Scaffold      bool
	SkipGitProbe  bool
	WorkingDir    string
	FS            afero.Fs
	ModuleOptions []pages.Option
}

// Module wraps the publisher module plus repository facts discovered during
// bootstrap.
type Module struct {
	Module   *pages.Module
	RepoRoot string
	Remote   *gitrepo.Remote
}

// BuildModule verifies the git precondition, resolves the origin remote, and
// constructs a publisher module from the supplied options.
func BuildModule(ctx context.Context, opts Options) (*Module, error) {
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	dir := opts.WorkingDir
	if dir == "" {
		dir = "."
	}

	out := &Module{}

	if !opts.SkipGitProbe {
		root, err := gitrepo.DetectRoot(fs, dir)
		if err != nil {
			return nil, err
		}
		out.RepoRoot = root

		remote, err := discoverRemote(ctx, root)
		switch {
		case err == nil:
			out.Remote = &remote
		case opts.Scaffold && strings.TrimSpace(opts.Repo) == "":
			// Scaffolding needs the repository and pages URLs for the
			// workflow instructions; without --repo the remote is the only
			// source, so discovery failure is fatal.
			return nil, err
		}
	}

	cfg := pages.DefaultConfig()
	if trimmed := strings.TrimSpace(opts.Input); trimmed != "" {
		cfg.Input.Path = trimmed
	}
	if trimmed := strings.TrimSpace(opts.OutputDir); trimmed != "" {
		cfg.Output.Dir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.Theme); trimmed != "" {
		cfg.Theme.Name = trimmed
	}
	if trimmed := strings.TrimSpace(opts.ThemeFile); trimmed != "" {
		cfg.Theme.File = trimmed
	}
	cfg.Site.Title = strings.TrimSpace(opts.Title)
	cfg.Site.BaseURL = strings.TrimSpace(opts.BaseURL)
	cfg.Site.Repo = strings.TrimSpace(opts.Repo)
	if cfg.Site.Repo == "" && out.Remote != nil {
		cfg.Site.Repo = fmt.Sprintf("%s/%s", out.Remote.Owner, out.Remote.Repo)
	}
	if out.Remote == nil {
		if owner, name, ok := strings.Cut(cfg.Site.Repo, "/"); ok && owner != "" && name != "" {
			out.Remote = &gitrepo.Remote{Owner: owner, Repo: name}
		}
	}
	cfg.Features.Scaffold = opts.Scaffold
	if opts.History {
		cfg.Features.History = true
		cfg.History.Enabled = true
		if trimmed := strings.TrimSpace(opts.HistoryPath); trimmed != "" {
			cfg.History.Path = trimmed
		}
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	moduleOpts := []pages.Option{pages.WithFS(fs)}
	moduleOpts = append(moduleOpts, opts.ModuleOptions...)

	module, err := pages.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise pages module: %w", err)
	}
	if out.Remote != nil {
		module.SetRemote(*out.Remote)
	}

	out.Module = module
	return out, nil
}

// discoverRemote reads and parses the origin remote of the repository rooted
// at root.
func discoverRemote(ctx context.Context, root string) (gitrepo.Remote, error) {
	raw, err := gitrepo.RemoteURL(ctx, root)
	if err != nil {
		return gitrepo.Remote{}, err
	}
	remote, err := gitrepo.ParseRemote(raw)
	if err != nil {
		return gitrepo.Remote{}, fmt.Errorf("%w: %v", gitrepo.ErrRemoteUnavailable, err)
	}
	return remote, nil
}
