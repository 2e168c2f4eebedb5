package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	pages "github.com/goliatone/go-pages"
	"github.com/goliatone/go-pages/cmd/publish/internal/bootstrap"
	"github.com/goliatone/go-pages/internal/gitrepo"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	fs.SetOutput(stderr)

	input := fs.String("input", "GUIDE.md", "Markdown guide to publish")
	outputDir := fs.String("output-dir", "docs", "Directory the generated site is written to")
	theme := fs.String("theme", "calm", "Built-in theme name (calm, slate, paper)")
	themeFile := fs.String("theme-file", "", "Path to a custom theme JSON document (overrides --theme)")
	title := fs.String("title", "", "Site title (defaults to the guide title)")
	baseURL := fs.String("base-url", "", "Base URL the site is served from")
	repo := fs.String("repo", "", "GitHub repository as owner/name (defaults to the origin remote)")
	generateOnly := fs.Bool("generate-only", false, "Generate the site without scaffolding the deploy workflow")
	force := fs.Bool("force", false, "Re-render even when the guide is unchanged")
	dryRun := fs.Bool("dry-run", false, "Render without writing any files")
	history := fs.Bool("history", false, "Record publish runs in a local history database")
	historyPath := fs.String("history-path", "", "Path to the history database")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx := context.Background()

	boot, err := moduleBuilder(ctx, bootstrap.Options{
		Input:       *input,
		OutputDir:   *outputDir,
		Theme:       *theme,
		ThemeFile:   *themeFile,
		Title:       *title,
		BaseURL:     *baseURL,
		Repo:        *repo,
		History:     *history,
		HistoryPath: *historyPath,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
		Scaffold:    !*generateOnly,
	})
	if err != nil {
		switch {
		case errors.Is(err, gitrepo.ErrNotRepository):
			fmt.Fprintln(stderr, "error: this command must run inside a git repository")
		case errors.Is(err, gitrepo.ErrRemoteUnavailable):
			fmt.Fprintln(stderr, "error: could not determine the origin remote; pass --repo owner/name or use --generate-only")
		default:
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	module := boot.Module

	result, err := module.Publish(ctx, pagesPublishOptions(*force, *dryRun))
	if err != nil {
		fmt.Fprintf(stderr, "error: publish failed: %v\n", err)
		return 1
	}

	switch {
	case result.DryRun:
		fmt.Fprintf(stdout, "dry run: would write %s\n", result.OutputPath)
	case result.Skipped:
		fmt.Fprintf(stdout, "up to date: %s (use --force to re-render)\n", result.OutputPath)
	default:
		fmt.Fprintf(stdout, "generated %s\n", result.OutputPath)
	}

	if *generateOnly || *dryRun {
		return 0
	}

	if _, err := module.Scaffold(ctx); err != nil {
		fmt.Fprintf(stderr, "error: scaffold failed: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout)
	module.Instructions(stdout)
	return 0
}

func pagesPublishOptions(force, dryRun bool) pages.PublishOptions {
	return pages.PublishOptions{Force: force, DryRun: dryRun}
}
