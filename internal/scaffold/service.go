package scaffold

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/goliatone/go-pages/internal/logging"
	"github.com/goliatone/go-pages/pkg/interfaces"
)

// Config controls where the deployment scaffold is written.
type Config struct {
	WorkflowPath string
	Workflow     WorkflowConfig
}

// Service writes the GitHub Actions workflow that deploys the generated site.
type Service struct {
	cfg    Config
	fs     afero.Fs
	logger interfaces.Logger
}

// NewService builds a scaffold service over the given filesystem.
func NewService(cfg Config, fs afero.Fs, logger interfaces.Logger) (*Service, error) {
	if strings.TrimSpace(cfg.WorkflowPath) == "" {
		return nil, fmt.Errorf("scaffold: workflow path is required")
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{cfg: cfg, fs: fs, logger: logger}, nil
}

// Result reports the scaffold outcome.
type Result struct {
	WorkflowPath string
	Created      bool
	Updated      bool
}

// EnsureWorkflow writes the deploy workflow, replacing an existing file only
// when its content differs so repeated runs leave timestamps untouched.
// Branches, when given, replace the configured deploy trigger branches.
func (s *Service) EnsureWorkflow(ctx context.Context, branches ...string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workflow := s.cfg.Workflow
	if len(branches) > 0 {
		workflow.Branches = branches
	}
	content, err := RenderWorkflow(workflow)
	if err != nil {
		return nil, fmt.Errorf("scaffold: render workflow: %w", err)
	}

	result := &Result{WorkflowPath: s.cfg.WorkflowPath}

	existing, err := afero.ReadFile(s.fs, s.cfg.WorkflowPath)
	switch {
	case err == nil:
		if string(existing) == string(content) {
			s.logger.Debug("scaffold.workflow.unchanged", "path", s.cfg.WorkflowPath)
			return result, nil
		}
		result.Updated = true
	default:
		result.Created = true
	}

	if dir := path.Dir(s.cfg.WorkflowPath); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("scaffold: ensure workflow dir: %w", err)
		}
	}
	if err := afero.WriteFile(s.fs, s.cfg.WorkflowPath, content, 0o644); err != nil {
		return nil, fmt.Errorf("scaffold: write workflow: %w", err)
	}

	s.logger.Info("scaffold.workflow.written",
		"path", s.cfg.WorkflowPath,
		"created", result.Created,
	)
	return result, nil
}
