package publishcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-pages/internal/commands"
	"github.com/goliatone/go-pages/internal/generator"
	"github.com/goliatone/go-pages/internal/logging"
	"github.com/goliatone/go-pages/internal/scaffold"
	"github.com/goliatone/go-pages/pkg/interfaces"
)

const (
	publishOperation  = "pages.publish_guide"
	scaffoldOperation = "pages.scaffold_workflow"
)

// ErrScaffoldFeatureDisabled is returned when workflow scaffolding is turned
// off at runtime.
var ErrScaffoldFeatureDisabled = errors.New("publish command: scaffold feature disabled")

var (
	_ command.Commander[PublishGuideCommand]     = (*PublishGuideHandler)(nil)
	_ command.Commander[ScaffoldWorkflowCommand] = (*ScaffoldWorkflowHandler)(nil)
)

// Publisher is the slice of the generator the publish command needs.
type Publisher interface {
	Publish(ctx context.Context, opts generator.PublishOptions) (*generator.PublishResult, error)
}

// Scaffolder is the slice of the scaffold service the workflow command needs.
type Scaffolder interface {
	EnsureWorkflow(ctx context.Context, branches ...string) (*scaffold.Result, error)
}

// Handlers hand results back to their dispatching caller through a sink
// carried in the context, keeping Execute on the Commander contract.
type (
	publishResultKey  struct{}
	scaffoldResultKey struct{}
)

func capturePublishResult(ctx context.Context, result *generator.PublishResult) {
	if sink, ok := ctx.Value(publishResultKey{}).(*generator.PublishResult); ok && result != nil {
		*sink = *result
	}
}

func captureScaffoldResult(ctx context.Context, result *scaffold.Result) {
	if sink, ok := ctx.Value(scaffoldResultKey{}).(*scaffold.Result); ok && result != nil {
		*sink = *result
	}
}

// PublishGuideHandler executes guide publishes through the shared command
// handler foundation.
type PublishGuideHandler struct {
	inner *commands.Handler[PublishGuideCommand]
}

// NewPublishGuideHandler creates a handler bound to the supplied publisher.
func NewPublishGuideHandler(publisher Publisher, logger interfaces.Logger, opts ...commands.HandlerOption[PublishGuideCommand]) *PublishGuideHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PublishGuideCommand) error {
		result, err := publisher.Publish(ctx, generator.PublishOptions{
			InputPath: msg.InputPath,
			Force:     msg.Force,
			DryRun:    msg.DryRun,
		})
		if err != nil {
			return err
		}
		capturePublishResult(ctx, result)
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"guide_id":    result.GuideID,
				"output":      result.OutputPath,
				"checksum":    result.Checksum,
				"skipped":     result.Skipped,
				"dry_run":     result.DryRun,
				"duration_ms": result.Duration.Milliseconds(),
			}).Info("pages.command.publish_guide.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PublishGuideCommand]{
		commands.WithLogger[PublishGuideCommand](baseLogger),
		commands.WithOperation[PublishGuideCommand](publishOperation),
		commands.WithMessageFields(func(msg PublishGuideCommand) map[string]any {
			fields := map[string]any{
				"input": msg.InputPath,
			}
			if msg.Force {
				fields["force"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PublishGuideHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PublishGuideCommand].
func (h *PublishGuideHandler) Execute(ctx context.Context, msg PublishGuideCommand) error {
	return h.inner.Execute(ctx, msg)
}

// Publish runs the command through the full handler pipeline and returns the
// publish outcome.
func (h *PublishGuideHandler) Publish(ctx context.Context, msg PublishGuideCommand) (*generator.PublishResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var result generator.PublishResult
	if err := h.inner.Execute(context.WithValue(ctx, publishResultKey{}, &result), msg); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScaffoldWorkflowHandler ensures the deploy workflow exists through the
// shared command handler foundation.
type ScaffoldWorkflowHandler struct {
	inner *commands.Handler[ScaffoldWorkflowCommand]
}

// NewScaffoldWorkflowHandler creates a handler bound to the supplied scaffolder.
// The enabled gate reflects the runtime scaffold feature flag.
func NewScaffoldWorkflowHandler(scaffolder Scaffolder, logger interfaces.Logger, enabled func() bool, opts ...commands.HandlerOption[ScaffoldWorkflowCommand]) *ScaffoldWorkflowHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ScaffoldWorkflowCommand) error {
		if enabled != nil && !enabled() {
			return ErrScaffoldFeatureDisabled
		}

		result, err := scaffolder.EnsureWorkflow(ctx, msg.Branches...)
		if err != nil {
			return err
		}
		captureScaffoldResult(ctx, result)
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"path":    result.WorkflowPath,
				"created": result.Created,
				"updated": result.Updated,
			}).Info("pages.command.scaffold_workflow.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ScaffoldWorkflowCommand]{
		commands.WithLogger[ScaffoldWorkflowCommand](baseLogger),
		commands.WithOperation[ScaffoldWorkflowCommand](scaffoldOperation),
		commands.WithMessageFields(func(msg ScaffoldWorkflowCommand) map[string]any {
			fields := map[string]any{}
			if len(msg.Branches) > 0 {
				fields["branches"] = msg.Branches
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ScaffoldWorkflowHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ScaffoldWorkflowCommand].
func (h *ScaffoldWorkflowHandler) Execute(ctx context.Context, msg ScaffoldWorkflowCommand) error {
	return h.inner.Execute(ctx, msg)
}

// Scaffold runs the command through the full handler pipeline and returns the
// workflow outcome.
func (h *ScaffoldWorkflowHandler) Scaffold(ctx context.Context, msg ScaffoldWorkflowCommand) (*scaffold.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var result scaffold.Result
	if err := h.inner.Execute(context.WithValue(ctx, scaffoldResultKey{}, &result), msg); err != nil {
		return nil, err
	}
	return &result, nil
}
