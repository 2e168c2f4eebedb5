package publishcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	publishGuideMessageType     = "pages.publish_guide"
	scaffoldWorkflowMessageType = "pages.scaffold_workflow"
)

// PublishGuideCommand renders the guide at InputPath into the configured
// output directory.
type PublishGuideCommand struct {
	// InputPath selects the Markdown guide to publish.
	InputPath string `json:"input_path"`
	// Force re-renders even when the manifest says the guide is unchanged.
	Force bool `json:"force,omitempty"`
	// DryRun renders without writing any artifacts.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (PublishGuideCommand) Type() string { return publishGuideMessageType }

// Validate ensures the input path is present before handlers execute.
func (cmd PublishGuideCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.InputPath, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("pages.publish_guide.input_required", "input path is required")
			}
			return nil
		})),
	)
}

// ScaffoldWorkflowCommand ensures the GitHub Actions deployment workflow exists.
type ScaffoldWorkflowCommand struct {
	// Branches limits the deploy trigger to the listed branches. Defaults to
	// main and master when empty.
	Branches []string `json:"branches,omitempty"`
}

// Type implements command.Message.
func (ScaffoldWorkflowCommand) Type() string { return scaffoldWorkflowMessageType }

// Validate rejects blank branch names.
func (cmd ScaffoldWorkflowCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Branches, validation.Each(validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("pages.scaffold_workflow.branch_blank", "branch name cannot be blank")
			}
			return nil
		}))),
	)
}
