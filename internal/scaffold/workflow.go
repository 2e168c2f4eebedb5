package scaffold

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// WorkflowConfig customizes the generated GitHub Actions workflow.
type WorkflowConfig struct {
	Name         string
	Branches     []string
	GoVersion    string
	GenerateArgs string
}

// DefaultWorkflowConfig matches the standard Pages deployment pipeline.
func DefaultWorkflowConfig() WorkflowConfig {
	return WorkflowConfig{
		Name:         "Deploy to GitHub Pages",
		Branches:     []string{"main", "master"},
		GoVersion:    "1.24",
		GenerateArgs: "--generate-only",
	}
}

// The workflow document is modeled with typed structs instead of maps so the
// emitted YAML has a stable key order and repeated scaffolds stay
// byte-identical.
type workflowDocument struct {
	Name        string              `yaml:"name"`
	On          workflowTriggers    `yaml:"on"`
	Permissions workflowPermissions `yaml:"permissions"`
	Concurrency workflowConcurrency `yaml:"concurrency"`
	Jobs        workflowJobs        `yaml:"jobs"`
}

type workflowTriggers struct {
	Push        branchFilter `yaml:"push"`
	PullRequest branchFilter `yaml:"pull_request"`
}

type branchFilter struct {
	Branches []string `yaml:"branches"`
}

type workflowPermissions struct {
	Contents string `yaml:"contents"`
	Pages    string `yaml:"pages"`
	IDToken  string `yaml:"id-token"`
}

type workflowConcurrency struct {
	Group            string `yaml:"group"`
	CancelInProgress bool   `yaml:"cancel-in-progress"`
}

type workflowJobs struct {
	Build  workflowJob `yaml:"build"`
	Deploy workflowJob `yaml:"deploy"`
}

type workflowJob struct {
	RunsOn      string         `yaml:"runs-on"`
	Needs       string         `yaml:"needs,omitempty"`
	If          string         `yaml:"if,omitempty"`
	Environment *workflowEnv   `yaml:"environment,omitempty"`
	Steps       []workflowStep `yaml:"steps"`
}

type workflowEnv struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type workflowStep struct {
	Name string            `yaml:"name,omitempty"`
	ID   string            `yaml:"id,omitempty"`
	Uses string            `yaml:"uses,omitempty"`
	Run  string            `yaml:"run,omitempty"`
	With *workflowStepWith `yaml:"with,omitempty"`
}

type workflowStepWith struct {
	GoVersion string `yaml:"go-version,omitempty"`
	Path      string `yaml:"path,omitempty"`
}

// RenderWorkflow produces the deploy.yml content for the Pages pipeline:
// a build job that regenerates the site and uploads it as a Pages artifact,
// and a deploy job gated on the default branches.
func RenderWorkflow(cfg WorkflowConfig) ([]byte, error) {
	if cfg.Name == "" {
		cfg.Name = DefaultWorkflowConfig().Name
	}
	if len(cfg.Branches) == 0 {
		cfg.Branches = DefaultWorkflowConfig().Branches
	}
	if cfg.GoVersion == "" {
		cfg.GoVersion = DefaultWorkflowConfig().GoVersion
	}
	if cfg.GenerateArgs == "" {
		cfg.GenerateArgs = DefaultWorkflowConfig().GenerateArgs
	}

	doc := workflowDocument{
		Name: cfg.Name,
		On: workflowTriggers{
			Push:        branchFilter{Branches: cfg.Branches},
			PullRequest: branchFilter{Branches: cfg.Branches},
		},
		Permissions: workflowPermissions{
			Contents: "read",
			Pages:    "write",
			IDToken:  "write",
		},
		Concurrency: workflowConcurrency{
			Group:            "pages",
			CancelInProgress: false,
		},
		Jobs: workflowJobs{
			Build: workflowJob{
				RunsOn: "ubuntu-latest",
				Steps: []workflowStep{
					{Name: "Checkout", Uses: "actions/checkout@v4"},
					{
						Name: "Setup Go",
						Uses: "actions/setup-go@v5",
						With: &workflowStepWith{GoVersion: cfg.GoVersion},
					},
					{
						Name: "Generate site",
						Run:  fmt.Sprintf("go run ./cmd/publish %s", cfg.GenerateArgs),
					},
					{Name: "Setup Pages", Uses: "actions/configure-pages@v4"},
					{
						Name: "Upload artifact",
						Uses: "actions/upload-pages-artifact@v3",
						With: &workflowStepWith{Path: "./docs"},
					},
				},
			},
			Deploy: workflowJob{
				RunsOn: "ubuntu-latest",
				Needs:  "build",
				If:     deployCondition(cfg.Branches),
				Environment: &workflowEnv{
					Name: "github-pages",
					URL:  "${{ steps.deployment.outputs.page_url }}",
				},
				Steps: []workflowStep{
					{
						Name: "Deploy to GitHub Pages",
						ID:   "deployment",
						Uses: "actions/deploy-pages@v4",
					},
				},
			},
		},
	}

	return yaml.Marshal(doc)
}

func deployCondition(branches []string) string {
	condition := ""
	for i, branch := range branches {
		if i > 0 {
			condition += " || "
		}
		condition += fmt.Sprintf("github.ref == 'refs/heads/%s'", branch)
	}
	return condition
}
