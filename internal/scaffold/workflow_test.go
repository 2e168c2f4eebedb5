package scaffold

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRenderWorkflowStructure(t *testing.T) {
	content, err := RenderWorkflow(DefaultWorkflowConfig())
	if err != nil {
		t.Fatalf("render workflow: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		t.Fatalf("unmarshal workflow: %v", err)
	}

	if doc["name"] != "Deploy to GitHub Pages" {
		t.Fatalf("expected workflow name, got %v", doc["name"])
	}

	permissions, ok := doc["permissions"].(map[string]any)
	if !ok {
		t.Fatalf("expected permissions map, got %T", doc["permissions"])
	}
	if permissions["contents"] != "read" || permissions["pages"] != "write" || permissions["id-token"] != "write" {
		t.Fatalf("unexpected permissions: %v", permissions)
	}

	concurrency, ok := doc["concurrency"].(map[string]any)
	if !ok {
		t.Fatalf("expected concurrency map, got %T", doc["concurrency"])
	}
	if concurrency["group"] != "pages" {
		t.Fatalf("expected pages concurrency group, got %v", concurrency)
	}
	if concurrency["cancel-in-progress"] != false {
		t.Fatalf("expected cancel-in-progress false, got %v", concurrency)
	}

	jobs, ok := doc["jobs"].(map[string]any)
	if !ok {
		t.Fatalf("expected jobs map, got %T", doc["jobs"])
	}
	if _, ok := jobs["build"]; !ok {
		t.Fatal("expected build job")
	}
	deploy, ok := jobs["deploy"].(map[string]any)
	if !ok {
		t.Fatal("expected deploy job")
	}
	if deploy["needs"] != "build" {
		t.Fatalf("expected deploy to need build, got %v", deploy["needs"])
	}
	condition, _ := deploy["if"].(string)
	if !strings.Contains(condition, "refs/heads/main") || !strings.Contains(condition, "refs/heads/master") {
		t.Fatalf("expected branch guard, got %q", condition)
	}
}

func TestRenderWorkflowSteps(t *testing.T) {
	content, err := RenderWorkflow(DefaultWorkflowConfig())
	if err != nil {
		t.Fatalf("render workflow: %v", err)
	}

	text := string(content)
	for _, action := range []string{
		"actions/checkout@v4",
		"actions/setup-go@v5",
		"actions/configure-pages@v4",
		"actions/upload-pages-artifact@v3",
		"actions/deploy-pages@v4",
	} {
		if !strings.Contains(text, action) {
			t.Fatalf("expected %s in workflow, got:\n%s", action, text)
		}
	}
	if !strings.Contains(text, "--generate-only") {
		t.Fatal("expected generate step to pass --generate-only")
	}
	if !strings.Contains(text, "./docs") {
		t.Fatal("expected upload path ./docs")
	}
}

func TestRenderWorkflowIsDeterministic(t *testing.T) {
	first, err := RenderWorkflow(DefaultWorkflowConfig())
	if err != nil {
		t.Fatalf("render workflow: %v", err)
	}
	second, err := RenderWorkflow(DefaultWorkflowConfig())
	if err != nil {
		t.Fatalf("render workflow: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("expected byte-identical workflow output")
	}
}

func TestRenderWorkflowCustomBranches(t *testing.T) {
	cfg := DefaultWorkflowConfig()
	cfg.Branches = []string{"release"}

	content, err := RenderWorkflow(cfg)
	if err != nil {
		t.Fatalf("render workflow: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "refs/heads/release") {
		t.Fatal("expected custom branch in deploy condition")
	}
	if strings.Contains(text, "refs/heads/main") {
		t.Fatal("did not expect default branches")
	}
}
