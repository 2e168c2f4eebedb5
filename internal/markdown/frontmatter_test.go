package markdown

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFrontMatterExtractsMetadata(t *testing.T) {
	source, err := os.ReadFile(filepath.Join("testdata", "guide.md"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("parse frontmatter: %v", err)
	}

	if meta.Title != "Quickstart Guide" {
		t.Fatalf("expected title, got %q", meta.Title)
	}
	if meta.Slug != "quickstart" {
		t.Fatalf("expected slug, got %q", meta.Slug)
	}
	if meta.Author != "Ada" {
		t.Fatalf("expected author, got %q", meta.Author)
	}
	if len(meta.Tags) != 2 {
		t.Fatalf("expected two tags, got %v", meta.Tags)
	}
	if meta.Custom["project"] != "demo" {
		t.Fatalf("expected custom key to survive, got %v", meta.Custom)
	}
	if meta.Raw["title"] != "Quickstart Guide" {
		t.Fatalf("expected raw map to include title, got %v", meta.Raw)
	}
	if len(body) == 0 {
		t.Fatal("expected body content")
	}
}

func TestParseFrontMatterWithoutDelimiters(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("# Plain\n\ntext\n"))
	if err != nil {
		t.Fatalf("parse frontmatter: %v", err)
	}
	if meta.Title != "" {
		t.Fatalf("expected empty title, got %q", meta.Title)
	}
	if string(body) != "# Plain\n\ntext\n" {
		t.Fatalf("expected body unchanged, got %q", body)
	}
}
