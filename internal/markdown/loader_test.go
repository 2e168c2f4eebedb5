package markdown

import (
	"context"
	"testing"

	"github.com/spf13/afero"
)

func newTestLoader(t *testing.T, files map[string]string) *Loader {
	t.Helper()
	memfs := afero.NewMemMapFs()
	for name, content := range files {
		if err := afero.WriteFile(memfs, name, []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}
	return NewLoader(afero.NewIOFS(memfs), ".")
}

func TestLoaderLoadFile(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"GUIDE.md": "---\ntitle: Guide\n---\n\n# Guide\n",
	})

	result, err := loader.LoadFile(context.Background(), "GUIDE.md")
	if err != nil {
		t.Fatalf("load file: %v", err)
	}

	doc := result.Document
	if doc.FilePath != "GUIDE.md" {
		t.Fatalf("expected file path GUIDE.md, got %q", doc.FilePath)
	}
	if doc.FrontMatter.Title != "Guide" {
		t.Fatalf("expected frontmatter title, got %q", doc.FrontMatter.Title)
	}
	if len(doc.Checksum) != 32 {
		t.Fatalf("expected sha-256 checksum, got %d bytes", len(doc.Checksum))
	}
}

func TestLoaderChecksumTracksContent(t *testing.T) {
	loader := newTestLoader(t, map[string]string{
		"a.md": "# One\n",
		"b.md": "# Two\n",
	})

	ctx := context.Background()
	first, err := loader.LoadFile(ctx, "a.md")
	if err != nil {
		t.Fatalf("load a.md: %v", err)
	}
	second, err := loader.LoadFile(ctx, "b.md")
	if err != nil {
		t.Fatalf("load b.md: %v", err)
	}
	if string(first.Document.Checksum) == string(second.Document.Checksum) {
		t.Fatal("expected different checksums for different content")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	loader := newTestLoader(t, nil)

	if _, err := loader.LoadFile(context.Background(), "missing.md"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoaderRejectsEmptyPath(t *testing.T) {
	loader := newTestLoader(t, nil)

	if _, err := loader.LoadFile(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
