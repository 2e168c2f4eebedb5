package generator

import (
	"context"
	"errors"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"
)

type writeCategory string

const (
	categoryPage     writeCategory = "page"
	categoryReadme   writeCategory = "readme"
	categoryManifest writeCategory = "manifest"
)

// writeFileRequest describes a file write operation routed through the artifact writer.
type writeFileRequest struct {
	Path     string
	Content  []byte
	Category writeCategory
}

// artifactWriter abstracts filesystem specifics for generator outputs.
type artifactWriter interface {
	EnsureDir(ctx context.Context, dir string) error
	WriteFile(ctx context.Context, req writeFileRequest) error
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

func newArtifactWriter(fs afero.Fs) artifactWriter {
	if fs == nil {
		return noopWriter{}
	}
	return &aferoWriter{fs: fs}
}

type aferoWriter struct {
	fs afero.Fs
}

func (w *aferoWriter) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	return w.fs.MkdirAll(dir, 0o755)
}

func (w *aferoWriter) WriteFile(ctx context.Context, req writeFileRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}
	if dir := path.Dir(req.Path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(w.fs, req.Path, req.Content, 0o644)
}

// ReadFile returns nil content without error when the file does not exist, so
// callers can treat an absent manifest as a first run.
func (w *aferoWriter) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(w.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, writeFileRequest) error { return nil }

func (noopWriter) ReadFile(context.Context, string) ([]byte, error) { return nil, nil }
