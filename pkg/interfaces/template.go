package interfaces

import "context"

// TemplateRenderer renders a named template with the provided data. The
// generator ships an html/template implementation; hosts can swap in their
// own engine as long as output stays deterministic for identical input.
type TemplateRenderer interface {
	Render(ctx context.Context, name string, data any) ([]byte, error)
}
