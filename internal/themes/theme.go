package themes

import (
	"fmt"
	"sort"
	"strings"
)

// Theme is a named set of design tokens rendered into CSS custom properties
// by the page shell. Tokens use kebab-case keys without the variable prefix.
type Theme struct {
	Name   string
	Tokens map[string]string
}

// builtins captures the palettes shipped with the publisher: a light, a dark,
// and a warm paper-like variant, all sharing the same token set.
var builtins = map[string]Theme{
	"calm": {
		Name: "calm",
		Tokens: map[string]string{
			"primary-color":    "#2d3748",
			"primary-hover":    "#1a202c",
			"secondary-color":  "#4a5568",
			"background-color": "#f7fafc",
			"surface-color":    "#ffffff",
			"border-color":     "#e2e8f0",
			"text-primary":     "#22223b",
			"text-secondary":   "#4a5568",
			"code-bg":          "#f1f5f9",
			"shadow-sm":        "0 1px 2px 0 rgb(0 0 0 / 0.03)",
			"shadow-md":        "0 4px 6px -1px rgb(0 0 0 / 0.05), 0 2px 4px -2px rgb(0 0 0 / 0.05)",
		},
	},
	"slate": {
		Name: "slate",
		Tokens: map[string]string{
			"primary-color":    "#e2e8f0",
			"primary-hover":    "#f8fafc",
			"secondary-color":  "#94a3b8",
			"background-color": "#0f172a",
			"surface-color":    "#1e293b",
			"border-color":     "#334155",
			"text-primary":     "#f1f5f9",
			"text-secondary":   "#cbd5e1",
			"code-bg":          "#0f172a",
			"shadow-sm":        "0 1px 2px 0 rgb(0 0 0 / 0.4)",
			"shadow-md":        "0 4px 6px -1px rgb(0 0 0 / 0.5), 0 2px 4px -2px rgb(0 0 0 / 0.5)",
		},
	},
	"paper": {
		Name: "paper",
		Tokens: map[string]string{
			"primary-color":    "#44403c",
			"primary-hover":    "#292524",
			"secondary-color":  "#78716c",
			"background-color": "#faf9f7",
			"surface-color":    "#fffefb",
			"border-color":     "#e7e5e4",
			"text-primary":     "#1c1917",
			"text-secondary":   "#57534e",
			"code-bg":          "#f5f5f4",
			"shadow-sm":        "0 1px 2px 0 rgb(0 0 0 / 0.04)",
			"shadow-md":        "0 4px 6px -1px rgb(0 0 0 / 0.06), 0 2px 4px -2px rgb(0 0 0 / 0.06)",
		},
	},
}

// Resolve returns the built-in theme matching name (case-insensitive).
func Resolve(name string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtins[key]
	if !ok {
		return Theme{}, fmt.Errorf("themes: unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return theme.clone(), nil
}

// Names lists the built-in theme names in stable order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CSSVariables maps tokens to prefixed CSS custom property names.
func (t Theme) CSSVariables(prefix string) map[string]string {
	if prefix == "" {
		prefix = "--"
	}
	out := make(map[string]string, len(t.Tokens))
	for key, value := range t.Tokens {
		out[prefix+key] = value
	}
	return out
}

// StyleBlock renders the theme tokens as a deterministic :root declaration.
// Keys are sorted so repeated renders of the same theme are byte-identical.
func (t Theme) StyleBlock(prefix string) string {
	vars := t.CSSVariables(prefix)
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "    %s: %s;\n", key, vars[key])
	}
	b.WriteString("}")
	return b.String()
}

func (t Theme) clone() Theme {
	tokens := make(map[string]string, len(t.Tokens))
	for key, value := range t.Tokens {
		tokens[key] = value
	}
	return Theme{Name: t.Name, Tokens: tokens}
}
