package themes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

// ErrManifestInvalid indicates a theme document failed schema validation.
var ErrManifestInvalid = errors.New("themes: manifest invalid")

// manifestSchema constrains custom theme documents: a name plus a flat map of
// non-empty string tokens.
const manifestSchema = `{
    "$schema": "https://json-schema.org/draft/2020-12/schema",
    "type": "object",
    "properties": {
        "name": {"type": "string", "minLength": 1},
        "tokens": {
            "type": "object",
            "minProperties": 1,
            "additionalProperties": {"type": "string", "minLength": 1}
        }
    },
    "required": ["name", "tokens"],
    "additionalProperties": false
}`

// manifestDocument mirrors the on-disk theme file layout.
type manifestDocument struct {
	Name   string            `json:"name"`
	Tokens map[string]string `json:"tokens"`
}

// ValidationIssue captures a single validation failure with its location.
type ValidationIssue struct {
	Location string
	Message  string
}

// ManifestError surfaces validation issues with schema-aware context.
type ManifestError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *ManifestError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrManifestInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *ManifestError) Unwrap() error {
	return ErrManifestInvalid
}

// LoadFile reads, validates, and decodes a custom theme document.
func LoadFile(fs afero.Fs, path string) (Theme, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Theme{}, fmt.Errorf("themes: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates raw JSON against the theme schema and returns the theme.
func Parse(data []byte) (Theme, error) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return Theme{}, &ManifestError{Cause: fmt.Errorf("decode theme document: %w", err)}
	}

	compiled, err := compileManifestSchema()
	if err != nil {
		return Theme{}, err
	}

	if err := compiled.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return Theme{}, &ManifestError{Issues: collectIssues(validationErr), Cause: err}
		}
		return Theme{}, &ManifestError{Cause: err}
	}

	var doc manifestDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Theme{}, &ManifestError{Cause: err}
	}

	return Theme{
		Name:   strings.ToLower(strings.TrimSpace(doc.Name)),
		Tokens: doc.Tokens,
	}, nil
}

func compileManifestSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("theme.json", bytes.NewReader([]byte(manifestSchema))); err != nil {
		return nil, fmt.Errorf("themes: add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("theme.json")
	if err != nil {
		return nil, fmt.Errorf("themes: compile schema: %w", err)
	}
	return compiled, nil
}

func collectIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
