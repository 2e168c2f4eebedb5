package interfaces

import "time"

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across invocations so hosts can share a
// single instance without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions     []string
	HardWraps      bool
	SafeMode       bool
	HighlightStyle string
}

// Document represents the guide file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so publish
	// workflows can detect changes without re-rendering unchanged guides.
	Checksum []byte
}

// FrontMatter models metadata extracted from the guide's YAML preamble. Every
// field is optional; the Custom map keeps unrecognised keys available to page
// templates.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Author  string         `yaml:"author" json:"author"`
	Repo    string         `yaml:"repo" json:"repo"`
	Date    time.Time      `yaml:"date" json:"date"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}
