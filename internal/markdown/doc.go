// Package markdown loads the guide document from disk and converts it to
// HTML. Parsing is handled by goldmark with a configurable extension set;
// metadata travels in an optional YAML frontmatter block.
package markdown
