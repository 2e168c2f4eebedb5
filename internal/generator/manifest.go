package generator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	manifestFileVersion = 1
)

// buildManifest stores metadata about the last successful publish to support
// skipping unchanged guides on subsequent runs.
type buildManifest struct {
	Version     int                      `json:"version"`
	GeneratedAt time.Time                `json:"generated_at"`
	Guides      map[string]manifestGuide `json:"guides"`
}

type manifestGuide struct {
	GuideID    string    `json:"guide_id"`
	Path       string    `json:"path"`
	Checksum   string    `json:"checksum"`
	Theme      string    `json:"theme"`
	Output     string    `json:"output"`
	RenderedAt time.Time `json:"rendered_at"`
}

func newBuildManifest() *buildManifest {
	return &buildManifest{
		Version: manifestFileVersion,
		Guides:  map[string]manifestGuide{},
	}
}

func parseManifest(data []byte) (*buildManifest, error) {
	if len(data) == 0 {
		return newBuildManifest(), nil
	}
	var manifest buildManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("generator: parse manifest: %w", err)
	}
	if manifest.Guides == nil {
		manifest.Guides = map[string]manifestGuide{}
	}
	if manifest.Version == 0 {
		manifest.Version = manifestFileVersion
	}
	return &manifest, nil
}

func (m *buildManifest) marshal() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	cloned := *m
	if cloned.Version == 0 {
		cloned.Version = manifestFileVersion
	}
	if cloned.Guides == nil {
		cloned.Guides = map[string]manifestGuide{}
	}
	// Stable ordering for deterministic output.
	type orderedManifest struct {
		Version     int             `json:"version"`
		GeneratedAt time.Time       `json:"generated_at"`
		Guides      []manifestGuide `json:"guides"`
	}
	ordered := orderedManifest{
		Version:     cloned.Version,
		GeneratedAt: cloned.GeneratedAt,
	}
	if len(cloned.Guides) > 0 {
		ordered.Guides = make([]manifestGuide, 0, len(cloned.Guides))
		for _, entry := range cloned.Guides {
			ordered.Guides = append(ordered.Guides, entry)
		}
		sort.Slice(ordered.Guides, func(i, j int) bool {
			return ordered.Guides[i].Path < ordered.Guides[j].Path
		})
	}
	return json.MarshalIndent(ordered, "", "  ")
}

// UnmarshalJSON accepts both the map layout and the ordered slice layout the
// manifest is written with.
func (m *buildManifest) UnmarshalJSON(data []byte) error {
	type alias struct {
		Version     int             `json:"version"`
		GeneratedAt time.Time       `json:"generated_at"`
		Guides      json.RawMessage `json:"guides"`
	}
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	m.Version = decoded.Version
	m.GeneratedAt = decoded.GeneratedAt
	m.Guides = map[string]manifestGuide{}
	if len(decoded.Guides) == 0 {
		return nil
	}
	if decoded.Guides[0] == '[' {
		var entries []manifestGuide
		if err := json.Unmarshal(decoded.Guides, &entries); err != nil {
			return err
		}
		for _, entry := range entries {
			m.setGuide(entry)
		}
		return nil
	}
	var entries map[string]manifestGuide
	if err := json.Unmarshal(decoded.Guides, &entries); err != nil {
		return err
	}
	for _, entry := range entries {
		m.setGuide(entry)
	}
	return nil
}

func (m *buildManifest) guideKey(path string) string {
	return strings.ToLower(strings.TrimSpace(path))
}

func (m *buildManifest) lookupGuide(path string) (manifestGuide, bool) {
	if m == nil || len(m.Guides) == 0 {
		return manifestGuide{}, false
	}
	entry, ok := m.Guides[m.guideKey(path)]
	return entry, ok
}

func (m *buildManifest) setGuide(entry manifestGuide) {
	if m == nil {
		return
	}
	if m.Guides == nil {
		m.Guides = map[string]manifestGuide{}
	}
	m.Guides[m.guideKey(entry.Path)] = entry
}

// shouldSkipGuide reports whether the manifest already records an identical
// publish (same content digest, theme, and output destination).
func (m *buildManifest) shouldSkipGuide(path, checksum, theme, output string) bool {
	entry, ok := m.lookupGuide(path)
	if !ok {
		return false
	}
	if entry.Checksum != checksum {
		return false
	}
	if !strings.EqualFold(entry.Theme, theme) {
		return false
	}
	if strings.TrimSpace(entry.Output) != strings.TrimSpace(output) {
		return false
	}
	return true
}
