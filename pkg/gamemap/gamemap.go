// Package gamemap holds the map data model: entities placed on a map, their event pages
// and the commands those pages run.
package gamemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	ErrDuplicateEntity = errors.New("duplicate entity id")
	ErrUnnamedEntity   = errors.New("entity has no name")
)

// Event command codes understood by the host.
const (
	CodeEnd          = 0
	CodeTextHeader   = 101
	CodeComment      = 108
	CodeSetVar       = 122
	CodeOpenMenu     = 351
	CodeTextLine     = 401
	CodeCommentExtra = 408
)

// Map is a single playable map and the entities placed on it.
type Map struct {
	Name     string    `json:"name"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Entities []*Entity `json:"entities"` // Placement order; this is the iteration order
}

// Entity is anything placed on a map that can carry event pages (NPCs, objects, doors).
type Entity struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	X     int    `json:"x,omitempty"`
	Y     int    `json:"y,omitempty"`
	Pages []Page `json:"pages,omitempty"`
}

// Entity returns the entity with the given id, or nil.
func (m *Map) Entity(id int) *Entity {
	for _, e := range m.Entities {
		if e != nil && e.ID == id {
			return e
		}
	}
	return nil
}

// Validate checks the structural rules every map must satisfy.
func (m *Map) Validate() error {
	seen := make(map[int]bool, len(m.Entities))
	for i, e := range m.Entities {
		if e == nil {
			return fmt.Errorf("entity at index %d is null", i)
		}
		if seen[e.ID] {
			return fmt.Errorf("%w: %d", ErrDuplicateEntity, e.ID)
		}
		seen[e.ID] = true
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: id %d", ErrUnnamedEntity, e.ID)
		}
	}
	return nil
}

// Decode reads a map from JSON. Unknown fields are rejected so typos in
// hand-written map files surface immediately.
func Decode(r io.Reader) (*Map, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var m Map
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode map: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map %q: %w", m.Name, err)
	}
	return &m, nil
}

// Load reads and validates a map file.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer func() {
		_ = f.Close() // Ignore error in defer
	}()

	return Decode(f)
}
