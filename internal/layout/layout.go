// Package layout is the file-backed data source for the planner: one room and its furniture,
// stored as YAML.
package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"room-planner/internal/furniture"
	"room-planner/internal/picking"
	"room-planner/internal/room"
	"room-planner/internal/scene"
	"room-planner/internal/shade"
)

// Layout is the on-disk document.
type Layout struct {
	Room      room.Spec              `yaml:"room"`
	Furniture []furniture.Descriptor `yaml:"furniture"`
}

// Default returns a furnished default room, used when no layout file exists yet.
func Default() Layout {
	return Layout{
		Room: room.Default(),
		Furniture: []furniture.Descriptor{
			{ID: uuid.NewString(), Type: furniture.Sofa, X: 0, Z: -3},
			{ID: uuid.NewString(), Type: furniture.Table, X: 0, Z: 0},
			{ID: uuid.NewString(), Type: furniture.Chair, X: 1.5, Z: 1.2},
			{ID: uuid.NewString(), Type: furniture.Lamp, X: -3.5, Z: -3.5},
			{ID: uuid.NewString(), Type: furniture.TVStand, X: 0, Z: 4.3},
		},
	}
}

// Store owns the layout while the planner runs. It is not safe for concurrent use; all calls
// happen on the frame thread.
type Store struct {
	path   string
	layout Layout
	dirty  bool
	log    scene.Logger
}

// Load reads the layout at path. A missing file yields Default(). Descriptors without an id, or
// with an id already used earlier in the file, get a fresh one.
func Load(path string, log scene.Logger) (*Store, error) {
	s := &Store{path: path, log: log}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.layout = Default()
		s.logf("layout: %s not found, starting with the default room", path)
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: %s: %w", path, err)
	}
	s.layout = l
	s.check()
	return s, nil
}

// check assigns missing or duplicate ids and reports values the scene will ignore or replace.
func (s *Store) check() {
	seen := make(map[string]bool, len(s.layout.Furniture))
	for i := range s.layout.Furniture {
		d := &s.layout.Furniture[i]
		if d.ID == "" || seen[d.ID] {
			old := d.ID
			d.ID = uuid.NewString()
			s.dirty = true
			if old != "" {
				s.logf("layout: duplicate id %q at index %d, renamed to %s", old, i, d.ID)
			}
		}
		seen[d.ID] = true
		if d.Color != "" && !shade.Valid(d.Color) {
			s.logf("layout: %s: color %q is not #rrggbb, it will be used unshaded", d.ID, d.Color)
		}
	}
	if c := s.layout.Room.BaseColor; c != "" && !shade.Valid(c) {
		s.logf("layout: room base color %q is not #rrggbb", c)
	}
}

// Path returns the file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Room returns the room spec.
func (s *Store) Room() room.Spec {
	return s.layout.Room
}

// SetRoom replaces the room spec.
func (s *Store) SetRoom(spec room.Spec) {
	s.layout.Room = spec
	s.dirty = true
}

// Furniture returns the live furniture slice in render order. Callers must not keep it across
// Add or Remove.
func (s *Store) Furniture() []furniture.Descriptor {
	return s.layout.Furniture
}

// Find returns the index of id, or -1.
func (s *Store) Find(id string) int {
	return slices.IndexFunc(s.layout.Furniture, func(d furniture.Descriptor) bool { return d.ID == id })
}

// Resolve returns the id matching ref exactly, or the only id that starts with ref, so short
// prefixes of generated ids can be typed in the terminal.
func (s *Store) Resolve(ref string) (string, bool) {
	if ref == "" {
		return "", false
	}
	if s.Find(ref) >= 0 {
		return ref, true
	}
	match := ""
	for _, d := range s.layout.Furniture {
		if strings.HasPrefix(d.ID, ref) {
			if match != "" {
				return "", false
			}
			match = d.ID
		}
	}
	return match, match != ""
}

// Apply is the drag callback: it writes the partial position into descriptor index.
// Out-of-range indexes are ignored.
func (s *Store) Apply(index int, p picking.Partial) {
	if index < 0 || index >= len(s.layout.Furniture) {
		s.logf("layout: update for index %d out of range", index)
		return
	}
	d := &s.layout.Furniture[index]
	if p.X != nil {
		d.X = *p.X
	}
	if p.Z != nil {
		d.Z = *p.Z
	}
	s.dirty = true
}

// Add appends a new piece of type t at (x, z) and returns its id.
func (s *Store) Add(t furniture.Type, x, z float32) string {
	id := uuid.NewString()
	s.layout.Furniture = append(s.layout.Furniture, furniture.Descriptor{ID: id, Type: t, X: x, Z: z})
	s.dirty = true
	return id
}

// Remove deletes the piece with the given id. It reports whether anything was removed.
func (s *Store) Remove(id string) bool {
	i := s.Find(id)
	if i < 0 {
		return false
	}
	s.layout.Furniture = slices.Delete(s.layout.Furniture, i, i+1)
	s.dirty = true
	return true
}

// Dirty reports whether there are unsaved changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Save writes the layout to its path, creating the directory if needed.
func (s *Store) Save() error {
	data, err := yaml.Marshal(&s.layout)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	s.dirty = false
	return nil
}

func (s *Store) logf(format string, args ...any) {
	if s.log != nil {
		s.log.Log(fmt.Sprintf(format, args...))
	}
}
