package furniture

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"room-planner/internal/shade"
)

// Builder returns the parts of one furniture type in local space, all using material.
// Builders are pure: same material in, same parts out.
type Builder func(material string) []Part

// Registry maps type tags to builders. Adding a furniture type means registering one Builder;
// nothing else branches on the type.
type Registry struct {
	builders map[Type]Builder
}

// NewRegistry returns a registry with the seven built-in types.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[Type]Builder)}
	r.Register(Chair, buildChair)
	r.Register(Table, buildTable)
	r.Register(Sofa, buildSofa)
	r.Register(Bookshelf, buildBookshelf)
	r.Register(TVStand, buildTVStand)
	r.Register(Bed, buildBed)
	r.Register(Lamp, buildLamp)
	return r
}

// Register adds or replaces the builder for t.
func (r *Registry) Register(t Type, b Builder) {
	r.builders[t] = b
}

// Has reports whether t has a builder.
func (r *Registry) Has(t Type) bool {
	_, ok := r.builders[t]
	return ok
}

// Types returns the registered tags in sorted order.
func (r *Registry) Types() []Type {
	out := make([]Type, 0, len(r.builders))
	for t := range r.builders {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Build places the composition for d with its feet on the floor of a room of the given height.
// ok is false for an unregistered type; the caller is expected to skip the piece, not fail.
func (r *Registry) Build(d Resolved, roomHeight float32) (Composition, bool) {
	b, ok := r.builders[d.Type]
	if !ok {
		return Composition{}, false
	}
	material := shade.Adjust(d.Color, float64(d.Shade))
	return Composition{
		ID:       d.ID,
		Type:     d.Type,
		Position: mgl32.Vec3{d.X, -roomHeight / 2, d.Z},
		Scale:    d.Scale,
		Material: material,
		Parts:    b(material),
	}, true
}
