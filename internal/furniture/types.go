package furniture

import (
	"github.com/go-gl/mathgl/mgl32"

	"room-planner/internal/geom"
)

// Type is the tag a builder is registered under (e.g. "chair", "tv-stand").
type Type string

const (
	Chair     Type = "chair"
	Table     Type = "table"
	Sofa      Type = "sofa"
	Bookshelf Type = "bookshelf"
	TVStand   Type = "tv-stand"
	Bed       Type = "bed"
	Lamp      Type = "lamp"
)

// Descriptor is one piece of furniture as supplied by the data source.
// Scale and Shade are optional; nil means "use the type default". Color "" likewise.
type Descriptor struct {
	ID    string   `yaml:"id"`
	Type  Type     `yaml:"type"`
	X     float32  `yaml:"x"`
	Z     float32  `yaml:"z"`
	Scale *float32 `yaml:"scale,omitempty"`
	Color string   `yaml:"color,omitempty"`
	Shade *float32 `yaml:"shade,omitempty"`
}

// Resolved is a Descriptor with every optional field filled in. Builders only ever see this.
type Resolved struct {
	ID    string
	Type  Type
	X, Z  float32
	Scale float32
	Color string
	Shade float32
}

// Shape is the kind of primitive solid a Part is made of.
type Shape int

const (
	Box Shape = iota
	Cylinder
	Cone
	Sphere
)

func (s Shape) String() string {
	switch s {
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Sphere:
		return "sphere"
	}
	return "unknown"
}

// Part is one primitive of a composition, in the furniture's local space (origin on the floor).
// Box uses Size (full extents). Cylinder and Cone use Radius and Height, centered on Offset.
// Sphere uses Radius.
type Part struct {
	Name     string
	Shape    Shape
	Offset   mgl32.Vec3
	Size     mgl32.Vec3
	Radius   float32
	Height   float32
	Color    string
	Emissive bool
}

// halfExtents returns the local half size of the part's bounding box.
func (p Part) halfExtents() mgl32.Vec3 {
	switch p.Shape {
	case Box:
		return p.Size.Mul(0.5)
	case Cylinder, Cone:
		return mgl32.Vec3{p.Radius, p.Height / 2, p.Radius}
	case Sphere:
		return mgl32.Vec3{p.Radius, p.Radius, p.Radius}
	}
	return mgl32.Vec3{}
}

// LocalBounds is the part's bounding box in furniture-local space.
func (p Part) LocalBounds() geom.AABB {
	return geom.BoxAround(p.Offset, p.halfExtents())
}

// Composition is a built piece of furniture: its parts plus the rigid placement applied to all of them.
type Composition struct {
	ID       string
	Type     Type
	Position mgl32.Vec3
	Scale    float32
	Material string
	Parts    []Part
}

// World returns the world-space center and full bounding extents of part i.
func (c Composition) World(i int) (center, extents mgl32.Vec3) {
	p := c.Parts[i]
	center = c.Position.Add(p.Offset.Mul(c.Scale))
	extents = p.halfExtents().Mul(2 * c.Scale)
	return center, extents
}

// Bounds is the world-space box around every part. Used as the picking volume.
func (c Composition) Bounds() geom.AABB {
	if len(c.Parts) == 0 {
		return geom.AABB{Min: c.Position, Max: c.Position}
	}
	local := c.Parts[0].LocalBounds()
	for _, p := range c.Parts[1:] {
		local = local.Union(p.LocalBounds())
	}
	return local.Transform(c.Position, c.Scale)
}
