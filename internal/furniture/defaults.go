package furniture

import (
	"github.com/jinzhu/copier"
)

// Defaults are the values a Descriptor falls back to when a field is missing.
type Defaults struct {
	Color string
	Shade float32
	Scale float32
}

// DefaultScale applies to every type.
const DefaultScale = float32(1)

// fallback is used for types that have no entry in the table (custom registrations).
var fallback = Defaults{Color: "#808080", Shade: 50, Scale: DefaultScale}

var defaultsTable = map[Type]Defaults{
	Chair:     {Color: "#8b4513", Shade: 40, Scale: DefaultScale},
	Table:     {Color: "#a0522d", Shade: 45, Scale: DefaultScale},
	Sofa:      {Color: "#4682b4", Shade: 50, Scale: DefaultScale},
	Bookshelf: {Color: "#deb887", Shade: 55, Scale: DefaultScale},
	TVStand:   {Color: "#2f4f4f", Shade: 30, Scale: DefaultScale},
	Bed:       {Color: "#f5f5dc", Shade: 70, Scale: DefaultScale},
	Lamp:      {Color: "#ffd700", Shade: 60, Scale: DefaultScale},
}

// copyFields copies the non-empty fields of src over dst. IgnoreEmpty: nil pointers and ""
// in src keep the defaults already in dst.
var copyFields = func(dst, src *Descriptor) error {
	return copier.CopyWithOption(dst, src, copier.Option{IgnoreEmpty: true})
}

// overlay is the field-by-field merge used when copyFields fails.
func overlay(base, d Descriptor) Descriptor {
	base.ID, base.X, base.Z = d.ID, d.X, d.Z
	if d.Type != "" {
		base.Type = d.Type
	}
	if d.Color != "" {
		base.Color = d.Color
	}
	if d.Scale != nil {
		base.Scale = d.Scale
	}
	if d.Shade != nil {
		base.Shade = d.Shade
	}
	return base
}

// DefaultsFor returns the defaults for t. ok is false when t has no entry and the generic
// fallback was returned.
func DefaultsFor(t Type) (d Defaults, ok bool) {
	d, ok = defaultsTable[t]
	if !ok {
		return fallback, false
	}
	return d, true
}

// Normalize fills every missing optional field of d from the defaults of its type.
// A non-positive scale is treated as missing.
func Normalize(d Descriptor) Resolved {
	def, _ := DefaultsFor(d.Type)
	scale, shade := def.Scale, def.Shade
	base := Descriptor{Type: d.Type, Color: def.Color, Scale: &scale, Shade: &shade}
	if err := copyFields(&base, &d); err != nil {
		base = overlay(base, d)
	}

	r := Resolved{
		ID:    base.ID,
		Type:  base.Type,
		X:     base.X,
		Z:     base.Z,
		Scale: *base.Scale,
		Color: base.Color,
		Shade: *base.Shade,
	}
	if r.Scale <= 0 {
		r.Scale = def.Scale
	}
	return r
}
