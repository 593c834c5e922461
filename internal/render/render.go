package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"room-planner/internal/furniture"
	"room-planner/internal/primitives"
	"room-planner/internal/room"
	"room-planner/internal/scene"
)

// lightDir points toward the key light: above and slightly in front of the back wall.
var lightDir = [3]float32{0.3, 1, 0.4}

// selectionColor outlines the piece being dragged.
var selectionColor = rl.NewColor(255, 200, 40, 255)

// Textures resolves a texture id for drawing. *textures.Cache satisfies it.
type Textures interface {
	Get(id string) (rl.Texture2D, bool)
}

// Renderer draws composed frames. Draw must run between BeginMode3D and EndMode3D.
type Renderer struct {
	prims *primitives.Registry
	tex   Textures
}

// New returns a renderer drawing with prims. tex may be nil for an untextured shell.
func New(prims *primitives.Registry, tex Textures) *Renderer {
	return &Renderer{prims: prims, tex: tex}
}

// Draw renders the room shell, every furniture entity, and an outline around selected
// (an id; "" for none).
func (r *Renderer) Draw(f *scene.Frame, selected string) {
	if f == nil {
		return
	}
	pos := f.Camera.Pose.Position
	r.prims.SetView([3]float32{pos[0], pos[1], pos[2]}, lightDir)

	for _, s := range f.Shell.Surfaces() {
		r.drawSurface(s)
	}
	for _, e := range f.Entities {
		r.drawComposition(e.Composition)
		if e.ID == selected && selected != "" {
			rl.DrawBoundingBox(rl.NewBoundingBox(vec3(e.Bounds.Min), vec3(e.Bounds.Max)), selectionColor)
		}
	}
}

func (r *Renderer) drawSurface(s room.Surface) {
	rot := rl.MatrixMultiply(rl.MatrixRotateX(s.Rotation[0]), rl.MatrixRotateY(s.Rotation[1]))
	size := rl.NewVector3(s.Size[0], 1, s.Size[1])
	transform := primitives.Transform(primitives.Plane, vec3(s.Center), size, rot)
	tint := ColorFromHex(s.Tint)
	if r.tex != nil {
		if tex, ok := r.tex.Get(s.Texture); ok {
			r.prims.DrawTextured(primitives.Plane, transform, tint, tex)
			return
		}
	}
	r.prims.Draw(primitives.Plane, transform, tint, 0)
}

func (r *Renderer) drawComposition(c furniture.Composition) {
	material := ColorFromHex(c.Material)
	for i, p := range c.Parts {
		center, extents := c.World(i)
		tint := material
		if p.Color != "" {
			tint = ColorFromHex(p.Color)
		}
		var emissive float32
		if p.Emissive {
			emissive = 1
		}
		mesh := primitives.ForShape(p.Shape)
		r.prims.Draw(mesh, primitives.Transform(mesh, vec3(center), vec3(extents), rl.MatrixIdentity()), tint, emissive)
	}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}
