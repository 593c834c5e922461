package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"room-planner/internal/furniture"
)

// Mesh names a cached unit mesh.
type Mesh string

const (
	// Cube is 1x1x1, centered.
	Cube Mesh = "cube"
	// Sphere has diameter 1, centered.
	Sphere Mesh = "sphere"
	// Cylinder has diameter 1 and height 1. raylib builds it base-up from Y=0; Transform recenters it.
	Cylinder Mesh = "cylinder"
	// Cone is like Cylinder with the tip at the top.
	Cone Mesh = "cone"
	// Plane is 1x1 in XZ facing +Y.
	Plane Mesh = "plane"
)

// ForShape maps a furniture part shape to its unit mesh.
func ForShape(s furniture.Shape) Mesh {
	switch s {
	case furniture.Cylinder:
		return Cylinder
	case furniture.Cone:
		return Cone
	case furniture.Sphere:
		return Sphere
	}
	return Cube
}

// centerOffset shifts a mesh in model space so its origin is the middle of its bounds.
func (m Mesh) centerOffset() rl.Vector3 {
	if m == Cylinder || m == Cone {
		return rl.NewVector3(0, -0.5, 0)
	}
	return rl.NewVector3(0, 0, 0)
}

// Transform builds the model matrix for unit mesh m: recenter, scale to size, rotate, then
// translate to center. Pass rl.MatrixIdentity() for no rotation.
func Transform(m Mesh, center, size rl.Vector3, rotation rl.Matrix) rl.Matrix {
	sx, sy, sz := size.X, size.Y, size.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}
	off := m.centerOffset()
	transform := rl.MatrixTranslate(off.X, off.Y, off.Z)
	transform = rl.MatrixMultiply(transform, rl.MatrixScale(sx, sy, sz))
	transform = rl.MatrixMultiply(transform, rotation)
	return rl.MatrixMultiply(transform, rl.MatrixTranslate(center.X, center.Y, center.Z))
}
