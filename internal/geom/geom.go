package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon: rays whose direction has a smaller Y component than this are treated as
// parallel to a horizontal plane.
const parallelEpsilon = 1e-6

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// BoxAround returns the AABB centered at center with the given half extents.
func BoxAround(center, half mgl32.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Empty reports whether the box has no volume on some axis (Min > Max).
func (b AABB) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Union returns the smallest box that contains both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: mgl32.Vec3{min(b.Min[0], o.Min[0]), min(b.Min[1], o.Min[1]), min(b.Min[2], o.Min[2])},
		Max: mgl32.Vec3{max(b.Max[0], o.Max[0]), max(b.Max[1], o.Max[1]), max(b.Max[2], o.Max[2])},
	}
}

// Transform scales the box about the origin by s, then moves it by offset.
// s must be positive.
func (b AABB) Transform(offset mgl32.Vec3, s float32) AABB {
	return AABB{Min: b.Min.Mul(s).Add(offset), Max: b.Max.Mul(s).Add(offset)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Ray is a half-line starting at Origin. Dir does not need to be normalized, but hit
// distances are only comparable between rays with the same Dir length.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// IntersectBox runs the slab test. It returns the smallest non-negative ray parameter at
// which the ray is inside the box; a ray starting inside the box hits at t = 0.
func (r Ray) IntersectBox(b AABB) (t float32, ok bool) {
	tMin := float32(0)
	tMax := math32.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Dir[axis]
		if math32.Abs(d) < parallelEpsilon {
			if o < b.Min[axis] || o > b.Max[axis] {
				return 0, false
			}
			continue
		}
		inv := 1 / d
		t1 := (b.Min[axis] - o) * inv
		t2 := (b.Max[axis] - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// IntersectHorizontalPlane returns where the ray crosses the plane Y = y.
// No intersection when the ray is parallel to the plane or the plane is behind the origin.
func (r Ray) IntersectHorizontalPlane(y float32) (mgl32.Vec3, bool) {
	if math32.Abs(r.Dir[1]) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	t := (y - r.Origin[1]) / r.Dir[1]
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	p := r.At(t)
	p[1] = y
	return p, true
}

// Rect is a screen-space rectangle in pixels (origin top-left, Y down).
type Rect struct {
	X, Y, Width, Height float32
}

// NDC maps a screen point inside r to normalized device coordinates: X and Y in [-1, 1],
// Y up. ok is false for a degenerate rectangle.
func (r Rect) NDC(x, y float32) (ndc mgl32.Vec2, ok bool) {
	if r.Width <= 0 || r.Height <= 0 {
		return mgl32.Vec2{}, false
	}
	nx := (x-r.X)/r.Width*2 - 1
	ny := -((y-r.Y)/r.Height*2 - 1)
	return mgl32.Vec2{nx, ny}, true
}

// Aspect returns width / height, or 1 for a degenerate rectangle.
func (r Rect) Aspect() float32 {
	if r.Width <= 0 || r.Height <= 0 {
		return 1
	}
	return r.Width / r.Height
}

// RayFromNDC builds the ray through ndc by unprojecting the near and far clip-plane points
// with the inverse of viewProj. Works for perspective and orthographic projections alike.
func RayFromNDC(ndc mgl32.Vec2, viewProj mgl32.Mat4) (Ray, bool) {
	if viewProj.Det() == 0 {
		return Ray{}, false
	}
	inv := viewProj.Inv()
	near := inv.Mul4x1(mgl32.Vec4{ndc[0], ndc[1], -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndc[0], ndc[1], 1, 1})
	if near[3] == 0 || far[3] == 0 {
		return Ray{}, false
	}
	n := near.Vec3().Mul(1 / near[3])
	f := far.Vec3().Mul(1 / far[3])
	dir := f.Sub(n)
	if dir.Len() == 0 {
		return Ray{}, false
	}
	return Ray{Origin: n, Dir: dir.Normalize()}, true
}
