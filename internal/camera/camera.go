package camera

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"room-planner/internal/room"
)

// ViewMode selects how the room is looked at. It is owned by the caller and pushed in every frame.
type ViewMode int

const (
	TopDown ViewMode = iota
	Free
)

func (m ViewMode) String() string {
	switch m {
	case TopDown:
		return "top"
	case Free:
		return "free"
	}
	return fmt.Sprintf("ViewMode(%d)", int(m))
}

// ParseViewMode accepts "top", "topdown", "top-down" and "free" (case-insensitive).
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "topdown", "top-down":
		return TopDown, nil
	case "free", "orbit":
		return Free, nil
	}
	return Free, fmt.Errorf("unknown view mode %q (use top or free)", s)
}

// ProjectionKind is perspective or orthographic.
type ProjectionKind int

const (
	Perspective ProjectionKind = iota
	Orthographic
)

// Gestures are the interactions the user may perform on the camera in the current mode.
type Gestures struct {
	Rotate bool
	Pan    bool
	Zoom   bool
}

// Pose is where the camera is and what it looks at.
type Pose struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

// State is everything the mode decides: pose, projection and allowed gestures.
// It is only ever replaced as a whole, so pose and gestures always belong to the same mode.
type State struct {
	Mode       ViewMode
	Pose       Pose
	Projection ProjectionKind
	// Fovy is the vertical field of view in degrees (perspective only).
	Fovy float32
	// Extent is the visible vertical size of the orthographic view, max(width, depth) * ExtentFactor.
	Extent float32
	// Magnify divides Extent when zooming the orthographic view. 1 = no zoom.
	Magnify  float32
	Gestures Gestures
}

const (
	ExtentFactor = float32(1.5)

	freeFovy = float32(45)
	// topDownMinY keeps the top-down camera clear of tall rooms.
	topDownMinY = float32(20)

	nearPlane = float32(0.05)
	farPlane  = float32(1000)
)

var freePosition = mgl32.Vec3{10, 10, 10}

// OrthoExtent returns max(width, depth) * 1.5 for the normalized room.
func OrthoExtent(spec room.Spec) float32 {
	s := spec.Normalize()
	return max(s.Width, s.Depth) * ExtentFactor
}

func topDownState(spec room.Spec) State {
	s := spec.Normalize()
	return State{
		Mode: TopDown,
		Pose: Pose{
			Position: mgl32.Vec3{0, max(topDownMinY, s.Height*2), 0},
			Target:   mgl32.Vec3{0, 0, 0},
			// Looking straight down, so "up" on screen is -Z.
			Up: mgl32.Vec3{0, 0, -1},
		},
		Projection: Orthographic,
		Extent:     OrthoExtent(s),
		Magnify:    1,
		Gestures:   Gestures{Rotate: false, Pan: true, Zoom: true},
	}
}

func freeState() State {
	return State{
		Mode: Free,
		Pose: Pose{
			Position: freePosition,
			Target:   mgl32.Vec3{0, 0, 0},
			Up:       mgl32.Vec3{0, 1, 0},
		},
		Projection: Perspective,
		Fovy:       freeFovy,
		Magnify:    1,
		Gestures:   Gestures{Rotate: true, Pan: true, Zoom: true},
	}
}

// StateFor returns the canonical state of mode for the given room.
func StateFor(mode ViewMode, spec room.Spec) State {
	if mode == TopDown {
		return topDownState(spec)
	}
	return freeState()
}

// View returns the world-to-camera matrix.
func (s State) View() mgl32.Mat4 {
	return mgl32.LookAtV(s.Pose.Position, s.Pose.Target, s.Pose.Up)
}

// ProjectionMatrix returns the camera-to-clip matrix for a viewport with the given aspect ratio.
func (s State) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if s.Projection == Orthographic {
		top := s.VisibleExtent() / 2
		right := top * aspect
		return mgl32.Ortho(-right, right, -top, top, nearPlane, farPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(s.Fovy), aspect, nearPlane, farPlane)
}

// ViewProjection is ProjectionMatrix(aspect) * View().
func (s State) ViewProjection(aspect float32) mgl32.Mat4 {
	return s.ProjectionMatrix(aspect).Mul4(s.View())
}

// VisibleExtent is the orthographic extent after zoom.
func (s State) VisibleExtent() float32 {
	if s.Magnify <= 0 {
		return s.Extent
	}
	return s.Extent / s.Magnify
}

// WorldPerPixel is how many world units one screen pixel spans at the target, for a viewport
// screenH pixels tall. Used to turn mouse drags into pan distances.
func (s State) WorldPerPixel(screenH float32) float32 {
	if screenH <= 0 {
		return 0
	}
	if s.Projection == Orthographic {
		return s.VisibleExtent() / screenH
	}
	return 2 * s.Pose.distance() * math32.Tan(mgl32.DegToRad(s.Fovy)/2) / screenH
}

// distance returns the camera-to-target distance.
func (p Pose) distance() float32 {
	return p.Position.Sub(p.Target).Len()
}

// basis returns the camera's forward, right and up unit vectors.
func (p Pose) basis() (forward, right, up mgl32.Vec3) {
	forward = p.Target.Sub(p.Position).Normalize()
	right = forward.Cross(p.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// pitchLimit keeps orbiting away from the poles where the up vector degenerates.
var pitchLimit = mgl32.DegToRad(89)

func orbit(p Pose, dYaw, dPitch float32) Pose {
	offset := p.Position.Sub(p.Target)
	r := offset.Len()
	if r == 0 {
		return p
	}
	yaw := math32.Atan2(offset[0], offset[2])
	pitch := math32.Asin(mgl32.Clamp(offset[1]/r, -1, 1))
	yaw += dYaw
	pitch = mgl32.Clamp(pitch+dPitch, -pitchLimit, pitchLimit)
	cp := math32.Cos(pitch)
	p.Position = p.Target.Add(mgl32.Vec3{
		r * cp * math32.Sin(yaw),
		r * math32.Sin(pitch),
		r * cp * math32.Cos(yaw),
	})
	return p
}
