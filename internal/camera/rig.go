package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"room-planner/internal/room"
)

const (
	minDistance = float32(2)
	maxDistance = float32(200)
	minMagnify  = float32(0.25)
	maxMagnify  = float32(8)
)

// Rig is the view-mode state machine. Sync is called once per frame with the externally owned
// mode; gestures are applied in between and are gated by the current mode's Gestures.
type Rig struct {
	state   State
	applied bool
}

// NewRig returns a rig that has not applied any mode yet; the first Sync always switches.
func NewRig() *Rig {
	return &Rig{}
}

// State returns a copy of the current camera state.
func (r *Rig) State() State {
	return r.state
}

// Mode returns the last applied mode.
func (r *Rig) Mode() ViewMode {
	return r.state.Mode
}

// Sync applies mode if it differs from the last applied one, replacing pose, projection and
// gestures in one assignment. It reports whether a switch happened. While the mode is unchanged
// only the top-down extent follows the room size; user gestures are kept.
func (r *Rig) Sync(mode ViewMode, spec room.Spec) bool {
	if r.applied && mode == r.state.Mode {
		if mode == TopDown {
			r.state.Extent = OrthoExtent(spec)
		}
		return false
	}
	r.state = StateFor(mode, spec)
	r.applied = true
	return true
}

// Orbit rotates the camera around its target by the given yaw and pitch deltas (radians).
func (r *Rig) Orbit(dYaw, dPitch float32) bool {
	if !r.state.Gestures.Rotate {
		return false
	}
	r.state.Pose = orbit(r.state.Pose, dYaw, dPitch)
	return true
}

// Pan slides camera and target along the camera's screen axes (world units).
func (r *Rig) Pan(dx, dy float32) bool {
	if !r.state.Gestures.Pan {
		return false
	}
	_, right, up := r.state.Pose.basis()
	delta := right.Mul(dx).Add(up.Mul(dy))
	r.state.Pose.Position = r.state.Pose.Position.Add(delta)
	r.state.Pose.Target = r.state.Pose.Target.Add(delta)
	return true
}

// Zoom scales the view by factor (< 1 zooms in). Perspective moves the camera toward the target;
// orthographic changes the magnification.
func (r *Rig) Zoom(factor float32) bool {
	if !r.state.Gestures.Zoom || factor <= 0 {
		return false
	}
	if r.state.Projection == Orthographic {
		r.state.Magnify = mgl32.Clamp(r.state.Magnify/factor, minMagnify, maxMagnify)
		return true
	}
	p := r.state.Pose
	offset := p.Position.Sub(p.Target)
	dist := mgl32.Clamp(p.distance()*factor, minDistance, maxDistance)
	if offset.Len() == 0 {
		return false
	}
	r.state.Pose.Position = p.Target.Add(offset.Normalize().Mul(dist))
	return true
}
