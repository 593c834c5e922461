// Package viewport connects the raylib window to the planner core: mouse events for picking,
// mouse gestures for the camera rig, and the rig's state as a raylib camera.
package viewport

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"room-planner/internal/camera"
	"room-planner/internal/geom"
	"room-planner/internal/picking"
)

// Screen returns the whole render area in pixels.
func Screen() geom.Rect {
	return geom.Rect{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
}

// Camera3D converts a camera state to a raylib camera. For orthographic views raylib reads Fovy
// as the visible height in world units.
func Camera3D(s camera.State) rl.Camera3D {
	cam := rl.Camera3D{
		Position: rl.NewVector3(s.Pose.Position[0], s.Pose.Position[1], s.Pose.Position[2]),
		Target:   rl.NewVector3(s.Pose.Target[0], s.Pose.Target[1], s.Pose.Target[2]),
		Up:       rl.NewVector3(s.Pose.Up[0], s.Pose.Up[1], s.Pose.Up[2]),
		Fovy:     s.Fovy,
	}
	if s.Projection == camera.Orthographic {
		cam.Projection = rl.CameraOrthographic
		cam.Fovy = s.VisibleExtent()
	} else {
		cam.Projection = rl.CameraPerspective
	}
	return cam
}

// Mouse polls raylib once per frame and dispatches pointer events to its subscribers.
// It satisfies picking.Source through the embedded Dispatcher.
type Mouse struct {
	picking.Dispatcher
	inside bool
	last   rl.Vector2
}

// Poll reads the mouse and dispatches, in order: leave, down, move, up.
func (m *Mouse) Poll(vp geom.Rect) {
	pos := rl.GetMousePosition()
	inside := rl.IsCursorOnScreen() && contains(vp, pos)
	ev := func(k picking.Kind) picking.Event {
		return picking.Event{Kind: k, X: pos.X, Y: pos.Y, Viewport: vp}
	}

	if m.inside && !inside {
		m.Dispatch(ev(picking.PointerLeave))
	}
	m.inside = inside
	if inside && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m.Dispatch(ev(picking.PointerDown))
	}
	if inside && (pos.X != m.last.X || pos.Y != m.last.Y) {
		m.Dispatch(ev(picking.PointerMove))
	}
	m.last = pos
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		m.Dispatch(ev(picking.PointerUp))
	}
}

func contains(r geom.Rect, p rl.Vector2) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.X+r.Width && p.Y < r.Y+r.Height
}
