package viewport

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"room-planner/internal/camera"
	"room-planner/internal/geom"
)

const (
	// orbitSpeed is radians per pixel of drag.
	orbitSpeed = float32(0.006)
	// zoomStep is the zoom factor per wheel notch; < 1 zooms in.
	zoomStep = float32(0.9)
)

// GestureInput is one frame of mouse state relevant to the camera.
type GestureInput struct {
	DX, DY float32
	Wheel  float32
	Left   bool
	Right  bool
	// Dragging is true while the left button moves a piece of furniture; the camera stays put.
	Dragging bool
	ScreenH  float32
}

// ReadGestures samples raylib's mouse for this frame. Outside vp nothing is reported.
func ReadGestures(vp geom.Rect, dragging bool) GestureInput {
	if !rl.IsCursorOnScreen() || !contains(vp, rl.GetMousePosition()) {
		return GestureInput{ScreenH: vp.Height}
	}
	d := rl.GetMouseDelta()
	return GestureInput{
		DX:       d.X,
		DY:       d.Y,
		Wheel:    rl.GetMouseWheelMove(),
		Left:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Right:    rl.IsMouseButtonDown(rl.MouseButtonRight),
		Dragging: dragging,
		ScreenH:  vp.Height,
	}
}

// Drive applies in to rig. Left-drag on empty space orbits, or pans where the mode forbids
// rotation. Right-drag pans and the wheel zooms. The rig refuses gestures its mode does not allow.
func Drive(rig *camera.Rig, in GestureInput) {
	if in.Left && !in.Dragging && (in.DX != 0 || in.DY != 0) {
		if !rig.Orbit(-in.DX*orbitSpeed, in.DY*orbitSpeed) {
			pan(rig, in)
		}
	}
	if in.Right && (in.DX != 0 || in.DY != 0) {
		pan(rig, in)
	}
	if in.Wheel != 0 {
		rig.Zoom(math32.Pow(zoomStep, in.Wheel))
	}
}

// pan moves the view so the point under the cursor follows it.
func pan(rig *camera.Rig, in GestureInput) {
	wpp := rig.State().WorldPerPixel(in.ScreenH)
	rig.Pan(-in.DX*wpp, in.DY*wpp)
}
