package picking

import (
	"fmt"

	"room-planner/internal/geom"
	"room-planner/internal/scene"
)

// State of the controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Partial is a position update for one descriptor. Nil fields are left unchanged.
type Partial struct {
	X *float32
	Z *float32
}

// UpdateFunc receives drag results: the descriptor index in the current order and the new floor
// position. It is the only way the controller affects the furniture collection.
type UpdateFunc func(index int, p Partial)

// Options tune the controller.
type Options struct {
	// ReleaseOnLeave ends a drag when a PointerLeave event arrives.
	ReleaseOnLeave bool
	Log            scene.Logger
}

// Hit is a pick result.
type Hit struct {
	Index int
	ID    string
	// T is the ray parameter (distance from the near plane along the unit ray).
	T float32
}

// Controller implements select-and-drag on the floor plane. It holds the selected piece by id and
// looks up its index in the bound frame at every move, so index shifts between frames are harmless.
type Controller struct {
	onUpdate UpdateFunc
	opts     Options
	frame    *scene.Frame
	state    State
	selected string
	sub      *attachment
}

// New returns an idle controller. onUpdate may be nil.
func New(onUpdate UpdateFunc, opts Options) *Controller {
	return &Controller{onUpdate: onUpdate, opts: opts}
}

// Bind replaces the pickable set, furniture order and camera with those of f. Call it whenever a
// new frame is composed; nothing from the previous frame is tested afterwards.
// If the dragged piece is gone from f, the drag ends.
func (c *Controller) Bind(f *scene.Frame) {
	c.frame = f
	if c.state == Dragging && (f == nil || f.IndexOf(c.selected) < 0) {
		c.logf("picking: %s removed while dragging, releasing", c.selected)
		c.release()
	}
}

// State returns Idle or Dragging.
func (c *Controller) State() State {
	return c.state
}

// Selected returns the index and id of the dragged piece in the bound frame.
func (c *Controller) Selected() (index int, id string, ok bool) {
	if c.state != Dragging || c.frame == nil {
		return -1, "", false
	}
	index = c.frame.IndexOf(c.selected)
	if index < 0 {
		return -1, "", false
	}
	return index, c.selected, true
}

// Handle processes one event. Events must be handled in arrival order.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case PointerDown:
		c.pointerDown(ev)
	case PointerMove:
		c.pointerMove(ev)
	case PointerUp:
		c.release()
	case PointerLeave:
		if c.opts.ReleaseOnLeave {
			c.release()
		}
	}
}

// Pick returns the nearest rendered piece under the screen point, without changing state.
func (c *Controller) Pick(x, y float32, vp geom.Rect) (Hit, bool) {
	ray, ok := c.ray(x, y, vp)
	if !ok {
		return Hit{}, false
	}
	best := Hit{Index: -1}
	found := false
	for _, e := range c.frame.Entities {
		t, ok := ray.IntersectBox(e.Bounds)
		if !ok {
			continue
		}
		if !found || t < best.T {
			best = Hit{ID: e.ID, T: t}
			found = true
		}
	}
	if !found {
		return Hit{}, false
	}
	best.Index = c.frame.IndexOf(best.ID)
	if best.Index < 0 {
		return Hit{}, false
	}
	return best, true
}

func (c *Controller) pointerDown(ev Event) {
	hit, ok := c.Pick(ev.X, ev.Y, ev.Viewport)
	if !ok {
		c.release()
		return
	}
	c.selected = hit.ID
	c.state = Dragging
}

func (c *Controller) pointerMove(ev Event) {
	if c.state != Dragging {
		return
	}
	index, _, ok := c.Selected()
	if !ok {
		c.release()
		return
	}
	ray, ok := c.ray(ev.X, ev.Y, ev.Viewport)
	if !ok {
		return
	}
	p, ok := ray.IntersectHorizontalPlane(c.frame.FloorY)
	if !ok {
		return
	}
	if c.onUpdate != nil {
		x, z := p[0], p[2]
		c.onUpdate(index, Partial{X: &x, Z: &z})
	}
}

func (c *Controller) release() {
	c.state = Idle
	c.selected = ""
}

func (c *Controller) ray(x, y float32, vp geom.Rect) (geom.Ray, bool) {
	if c.frame == nil {
		return geom.Ray{}, false
	}
	ndc, ok := vp.NDC(x, y)
	if !ok {
		return geom.Ray{}, false
	}
	return geom.RayFromNDC(ndc, c.frame.Camera.ViewProjection(vp.Aspect()))
}

func (c *Controller) logf(format string, args ...any) {
	if c.opts.Log != nil {
		c.opts.Log.Log(fmt.Sprintf(format, args...))
	}
}

// Attach subscribes the controller to src. A previous attachment is closed first, so at most one
// surface feeds the controller. Closing the returned subscription also ends any drag in progress.
func (c *Controller) Attach(src Source) Subscription {
	c.Detach()
	a := &attachment{c: c}
	a.inner = src.Subscribe(c.Handle)
	c.sub = a
	return a
}

// Detach closes the current attachment, if any.
func (c *Controller) Detach() {
	if c.sub != nil {
		c.sub.Close()
	}
}

type attachment struct {
	c      *Controller
	inner  Subscription
	closed bool
}

func (a *attachment) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.inner.Close()
	if a.c.sub == a {
		a.c.sub = nil
	}
	a.c.release()
}
