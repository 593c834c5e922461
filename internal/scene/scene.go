package scene

import (
	"fmt"
	"slices"

	"room-planner/internal/camera"
	"room-planner/internal/furniture"
	"room-planner/internal/geom"
	"room-planner/internal/room"
)

// Logger receives one line per noteworthy event. *logger.Logger satisfies it.
type Logger interface {
	Log(line string)
}

type nopLogger struct{}

func (nopLogger) Log(string) {}

// Input is what the data source hands over each frame.
type Input struct {
	Room      room.Spec
	Furniture []furniture.Descriptor
	ViewMode  camera.ViewMode
}

// Entity is one rendered piece of furniture, tagged with its descriptor's id.
type Entity struct {
	Index       int
	ID          string
	Composition furniture.Composition
	Bounds      geom.AABB
}

// Frame is the composed, renderable scene for one frame.
type Frame struct {
	Room     room.Spec
	Shell    room.Shell
	Entities []Entity
	// Order lists the id of every descriptor in input order, rendered or not. Index i in Order is
	// index i in the input furniture slice.
	Order  []string
	Camera camera.State
	FloorY float32
	// Version changes whenever the set or order of ids changes.
	Version uint64
}

// IndexOf returns the position of id in the current furniture order, or -1.
func (f *Frame) IndexOf(id string) int {
	return slices.Index(f.Order, id)
}

// Entity returns the rendered entity with the given id.
func (f *Frame) Entity(id string) (Entity, bool) {
	for _, e := range f.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return Entity{}, false
}

// Composer turns room + furniture descriptors into a Frame. It owns the camera rig so the
// view mode is applied once per frame, before anything reads the camera.
type Composer struct {
	reg       *furniture.Registry
	rig       *camera.Rig
	log       Logger
	warned    map[string]bool
	lastOrder []string
	version   uint64
}

// New returns a composer. A nil log discards messages.
func New(reg *furniture.Registry, rig *camera.Rig, log Logger) *Composer {
	if log == nil {
		log = nopLogger{}
	}
	return &Composer{reg: reg, rig: rig, log: log, warned: make(map[string]bool)}
}

// Rig returns the camera rig driven by Compose.
func (c *Composer) Rig() *camera.Rig {
	return c.rig
}

// Registry returns the furniture registry used to build entities.
func (c *Composer) Registry() *furniture.Registry {
	return c.reg
}

// ID returns the id used for descriptor d at index i. Descriptors without an id get a positional one.
func ID(d furniture.Descriptor, i int) string {
	if d.ID != "" {
		return d.ID
	}
	return fmt.Sprintf("#%d", i)
}

// Compose builds the frame. Unknown furniture types are skipped (and logged once per id);
// they keep their slot in Order so indexes still match the input.
func (c *Composer) Compose(in Input) *Frame {
	spec := in.Room.Normalize()
	c.rig.Sync(in.ViewMode, spec)

	f := &Frame{
		Room:     spec,
		Shell:    room.BuildShell(spec),
		Entities: make([]Entity, 0, len(in.Furniture)),
		Order:    make([]string, len(in.Furniture)),
		Camera:   c.rig.State(),
		FloorY:   spec.FloorY(),
	}
	for i, d := range in.Furniture {
		id := ID(d, i)
		f.Order[i] = id
		r := furniture.Normalize(d)
		r.ID = id
		comp, ok := c.reg.Build(r, spec.Height)
		if !ok {
			key := id + "/" + string(d.Type)
			if !c.warned[key] {
				c.warned[key] = true
				c.log.Log(fmt.Sprintf("scene: skipping %s: unknown furniture type %q", id, d.Type))
			}
			continue
		}
		f.Entities = append(f.Entities, Entity{Index: i, ID: id, Composition: comp, Bounds: comp.Bounds()})
	}
	if !slices.Equal(c.lastOrder, f.Order) {
		c.version++
		c.lastOrder = slices.Clone(f.Order)
	}
	f.Version = c.version
	return f
}
