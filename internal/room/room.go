package room

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default room values, used for any field left zero.
const (
	DefaultWidth     = float32(10)
	DefaultHeight    = float32(5)
	DefaultDepth     = float32(10)
	DefaultBaseColor = "#f0f0f0"

	FloorTexture   = "textures/floor.jpg"
	CeilingTexture = "textures/ceiling.jpg"
	WallTexture    = "textures/wall.jpg"
)

// Spec describes the room box. Dimensions are in world units, centered on the origin.
type Spec struct {
	Width       float32 `yaml:"width"`
	Height      float32 `yaml:"height"`
	Depth       float32 `yaml:"depth"`
	BaseColor   string  `yaml:"base_color,omitempty"`
	WallTexture string  `yaml:"wall_texture,omitempty"`
}

// Default returns a 10x5x10 light gray room.
func Default() Spec {
	return Spec{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Depth:       DefaultDepth,
		BaseColor:   DefaultBaseColor,
		WallTexture: WallTexture,
	}
}

// Normalize replaces non-positive dimensions and empty strings with the defaults.
func (s Spec) Normalize() Spec {
	def := Default()
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.Depth <= 0 {
		s.Depth = def.Depth
	}
	if s.BaseColor == "" {
		s.BaseColor = def.BaseColor
	}
	if s.WallTexture == "" {
		s.WallTexture = def.WallTexture
	}
	return s
}

// FloorY is the height of the floor plane.
func (s Spec) FloorY() float32 {
	return -s.Height / 2
}

// Kind is the class of a shell surface; each class has its own default texture.
type Kind int

const (
	Floor Kind = iota
	Ceiling
	Wall
)

// Surface is one flat rectangle of the room shell.
// Rotation is (pitch about X, yaw about Y, 0) in radians, applied X first; it turns a unit plane
// lying in XZ and facing +Y into this surface. Size is (width, height) in the surface's own plane.
type Surface struct {
	Name     string
	Kind     Kind
	Center   mgl32.Vec3
	Size     mgl32.Vec2
	Normal   mgl32.Vec3
	Rotation mgl32.Vec3
	Texture  string
	Tint     string
}

// Shell holds the six inward-facing surfaces of a room.
type Shell struct {
	Floor, Ceiling           Surface
	Back, Front, Left, Right Surface
}

// Surfaces returns the six surfaces in draw order: floor, ceiling, back, front, left, right.
func (sh Shell) Surfaces() []Surface {
	return []Surface{sh.Floor, sh.Ceiling, sh.Back, sh.Front, sh.Left, sh.Right}
}

// BuildShell returns the floor, ceiling and four walls for spec. spec is normalized first.
func BuildShell(spec Spec) Shell {
	s := spec.Normalize()
	w, h, d := s.Width, s.Height, s.Depth
	halfPi := math32.Pi / 2

	wall := func(name string, center, normal mgl32.Vec3, yaw, width float32) Surface {
		return Surface{
			Name:     name,
			Kind:     Wall,
			Center:   center,
			Size:     mgl32.Vec2{width, h},
			Normal:   normal,
			Rotation: mgl32.Vec3{halfPi, yaw, 0},
			Texture:  s.WallTexture,
			Tint:     s.BaseColor,
		}
	}

	return Shell{
		Floor: Surface{
			Name:    "floor",
			Kind:    Floor,
			Center:  mgl32.Vec3{0, -h / 2, 0},
			Size:    mgl32.Vec2{w, d},
			Normal:  mgl32.Vec3{0, 1, 0},
			Texture: FloorTexture,
			Tint:    s.BaseColor,
		},
		Ceiling: Surface{
			Name:     "ceiling",
			Kind:     Ceiling,
			Center:   mgl32.Vec3{0, h / 2, 0},
			Size:     mgl32.Vec2{w, d},
			Normal:   mgl32.Vec3{0, -1, 0},
			Rotation: mgl32.Vec3{math32.Pi, 0, 0},
			Texture:  CeilingTexture,
			Tint:     s.BaseColor,
		},
		Back:  wall("wall-back", mgl32.Vec3{0, 0, -d / 2}, mgl32.Vec3{0, 0, 1}, 0, w),
		Front: wall("wall-front", mgl32.Vec3{0, 0, d / 2}, mgl32.Vec3{0, 0, -1}, math32.Pi, w),
		Left:  wall("wall-left", mgl32.Vec3{-w / 2, 0, 0}, mgl32.Vec3{1, 0, 0}, halfPi, d),
		Right: wall("wall-right", mgl32.Vec3{w / 2, 0, 0}, mgl32.Vec3{-1, 0, 0}, -halfPi, d),
	}
}

// RotationMatrix returns the model rotation for a surface: pitch about X, then yaw about Y.
func (s Surface) RotationMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DY(s.Rotation[1]).Mul4(mgl32.HomogRotate3DX(s.Rotation[0]))
}
