package furniture

import "github.com/go-gl/mathgl/mgl32"

// BulbColor is the fixed warm color of the lamp bulb. It ignores the descriptor's color and shade.
const BulbColor = "#ffdd88"

func box(name string, offset, size mgl32.Vec3, material string) Part {
	return Part{Name: name, Shape: Box, Offset: offset, Size: size, Color: material}
}

func cylinder(name string, offset mgl32.Vec3, radius, height float32, material string) Part {
	return Part{Name: name, Shape: Cylinder, Offset: offset, Radius: radius, Height: height, Color: material}
}

// legs returns four cylinders at (±dx, height/2, ±dz).
func legs(dx, dz, radius, height float32, material string) []Part {
	y := height / 2
	return []Part{
		cylinder("leg-front-left", mgl32.Vec3{-dx, y, dz}, radius, height, material),
		cylinder("leg-front-right", mgl32.Vec3{dx, y, dz}, radius, height, material),
		cylinder("leg-back-left", mgl32.Vec3{-dx, y, -dz}, radius, height, material),
		cylinder("leg-back-right", mgl32.Vec3{dx, y, -dz}, radius, height, material),
	}
}

// buildChair: seat at 0.5, backrest along the back edge, four legs under the seat.
func buildChair(m string) []Part {
	parts := []Part{
		box("seat", mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{1, 0.1, 1}, m),
		box("backrest", mgl32.Vec3{0, 1, -0.45}, mgl32.Vec3{1, 0.9, 0.1}, m),
	}
	return append(parts, legs(0.45, 0.45, 0.05, 0.45, m)...)
}

func buildTable(m string) []Part {
	parts := []Part{
		box("top", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{2, 0.1, 1}, m),
	}
	return append(parts, legs(0.9, 0.4, 0.05, 0.95, m)...)
}

func buildSofa(m string) []Part {
	return []Part{
		box("seat", mgl32.Vec3{0, 0.25, 0}, mgl32.Vec3{2, 0.5, 1}, m),
		box("backrest", mgl32.Vec3{0, 0.65, -0.4}, mgl32.Vec3{2, 0.8, 0.2}, m),
		box("armrest-left", mgl32.Vec3{-0.9, 0.55, 0.1}, mgl32.Vec3{0.2, 0.3, 0.8}, m),
		box("armrest-right", mgl32.Vec3{0.9, 0.55, 0.1}, mgl32.Vec3{0.2, 0.3, 0.8}, m),
	}
}

func buildBookshelf(m string) []Part {
	return []Part{
		box("back", mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1.2, 2, 0.4}, m),
		box("cap-top", mgl32.Vec3{0, 2.025, 0}, mgl32.Vec3{1.3, 0.05, 0.45}, m),
		box("cap-bottom", mgl32.Vec3{0, 0.025, 0}, mgl32.Vec3{1.3, 0.05, 0.45}, m),
	}
}

func buildTVStand(m string) []Part {
	return []Part{
		box("body", mgl32.Vec3{0, 0.35, 0}, mgl32.Vec3{1.8, 0.5, 0.5}, m),
		box("plinth", mgl32.Vec3{0, 0.05, 0}, mgl32.Vec3{1.6, 0.1, 0.4}, m),
	}
}

func buildBed(m string) []Part {
	parts := []Part{
		box("mattress", mgl32.Vec3{0, 0.5, 0}, mgl32.Vec3{2, 0.4, 3}, m),
		box("headboard", mgl32.Vec3{0, 0.8, -1.45}, mgl32.Vec3{2, 1, 0.1}, m),
	}
	return append(parts, legs(0.9, 1.4, 0.05, 0.3, m)...)
}

// buildLamp: pole, cone shade on top, bulb just under the shade. The bulb is emissive.
func buildLamp(m string) []Part {
	return []Part{
		cylinder("stand", mgl32.Vec3{0, 0.75, 0}, 0.05, 1.5, m),
		{Name: "shade", Shape: Cone, Offset: mgl32.Vec3{0, 1.6, 0}, Radius: 0.3, Height: 0.4, Color: m},
		{Name: "bulb", Shape: Sphere, Offset: mgl32.Vec3{0, 1.45, 0}, Radius: 0.1, Color: BulbColor, Emissive: true},
	}
}
