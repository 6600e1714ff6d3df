package cube

// MaterialMode selects how the cube surface is colored.
type MaterialMode int

const (
	// MaterialFlat fills with Material.Color.
	MaterialFlat MaterialMode = iota
	// MaterialTextured samples Material.Texture untinted; Color is kept
	// but not applied.
	MaterialTextured
)

func (m MaterialMode) String() string {
	if m == MaterialTextured {
		return "textured"
	}
	return "flat"
}

// Material is an unlit surface description.
type Material struct {
	Mode      MaterialMode
	Color     [3]float32
	Texture   uint32 // GPU texture handle, 0 when flat
	Wireframe bool
}

// Tint returns the color the renderer multiplies into the surface.
func (m Material) Tint() [3]float32 {
	if m.Mode == MaterialTextured {
		return [3]float32{1, 1, 1}
	}
	return m.Color
}
