// Package geometry builds procedural meshes on the CPU.
package geometry

// Vertex is the interleaved vertex format uploaded to the GPU.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// FloatsPerVertex is the number of float32 values in one interleaved Vertex.
const FloatsPerVertex = 8

// Box is a cuboid centered on the origin, tessellated into a grid on each face.
// The same segment count is used along all three axes.
type Box struct {
	Width, Height, Depth float32

	Vertices    []Vertex
	Indices     []uint32 // Triangle list
	LineIndices []uint32 // Every triangle edge, for wireframe drawing

	segments int
}

// NewBox builds a box with the given size and segments along each axis.
// Segments below 1 are raised to 1.
func NewBox(width, height, depth float32, segments int) *Box {
	if segments < 1 {
		segments = 1
	}

	faceVerts := (segments + 1) * (segments + 1)
	faceTris := segments * segments * 2

	b := &Box{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Vertices:    make([]Vertex, 0, 6*faceVerts),
		Indices:     make([]uint32, 0, 6*faceTris*3),
		LineIndices: make([]uint32, 0, 6*faceTris*6),
		segments:    segments,
	}

	const x, y, z = 0, 1, 2

	// +X, -X, +Y, -Y, +Z, -Z
	b.buildFace(z, y, x, -1, -1, depth, height, width)
	b.buildFace(z, y, x, 1, -1, depth, height, -width)
	b.buildFace(x, z, y, 1, 1, width, depth, height)
	b.buildFace(x, z, y, 1, -1, width, depth, -height)
	b.buildFace(x, y, z, 1, -1, width, height, depth)
	b.buildFace(x, y, z, -1, -1, width, height, -depth)

	b.buildLines()
	return b
}

// buildFace appends one face grid. u and v are the in-plane axes, w is the
// face normal axis; the sign of depth selects which side of the box it is on.
func (b *Box) buildFace(u, v, w int, udir, vdir float32, width, height, depth float32) {
	n := b.segments
	segW := width / float32(n)
	segH := height / float32(n)
	halfW := width / 2
	halfH := height / 2
	halfD := depth / 2

	normalW := float32(1)
	if depth < 0 {
		normalW = -1
	}

	base := uint32(len(b.Vertices))

	for iy := 0; iy <= n; iy++ {
		py := float32(iy)*segH - halfH
		for ix := 0; ix <= n; ix++ {
			px := float32(ix)*segW - halfW

			var vert Vertex
			vert.Position[u] = px * udir
			vert.Position[v] = py * vdir
			vert.Position[w] = halfD
			vert.Normal[w] = normalW
			vert.UV = [2]float32{float32(ix) / float32(n), 1 - float32(iy)/float32(n)}

			b.Vertices = append(b.Vertices, vert)
		}
	}

	row := uint32(n + 1)
	for iy := uint32(0); iy < uint32(n); iy++ {
		for ix := uint32(0); ix < uint32(n); ix++ {
			a := base + ix + row*iy
			bb := base + ix + row*(iy+1)
			c := base + ix + 1 + row*(iy+1)
			d := base + ix + 1 + row*iy

			b.Indices = append(b.Indices, a, bb, d, bb, c, d)
		}
	}
}

func (b *Box) buildLines() {
	for i := 0; i+2 < len(b.Indices); i += 3 {
		a, c, d := b.Indices[i], b.Indices[i+1], b.Indices[i+2]
		b.LineIndices = append(b.LineIndices, a, c, c, d, d, a)
	}
}

// Segments returns the segment count used along every axis.
func (b *Box) Segments() int {
	return b.segments
}

// VertexCount returns the number of vertices.
func (b *Box) VertexCount() int {
	return len(b.Vertices)
}

// TriangleCount returns the number of triangles.
func (b *Box) TriangleCount() int {
	return len(b.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (b *Box) Bounds() (min, max [3]float32) {
	if len(b.Vertices) == 0 {
		return min, max
	}

	min = b.Vertices[0].Position
	max = min
	for _, v := range b.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	return min, max
}

// Interleaved flattens the vertices as position, normal, uv per vertex.
func (b *Box) Interleaved() []float32 {
	out := make([]float32, 0, len(b.Vertices)*FloatsPerVertex)
	for _, v := range b.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.UV[0], v.UV[1],
		)
	}
	return out
}
