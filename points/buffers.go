// Package points holds the flat position and colour buffers shared by the
// point cloud generators and the renderer.
package points

// Buffers holds per-particle data laid out as flat xyz / rgb triples.
// Particle i occupies indices [3i, 3i+3) in both slices.
type Buffers struct {
	Positions []float32
	Colors    []float32

	// PointSize is the on-screen size each particle is drawn at.
	PointSize float32
}

// New allocates zeroed buffers for count particles.
// A non-positive count yields empty buffers.
func New(count int, pointSize float32) Buffers {
	if count < 0 {
		count = 0
	}
	return Buffers{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
		PointSize: pointSize,
	}
}

// Count returns the number of particles.
func (b Buffers) Count() int {
	return len(b.Positions) / 3
}

// Position returns the position of particle i.
func (b Buffers) Position(i int) (x, y, z float32) {
	i3 := i * 3
	return b.Positions[i3], b.Positions[i3+1], b.Positions[i3+2]
}

// Color returns the colour of particle i.
func (b Buffers) Color(i int) (r, g, bl float32) {
	i3 := i * 3
	return b.Colors[i3], b.Colors[i3+1], b.Colors[i3+2]
}

// Set writes position and colour for particle i.
func (b Buffers) Set(i int, x, y, z, r, g, bl float32) {
	i3 := i * 3
	b.Positions[i3] = x
	b.Positions[i3+1] = y
	b.Positions[i3+2] = z
	b.Colors[i3] = r
	b.Colors[i3+1] = g
	b.Colors[i3+2] = bl
}

// Valid reports whether the buffer lengths agree.
func (b Buffers) Valid() bool {
	return len(b.Positions) == len(b.Colors) && len(b.Positions)%3 == 0
}
