// Package mesh generates the primitive solids used for scene bodies.
package mesh

import "github.com/chewxy/math32"

// Stride is the number of floats per vertex: position, normal, uv.
const Stride = 8

// Mesh is an indexed triangle mesh with interleaved vertex data.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / Stride
}

func (m *Mesh) add(px, py, pz, nx, ny, nz, u, v float32) {
	m.Vertices = append(m.Vertices, px, py, pz, nx, ny, nz, u, v)
}

// Cube returns a unit cube centered at the origin, one textured quad per face.
func Cube() *Mesh {
	faces := []struct {
		n, u, v [3]float32
	}{
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	}

	m := &Mesh{}
	for _, f := range faces {
		base := uint32(m.VertexCount())
		for _, c := range [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
			su, sv := c[0]-0.5, c[1]-0.5
			m.add(
				0.5*f.n[0]+su*f.u[0]+sv*f.v[0],
				0.5*f.n[1]+su*f.u[1]+sv*f.v[1],
				0.5*f.n[2]+su*f.u[2]+sv*f.v[2],
				f.n[0], f.n[1], f.n[2],
				c[0], 1-c[1],
			)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Sphere returns a UV sphere of radius 0.5.
func Sphere(rings, segments int) *Mesh {
	m := &Mesh{}
	for r := 0; r <= rings; r++ {
		v := float32(r) / float32(rings)
		phi := v * math32.Pi
		for s := 0; s <= segments; s++ {
			u := float32(s) / float32(segments)
			theta := u * 2 * math32.Pi
			x := math32.Sin(phi) * math32.Cos(theta)
			y := math32.Cos(phi)
			z := math32.Sin(phi) * math32.Sin(theta)
			m.add(x*0.5, y*0.5, z*0.5, x, y, z, u, v)
		}
	}
	m.Indices = grid(rings, segments)
	return m
}

// Torus returns a torus in the XY plane with ring radius 0.5 and the
// given tube radius.
func Torus(tube float32, rings, segments int) *Mesh {
	const radius = 0.5
	m := &Mesh{}
	for r := 0; r <= rings; r++ {
		v := float32(r) / float32(rings)
		a := v * 2 * math32.Pi
		for s := 0; s <= segments; s++ {
			u := float32(s) / float32(segments)
			b := u * 2 * math32.Pi
			cx, cy := radius*math32.Cos(b), radius*math32.Sin(b)
			nx := math32.Cos(a) * math32.Cos(b)
			ny := math32.Cos(a) * math32.Sin(b)
			nz := math32.Sin(a)
			m.add(cx+tube*nx, cy+tube*ny, tube*nz, nx, ny, nz, u, v)
		}
	}
	m.Indices = grid(rings, segments)
	return m
}

// Quad returns a unit quad in the XY plane centered at the origin.
func Quad() *Mesh {
	m := &Mesh{}
	m.add(-0.5, -0.5, 0, 0, 0, 1, 0, 1)
	m.add(0.5, -0.5, 0, 0, 0, 1, 1, 1)
	m.add(0.5, 0.5, 0, 0, 0, 1, 1, 0)
	m.add(-0.5, 0.5, 0, 0, 0, 1, 0, 0)
	m.Indices = []uint32{0, 1, 2, 0, 2, 3}
	return m
}

// grid indexes a (rows+1) x (cols+1) vertex lattice.
func grid(rows, cols int) []uint32 {
	idx := make([]uint32, 0, rows*cols*6)
	w := uint32(cols + 1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := uint32(r)*w + uint32(c)
			b := a + w
			idx = append(idx, a, b, a+1, a+1, b, b+1)
		}
	}
	return idx
}

// ForShape returns the mesh for a configured shape name.
func ForShape(shape string) (*Mesh, bool) {
	switch shape {
	case "cube":
		return Cube(), true
	case "sphere":
		return Sphere(24, 32), true
	case "torus":
		return Torus(0.2, 24, 48), true
	}
	return nil, false
}
