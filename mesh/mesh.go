// Package mesh holds background grids as vertex coordinates plus element
// connectivity, and derives face adjacency and boundaries from them.
//
// A Mesh is built once and never modified; it can be read from any number of
// goroutines without locking.
package mesh

import (
	"fmt"

	"github.com/notargets/MPMKernel/element"
	"github.com/notargets/MPMKernel/vector"
	"gonum.org/v1/gonum/mat"
)

// Grid is the scalar metadata of a structured background grid
type Grid struct {
	Dimension int     // Nominal spatial dimension
	N         int     // Cells per axis
	H         float64 // Uniform grid spacing
}

// NewGrid returns grid metadata for n cells of spacing h per axis
func NewGrid(dimension, n int, h float64) Grid {
	return Grid{Dimension: dimension, N: n, H: h}
}

// Length returns the extent of the grid along each axis, N*H
func (g Grid) Length() float64 { return float64(g.N) * g.H }

// Mesh owns the vertex coordinates and element connectivity of a grid
type Mesh[C element.Connectivity, V vector.Point] struct {
	grid         Grid
	vertices     []V
	connectivity []C
}

// New takes ownership of vertices and connectivity
func New[C element.Connectivity, V vector.Point](grid Grid, vertices []V, connectivity []C) *Mesh[C, V] {
	return &Mesh[C, V]{
		grid:         grid,
		vertices:     vertices,
		connectivity: connectivity,
	}
}

func (m *Mesh[C, V]) Grid() Grid { return m.grid }

func (m *Mesh[C, V]) NumVertices() int { return len(m.vertices) }

func (m *Mesh[C, V]) NumElements() int { return len(m.connectivity) }

// Vertices returns a copy of the vertex coordinates
func (m *Mesh[C, V]) Vertices() []V {
	out := make([]V, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// Vertex returns vertex i
func (m *Mesh[C, V]) Vertex(i int) V { return m.vertices[i] }

// Connectivity returns a copy of the element records
func (m *Mesh[C, V]) Connectivity() []C {
	out := make([]C, len(m.connectivity))
	copy(out, m.connectivity)
	return out
}

// Element returns element record k
func (m *Mesh[C, V]) Element(k int) C { return m.connectivity[k] }

// Coordinates returns the vertices as a [NumVertices × D] matrix, one vertex
// per row, where D is the shortest vertex length. An empty mesh returns nil.
func (m *Mesh[C, V]) Coordinates() *mat.Dense {
	if len(m.vertices) == 0 {
		return nil
	}
	d := m.vertices[0].Len()
	for _, v := range m.vertices[1:] {
		d = min(d, v.Len())
	}
	if d == 0 {
		return nil
	}
	X := mat.NewDense(len(m.vertices), d, nil)
	for i, v := range m.vertices {
		for j := 0; j < d; j++ {
			X.Set(i, j, v.Coord(j))
		}
	}
	return X
}

// Validate checks that every vertex index referenced by an element is in
// range and that all vertices share one dimension
func (m *Mesh[C, V]) Validate() error {
	nv := len(m.vertices)
	for k, c := range m.connectivity {
		for _, idx := range c.Vertices() {
			if idx < 0 || idx >= nv {
				return fmt.Errorf("element %d references vertex %d, mesh has %d vertices",
					k, idx, nv)
			}
		}
	}
	if nv == 0 {
		return nil
	}
	d := m.vertices[0].Len()
	for i, v := range m.vertices {
		if v.Len() != d {
			return fmt.Errorf("vertex %d has %d coordinates, expected %d", i, v.Len(), d)
		}
	}
	return nil
}
