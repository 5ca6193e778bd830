package mesh

import (
	"fmt"

	"github.com/notargets/MPMKernel/element"
	"github.com/notargets/MPMKernel/vector"
)

// SquareMesh2D is the mesh produced by NewSquareMesh2D
type SquareMesh2D = Mesh[element.Quad, vector.Vec2[float64]]

// NewSquareMesh2D builds the (n+1)×(n+1) vertex grid covering [0, n*h]². The
// vertex at grid position (i, j) sits at (i*h, j*h) with index i*(n+1)+j.
//
// Each of the n² cells becomes the quad
//
//	[i(n+1)+j, i(n+1)+j+1, (i+1)(n+1)+j, (i+1)(n+1)+j+1]
//
// This order alternates between the two axes instead of tracing the cell
// boundary, so faces 1 and 3 of every quad are cell diagonals. Downstream
// data depends on these exact indices.
func NewSquareMesh2D(dimension, n int, h float64) *SquareMesh2D {
	if n < 0 {
		panic(fmt.Sprintf("mesh: negative cell count %d", n))
	}
	var (
		np1          = n + 1
		vertices     = make([]vector.Vec2[float64], 0, np1*np1)
		connectivity = make([]element.Quad, 0, n*n)
	)
	for i := 0; i < np1; i++ {
		for j := 0; j < np1; j++ {
			vertices = append(vertices, vector.New2(float64(i)*h, float64(j)*h))
			if i < n && j < n {
				connectivity = append(connectivity, element.NewQuad(
					i*np1+j,
					i*np1+j+1,
					(i+1)*np1+j,
					(i+1)*np1+j+1,
				))
			}
		}
	}
	return New(NewGrid(dimension, n, h), vertices, connectivity)
}
