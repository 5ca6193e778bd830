package mesh

import (
	"fmt"
	"strings"

	"github.com/notargets/MPMKernel/element"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// String returns a summary of the mesh properties
func (m *Mesh[C, V]) String() string {
	var sb strings.Builder

	sb.WriteString("=== Mesh Summary ===\n")
	sb.WriteString(fmt.Sprintf("  Dimension: %d\n", m.grid.Dimension))
	sb.WriteString(fmt.Sprintf("  Cells per axis (n): %d\n", m.grid.N))
	sb.WriteString(fmt.Sprintf("  Grid spacing (h): %g\n", m.grid.H))
	sb.WriteString(fmt.Sprintf("  Number of vertices: %d\n", len(m.vertices)))
	sb.WriteString(fmt.Sprintf("  Number of elements: %d\n", len(m.connectivity)))

	if len(m.connectivity) > 0 {
		counts := make(map[element.GeometryType]int)
		for _, c := range m.connectivity {
			counts[c.Geometry()]++
		}
		sb.WriteString("\n--- Element Types ---\n")
		for _, g := range []element.GeometryType{element.GeomNone, element.GeomLine, element.GeomQuad} {
			if counts[g] > 0 {
				sb.WriteString(fmt.Sprintf("  %s: %d\n", g, counts[g]))
			}
		}
	}

	if X := m.Coordinates(); X != nil {
		_, d := X.Dims()
		sb.WriteString("\n--- Bounding Box ---\n")
		for j := 0; j < d; j++ {
			lo, hi := columnMinMax(X, j)
			sb.WriteString(fmt.Sprintf("  Axis %d range: [%.4f, %.4f]\n", j, lo, hi))
		}
	}

	if bf, err := m.BoundaryFaces(); err == nil && len(bf) > 0 {
		sb.WriteString(fmt.Sprintf("\n  Boundary faces: %d\n", len(bf)))
	}

	sb.WriteString("====================\n")
	return sb.String()
}

func columnMinMax(X *mat.Dense, j int) (min, max float64) {
	col := mat.Col(nil, j, X)
	return floats.Min(col), floats.Max(col)
}
