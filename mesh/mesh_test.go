package mesh

import (
	"fmt"
	"sync"
	"testing"

	"github.com/notargets/MPMKernel/element"
	"github.com/notargets/MPMKernel/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquareMesh2D(t *testing.T) {
	m := NewSquareMesh2D(2, 2, 1.0)
	require.Equal(t, 9, m.NumVertices())
	require.Equal(t, 4, m.NumElements())
	assert.Equal(t, Grid{Dimension: 2, N: 2, H: 1.0}, m.Grid())

	assert.Equal(t, vector.New2(0.0, 0.0), m.Vertex(0))
	assert.Equal(t, vector.New2(2.0, 2.0), m.Vertex(8))

	seen := map[[2]float64]bool{}
	for _, v := range m.Vertices() {
		seen[[2]float64{v.X(), v.Y()}] = true
	}
	for _, x := range []float64{0, 1, 2} {
		for _, y := range []float64{0, 1, 2} {
			assert.True(t, seen[[2]float64{x, y}], "missing vertex (%v, %v)", x, y)
		}
	}

	want := [][]int{{0, 1, 3, 4}, {1, 2, 4, 5}, {3, 4, 6, 7}, {4, 5, 7, 8}}
	for k, q := range m.Connectivity() {
		assert.Equal(t, want[k], q.Vertices(), "element %d", k)
	}
}

func TestSquareMeshIndexFormula(t *testing.T) {
	n, h := 3, 1.0/3.0
	m := NewSquareMesh2D(2, n, h)
	assert.Equal(t, (n+1)*(n+1), m.NumVertices())
	assert.Equal(t, n*n, m.NumElements())
	assert.InDelta(t, 1.0, m.Grid().Length(), 1e-15)

	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, []int{
				i*(n+1) + j, i*(n+1) + j + 1, (i+1)*(n+1) + j, (i+1)*(n+1) + j + 1,
			}, m.Element(k).Vertices())
			k++
		}
	}
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			v := m.Vertex(i*(n+1) + j)
			assert.InDelta(t, float64(i)*h, v.X(), 1e-15)
			assert.InDelta(t, float64(j)*h, v.Y(), 1e-15)
		}
	}
}

func TestSquareMeshDegenerate(t *testing.T) {
	m := NewSquareMesh2D(2, 0, 1.0)
	assert.Equal(t, 1, m.NumVertices())
	assert.Equal(t, 0, m.NumElements())
	assert.NoError(t, m.Validate())

	assert.Panics(t, func() { NewSquareMesh2D(2, -1, 1.0) })
}

func TestQuadFacesInGeneratedMesh(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			m := NewSquareMesh2D(2, n, 0.5)
			for k, q := range m.Connectivity() {
				sigs := map[string]bool{}
				for i := 0; i < 4; i++ {
					f, ok := q.Face(i)
					require.True(t, ok)
					require.Len(t, f.Vertices(), 2)
					for _, v := range f.Vertices() {
						assert.Contains(t, q.Vertices(), v, "element %d face %d", k, i)
					}
					sigs[element.Signature(f)] = true
				}
				assert.Len(t, sigs, 4)
				for _, i := range []int{4, 5, 10} {
					_, ok := q.Face(i)
					assert.False(t, ok)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7} {
		m := NewSquareMesh2D(2, n, 0.1)
		require.NoError(t, m.Validate())
		for _, q := range m.Connectivity() {
			for _, idx := range q.Vertices() {
				assert.Less(t, idx, m.NumVertices())
			}
		}
	}

	verts := []vector.Vec2[float64]{
		vector.New2(0.0, 0.0), vector.New2(1.0, 0.0), vector.New2(0.0, 1.0), vector.New2(1.0, 1.0),
	}
	bad := New(NewGrid(2, 1, 1), verts, []element.Quad{element.NewQuad(0, 1, 3, 4)})
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vertex 4")

	mixed := New(NewGrid(2, 1, 1), []vector.Point{vector.New2(0.0, 0.0), vector.New3(1.0, 0.0, 0.0)},
		[]element.Line{element.NewLine(0, 1)})
	assert.Error(t, mixed.Validate())
}

func TestCoordinatesMixedLengths(t *testing.T) {
	m := New(NewGrid(2, 1, 1), []vector.Point{vector.New3(1.0, 2.0, 3.0), vector.New2(4.0, 5.0)},
		[]element.Line{element.NewLine(0, 1)})
	require.Error(t, m.Validate())

	X := m.Coordinates()
	require.NotNil(t, X)
	r, c := X.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4.0, X.At(1, 0))
	assert.NotPanics(t, func() { _ = m.String() })
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := NewSquareMesh2D(2, 1, 1.0)
	verts := m.Vertices()
	verts[0] = vector.New2(9.0, 9.0)
	assert.Equal(t, vector.New2(0.0, 0.0), m.Vertex(0))

	conn := m.Connectivity()
	conn[0] = element.NewQuad(9, 9, 9, 9)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Element(0).Vertices())
}

func TestCoordinates(t *testing.T) {
	m := NewSquareMesh2D(2, 2, 0.5)
	X := m.Coordinates()
	r, c := X.Dims()
	require.Equal(t, 9, r)
	require.Equal(t, 2, c)
	for i, v := range m.Vertices() {
		assert.Equal(t, v.X(), X.At(i, 0))
		assert.Equal(t, v.Y(), X.At(i, 1))
	}

	empty := New(NewGrid(2, 0, 1), []vector.Vec2[float64]{}, []element.Quad{})
	assert.Nil(t, empty.Coordinates())
}

func TestString(t *testing.T) {
	s := NewSquareMesh2D(2, 2, 1.0).String()
	assert.Contains(t, s, "Number of vertices: 9")
	assert.Contains(t, s, "Number of elements: 4")
	assert.Contains(t, s, "Quad: 4")
	assert.Contains(t, s, "Axis 1 range: [0.0000, 2.0000]")
	assert.Contains(t, s, "Boundary faces: 12")
}

func TestConcurrentReads(t *testing.T) {
	m := NewSquareMesh2D(2, 4, 0.25)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := 0; k < m.NumElements(); k++ {
				q := m.Element(k)
				for i := 0; i < q.NumFaces(); i++ {
					_, _ = q.Face(i)
				}
			}
			_ = m.Coordinates()
			assert.NoError(t, m.Validate())
		}()
	}
	wg.Wait()
}
