package element

var (
	_ Element[Empty] = Empty{}
	_ Element[Empty] = Line{}
	_ Element[Line]  = Quad{}
)

// Empty is the terminal connectivity: no vertices and no faces
type Empty struct{}

func (Empty) Geometry() GeometryType { return GeomNone }

func (Empty) NumFaces() int { return 0 }

func (Empty) Vertices() []int { return nil }

func (Empty) Face(index int) (Connectivity, bool) { return nil, false }

func (Empty) FaceConnectivity(index int) (Empty, bool) { return Empty{}, false }

// Line is a two vertex segment. It has no boundary faces in this model.
type Line struct {
	v [2]int
}

func NewLine(a, b int) Line { return Line{v: [2]int{a, b}} }

func (Line) Geometry() GeometryType { return GeomLine }

func (Line) NumFaces() int { return 0 }

func (l Line) Vertices() []int { return []int{l.v[0], l.v[1]} }

func (l Line) Face(index int) (Connectivity, bool) { return nil, false }

func (Line) FaceConnectivity(index int) (Empty, bool) { return Empty{}, false }

// Quad is a quadrilateral with vertices in cyclic order [v0, v1, v2, v3].
// Face i is the line [v_i, v_(i+1)%4].
type Quad struct {
	v [4]int
}

func NewQuad(v0, v1, v2, v3 int) Quad { return Quad{v: [4]int{v0, v1, v2, v3}} }

func (Quad) Geometry() GeometryType { return GeomQuad }

func (Quad) NumFaces() int { return 4 }

func (q Quad) Vertices() []int { return []int{q.v[0], q.v[1], q.v[2], q.v[3]} }

func (q Quad) FaceConnectivity(index int) (Line, bool) {
	switch index {
	case 0, 1, 2, 3:
		return NewLine(q.v[index], q.v[(index+1)%4]), true
	}
	return Line{}, false
}

func (q Quad) Face(index int) (Connectivity, bool) {
	l, ok := q.FaceConnectivity(index)
	if !ok {
		return nil, false
	}
	return l, true
}
