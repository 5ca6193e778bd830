package element

// Dimensionality represents the spatial dimension of an element or basis
type Dimensionality uint8

const (
	D0 Dimensionality = iota // 0D (terminal records, points)
	D1                       // 1D elements (lines, edges)
	D2                       // 2D elements (quadrilaterals)
	D3                       // 3D elements
)

func (d Dimensionality) String() string {
	switch d {
	case D0:
		return "0D"
	case D1:
		return "1D"
	case D2:
		return "2D"
	case D3:
		return "3D"
	}
	return "unknown"
}

// Int returns the dimension as a count of spatial axes
func (d Dimensionality) Int() int { return int(d) }

// GeometryType identifies the shape of a connectivity record
type GeometryType uint8

const (
	GeomNone GeometryType = iota // Terminal record, no vertices
	GeomLine                     // Line segment
	GeomQuad                     // Quadrilateral
)

func (g GeometryType) String() string {
	switch g {
	case GeomNone:
		return "None"
	case GeomLine:
		return "Line"
	case GeomQuad:
		return "Quad"
	}
	return "unknown"
}

// Dimensions returns the topological dimension of the shape
func (g GeometryType) Dimensions() Dimensionality {
	switch g {
	case GeomLine:
		return D1
	case GeomQuad:
		return D2
	}
	return D0
}

// Connectivity describes one mesh element: its ordered global vertex indices
// and its decomposition into boundary faces, each itself a Connectivity.
// Vertex order is significant and encodes the element's winding.
type Connectivity interface {
	Geometry() GeometryType
	NumFaces() int
	Vertices() []int
	// Face returns the connectivity of face index, false if there is no such face
	Face(index int) (Connectivity, bool)
}

// Element is a Connectivity whose face records have the static type F.
// Recursion ends at Empty, whose faces are Empty.
type Element[F Connectivity] interface {
	Connectivity
	FaceConnectivity(index int) (F, bool)
}
