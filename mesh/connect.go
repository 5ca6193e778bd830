package mesh

import (
	"fmt"

	"github.com/notargets/MPMKernel/element"
	"gonum.org/v1/gonum/mat"
)

// FaceConnectivity is the element to element adjacency of a mesh
type FaceConnectivity struct {
	// [K × NFaces] Element k, face f connects to element EToE[k,f].
	// Boundary faces connect to their own element, missing faces hold -1.
	EToE *mat.Dense
	// [K × NFaces] Element k, face f connects to face EToF[k,f] of the neighbor
	EToF *mat.Dense

	NFaces int // Maximum faces per element
}

// Neighbor returns the element and face across face f of element k
func (fc *FaceConnectivity) Neighbor(k, f int) (elem, face int) {
	return int(fc.EToE.At(k, f)), int(fc.EToF.At(k, f))
}

// IsBoundary reports whether face f of element k is not shared with another element
func (fc *FaceConnectivity) IsBoundary(k, f int) bool {
	e, nf := fc.Neighbor(k, f)
	return e == k && nf == f
}

// BoundaryFace identifies one face of one element on the mesh boundary
type BoundaryFace struct {
	Element int
	Face    int
	Conn    element.Connectivity
}

type faceOwner struct {
	elem, face int
}

// Connect matches element faces by their vertex sets. Faces with no partner
// are boundary faces. A face shared by more than two elements is an error.
func (m *Mesh[C, V]) Connect() (*FaceConnectivity, error) {
	K := len(m.connectivity)
	nFaces := 0
	for _, c := range m.connectivity {
		if c.NumFaces() > nFaces {
			nFaces = c.NumFaces()
		}
	}
	fc := &FaceConnectivity{NFaces: nFaces}
	if K == 0 || nFaces == 0 {
		return fc, nil
	}
	fc.EToE = mat.NewDense(K, nFaces, nil)
	fc.EToF = mat.NewDense(K, nFaces, nil)

	faceMap := make(map[string][]faceOwner)
	for k, c := range m.connectivity {
		for f := 0; f < nFaces; f++ {
			face, ok := c.Face(f)
			if !ok {
				fc.EToE.Set(k, f, -1)
				fc.EToF.Set(k, f, -1)
				continue
			}
			// Self-connection by default
			fc.EToE.Set(k, f, float64(k))
			fc.EToF.Set(k, f, float64(f))

			key := element.Signature(face)
			owners := append(faceMap[key], faceOwner{k, f})
			if len(owners) > 2 {
				return nil, fmt.Errorf("face %s is shared by %d elements", key, len(owners))
			}
			faceMap[key] = owners
			if len(owners) == 2 {
				a, b := owners[0], owners[1]
				fc.EToE.Set(a.elem, a.face, float64(b.elem))
				fc.EToF.Set(a.elem, a.face, float64(b.face))
				fc.EToE.Set(b.elem, b.face, float64(a.elem))
				fc.EToF.Set(b.elem, b.face, float64(a.face))
			}
		}
	}
	return fc, nil
}

// BoundaryFaces lists the faces not shared between elements, in element then
// face order
func (m *Mesh[C, V]) BoundaryFaces() ([]BoundaryFace, error) {
	fc, err := m.Connect()
	if err != nil {
		return nil, err
	}
	var bf []BoundaryFace
	for k, c := range m.connectivity {
		for f := 0; f < c.NumFaces(); f++ {
			face, ok := c.Face(f)
			if !ok || !fc.IsBoundary(k, f) {
				continue
			}
			bf = append(bf, BoundaryFace{Element: k, Face: f, Conn: face})
		}
	}
	return bf, nil
}
