package element

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SkipFaces can be returned by a WalkFunc to stop descent into the faces of
// the record being visited. The walk continues with its siblings.
var SkipFaces = errors.New("skip faces")

// WalkFunc is called for every record visited by Walk. depth is 0 for the root.
type WalkFunc func(c Connectivity, depth int) error

// Walk visits c and then, depth first, every face reachable from it.
// It relies only on NumFaces and Face so it works for any Connectivity.
func Walk(c Connectivity, fn WalkFunc) error {
	err := walk(c, 0, fn)
	if errors.Is(err, SkipFaces) {
		return nil
	}
	return err
}

func walk(c Connectivity, depth int, fn WalkFunc) error {
	if err := fn(c, depth); err != nil {
		return err
	}
	for i := 0; i < c.NumFaces(); i++ {
		f, ok := c.Face(i)
		if !ok {
			continue
		}
		if err := walk(f, depth+1, fn); err != nil {
			if errors.Is(err, SkipFaces) {
				continue
			}
			return err
		}
	}
	return nil
}

// CollectFaces returns every record found exactly depth levels below c.
// Depth 0 returns c itself.
func CollectFaces(c Connectivity, depth int) (faces []Connectivity) {
	_ = Walk(c, func(f Connectivity, d int) error {
		if d == depth {
			faces = append(faces, f)
			return SkipFaces
		}
		return nil
	})
	return
}

// Signature returns an order independent key for the vertex set of c, so that
// two records sharing the same vertices map to the same key
func Signature(c Connectivity) string {
	v := append([]int(nil), c.Vertices()...)
	sort.Ints(v)
	parts := make([]string, len(v))
	for i, idx := range v {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return strings.Join(parts, "-")
}

// Faces returns every face of e with its static face type
func Faces[F Connectivity, E Element[F]](e E) []F {
	faces := make([]F, 0, e.NumFaces())
	for i := 0; i < e.NumFaces(); i++ {
		if f, ok := e.FaceConnectivity(i); ok {
			faces = append(faces, f)
		}
	}
	return faces
}
