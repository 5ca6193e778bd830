// Package config reads the run configuration of the example programs from
// gcfg (INI style) files:
//
//	[Mesh]
//	Dimension = 2
//	Cells     = 3
//	Length    = 1.0
//
//	[Basis]
//	Kernel    = cubic
//	Dimension = 2
//	Samples   = 5
package config

import (
	"fmt"

	"github.com/notargets/MPMKernel/basis"
	"github.com/notargets/MPMKernel/element"
	"gopkg.in/gcfg.v1"
)

// MeshConfig describes the structured square background grid
type MeshConfig struct {
	Dimension int
	Cells     int
	Length    float64
}

// BasisConfig selects the interpolation kernel and basis dimension
type BasisConfig struct {
	Kernel    string
	Dimension int
	Samples   int // Sample points per axis when tabulating the basis
}

// Wrapper is the top level gcfg document
type Wrapper struct {
	Mesh  MeshConfig
	Basis BasisConfig
}

// DefaultWrapper returns the configuration used when a file leaves a value unset
func DefaultWrapper() *Wrapper {
	return &Wrapper{
		Mesh: MeshConfig{
			Dimension: 2,
			Cells:     3,
			Length:    1.0,
		},
		Basis: BasisConfig{
			Kernel:    "cubic",
			Dimension: 2,
			Samples:   5,
		},
	}
}

// Load reads and validates the configuration at path
func Load(path string) (*Wrapper, error) {
	wrap := DefaultWrapper()
	if err := gcfg.ReadFileInto(wrap, path); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := wrap.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return wrap, nil
}

// Parse reads and validates a configuration held in a string
func Parse(text string) (*Wrapper, error) {
	wrap := DefaultWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := wrap.Validate(); err != nil {
		return nil, err
	}
	return wrap, nil
}

// Validate checks every section
func (w *Wrapper) Validate() error {
	if err := w.Mesh.Validate(); err != nil {
		return err
	}
	return w.Basis.Validate()
}

func (mc *MeshConfig) Validate() error {
	switch {
	case mc.Dimension != 2:
		return fmt.Errorf("mesh dimension %d not supported, only square 2D meshes are built", mc.Dimension)
	case mc.Cells < 0:
		return fmt.Errorf("invalid mesh cell count %d", mc.Cells)
	case mc.Length <= 0:
		return fmt.Errorf("invalid mesh length %g", mc.Length)
	}
	return nil
}

// Spacing returns the grid spacing Length / Cells, or Length for a single
// vertex mesh
func (mc *MeshConfig) Spacing() float64 {
	if mc.Cells == 0 {
		return mc.Length
	}
	return mc.Length / float64(mc.Cells)
}

func (bc *BasisConfig) Validate() error {
	if _, err := bc.Basis(); err != nil {
		return err
	}
	if bc.Samples < 1 {
		return fmt.Errorf("invalid basis sample count %d", bc.Samples)
	}
	return nil
}

// Function resolves the configured kernel name
func (bc *BasisConfig) Function() (basis.Function, error) {
	return basis.KernelByName(bc.Kernel)
}

func (bc *BasisConfig) Dimensionality() element.Dimensionality {
	if bc.Dimension < 0 || bc.Dimension > 255 {
		return element.D0
	}
	return element.Dimensionality(bc.Dimension)
}

// Basis builds the configured basis
func (bc *BasisConfig) Basis() (basis.Basis, error) {
	f, err := bc.Function()
	if err != nil {
		return nil, err
	}
	return basis.New(bc.Dimensionality(), f)
}
