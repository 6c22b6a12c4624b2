// Package cell implements the periodic lattice underlying a packed state:
// one of four crystal families, Cartesian conversion, and streaming
// enumeration of periodic images.
package cell

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gonum-community/packing2d/basis"
	"github.com/gonum-community/packing2d/transform2"
)

// Family identifies which of the four 2D crystal families a Cell belongs
// to, determining which of its parameters are independent degrees of
// freedom.
type Family int

const (
	Monoclinic Family = iota
	Orthorhombic
	Tetragonal
	Hexagonal
)

func (f Family) String() string {
	switch f {
	case Monoclinic:
		return "Monoclinic"
	case Orthorhombic:
		return "Orthorhombic"
	case Tetragonal:
		return "Tetragonal"
	case Hexagonal:
		return "Hexagonal"
	default:
		return "Unknown"
	}
}

// Cell is a unit cell of side lengths A, B and included angle Gamma, one of
// the four 2D crystal families.
type Cell struct {
	A, B, Gamma float64
	Family      Family
}

// FromFamily returns a Cell seeded at family-dependent fixed values, with
// both side lengths initialised to length. length also serves as the upper
// bound of each side-length basis handle: a cell may only shrink from its
// initial maximum over the course of a search.
func FromFamily(family Family, length float64) *Cell {
	c := &Cell{A: length, B: length, Gamma: math.Pi / 2, Family: family}
	switch family {
	case Hexagonal:
		c.Gamma = math.Pi / 3
	case Tetragonal:
		c.Gamma = math.Pi / 2
	case Orthorhombic:
		c.Gamma = math.Pi / 2
	case Monoclinic:
		c.Gamma = math.Pi / 2
	}
	return c
}

// Area returns a·b·sin(γ).
func (c *Cell) Area() float64 {
	return c.A * c.B * math.Sin(c.Gamma)
}

// aVector and bVector are the Cartesian lattice vectors corresponding to
// fractional basis vectors (1,0) and (0,1).
func (c *Cell) aVector() r2.Vec {
	return r2.Vec{X: c.A}
}

func (c *Cell) bVector() r2.Vec {
	return r2.Vec{X: c.B * math.Cos(c.Gamma), Y: c.B * math.Sin(c.Gamma)}
}

// ToCartesian converts fractional coordinates (u, v) to Cartesian (X, Y).
func (c *Cell) ToCartesian(u, v float64) r2.Vec {
	return c.aVector().Scale(u).Add(c.bVector().Scale(v))
}

// ToCartesianIsometry converts a transform expressed in fractional
// coordinates to one expressed in world (Cartesian) coordinates: its
// translation is mapped through ToCartesian, and its linear part is
// carried over unchanged (it is not conjugated by the cell's basis
// change).
func (c *Cell) ToCartesianIsometry(t transform2.Transform2D) transform2.Transform2D {
	cart := t
	cart.T = c.ToCartesian(t.T.X, t.T.Y)
	return cart
}

// DegreesOfFreedom returns the basis handles for this cell's free
// parameters, in the stable order: A; then B if the family has a second
// free side length; then Gamma if the family has a free angle.
func (c *Cell) DegreesOfFreedom() []basis.Handle {
	handles := []basis.Handle{basis.NewHandle(&c.A, 0.01, c.A)}
	if c.Family == Orthorhombic || c.Family == Monoclinic {
		handles = append(handles, basis.NewHandle(&c.B, 0.01, c.B))
	}
	if c.Family == Monoclinic {
		handles = append(handles, basis.NewHandle(&c.Gamma, math.Pi/4, 3*math.Pi/4))
	}
	return handles
}

// PeriodicImages streams every translation t + i·aVector + j·bVector for
// (i, j) in [-rng, rng]², calling visit for each. If includeSelf is false,
// the (i, j) = (0, 0) image is skipped. Iteration stops early if visit
// returns false. No slice of images is ever allocated.
func (c *Cell) PeriodicImages(t transform2.Transform2D, rng int, includeSelf bool, visit func(transform2.Transform2D) bool) {
	av, bv := c.aVector(), c.bVector()
	for i := -rng; i <= rng; i++ {
		for j := -rng; j <= rng; j++ {
			if !includeSelf && i == 0 && j == 0 {
				continue
			}
			shifted := t
			shifted.T = t.T.Add(av.Scale(float64(i))).Add(bv.Scale(float64(j)))
			if !visit(shifted) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for logging and debug output.
func (c *Cell) String() string {
	return fmt.Sprintf("Cell{family=%s, a=%g, b=%g, gamma=%g}", c.Family, c.A, c.B, c.Gamma)
}
