// Package site implements an occupied Wyckoff site: a Wyckoff position plus
// its free (x, y, angle) parameters, and the expansion of that position
// into the site's symmetry-equivalent copies.
package site

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gonum-community/packing2d/basis"
	"github.com/gonum-community/packing2d/transform2"
	"github.com/gonum-community/packing2d/wallpaper"
)

// OccupiedSite is one Wyckoff site together with the free scalar
// parameters locating it within the unit cell, in fractional coordinates.
type OccupiedSite struct {
	Wyckoff     wallpaper.WyckoffSite
	X, Y, Angle float64
}

// FromWyckoff returns the OccupiedSite for w, seeded at
// x = y = -0.5 + 0.5/multiplicity, angle = 0.
func FromWyckoff(w wallpaper.WyckoffSite) *OccupiedSite {
	pos := -0.5 + 0.5/float64(w.Multiplicity())
	return &OccupiedSite{Wyckoff: w, X: pos, Y: pos, Angle: 0}
}

// Multiplicity returns the number of symmetry copies of this site.
func (s *OccupiedSite) Multiplicity() int {
	return s.Wyckoff.Multiplicity()
}

// localTransform is the site's own position and orientation, in fractional
// coordinates, before any Wyckoff symmetry is applied.
func (s *OccupiedSite) localTransform() transform2.Transform2D {
	return transform2.New(s.Angle, r2.Vec{X: s.X, Y: s.Y})
}

// Positions returns the site's multiplicity() Transform2D values, in
// fractional coordinates: each Wyckoff symmetry composed with the site's
// own local transform.
func (s *OccupiedSite) Positions() []transform2.Transform2D {
	out := make([]transform2.Transform2D, len(s.Wyckoff.Symmetries))
	local := s.localTransform()
	for i, sym := range s.Wyckoff.Symmetries {
		out[i] = sym.Compose(local)
	}
	return out
}

// Basis returns this site's degrees of freedom: x and y bounded to
// [-0.5, 0.5], and angle bounded to [0, 2π/rotationalSymmetry].
func (s *OccupiedSite) Basis(rotationalSymmetry int) []basis.Handle {
	if rotationalSymmetry < 1 {
		rotationalSymmetry = 1
	}
	return []basis.Handle{
		basis.NewHandle(&s.X, -0.5, 0.5),
		basis.NewHandle(&s.Y, -0.5, 0.5),
		basis.NewHandle(&s.Angle, 0, 2*math.Pi/float64(rotationalSymmetry)),
	}
}

// Clone returns an independent copy of s, suitable for a PackedState.Clone
// whose basis handles must not alias the original's fields.
func (s *OccupiedSite) Clone() *OccupiedSite {
	clone := *s
	return &clone
}
