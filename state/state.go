// Package state implements PackedState, the composition of a Shape, a
// Cell and a non-empty list of OccupiedSites that the optimizer searches
// over: it computes the packing fraction (or "invalid" on any shape
// intersection) and generates the parameter Basis the optimizer mutates.
package state

import (
	"math"

	"github.com/gonum-community/packing2d/basis"
	"github.com/gonum-community/packing2d/cell"
	"github.com/gonum-community/packing2d/packerr"
	"github.com/gonum-community/packing2d/shape"
	"github.com/gonum-community/packing2d/site"
	"github.com/gonum-community/packing2d/transform2"
	"github.com/gonum-community/packing2d/wallpaper"
)

// PackedState owns one Shape, one Cell and a non-empty list of
// OccupiedSites. If Score returns a value, no pair of shape images
// intersects under the periodic tiling the cell implies.
type PackedState struct {
	Wallpaper wallpaper.Group
	Shape     shape.Shape
	Cell      *cell.Cell
	Sites     []*site.OccupiedSite
}

// rotationalSymmetrier is implemented by shapes that know their own
// rotational symmetry order, used to bound each site's free angle.
type rotationalSymmetrier interface {
	RotationalSymmetries() int
}

func rotationalSymmetry(s shape.Shape) int {
	if rs, ok := s.(rotationalSymmetrier); ok {
		n := rs.RotationalSymmetries()
		if n >= 1 {
			return n
		}
	}
	return 1
}

// Initialise builds the initial PackedState for s packed under wallpaper
// group w at the given isopointal Wyckoff sites: the cell is seeded at
// 4·enclosing_radius·Σmultiplicity, each site at its default position.
func Initialise(s shape.Shape, w wallpaper.Group, wyckoffs []wallpaper.WyckoffSite) *PackedState {
	numShapes := 0
	for _, wy := range wyckoffs {
		numShapes += wy.Multiplicity()
	}
	maxCellSize := 4 * s.EnclosingRadius() * float64(numShapes)

	c := cell.FromFamily(w.Family, maxCellSize)

	sites := make([]*site.OccupiedSite, len(wyckoffs))
	for i, wy := range wyckoffs {
		sites[i] = site.FromWyckoff(wy)
	}

	return &PackedState{Wallpaper: w, Shape: s, Cell: c, Sites: sites}
}

// FromGroup builds the initial PackedState for s packed under group, using
// the group's single general Wyckoff site.
func FromGroup(s shape.Shape, group wallpaper.Group) (*PackedState, error) {
	wy, err := wallpaper.NewWyckoffSite(group)
	if err != nil {
		return nil, err
	}
	return Initialise(s, group, []wallpaper.WyckoffSite{wy}), nil
}

// TotalShapes returns the sum of multiplicities over every occupied site.
func (p *PackedState) TotalShapes() int {
	total := 0
	for _, s := range p.Sites {
		total += s.Multiplicity()
	}
	return total
}

// RelativePositions streams every site's symmetry-expanded positions in
// fractional coordinates, calling visit for each. Iteration stops early if
// visit returns false.
func (p *PackedState) RelativePositions(visit func(transform2.Transform2D) bool) {
	for _, s := range p.Sites {
		for _, t := range s.Positions() {
			if !visit(t) {
				return
			}
		}
	}
}

// CartesianPositions streams every site's symmetry-expanded positions
// converted to world (Cartesian) coordinates. Iteration stops early if
// visit returns false.
func (p *PackedState) CartesianPositions(visit func(transform2.Transform2D) bool) {
	p.RelativePositions(func(t transform2.Transform2D) bool {
		return visit(p.Cell.ToCartesianIsometry(t))
	})
}

// cartesianPositionsSlice collects CartesianPositions into a slice; used
// where the home-cell pairwise intersection check needs indexed,
// two-pass access over what is always a small (== TotalShapes) list.
func (p *PackedState) cartesianPositionsSlice() []transform2.Transform2D {
	out := make([]transform2.Transform2D, 0, p.TotalShapes())
	p.CartesianPositions(func(t transform2.Transform2D) bool {
		out = append(out, t)
		return true
	})
	return out
}

// Score returns the packing fraction (shape area × total shapes / cell
// area) and true, or (0, false) if any pair of shape images intersects.
// A missing score is not an error: it is the normal result for an invalid
// trial configuration, and the optimizer treats it as an infinitely bad
// state.
func (p *PackedState) Score() (float64, bool) {
	if p.CheckIntersection() {
		return 0, false
	}
	return (p.Shape.Area() * float64(p.TotalShapes())) / p.Cell.Area(), true
}

// GenerateBasis concatenates the cell's degrees of freedom with each
// site's, in iteration order.
func (p *PackedState) GenerateBasis() *basis.Basis {
	b := basis.New(p.Cell.DegreesOfFreedom()...)
	rotSym := rotationalSymmetry(p.Shape)
	for _, s := range p.Sites {
		b.Append(s.Basis(rotSym)...)
	}
	return &b
}

// periodicRange returns the neighbour-search radius, in cells, for the
// current cell shape: tighter cells (near-square, near-orthogonal) only
// need to look one cell out; skewed cells need a wider search to be safe.
func periodicRange(c *cell.Cell) int {
	ratio := c.A / c.B
	delta := math.Abs(c.Gamma - math.Pi/2)
	switch {
	case 0.5 < ratio && ratio < 2 && delta < 0.2:
		return 1
	case 0.3 < ratio && ratio < 3 && delta < 0.5:
		return 2
	default:
		return 3
	}
}

// CheckIntersection reports whether any pair of shape images overlaps,
// either within the home cell or against a neighbouring periodic image.
// Exported (the original keeps this private) so a caller rejecting an
// infeasible initial state can explain why, rather than only learning that
// Score returned false.
func (p *PackedState) CheckIntersection() bool {
	home := p.cartesianPositionsSlice()
	posed := make([]shape.Posed, len(home))
	for i, t := range home {
		posed[i] = p.Shape.Transform(t)
	}
	for i := range posed {
		for j := i + 1; j < len(posed); j++ {
			if posed[i].Intersects(posed[j]) {
				return true
			}
		}
	}

	rng := periodicRange(p.Cell)
	radiusSq := math.Pow(2*p.Shape.EnclosingRadius(), 2)

	for i, t1 := range home {
		shape1 := posed[i]
		found := false
		p.RelativePositions(func(pos transform2.Transform2D) bool {
			p.Cell.PeriodicImages(pos, rng, false, func(t2 transform2.Transform2D) bool {
				dx := t1.T.X - t2.T.X
				dy := t1.T.Y - t2.T.Y
				if dx*dx+dy*dy <= radiusSq {
					shape2 := p.Shape.Transform(t2)
					if shape1.Intersects(shape2) {
						found = true
						return false
					}
				}
				return true
			})
			return !found
		})
		if found {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of p: a fresh Cell and fresh OccupiedSites, so
// that a Basis generated from the clone never aliases p's fields. Shape is
// immutable once constructed and is shared, not copied.
func (p *PackedState) Clone() *PackedState {
	clonedCell := *p.Cell
	clonedSites := make([]*site.OccupiedSite, len(p.Sites))
	for i, s := range p.Sites {
		clonedSites[i] = s.Clone()
	}
	return &PackedState{
		Wallpaper: p.Wallpaper,
		Shape:     p.Shape,
		Cell:      &clonedCell,
		Sites:     clonedSites,
	}
}

// Less orders states by score: a state with no score sorts below every
// scored state, so that the optimizer's best-so-far tracking starts from
// a sound default regardless of whether the initial state happened to
// score.
func Less(a, b *PackedState) bool {
	sa, oka := a.Score()
	sb, okb := b.Score()
	switch {
	case !oka && !okb:
		return false
	case !oka:
		return true
	case !okb:
		return false
	default:
		return sa < sb
	}
}

// CheckFeasible returns a *packerr.InfeasibleInitialError if p already
// intersects, and nil otherwise, for callers that construct a PackedState
// and must reject an intersecting one before ever entering the optimizer.
func CheckFeasible(p *PackedState) error {
	if p.CheckIntersection() {
		return &packerr.InfeasibleInitialError{}
	}
	return nil
}
