package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gonum-community/packing2d/packerr"
	"github.com/gonum-community/packing2d/transform2"
)

// LineShape is a convex polygon described by a sequence of vertex radii at
// equally spaced angles 2πi/n around the shape's local origin.
type LineShape struct {
	Name  string
	Radii []float64

	vertices []r2.Vec
	area     float64
}

// FromRadial builds a LineShape from a name and a list of vertex radii. It
// fails if fewer than three radii are given or any radius is not strictly
// positive. The resulting shape's rotational symmetry order and mirror
// count are taken to be len(radii), which is exact for the regular n-gons
// this system is built around (equal radii) and, as in the original
// source, is not re-derived for an irregular radii list.
func FromRadial(name string, radii []float64) (*LineShape, error) {
	if len(radii) < 3 {
		return nil, &packerr.ShapeConstructionError{Reason: "a polygon needs at least three vertices"}
	}
	for _, r := range radii {
		if r <= 0 {
			return nil, &packerr.ShapeConstructionError{Reason: "vertex radii must be strictly positive"}
		}
	}

	n := len(radii)
	vertices := make([]r2.Vec, n)
	step := 2 * math.Pi / float64(n)
	for i, r := range radii {
		theta := step * float64(i)
		vertices[i] = r2.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}

	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += radii[i] * radii[j] * math.Sin(step)
	}
	area *= 0.5

	return &LineShape{Name: name, Radii: append([]float64(nil), radii...), vertices: vertices, area: area}, nil
}

// Area returns the polygon's signed area, computed as
// ½ Σ r_i r_{i+1} sin(2π/n).
func (s *LineShape) Area() float64 { return s.area }

// EnclosingRadius returns the largest vertex radius.
func (s *LineShape) EnclosingRadius() float64 {
	max := 0.0
	for _, r := range s.Radii {
		if r > max {
			max = r
		}
	}
	return max
}

// RotationalSymmetries returns the number of rotations under which this
// shape is equivalent, used to bound a site's free orientation angle.
func (s *LineShape) RotationalSymmetries() int { return len(s.Radii) }

// Mirrors returns the number of mirror lines of the shape.
func (s *LineShape) Mirrors() int { return len(s.Radii) }

// Transform places the polygon in world coordinates under t.
func (s *LineShape) Transform(t transform2.Transform2D) Posed {
	world := make([]r2.Vec, len(s.vertices))
	for i, v := range s.vertices {
		world[i] = t.ApplyPoint(v)
	}
	return &posedLine{world: world, origin: origin(t)}
}

func (s *LineShape) isShape() {}

// posedLine is a LineShape placed in world coordinates.
type posedLine struct {
	world  []r2.Vec
	origin r2.Vec
}

func (p *posedLine) isPosed() {}

// Vertices returns the polygon's vertices in world coordinates, satisfying
// Polygonal for renderers.
func (p *posedLine) Vertices() []r2.Vec {
	return append([]r2.Vec(nil), p.world...)
}

// Intersects reports whether p and other overlap, dispatching on other's
// concrete variant.
func (p *posedLine) Intersects(other Posed) bool {
	switch o := other.(type) {
	case *posedLine:
		return polygonsIntersect(p, o)
	case *posedMolecular:
		return polygonDiskIntersect(p, o)
	default:
		return false
	}
}

func polygonsIntersect(a, b *posedLine) bool {
	if len(a.world) == 0 || len(b.world) == 0 {
		return false
	}
	for i := range a.world {
		a0, a1 := a.world[i], a.world[(i+1)%len(a.world)]
		for j := range b.world {
			b0, b1 := b.world[j], b.world[(j+1)%len(b.world)]
			if segmentsIntersect(a0, a1, b0, b1) {
				return true
			}
		}
	}
	// Full containment: one polygon's origin lies strictly inside the other.
	return pointInPolygon(a.origin, b.world) || pointInPolygon(b.origin, a.world)
}

// segmentsIntersect reports whether segments p1p2 and p3p4 cross, counting
// an endpoint lying on the other segment as an intersection.
func segmentsIntersect(p1, p2, p3, p4 r2.Vec) bool {
	d1 := cross(p4.Sub(p3), p1.Sub(p3))
	d2 := cross(p4.Sub(p3), p2.Sub(p3))
	d3 := cross(p2.Sub(p1), p3.Sub(p1))
	d4 := cross(p2.Sub(p1), p4.Sub(p1))

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func cross(a, b r2.Vec) float64 { return a.X*b.Y - a.Y*b.X }

// onSegment reports whether point q, known to be collinear with segment pr,
// lies within its bounding box.
func onSegment(p, r, q r2.Vec) bool {
	return math.Min(p.X, r.X) <= q.X && q.X <= math.Max(p.X, r.X) &&
		math.Min(p.Y, r.Y) <= q.Y && q.Y <= math.Max(p.Y, r.Y)
}

// pointInPolygon reports whether v lies strictly inside the polygon with
// vertices poly, using an even-odd ray cast to the right of v.
func pointInPolygon(v r2.Vec, poly []r2.Vec) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > v.Y) != (pj.Y > v.Y) {
			xCross := (pj.X-pi.X)*(v.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if v.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}
