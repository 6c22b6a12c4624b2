package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gonum-community/packing2d/packerr"
	"github.com/gonum-community/packing2d/transform2"
)

// Disk is one circle of a MolecularShape's union, in the shape's local
// frame.
type Disk struct {
	Center r2.Vec
	Radius float64
}

// MolecularShape is a rigid union of disks.
type MolecularShape struct {
	Name  string
	Disks []Disk
}

// Circle returns a MolecularShape consisting of a single unit disk at the
// origin.
func Circle() *MolecularShape {
	return &MolecularShape{Name: "Circle", Disks: []Disk{{Radius: 1}}}
}

// FromTrimer returns a MolecularShape of three disks of equal radius: one
// at the origin and two placed at distance from the origin, rotated
// symmetrically by ±angle/2.
func FromTrimer(distance, angle, radius float64) (*MolecularShape, error) {
	if radius <= 0 {
		return nil, &packerr.ShapeConstructionError{Reason: "trimer disk radius must be strictly positive"}
	}
	half := angle / 2
	return &MolecularShape{
		Name: "Trimer",
		Disks: []Disk{
			{Center: r2.Vec{}, Radius: radius},
			{Center: r2.Vec{X: distance * math.Cos(half), Y: distance * math.Sin(half)}, Radius: radius},
			{Center: r2.Vec{X: distance * math.Cos(-half), Y: distance * math.Sin(-half)}, Radius: radius},
		},
	}, nil
}

// Area returns the sum of the component disks' areas, which is exact when
// no two disks overlap (always for Circle; for FromTrimer only when its
// distance and angle keep the disks apart or tangent) and an overestimate
// for any union with overlapping disks.
func (s *MolecularShape) Area() float64 {
	var total float64
	for _, d := range s.Disks {
		total += math.Pi * d.Radius * d.Radius
	}
	return total
}

// EnclosingRadius returns the radius of the smallest circle centered at the
// shape's local origin that contains every disk.
func (s *MolecularShape) EnclosingRadius() float64 {
	max := 0.0
	for _, d := range s.Disks {
		r := r2.Norm(d.Center) + d.Radius
		if r > max {
			max = r
		}
	}
	return max
}

// RotationalSymmetries returns 1: a union of disks is not assumed to carry
// any rotational symmetry beyond the identity unless a caller constructs
// one specially (e.g. Circle, which is invariant under every rotation but
// is still reported conservatively here).
func (s *MolecularShape) RotationalSymmetries() int { return 1 }

// Transform places the disk union in world coordinates under t.
func (s *MolecularShape) Transform(t transform2.Transform2D) Posed {
	disks := make([]Disk, len(s.Disks))
	for i, d := range s.Disks {
		disks[i] = Disk{Center: t.ApplyPoint(d.Center), Radius: d.Radius}
	}
	return &posedMolecular{disks: disks, origin: origin(t)}
}

func (s *MolecularShape) isShape() {}

// posedMolecular is a MolecularShape placed in world coordinates.
type posedMolecular struct {
	disks  []Disk
	origin r2.Vec
}

func (p *posedMolecular) isPosed() {}

// WorldDisks returns the shape's disks in world coordinates, satisfying
// DiskUnion for renderers.
func (p *posedMolecular) WorldDisks() []Disk {
	return append([]Disk(nil), p.disks...)
}

// Intersects reports whether p and other overlap, dispatching on other's
// concrete variant.
func (p *posedMolecular) Intersects(other Posed) bool {
	switch o := other.(type) {
	case *posedMolecular:
		return disksIntersect(p, o)
	case *posedLine:
		return polygonDiskIntersect(o, p)
	default:
		return false
	}
}

func disksIntersect(a, b *posedMolecular) bool {
	for _, da := range a.disks {
		for _, db := range b.disks {
			sum := da.Radius + db.Radius
			if r2.Norm2(da.Center.Sub(db.Center)) <= sum*sum {
				return true
			}
		}
	}
	return false
}
