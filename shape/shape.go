// Package shape implements the rigid-body geometry of the packing core: a
// closed sum of two shape variants (convex polygon, union of disks), the
// posed (world-frame) form of each, and the intersection tests between
// them. The variant set is closed by construction — Shape and Posed are
// interfaces with an unexported marker method, so no type outside this
// package can implement them, mirroring a Rust enum's exhaustiveness
// without open inheritance.
package shape

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gonum-community/packing2d/transform2"
)

// Shape is a rigid body in its own local frame: it knows its area, the
// radius of the smallest circle centered at its origin that encloses it,
// and how to produce a Posed instance of itself in world coordinates.
type Shape interface {
	Area() float64
	EnclosingRadius() float64
	Transform(t transform2.Transform2D) Posed

	isShape()
}

// Posed is a Shape already placed in world coordinates by a Transform2D. It
// supports exactly one operation: testing for intersection with another
// Posed shape.
type Posed interface {
	Intersects(other Posed) bool

	isPosed()
}

// origin returns the world-frame position of a shape instance's local
// origin, used by the polygon containment fallback.
func origin(t transform2.Transform2D) r2.Vec {
	return t.ApplyPoint(r2.Vec{})
}

// Polygonal is implemented by a Posed value whose outline is a closed
// polygon, letting a renderer recover world-frame vertices without a type
// switch over this package's unexported concrete types.
type Polygonal interface {
	Vertices() []r2.Vec
}

// DiskUnion is implemented by a Posed value whose outline is a union of
// circles, letting a renderer recover world-frame disks the same way.
type DiskUnion interface {
	WorldDisks() []Disk
}
