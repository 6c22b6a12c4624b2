package shape

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gonum-community/packing2d/transform2"
)

const tol = 1e-9

func TestFromRadialRejectsInvalid(t *testing.T) {
	if _, err := FromRadial("too-few", []float64{1, 1}); err == nil {
		t.Error("FromRadial with 2 radii: want error, got nil")
	}
	if _, err := FromRadial("non-positive", []float64{1, 1, -1}); err == nil {
		t.Error("FromRadial with a non-positive radius: want error, got nil")
	}
}

func TestSquareAreaAndEnclosingRadius(t *testing.T) {
	// A square inscribed in a unit circle: radii all 1, four vertices.
	sq, err := FromRadial("square", []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("FromRadial: %v", err)
	}
	wantArea := 2.0
	if !scalar.EqualWithinAbs(sq.Area(), wantArea, tol) {
		t.Errorf("Area() = %g, want %g", sq.Area(), wantArea)
	}
	if !scalar.EqualWithinAbs(sq.EnclosingRadius(), 1, tol) {
		t.Errorf("EnclosingRadius() = %g, want 1", sq.EnclosingRadius())
	}
	if sq.RotationalSymmetries() != 4 {
		t.Errorf("RotationalSymmetries() = %d, want 4", sq.RotationalSymmetries())
	}
}

func TestLineShapeIntersectsSelfOverlap(t *testing.T) {
	sq, err := FromRadial("square", []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("FromRadial: %v", err)
	}
	a := sq.Transform(transform2.Identity())
	b := sq.Transform(transform2.New(0, r2.Vec{X: 0.1}))
	if !a.Intersects(b) {
		t.Error("two overlapping squares should intersect")
	}
}

func TestLineShapeNoIntersectionWhenFarApart(t *testing.T) {
	sq, err := FromRadial("square", []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("FromRadial: %v", err)
	}
	a := sq.Transform(transform2.Identity())
	b := sq.Transform(transform2.New(0, r2.Vec{X: 10}))
	if a.Intersects(b) {
		t.Error("two squares 10 units apart should not intersect")
	}
}

func TestCirclesDoNotIntersectWhenFarApart(t *testing.T) {
	c := Circle()
	a := c.Transform(transform2.Identity())
	b := c.Transform(transform2.New(0, r2.Vec{X: 5}))
	if a.Intersects(b) {
		t.Error("two unit circles 5 units apart should not intersect")
	}
}

func TestCirclesIntersectWhenOverlapping(t *testing.T) {
	c := Circle()
	a := c.Transform(transform2.Identity())
	b := c.Transform(transform2.New(0, r2.Vec{X: 1.9}))
	if !a.Intersects(b) {
		t.Error("two unit circles 1.9 units apart should intersect")
	}
}

func TestFromTrimerRejectsNonPositiveRadius(t *testing.T) {
	if _, err := FromTrimer(1, math.Pi/3, 0); err == nil {
		t.Error("FromTrimer with radius 0: want error, got nil")
	}
}

func TestPolygonDiskIntersection(t *testing.T) {
	sq, err := FromRadial("square", []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("FromRadial: %v", err)
	}
	c := Circle()

	poly := sq.Transform(transform2.Identity())
	diskInside := c.Transform(transform2.New(0, r2.Vec{}))
	if !poly.Intersects(diskInside) {
		t.Error("a unit circle centered at the origin should intersect the square inscribed in it")
	}

	diskFar := c.Transform(transform2.New(0, r2.Vec{X: 10}))
	if poly.Intersects(diskFar) {
		t.Error("a unit circle 10 units away should not intersect the square")
	}
}

func TestPosedLineVertices(t *testing.T) {
	sq, err := FromRadial("square", []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("FromRadial: %v", err)
	}
	posed := sq.Transform(transform2.Identity())
	poly, ok := posed.(Polygonal)
	if !ok {
		t.Fatal("posed LineShape should implement Polygonal")
	}
	if len(poly.Vertices()) != 4 {
		t.Errorf("len(Vertices()) = %d, want 4", len(poly.Vertices()))
	}
}

func TestPosedMolecularWorldDisks(t *testing.T) {
	c := Circle()
	posed := c.Transform(transform2.Identity())
	du, ok := posed.(DiskUnion)
	if !ok {
		t.Fatal("posed MolecularShape should implement DiskUnion")
	}
	if len(du.WorldDisks()) != 1 {
		t.Errorf("len(WorldDisks()) = %d, want 1", len(du.WorldDisks()))
	}
}
