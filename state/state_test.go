package state

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/gonum-community/packing2d/shape"
	"github.com/gonum-community/packing2d/wallpaper"
)

const tol = 1e-9

func unitSquare(t *testing.T) shape.Shape {
	t.Helper()
	sq, err := shape.FromRadial("square", []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("FromRadial: %v", err)
	}
	return sq
}

func TestInitialScoreSquareP1(t *testing.T) {
	sq := unitSquare(t)
	g, err := wallpaper.Lookup("p1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	p, err := FromGroup(sq, g)
	if err != nil {
		t.Fatalf("FromGroup: %v", err)
	}
	score, ok := p.Score()
	if !ok {
		t.Fatal("Score() on the seeded p1 state should be valid")
	}
	want := 1.0 / 8.0
	if !scalar.EqualWithinAbs(score, want, tol) {
		t.Errorf("square+p1 seeded score = %g, want %g", score, want)
	}
}

func TestInitialScoreSquareP2mg(t *testing.T) {
	sq := unitSquare(t)
	g, err := wallpaper.Lookup("p2mg")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	p, err := FromGroup(sq, g)
	if err != nil {
		t.Fatalf("FromGroup: %v", err)
	}
	score, ok := p.Score()
	if !ok {
		t.Fatal("Score() on the seeded p2mg state should be valid")
	}
	want := 1.0 / 32.0
	if !scalar.EqualWithinAbs(score, want, tol) {
		t.Errorf("square+p2mg seeded score = %g, want %g", score, want)
	}
}

func TestCheckFeasibleOnSeededState(t *testing.T) {
	sq := unitSquare(t)
	for _, name := range wallpaper.Names() {
		g, err := wallpaper.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		p, err := FromGroup(sq, g)
		if err != nil {
			t.Fatalf("FromGroup(%q): %v", name, err)
		}
		if err := CheckFeasible(p); err != nil {
			t.Errorf("%q: seeded state should be feasible, got %v", name, err)
		}
	}
}

func TestCloneDoesNotAliasBasis(t *testing.T) {
	sq := unitSquare(t)
	g, err := wallpaper.Lookup("p1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	p, err := FromGroup(sq, g)
	if err != nil {
		t.Fatalf("FromGroup: %v", err)
	}
	clone := p.Clone()

	cloneBasis := clone.GenerateBasis()
	cloneBasis.Set(0, cloneBasis.Value(0)*0.5)

	if p.Cell.A == clone.Cell.A {
		t.Error("mutating a clone's basis should not change the original cell's A")
	}
}

func TestLessOrdersByScore(t *testing.T) {
	sq := unitSquare(t)
	gp1, err := wallpaper.Lookup("p1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	gp2mg, err := wallpaper.Lookup("p2mg")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	low, err := FromGroup(sq, gp2mg)
	if err != nil {
		t.Fatalf("FromGroup: %v", err)
	}
	high, err := FromGroup(sq, gp1)
	if err != nil {
		t.Fatalf("FromGroup: %v", err)
	}
	if !Less(low, high) {
		t.Error("the p2mg seed (score 1/32) should be Less than the p1 seed (score 1/8)")
	}
}

func TestGenerateBasisLengthMatchesDegreesOfFreedom(t *testing.T) {
	sq := unitSquare(t)
	g, err := wallpaper.Lookup("p2mm")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	p, err := FromGroup(sq, g)
	if err != nil {
		t.Fatalf("FromGroup: %v", err)
	}
	b := p.GenerateBasis()
	wantCell := len(p.Cell.DegreesOfFreedom())
	wantSites := 0
	for _, s := range p.Sites {
		wantSites += len(s.Basis(4))
	}
	if b.Len() != wantCell+wantSites {
		t.Errorf("GenerateBasis().Len() = %d, want %d", b.Len(), wantCell+wantSites)
	}
}
