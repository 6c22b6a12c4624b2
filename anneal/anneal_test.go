package anneal

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/gonum-community/packing2d/shape"
	"github.com/gonum-community/packing2d/state"
	"github.com/gonum-community/packing2d/wallpaper"
)

const tol = 1e-9

func seededState(t *testing.T, group string) *state.PackedState {
	t.Helper()
	sq, err := shape.FromRadial("square", []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("FromRadial: %v", err)
	}
	g, err := wallpaper.Lookup(group)
	if err != nil {
		t.Fatalf("Lookup(%q): %v", group, err)
	}
	p, err := state.FromGroup(sq, g)
	if err != nil {
		t.Fatalf("FromGroup(%q): %v", group, err)
	}
	return p
}

func TestKTRatio(t *testing.T) {
	v := Vars{KTStart: 1, KTFinish: 0.01, Steps: 2}
	got := v.KTRatio()
	want := 0.1
	if !scalar.EqualWithinAbs(got, want, tol) {
		t.Errorf("KTRatio() = %g, want %g", got, want)
	}
}

func TestRunNeverReturnsWorseThanInitial(t *testing.T) {
	initial := seededState(t, "p2mg")
	initialScore, ok := initial.Score()
	if !ok {
		t.Fatal("seeded state should score")
	}

	vars := Vars{
		KTStart:     0.1,
		KTFinish:    0.01,
		MaxStepSize: 0.05,
		Steps:       200,
		Seed:        42,
		HasSeed:     true,
	}

	result, err := Run(vars, initial)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	bestScore, ok := result.Best.Score()
	if !ok {
		t.Fatal("Run should return a state that scores")
	}
	if bestScore < initialScore-tol {
		t.Errorf("Run returned best score %g, worse than initial score %g", bestScore, initialScore)
	}
}

func TestRunIsDeterministicForAFixedSeed(t *testing.T) {
	vars := Vars{
		KTStart:     0.1,
		KTFinish:    0.01,
		MaxStepSize: 0.05,
		Steps:       50,
		Seed:        7,
		HasSeed:     true,
	}

	r1, err := Run(vars, seededState(t, "p1"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	r2, err := Run(vars, seededState(t, "p1"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	s1, _ := r1.Best.Score()
	s2, _ := r2.Best.Score()
	if !scalar.EqualWithinAbs(s1, s2, tol) {
		t.Errorf("two Run calls with the same seed gave scores %g and %g, want equal", s1, s2)
	}
	if r1.Rejections != r2.Rejections {
		t.Errorf("two Run calls with the same seed gave rejection counts %d and %d, want equal", r1.Rejections, r2.Rejections)
	}
}

func TestRunParallelPicksBestAcrossStarts(t *testing.T) {
	vars := Vars{
		KTStart:         0.1,
		KTFinish:        0.01,
		MaxStepSize:     0.05,
		Steps:           50,
		NumStartConfigs: 4,
		Seed:            1,
		HasSeed:         true,
	}

	result, err := RunParallel(vars, func() *state.PackedState {
		return seededState(t, "p2gg")
	})
	if err != nil {
		t.Fatalf("RunParallel: %v", err)
	}
	if _, ok := result.Best.Score(); !ok {
		t.Error("RunParallel should return a state that scores")
	}
}

func TestAcceptanceLogFavorsImprovingMove(t *testing.T) {
	// Doubling the packing fraction at kt=0.1 with n=4 is favorable:
	// log A = 0.5/0.1 − 4·ln 2 ≈ 2.23 > 0.
	logA := acceptanceLog(1, 2, 0.1, 4)
	if logA <= 0 {
		t.Errorf("acceptanceLog for an improving move = %g, want > 0", logA)
	}
}
