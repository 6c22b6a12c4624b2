package render

import (
	"strings"
	"testing"

	"github.com/gonum-community/packing2d/shape"
	"github.com/gonum-community/packing2d/state"
	"github.com/gonum-community/packing2d/wallpaper"
)

func seededState(t *testing.T) *state.PackedState {
	t.Helper()
	sq, err := shape.FromRadial("square", []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("FromRadial: %v", err)
	}
	g, err := wallpaper.Lookup("p1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	p, err := state.FromGroup(sq, g)
	if err != nil {
		t.Fatalf("FromGroup: %v", err)
	}
	return p
}

func TestWritePositionsIncludesScoreAndOneLinePerShape(t *testing.T) {
	p := seededState(t)
	var sb strings.Builder
	if err := WritePositions(&sb, p); err != nil {
		t.Fatalf("WritePositions: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "score") {
		t.Errorf("WritePositions output missing a score line:\n%s", out)
	}
	wantLines := p.TotalShapes()
	got := strings.Count(out, "M=")
	if got != wantLines {
		t.Errorf("WritePositions wrote %d transform lines, want %d", got, wantLines)
	}
}

func TestWriteSVGIsWellFormedEnough(t *testing.T) {
	p := seededState(t)
	var sb strings.Builder
	if err := WriteSVG(&sb, p); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("WriteSVG output should start with <svg, got:\n%s", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Error("WriteSVG output missing closing </svg>")
	}
	if !strings.Contains(out, "<polygon") {
		t.Error("WriteSVG output missing any <polygon> element")
	}
}
