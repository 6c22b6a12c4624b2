// Package render writes a PackedState out as plain text or SVG, the Go
// analogue of the original implementation's as_positions/to_figure
// collaborators.
package render

import (
	"fmt"
	"io"

	"github.com/gonum-community/packing2d/shape"
	"github.com/gonum-community/packing2d/state"
	"github.com/gonum-community/packing2d/transform2"
)

// WritePositions writes s's cell parameters followed by one line per
// world-frame Transform2D, in the order CartesianPositions visits them.
func WritePositions(w io.Writer, s *state.PackedState) error {
	if _, err := fmt.Fprintf(w, "cell %s\n", s.Cell); err != nil {
		return err
	}
	score, ok := s.Score()
	if ok {
		if _, err := fmt.Fprintf(w, "score %g\n", score); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintln(w, "score invalid"); err != nil {
			return err
		}
	}

	var writeErr error
	i := 0
	s.CartesianPositions(func(t transform2.Transform2D) bool {
		_, writeErr = fmt.Fprintf(w, "%d %s\n", i, t)
		i++
		return writeErr == nil
	})
	return writeErr
}

// WriteSVG writes a minimal standalone SVG document: the unit cell outline
// as a polygon, and one polygon or circle per shape copy positioned via
// s.CartesianPositions. A shape whose Posed form implements neither
// shape.Polygonal nor shape.DiskUnion is skipped rather than erroring,
// since new shape variants outside this package's closed set cannot exist
// but a future variant added inside it might not yet render.
func WriteSVG(w io.Writer, s *state.PackedState) error {
	corners := []struct{ u, v float64 }{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	minX, minY, maxX, maxY := 0.0, 0.0, 0.0, 0.0
	first := true
	cellPts := make([]string, len(corners))
	for i, c := range corners {
		p := s.Cell.ToCartesian(c.u, c.v)
		cellPts[i] = fmt.Sprintf("%g,%g", p.X, p.Y)
		if first || p.X < minX {
			minX = p.X
		}
		if first || p.Y < minY {
			minY = p.Y
		}
		if first || p.X > maxX {
			maxX = p.X
		}
		if first || p.Y > maxY {
			maxY = p.Y
		}
		first = false
	}
	pad := 0.1 * (maxX - minX + maxY - minY + 1)
	minX -= pad
	minY -= pad
	width := maxX - minX + 2*pad
	height := maxY - minY + 2*pad

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		minX, minY, width, height); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"<polygon points=\"%s\" fill=\"none\" stroke=\"black\" stroke-width=\"0.01\"/>\n",
		joinPoints(cellPts)); err != nil {
		return err
	}

	var writeErr error
	s.CartesianPositions(func(t transform2.Transform2D) bool {
		posed := s.Shape.Transform(t)
		switch p := posed.(type) {
		case shape.Polygonal:
			verts := p.Vertices()
			pts := make([]string, len(verts))
			for i, v := range verts {
				pts[i] = fmt.Sprintf("%g,%g", v.X, v.Y)
			}
			_, writeErr = fmt.Fprintf(w,
				"<polygon points=\"%s\" fill=\"lightblue\" stroke=\"black\" stroke-width=\"0.005\"/>\n",
				joinPoints(pts))
		case shape.DiskUnion:
			for _, d := range p.WorldDisks() {
				if _, err := fmt.Fprintf(w,
					"<circle cx=\"%g\" cy=\"%g\" r=\"%g\" fill=\"lightblue\" stroke=\"black\" stroke-width=\"0.005\"/>\n",
					d.Center.X, d.Center.Y, d.Radius); err != nil {
					writeErr = err
					break
				}
			}
		}
		return writeErr == nil
	})
	if writeErr != nil {
		return writeErr
	}

	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

func joinPoints(pts []string) string {
	out := ""
	for i, p := range pts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
