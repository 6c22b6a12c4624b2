// Package transform2 implements rigid motions and reflections of the
// Euclidean plane, and a parser for the symbolic affine notation used to
// encode wallpaper-group symmetry operations (e.g. "-x+1/2,y").
package transform2

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform2D is an affine map of the plane: a 2×2 linear part M followed
// by a translation T. M is a proper rotation for transforms built with New
// or Identity, but a wallpaper-group symmetry operation such as "-x,y" is
// an improper map (a reflection), so ParseOperations produces a general M
// rather than restricting to rotations. Representing the linear part
// explicitly, rather than as a single rotation angle, is what lets the same
// type carry both site transforms and symmetry operations — the original
// source does this too, by constructing a nalgebra Rotation2 from an
// unchecked, possibly improper matrix.
type Transform2D struct {
	M [2][2]float64
	T r2.Vec
}

// Identity returns the transform that leaves every point and vector fixed.
func Identity() Transform2D {
	return Transform2D{M: [2][2]float64{{1, 0}, {0, 1}}}
}

// New returns the transform that rotates by theta radians and then
// translates by t.
func New(theta float64, t r2.Vec) Transform2D {
	c, s := math.Cos(theta), math.Sin(theta)
	return Transform2D{
		M: [2][2]float64{{c, -s}, {s, c}},
		T: t,
	}
}

// Rotation returns the 2×2 linear part of t, in row-major order.
func (t Transform2D) Rotation() [2][2]float64 {
	return t.M
}

// ApplyVector applies the linear part of t to v, without translating.
func (t Transform2D) ApplyVector(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.M[0][0]*v.X + t.M[0][1]*v.Y,
		Y: t.M[1][0]*v.X + t.M[1][1]*v.Y,
	}
}

// ApplyPoint applies the linear part of t to p and then translates by T.
func (t Transform2D) ApplyPoint(p r2.Vec) r2.Vec {
	return t.ApplyVector(p).Add(t.T)
}

// Compose returns t ∘ other: applying the result to a point is the same as
// applying other first and then t.
func (t Transform2D) Compose(other Transform2D) Transform2D {
	var m [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = t.M[i][0]*other.M[0][j] + t.M[i][1]*other.M[1][j]
		}
	}
	return Transform2D{
		M: m,
		T: t.ApplyVector(other.T).Add(t.T),
	}
}

// String implements fmt.Stringer for logging and debug output.
func (t Transform2D) String() string {
	return fmt.Sprintf("M=[[%g %g] [%g %g]], t=(%g, %g)",
		t.M[0][0], t.M[0][1], t.M[1][0], t.M[1][1], t.T.X, t.T.Y)
}
