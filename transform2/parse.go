package transform2

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gonum-community/packing2d/packerr"
)

// ParseOperations parses a symbolic affine triplet such as "x+1/2,-y" or
// "(-x, x+y)" into a Transform2D. Each of the two comma-separated operands
// is a linear combination of x and y plus a rational constant (integer
// numerator over integer denominator); recognized tokens are x, y, decimal
// digits, +, -, *, /, whitespace, and an optional pair of surrounding
// parentheses. Any other token is a parse failure.
func ParseOperations(s string) (Transform2D, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	operands := strings.Split(trimmed, ",")
	if len(operands) != 2 {
		return Transform2D{}, &packerr.ParseError{Input: s, Reason: "expected exactly two comma-separated operands"}
	}

	var m [2][2]float64
	var t r2.Vec
	for row, operand := range operands {
		coeffs, constant, err := parseOperand(operand)
		if err != nil {
			return Transform2D{}, &packerr.ParseError{Input: s, Reason: err.Error()}
		}
		m[row][0], m[row][1] = coeffs[0], coeffs[1]
		if row == 0 {
			t.X = constant
		} else {
			t.Y = constant
		}
	}
	return Transform2D{M: m, T: t}, nil
}

// parseOperand parses a single "x", "y"-linear operand like "-x+1/2" into
// its (x, y) coefficients and constant term, following the token-by-token
// scan the original symmetry-string grammar uses: a running sign, an
// optional pending '*'/'/' operator applied to the next digit, and x/y
// tokens that latch the current sign into the corresponding coefficient.
func parseOperand(operand string) (coeffs [2]float64, constant float64, err error) {
	sign := 1.0
	var pendingOp byte
	for _, r := range operand {
		switch {
		case r == 'x':
			coeffs[0] = sign
			sign = 1
		case r == 'y':
			coeffs[1] = sign
			sign = 1
		case r == '+':
			sign = 1
		case r == '-':
			sign = -1
		case r == '*' || r == '/':
			pendingOp = byte(r)
		case r >= '0' && r <= '9':
			val := float64(r - '0')
			if pendingOp != 0 {
				switch pendingOp {
				case '/':
					if val == 0 {
						return coeffs, 0, fmt.Errorf("division by zero in %q", operand)
					}
					constant = sign * constant / val
				case '*':
					constant = sign * constant * val
				}
				pendingOp = 0
			} else {
				constant = sign * val
			}
			sign = 1
		case r == ' ' || r == '\t':
			// ignored
		default:
			return coeffs, 0, fmt.Errorf("unrecognized token %q in %q", r, operand)
		}
	}
	return coeffs, constant, nil
}
