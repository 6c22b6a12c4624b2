// Package config centralizes the options a search run needs, independent
// of how they were sourced (CLI flags today, possibly a file later), and
// their validation.
package config

import "github.com/gonum-community/packing2d/packerr"

// Options holds the full set of parameters a packing search run needs.
type Options struct {
	Group string

	NumSides int

	Steps       int
	KTStart     float64
	KTFinish    float64
	MaxStepSize float64

	Seed    uint64
	HasSeed bool

	LogLevel string
}

// Defaults returns the baseline Options every entry point starts from
// before applying user overrides.
func Defaults() Options {
	return Options{
		NumSides:    4,
		Steps:       100,
		KTStart:     0.1,
		KTFinish:    0.001,
		MaxStepSize: 0.1,
		LogLevel:    "info",
	}
}

// Validate reports the first structural problem with o, or nil if o is
// usable as-is. It does not check that Group names a known wallpaper
// group — that lookup, and its error, belongs to the wallpaper package,
// which is the single source of truth for the set of known names.
func (o Options) Validate() error {
	switch {
	case o.Group == "":
		return &packerr.ParseError{Input: o.Group, Reason: "wallpaper group name is required"}
	case o.NumSides < 3:
		return &packerr.ParseError{Input: "num-sides", Reason: "a polygon needs at least three sides"}
	case o.Steps < 1:
		return &packerr.ParseError{Input: "steps", Reason: "must run at least one step"}
	case o.KTStart <= 0:
		return &packerr.ParseError{Input: "kt-start", Reason: "must be strictly positive"}
	case o.KTFinish <= 0:
		return &packerr.ParseError{Input: "kt-finish", Reason: "must be strictly positive"}
	case o.MaxStepSize <= 0:
		return &packerr.ParseError{Input: "max-step-size", Reason: "must be strictly positive"}
	}
	return nil
}
