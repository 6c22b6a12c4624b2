// Package wallpaper holds the closed table of 2D crystallographic
// wallpaper groups this system supports, and the Wyckoff site data derived
// from a group's symmetry operations.
package wallpaper

import (
	"github.com/gonum-community/packing2d/cell"
	"github.com/gonum-community/packing2d/packerr"
	"github.com/gonum-community/packing2d/transform2"
)

// Group is an immutable descriptor of one wallpaper group: its name, the
// crystal family of its unit cell, and its symmetry operations as symbolic
// affine strings (e.g. "-x,y").
type Group struct {
	Name       string
	Family     cell.Family
	Operations []string
}

var groups = map[string]Group{
	"p1":   {Name: "p1", Family: cell.Monoclinic, Operations: []string{"x,y"}},
	"p2":   {Name: "p2", Family: cell.Monoclinic, Operations: []string{"x,y", "-x,-y"}},
	"p1m1": {Name: "p1m1", Family: cell.Orthorhombic, Operations: []string{"x,y", "-x,y"}},
	"p1g1": {Name: "p1g1", Family: cell.Orthorhombic, Operations: []string{"x,y", "-x,y+1/2"}},
	"p2mm": {Name: "p2mm", Family: cell.Orthorhombic, Operations: []string{"x,y", "-x,-y", "-x,y", "x,-y"}},
	"p2mg": {Name: "p2mg", Family: cell.Orthorhombic, Operations: []string{"x,y", "-x,-y", "-x+1/2,y", "x+1/2,-y"}},
	"p2gg": {Name: "p2gg", Family: cell.Orthorhombic, Operations: []string{"x,y", "-x,-y", "-x+1/2,y+1/2", "x+1/2,-y+1/2"}},
}

// aliases maps accepted alternate spellings to a canonical group name.
var aliases = map[string]string{
	"pg": "p1g1",
}

// Lookup resolves a wallpaper group name, including the "pg" alias for
// "p1g1", to its Group descriptor. It returns a *packerr.ParseError for any
// other unrecognized name.
func Lookup(name string) (Group, error) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	g, ok := groups[name]
	if !ok {
		return Group{}, &packerr.ParseError{Input: name, Reason: "unknown wallpaper group"}
	}
	return g, nil
}

// Names returns the canonical group names, in the order of the table in
// the system's external documentation.
func Names() []string {
	return []string{"p1", "p2", "p1m1", "p1g1", "p2mm", "p2mg", "p2gg"}
}

// WyckoffSite describes one occupied Wyckoff position: a letter label, the
// concrete symmetry transforms carried over from the group, a rotational
// symmetry count, and primary/secondary mirror flags.
type WyckoffSite struct {
	Letter             byte
	Symmetries         []transform2.Transform2D
	RotationalSymmetry int
	MirrorPrimary      bool
	MirrorSecondary    bool
}

// NewWyckoffSite builds the general Wyckoff site for group: the one whose
// symmetries are exactly the group's operation list, parsed into
// Transform2D values, with no assumed extra rotational symmetry or mirror
// status. This is the only Wyckoff site spec.md's data model names
// explicitly; special (non-general) Wyckoff positions with a reduced
// degrees-of-freedom list are out of scope, matching the original's
// unimplemented WyckoffSite.degrees_of_freedom override.
func NewWyckoffSite(group Group) (WyckoffSite, error) {
	symmetries := make([]transform2.Transform2D, len(group.Operations))
	for i, op := range group.Operations {
		t, err := transform2.ParseOperations(op)
		if err != nil {
			return WyckoffSite{}, err
		}
		symmetries[i] = t
	}
	return WyckoffSite{
		Letter:             'a',
		Symmetries:         symmetries,
		RotationalSymmetry: 1,
	}, nil
}

// Multiplicity returns the number of symmetry copies this site expands to.
func (w WyckoffSite) Multiplicity() int {
	return len(w.Symmetries)
}
