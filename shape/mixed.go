package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// polygonDiskIntersect reports whether a posed polygon and a posed disk
// union overlap: true if any disk center lies inside the polygon, any
// polygon vertex lies inside a disk, or any polygon edge passes within a
// disk's radius of its center.
func polygonDiskIntersect(poly *posedLine, disks *posedMolecular) bool {
	if len(poly.world) == 0 {
		return false
	}
	for _, d := range disks.disks {
		if pointInPolygon(d.Center, poly.world) {
			return true
		}
		for i := range poly.world {
			a, b := poly.world[i], poly.world[(i+1)%len(poly.world)]
			if segmentToPointDistance(a, b, d.Center) <= d.Radius {
				return true
			}
		}
	}
	for _, v := range poly.world {
		for _, d := range disks.disks {
			if r2.Norm2(v.Sub(d.Center)) <= d.Radius*d.Radius {
				return true
			}
		}
	}
	return false
}

// segmentToPointDistance returns the shortest distance from point p to the
// segment ab.
func segmentToPointDistance(a, b, p r2.Vec) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	len2 := r2.Norm2(ab)
	if len2 == 0 {
		return r2.Norm(ap)
	}
	t := ap.Dot(ab) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return math.Hypot(p.X-closest.X, p.Y-closest.Y)
}
