// Package polybool computes Boolean set operations — union, intersection,
// difference, and symmetric difference — on planar polygonal regions
// represented as multipolygons.
//
// The core of the package is a Bentley–Ottmann sweep-line engine with
// Martínez/Greiner–Hormann-style boundary classification: segments are
// swept left to right, intersections are detected and split on the fly,
// and each surviving segment is classified against every input
// multipolygon before an operation-specific predicate decides whether it
// belongs in the result. The surviving segments are then stitched back
// into oriented rings, polygons, and multipolygons.
//
// Self-intersecting and overlapping rings of floating-point vertices are
// accepted. A ring left with fewer than three distinct points after
// deduplication is rejected by NewRing with ErrDegenerateRing.
package polybool
