package polybool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func runUnion(t *testing.T, operands []*MultiPoly) *MultiPoly {
	t.Helper()
	segments, err := runSweep(&Operation{Type: Union, MultiPolys: operands}, testEpsilon)
	require.NoError(t, err)
	return stitch(segments, testEpsilon)
}

func ringPointSet(r *Ring) map[Point]bool {
	set := make(map[Point]bool, len(r.Points))
	for _, p := range r.Points {
		set[p] = true
	}
	return set
}

func TestStitchSingleSquareRoundTrips(t *testing.T) {
	result := runUnion(t, []*MultiPoly{square(0, 0, 10, 10)})

	require.Len(t, result.Polys, 1)
	poly := result.Polys[0]
	require.Empty(t, poly.Holes)
	require.Len(t, poly.Exterior.Points, 4)

	want := map[Point]bool{
		{X: 0, Y: 0}: true, {X: 10, Y: 0}: true,
		{X: 10, Y: 10}: true, {X: 0, Y: 10}: true,
	}
	require.Equal(t, want, ringPointSet(poly.Exterior))
}

func TestStitchTwoDisjointSquaresProduceTwoPolys(t *testing.T) {
	result := runUnion(t, []*MultiPoly{square(0, 0, 2, 2), square(10, 10, 12, 12)})

	require.Len(t, result.Polys, 2)
	for _, p := range result.Polys {
		require.Empty(t, p.Holes)
		require.Len(t, p.Exterior.Points, 4)
	}
}

func TestStitchSquareWithHole(t *testing.T) {
	exterior, err := NewRing([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, true, testEpsilon)
	require.NoError(t, err)
	hole, err := NewRing([]Point{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}}, false, testEpsilon)
	require.NoError(t, err)
	operand := NewMultiPoly(NewPoly(exterior, hole))

	result := runUnion(t, []*MultiPoly{operand})

	require.Len(t, result.Polys, 1)
	poly := result.Polys[0]
	require.Len(t, poly.Exterior.Points, 4)
	require.Len(t, poly.Holes, 1)
	require.Len(t, poly.Holes[0].Points, 4)
}
