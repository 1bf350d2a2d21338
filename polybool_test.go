package polybool_test

import (
	"math"
	"testing"

	"github.com/gkogan/polybool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func unitSquare(x, y float64) *polybool.MultiPoly {
	ring, err := polybool.NewRing([]polybool.Point{
		{X: x, Y: y}, {X: x + 1, Y: y}, {X: x + 1, Y: y + 1}, {X: x, Y: y + 1},
	}, true, polybool.DefaultEpsilon)
	if err != nil {
		panic(err)
	}
	return polybool.NewMultiPoly(polybool.NewPoly(ring))
}

func pointSet(points []polybool.Point) map[polybool.Point]bool {
	set := make(map[polybool.Point]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return set
}

// requireHasRing asserts that some ring not yet in seen, among every
// poly's exterior and holes in mp, has precisely the given point set, and
// consumes it so a second call with the same want can't match the same
// ring twice.
func requireHasRing(t *testing.T, mp *polybool.MultiPoly, seen map[*polybool.Ring]bool, want map[polybool.Point]bool) *polybool.Ring {
	t.Helper()
	for _, p := range mp.Polys {
		for _, r := range p.Rings() {
			if seen[r] {
				continue
			}
			if len(r.Points) != len(want) {
				continue
			}
			got := pointSet(r.Points)
			if ringSetsEqual(got, want) {
				seen[r] = true
				return r
			}
		}
	}
	t.Fatalf("no ring matching point set %v found in result", want)
	return nil
}

func ringSetsEqual(a, b map[polybool.Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

// shoelaceArea returns the unsigned area of a closed polygon's vertex list.
func shoelaceArea(points []polybool.Point) float64 {
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

type LScenarioSuite struct {
	suite.Suite
	a, b *polybool.MultiPoly
}

func (s *LScenarioSuite) SetupTest() {
	ringA, err := polybool.NewRing([]polybool.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, true, polybool.DefaultEpsilon)
	s.Require().NoError(err)
	ringB, err := polybool.NewRing([]polybool.Point{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15}}, true, polybool.DefaultEpsilon)
	s.Require().NoError(err)
	s.a = polybool.NewMultiPoly(polybool.NewPoly(ringA))
	s.b = polybool.NewMultiPoly(polybool.NewPoly(ringB))
}

func (s *LScenarioSuite) TestUnionProducesSingleLShapedRing() {
	result, err := polybool.Union([]*polybool.MultiPoly{s.a, s.b})
	s.Require().NoError(err)
	s.Require().Len(result.Polys, 1)
	s.Require().Empty(result.Polys[0].Holes)

	want := pointSet([]polybool.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 15, Y: 5},
		{X: 15, Y: 15}, {X: 5, Y: 15}, {X: 5, Y: 10}, {X: 0, Y: 10},
	})
	requireHasRing(s.T(), result, map[*polybool.Ring]bool{}, want)
}

func (s *LScenarioSuite) TestIntersectionProducesOverlapSquare() {
	result, err := polybool.Intersection([]*polybool.MultiPoly{s.a, s.b})
	s.Require().NoError(err)
	s.Require().Len(result.Polys, 1)

	want := pointSet([]polybool.Point{
		{X: 5, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 10}, {X: 5, Y: 10},
	})
	requireHasRing(s.T(), result, map[*polybool.Ring]bool{}, want)
}

func (s *LScenarioSuite) TestDifferenceAMinusB() {
	result, err := polybool.Difference(s.a, []*polybool.MultiPoly{s.b})
	s.Require().NoError(err)
	s.Require().Len(result.Polys, 1)

	want := pointSet([]polybool.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
	})
	requireHasRing(s.T(), result, map[*polybool.Ring]bool{}, want)
}

func (s *LScenarioSuite) TestXOREqualsBothDifferences() {
	result, err := polybool.XOR([]*polybool.MultiPoly{s.a, s.b})
	s.Require().NoError(err)
	s.Require().Len(result.Polys, 2)

	aMinusB, err := polybool.Difference(s.a, []*polybool.MultiPoly{s.b})
	s.Require().NoError(err)
	bMinusA, err := polybool.Difference(s.b, []*polybool.MultiPoly{s.a})
	s.Require().NoError(err)

	seen := map[*polybool.Ring]bool{}
	requireHasRing(s.T(), result, seen, pointSet(aMinusB.Polys[0].Exterior.Points))
	requireHasRing(s.T(), result, seen, pointSet(bMinusA.Polys[0].Exterior.Points))
}

func TestLScenarioSuite(t *testing.T) {
	suite.Run(t, new(LScenarioSuite))
}

func TestDisjointUnionKeepsBothSquaresIntact(t *testing.T) {
	a := unitSquare(0, 0)
	b := unitSquare(10, 10)

	result, err := polybool.Union([]*polybool.MultiPoly{a, b})
	require.NoError(t, err)
	require.Len(t, result.Polys, 2)

	seen := map[*polybool.Ring]bool{}
	requireHasRing(t, result, seen, pointSet([]polybool.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}))
	requireHasRing(t, result, seen, pointSet([]polybool.Point{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}}))
}

func TestSquaresSharingVertexProduceTwoPolys(t *testing.T) {
	a := unitSquare(0, 0)
	b := unitSquare(1, 1)

	result, err := polybool.Union([]*polybool.MultiPoly{a, b})
	require.NoError(t, err)
	require.Len(t, result.Polys, 2)
}

func TestSquaresSharingAnEdgeMergeIntoOneRectangle(t *testing.T) {
	a := unitSquare(0, 0)
	b := unitSquare(1, 0)

	result, err := polybool.Union([]*polybool.MultiPoly{a, b})
	require.NoError(t, err)
	require.Len(t, result.Polys, 1)

	want := pointSet([]polybool.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1},
	})
	requireHasRing(t, result, map[*polybool.Ring]bool{}, want)
}

func TestBowtieSelfIntersectionUnionWithItselfPreservesArea(t *testing.T) {
	ring, err := polybool.NewRing([]polybool.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}}, true, polybool.DefaultEpsilon)
	require.NoError(t, err)
	bowtie := polybool.NewMultiPoly(polybool.NewPoly(ring))

	result, err := polybool.Union([]*polybool.MultiPoly{bowtie, bowtie})
	require.NoError(t, err)

	// A self-intersecting bowtie resolves into two triangles meeting at
	// (5,5), each with base 10 and height 5, so each of area 25.
	var total float64
	for _, p := range result.Polys {
		total += shoelaceArea(p.Exterior.Points)
	}
	require.InDelta(t, 50.0, total, 1e-6)
}

func TestUnionIdempotence(t *testing.T) {
	a := unitSquare(0, 0)
	result, err := polybool.Union([]*polybool.MultiPoly{a, a})
	require.NoError(t, err)
	require.Len(t, result.Polys, 1)
	require.InDelta(t, 1.0, shoelaceArea(result.Polys[0].Exterior.Points), 1e-9)
}

func TestXORIdentityIsEmpty(t *testing.T) {
	a := unitSquare(0, 0)
	result, err := polybool.XOR([]*polybool.MultiPoly{a, a})
	require.NoError(t, err)
	require.Empty(t, result.Polys)
}

func TestDifferenceIdentityIsEmpty(t *testing.T) {
	a := unitSquare(0, 0)
	result, err := polybool.Difference(a, []*polybool.MultiPoly{a})
	require.NoError(t, err)
	require.Empty(t, result.Polys)
}

func TestIntersectionIdentityKeepsArea(t *testing.T) {
	a := unitSquare(0, 0)
	result, err := polybool.Intersection([]*polybool.MultiPoly{a, a})
	require.NoError(t, err)
	require.Len(t, result.Polys, 1)
	require.InDelta(t, 1.0, shoelaceArea(result.Polys[0].Exterior.Points), 1e-9)
}

func TestDifferenceWithoutSubjectFails(t *testing.T) {
	_, err := polybool.Difference(nil, []*polybool.MultiPoly{unitSquare(0, 0)})
	require.ErrorIs(t, err, polybool.ErrMissingSubject)
}

func TestWithEpsilonIsHonoured(t *testing.T) {
	a := unitSquare(0, 0)
	b := unitSquare(0, 0)
	result, err := polybool.Union([]*polybool.MultiPoly{a, b}, polybool.WithEpsilon(1e-6))
	require.NoError(t, err)
	require.Len(t, result.Polys, 1)
}
