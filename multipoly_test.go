package polybool_test

import (
	"testing"

	"github.com/gkogan/polybool"
	"github.com/stretchr/testify/require"
)

func TestNewMultiPolyWiresParentLinks(t *testing.T) {
	ring, err := polybool.NewRing([]polybool.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, true, polybool.DefaultEpsilon)
	require.NoError(t, err)
	poly := polybool.NewPoly(ring)

	mp := polybool.NewMultiPoly(poly)
	require.Same(t, mp, poly.MultiPoly)
}

func TestMultiPolyRingsCollectsAcrossPolys(t *testing.T) {
	r1, err := polybool.NewRing([]polybool.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, true, polybool.DefaultEpsilon)
	require.NoError(t, err)
	r2, err := polybool.NewRing([]polybool.Point{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}}, true, polybool.DefaultEpsilon)
	require.NoError(t, err)

	mp := polybool.NewMultiPoly(polybool.NewPoly(r1), polybool.NewPoly(r2))
	require.Len(t, mp.Rings(), 2)
}

func TestNewMultiPolyWithNoPolysHasNoRings(t *testing.T) {
	mp := polybool.NewMultiPoly()
	require.Empty(t, mp.Rings())
}
