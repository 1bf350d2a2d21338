// Command polybool runs a Boolean set operation over two multipolygons
// read from JSON files and writes the result multipolygon to stdout.
//
// A multipolygon on disk is a list of polygons, each polygon a list of
// rings (the first ring is the exterior, the rest are holes), each ring a
// list of [x, y] coordinate pairs.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/gkogan/polybool"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "polybool",
		Usage:     "Computes a Boolean set operation over two multipolygons",
		UsageText: "polybool --op <union|intersection|difference|xor> <subject.json> <clipping.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "The operation to compute: union, intersection, difference, or xor",
				Value:    "union",
				Aliases:  []string{"o"},
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "epsilon",
				Usage:    "Tolerance used for floating-point comparisons",
				Value:    polybool.DefaultEpsilon,
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected exactly two multipolygon file arguments")
	}

	subject, err := readMultiPoly(cmd.Args().Get(0), cmd.Float("epsilon"))
	if err != nil {
		return fmt.Errorf("reading subject: %w", err)
	}
	clipping, err := readMultiPoly(cmd.Args().Get(1), cmd.Float("epsilon"))
	if err != nil {
		return fmt.Errorf("reading clipping: %w", err)
	}

	opt := polybool.WithEpsilon(cmd.Float("epsilon"))
	var result *polybool.MultiPoly

	switch cmd.String("op") {
	case "union":
		result, err = polybool.Union([]*polybool.MultiPoly{subject, clipping}, opt)
	case "intersection":
		result, err = polybool.Intersection([]*polybool.MultiPoly{subject, clipping}, opt)
	case "difference":
		result, err = polybool.Difference(subject, []*polybool.MultiPoly{clipping}, opt)
	case "xor":
		result, err = polybool.XOR([]*polybool.MultiPoly{subject, clipping}, opt)
	default:
		return fmt.Errorf("unknown operation %q", cmd.String("op"))
	}
	if err != nil {
		return err
	}

	b, err := json.Marshal(toJSON(result))
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

type coord = [2]float64

func readMultiPoly(path string, epsilon float64) (*polybool.MultiPoly, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data [][][]coord
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	polys := make([]*polybool.Poly, 0, len(data))
	for _, p := range data {
		if len(p) == 0 {
			continue
		}
		exterior, err := polybool.NewRing(toPoints(p[0]), true, epsilon)
		if err != nil {
			return nil, err
		}
		holes := make([]*polybool.Ring, 0, len(p)-1)
		for _, h := range p[1:] {
			hole, err := polybool.NewRing(toPoints(h), false, epsilon)
			if err != nil {
				return nil, err
			}
			holes = append(holes, hole)
		}
		polys = append(polys, polybool.NewPoly(exterior, holes...))
	}
	return polybool.NewMultiPoly(polys...), nil
}

func toPoints(coords []coord) []polybool.Point {
	points := make([]polybool.Point, len(coords))
	for i, c := range coords {
		points[i] = polybool.Point{X: c[0], Y: c[1]}
	}
	return points
}

func toJSON(mp *polybool.MultiPoly) [][][]coord {
	out := make([][][]coord, 0, len(mp.Polys))
	for _, p := range mp.Polys {
		rings := make([][]coord, 0, 1+len(p.Holes))
		rings = append(rings, ringToJSON(p.Exterior))
		for _, h := range p.Holes {
			rings = append(rings, ringToJSON(h))
		}
		out = append(out, rings)
	}
	return out
}

func ringToJSON(r *polybool.Ring) []coord {
	out := make([]coord, len(r.Points))
	for i, p := range r.Points {
		out[i] = coord{p.X, p.Y}
	}
	return out
}
