// SPDX-License-Identifier: MIT

// Command curveplot samples a control polygon with one of the curve
// evaluators and renders the polyline next to its control points.
//
// Usage:
//
//	curveplot -kind catmullrom -steps 32 -points "0,1;1,0;0,-1;-1,0" -out loop.png
//
// The output format follows the file extension (png, svg, pdf, ...).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/mathlib/curve"
	"github.com/katalvlaran/mathlib/vector"
)

const defaultPoints = "0,1;1,0;0,-1;-1,0"

func main() {
	var (
		kindName = flag.String("kind", curve.DefaultKind.String(), "Curve kind: catmullrom, bezier or linear.")
		steps    = flag.Int("steps", curve.DefaultSteps, "Samples per span.")
		points   = flag.String("points", defaultPoints, "Control points as \"x,y;x,y;...\".")
		out      = flag.String("out", "curve.png", "Output file.")
		width    = flag.Float64("w", 4, "Width in inches.")
		height   = flag.Float64("h", 4, "Height in inches.")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("curveplot: ")

	kind, err := curve.ParseKind(*kindName)
	if err != nil {
		fatalf("%v", err)
	}
	if *steps < 1 {
		fatalf("-steps must be >= 1, got %d", *steps)
	}
	ctrl, err := parsePoints(*points)
	if err != nil {
		fatalf("-points: %v", err)
	}

	poly, err := curve.Sample(ctrl, curve.WithKind(kind), curve.WithSteps(*steps))
	if err != nil {
		fatalf("sample: %v", err)
	}

	// how far the curve strays from its control polygon
	ref, err := curve.Sample(ctrl, curve.WithKind(curve.KindLinear), curve.WithSteps(*steps))
	if err != nil {
		fatalf("sample control polygon: %v", err)
	}
	dist, _, err := curve.Align(poly, ref, &curve.AlignOptions{Rolling: true})
	if err != nil {
		fatalf("align: %v", err)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, %d points, %d steps", kind, len(ctrl), *steps)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	line, err := plotter.NewLine(toXYs(poly))
	if err != nil {
		fatalf("line: %v", err)
	}
	dots, err := plotter.NewScatter(toXYs(ctrl))
	if err != nil {
		fatalf("scatter: %v", err)
	}
	p.Add(plotter.NewGrid(), line, dots)
	p.Legend.Add("curve", line)
	p.Legend.Add("control", dots)

	if err = p.Save(vg.Length(*width)*vg.Inch, vg.Length(*height)*vg.Inch, *out); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
	log.Printf("wrote %d samples to %s (dtw distance to control polygon %.4f)", len(poly), *out, dist)
}

// parsePoints reads "x,y;x,y" or "x,y,z;..." into vectors. A missing z is 0.
func parsePoints(s string) ([]vector.Vec3f, error) {
	var pts []vector.Vec3f
	for i, chunk := range strings.Split(s, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		fields := strings.Split(chunk, ",")
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("point %d: %q: want 2 or 3 coordinates", i, chunk)
		}
		var c [3]float32
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
			if err != nil {
				return nil, fmt.Errorf("point %d: %w", i, err)
			}
			c[j] = float32(v)
		}
		pts = append(pts, vector.New(c[0], c[1], c[2]))
	}
	return pts, nil
}

// toXYs projects onto the XY plane.
func toXYs(pts []vector.Vec3f) plotter.XYs {
	xy := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xy[i].X = float64(p.X)
		xy[i].Y = float64(p.Y)
	}
	return xy
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "curveplot: "+format+"\n", args...)
	os.Exit(2)
}
