// Command vizdump computes a microchart RenderModel and prints it as JSON.
// It is a smoke-test tool: pick a chart type and a seed, inspect the
// geometry, optionally probe a hit-test point.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/viz"
	"github.com/gogpu/viz/demo"
)

func main() {
	var (
		chartType = flag.String("type", "sparkline", "chart type to compute")
		seed      = flag.String("seed", "vizdump", "demo data seed")
		width     = flag.Float64("w", 120, "canvas width")
		height    = flag.Float64("h", 32, "canvas height")
		hit       = flag.String("hit", "", "hit-test point as x,y")
		verbose   = flag.Bool("v", false, "log model warnings to stderr")
	)
	flag.Parse()

	if *verbose {
		viz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	input := viz.ComputeInput{
		Data: demo.For(viz.ChartType(*chartType), *seed),
		Size: viz.Size{Width: *width, Height: *height},
		Spec: viz.Spec{Type: viz.ChartType(*chartType)},
	}
	model, err := viz.ComputeModel(input)
	if err != nil {
		log.Fatalf("compute: %v", err)
	}

	out, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(string(out))

	if *hit != "" {
		p, err := parsePoint(*hit)
		if err != nil {
			log.Fatalf("hit: %v", err)
		}
		result := viz.HitTest(model, p)
		if result == nil {
			fmt.Printf("hit %g,%g: no mark\n", p.X, p.Y)
		} else {
			fmt.Printf("hit %g,%g: %s (%s)\n", p.X, p.Y, result.MarkID, result.MarkType)
		}
	}
}

func parsePoint(s string) (viz.Point, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return viz.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return viz.Point{}, fmt.Errorf("want x,y, got %q", s)
	}
	return viz.Pt(x, y), nil
}
