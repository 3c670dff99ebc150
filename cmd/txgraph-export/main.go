// Command txgraph-export renders a dataset to a PNG without opening a window.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/colors"
	"github.com/roffe/txgraph/pkg/dataset"
	"github.com/roffe/txgraph/pkg/export"
)

type options struct {
	output   string
	sheet    string
	width    int
	height   int
	title    string
	kind     string
	scale    string
	perGraph int
	overview bool
	right    []string
	from, to string
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "txgraph-export [input.csv|input.xlsx]",
		Short: "Render a dataset as stacked graphs to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()
			return run(ctx, o, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "", "Output file (default: input name with .png)")
	f.StringVar(&o.sheet, "sheet", "", "Worksheet to read from an xlsx file (default: first sheet)")
	f.IntVar(&o.width, "width", 1600, "Image width in pixels")
	f.IntVar(&o.height, "height", 900, "Image height in pixels")
	f.StringVar(&o.title, "title", "", "Page title (default: dataset name)")
	f.StringVar(&o.kind, "kind", "line", "Graph kind: line, bar, scatter, duration, raster")
	f.StringVar(&o.scale, "scale", colors.ScaleNormal.String(), "Raster colour scale: "+strings.Join(colors.ScaleNames(), ", "))
	f.IntVar(&o.perGraph, "per-graph", 4, "Series per graph, 0 for a single graph")
	f.BoolVar(&o.overview, "overview", false, "Add an overview graph below the first graph")
	f.StringSliceVar(&o.right, "right", nil, "Series to plot on the right axis")
	f.StringVar(&o.from, "from", "", "Start of the exported window")
	f.StringVar(&o.to, "to", "", "End of the exported window")
	return cmd
}

func run(ctx context.Context, o *options, input string) error {
	kind, err := chart.ParseKind(o.kind)
	if err != nil {
		return err
	}
	scale, err := colors.ParseScale(o.scale)
	if err != nil {
		return err
	}

	var ds *dataset.Dataset
	if o.sheet != "" {
		ds, err = dataset.LoadSheet(input, o.sheet)
	} else {
		ds, err = dataset.Load(input)
	}
	if err != nil {
		return err
	}

	graphs := ds.Graphs(dataset.GraphOptions{
		Kind:     kind,
		PerGraph: o.perGraph,
		Overview: o.overview,
		Right:    o.right,
	})
	if len(graphs) == 0 {
		return fmt.Errorf("%s: %w", input, dataset.ErrNoData)
	}
	c := chart.New(graphs)
	bounds := make(map[chart.ID]chart.Bounds, len(graphs))
	h := float32(o.height) / float32(len(graphs))
	for i, g := range graphs {
		bounds[g.ID()] = chart.NewBounds(0, float32(i)*h, float32(o.width), h)
	}
	c.Resize(bounds)

	if err := applyWindow(c, o.from, o.to); err != nil {
		return err
	}

	output := o.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
	}
	title := o.title
	if title == "" {
		title = ds.Name
	}
	start := time.Now()
	if err := export.SavePNG(ctx, output, c,
		export.WithSize(o.width, o.height),
		export.WithTitle(title),
		export.WithColorScale(scale),
	); err != nil {
		return err
	}
	log.Printf("wrote %s (%d graphs) in %s", output, len(graphs), time.Since(start).Round(time.Millisecond))
	return nil
}

// applyWindow zooms the first graph, and with it its zoom group, to the
// window given on the command line.
func applyWindow(c *chart.Chart, from, to string) error {
	if from == "" && to == "" {
		return nil
	}
	g := c.Graphs()[0]
	lim := g.Limits()
	start, end := lim.Start, lim.End
	if from != "" {
		t, err := dataset.ParseTime(from)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		start = t
	}
	if to != "" {
		t, err := dataset.ParseTime(to)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		end = t
	}
	if !end.After(start) {
		return fmt.Errorf("empty window %s - %s", start, end)
	}
	lim = lim.WithWindow(start, end)
	g.SetLimits(lim)
	c.PropagateZoom(g, lim)
	return nil
}
