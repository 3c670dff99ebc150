package dataset

import (
	"fmt"
	"strings"

	"github.com/roffe/txgraph/pkg/chart"
)

// mainGroup is the zoom group every generated main graph joins.
const mainGroup = "main"

type GraphOptions struct {
	Kind chart.Kind
	// PerGraph caps the number of series stacked into one graph, 0 puts
	// every series in a single graph.
	PerGraph int
	// Overview appends a reference graph mirroring the first graph.
	Overview bool
	// Right names series bound to the right axis.
	Right []string
}

// Graphs lays the dataset out as stacked graphs sharing one zoom group.
func (d *Dataset) Graphs(o GraphOptions) []*chart.Graph {
	if len(d.Series) == 0 {
		return nil
	}
	per := o.PerGraph
	if per <= 0 {
		per = len(d.Series)
	}
	right := make(map[string]bool, len(o.Right))
	for _, name := range o.Right {
		right[strings.TrimSpace(name)] = true
	}

	var graphs []*chart.Graph
	for i := 0; i < len(d.Series); i += per {
		chunk := d.Series[i:min(i+per, len(d.Series))]
		names := make([]string, len(chunk))
		opts := []chart.GraphOpt{
			chart.WithKind(o.Kind),
			chart.WithZoomGroup(mainGroup),
		}
		for n, s := range chunk {
			names[n] = s.Name
			axis := chart.AxisLeft
			if right[s.Name] {
				axis = chart.AxisRight
			}
			opts = append(opts, chart.WithSeries(s, axis))
		}
		opts = append(opts, chart.WithTitle(strings.Join(names, ", ")))
		graphs = append(graphs, chart.NewGraph(chart.ID(len(graphs)+1), opts...))
	}

	if o.Overview {
		first := graphs[0]
		opts := []chart.GraphOpt{
			chart.WithTitle(fmt.Sprintf("Overview: %s", first.Title())),
			chart.WithZoomGroup(mainGroup),
			chart.AsReference(first.ID()),
		}
		for _, b := range first.Bindings() {
			opts = append(opts, chart.WithSeries(b.Series, b.Axis))
		}
		graphs = append(graphs, chart.NewGraph(chart.ID(len(graphs)+1), opts...))
	}
	return graphs
}
