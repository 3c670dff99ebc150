package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/roffe/txgraph/pkg/timeseries"
)

// FormatTSV writes the samples of series between from and to, inclusive, as
// tab separated text with a header row. The first series sets the time grid.
// Missing samples are written as empty cells.
func FormatTSV(series []*timeseries.Series, from, to time.Time) string {
	if len(series) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Time")
	for _, s := range series {
		sb.WriteByte('\t')
		sb.WriteString(s.Name)
	}
	sb.WriteByte('\n')

	grid := series[0]
	first := max(grid.Interval.Steps(grid.Start, from), 0)
	if grid.TimeAt(first).Before(from) {
		first++
	}
	for idx := first; idx < grid.Len(); idx++ {
		t := grid.TimeAt(idx)
		if t.After(to) {
			break
		}
		sb.WriteString(t.Format("2006-01-02 15:04:05"))
		for _, s := range series {
			sb.WriteByte('\t')
			v, err := s.Value(t)
			if err != nil || math.IsNaN(v) {
				continue
			}
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
