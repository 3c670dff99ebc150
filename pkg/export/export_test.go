package export

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/timeseries"
)

func testChart() *chart.Chart {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	values := make([]float64, 48)
	for i := range values {
		values[i] = float64(i % 12)
	}
	s := timeseries.New("Flow", start, timeseries.NewInterval(timeseries.Hour, 1), values)
	main := chart.NewGraph(1, chart.WithTitle("Flow"), chart.WithSeries(s, chart.AxisLeft))
	ref := chart.NewGraph(2, chart.WithSeries(s, chart.AxisLeft), chart.AsReference(1))
	c := chart.New([]*chart.Graph{main, ref})
	c.Resize(map[chart.ID]chart.Bounds{
		1: chart.NewBounds(0, 0, 400, 200),
		2: chart.NewBounds(0, 200, 400, 100),
	})
	return c
}

func TestRenderSize(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		w, h int
	}{
		{"default", nil, 1280, 720},
		{"custom with title", []Option{WithSize(640, 480), WithTitle("Flows"), WithWeights(3, 1)}, 640, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Render(context.Background(), testChart(), tt.opts...)
			if err != nil {
				t.Fatalf("Render() failed: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := SavePNG(context.Background(), path, testChart(), WithSize(320, 240)); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 320 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestRenderEmpty(t *testing.T) {
	if _, err := Render(context.Background(), chart.New(nil)); !errors.Is(err, ErrNoGraphs) {
		t.Errorf("err = %v, want ErrNoGraphs", err)
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Render(ctx, testChart()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
