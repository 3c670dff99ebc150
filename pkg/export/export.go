package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
	"github.com/fogleman/gg"
	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/colors"
	"github.com/roffe/txgraph/pkg/layout"
	"github.com/roffe/txgraph/pkg/plotter"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"
)

var ErrNoGraphs = errors.New("nothing to export")

const (
	marginLeft   = 64
	marginRight  = 12
	titleHeight  = 18
	footerHeight = 18
)

type config struct {
	width, height int
	title         string
	background    color.Color
	foreground    color.Color
	scale         colors.Scale
	weights       []float32
}

type Option func(*config)

func WithSize(width, height int) Option {
	return func(c *config) {
		c.width, c.height = width, height
	}
}

func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

func WithColorScale(s colors.Scale) Option {
	return func(c *config) {
		c.scale = s
	}
}

// WithWeights sets the relative height of each graph, in graph order.
func WithWeights(weights ...float32) Option {
	return func(c *config) {
		c.weights = weights
	}
}

// Render draws every graph of c at its current window into one image. Graphs
// are rasterised in parallel; c must not change until Render returns.
func Render(ctx context.Context, c *chart.Chart, opts ...Option) (image.Image, error) {
	cfg := &config{
		width:      1280,
		height:     720,
		background: color.RGBA{24, 24, 24, 255},
		foreground: color.RGBA{220, 220, 220, 255},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	graphs := c.Graphs()
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}

	top := 0
	if cfg.title != "" {
		top = titleHeight
	}
	stack := &layout.Stack{Weights: cfg.weights, Gap: 4}
	pos, sizes := stack.Cells(fyne.NewSize(float32(cfg.width), float32(cfg.height-top)), len(graphs))

	cells := make([]image.Rectangle, len(graphs))
	plots := make([]*image.RGBA, len(graphs))
	for i := range graphs {
		x0 := int(pos[i].X) + marginLeft
		y0 := top + int(pos[i].Y) + titleHeight
		x1 := int(pos[i].X+sizes[i].Width) - marginRight
		y1 := top + int(pos[i].Y+sizes[i].Height) - footerHeight
		cells[i] = image.Rect(x0, y0, max(x0+2, x1), max(y0+2, y1))
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, g := range graphs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img := image.NewRGBA(image.Rect(0, 0, cells[i].Dx(), cells[i].Dy()))
			o := plotter.DefaultOptions(g)
			o.Scale = cfg.scale
			plotter.Render(img, g, o)
			plots[i] = img
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("render graphs: %w", err)
	}

	dc := gg.NewContext(cfg.width, cfg.height)
	dc.SetColor(cfg.background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	if cfg.title != "" {
		dc.SetColor(cfg.foreground)
		dc.DrawStringAnchored(cfg.title, float64(cfg.width)/2, titleHeight/2, 0.5, 0.5)
	}
	for i, g := range graphs {
		r := cells[i]
		dc.DrawImage(plots[i], r.Min.X, r.Min.Y)
		if window, ok := c.ReferenceWindow(g); ok {
			drawWindow(dc, r, g.Limits(), window)
		}
		drawFrame(dc, cfg, r, g)
	}
	return dc.Image(), nil
}

// SavePNG renders c and writes it to filename.
func SavePNG(ctx context.Context, filename string, c *chart.Chart, opts ...Option) error {
	img, err := Render(ctx, c, opts...)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

func drawFrame(dc *gg.Context, cfg *config, r image.Rectangle, g *chart.Graph) {
	x, y := float64(r.Min.X), float64(r.Min.Y)
	w, h := float64(r.Dx()), float64(r.Dy())

	dc.SetLineWidth(1)
	dc.SetColor(cfg.foreground)
	dc.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
	dc.Stroke()

	title := g.Title()
	if title == "" {
		title = fmt.Sprintf("Graph %d", g.ID())
	}
	dc.DrawStringAnchored(title, x, y-titleHeight/2, 0, 0.5)

	lx := x + w
	for i := len(g.Bindings()) - 1; i >= 0; i-- {
		b := g.Bindings()[i]
		if !b.Enabled {
			continue
		}
		tw, _ := dc.MeasureString(b.Series.Name)
		lx -= tw
		dc.SetColor(colors.ForSeries(i, b.Series.Name))
		dc.DrawStringAnchored(b.Series.Name, lx, y-titleHeight/2, 0, 0.5)
		lx -= 12
	}

	lim := g.Limits()
	if !lim.Valid() {
		return
	}
	dc.SetColor(cfg.foreground)
	for _, v := range plotter.ValueTicks(lim.Min, lim.Max, 4) {
		ty := y + (lim.Max-v)/lim.Height()*h
		dc.DrawStringAnchored(plotter.FormatValue(v), x-6, ty, 1, 0.5)
	}
	for _, t := range plotter.TimeTicks(lim.Start, lim.End, 5) {
		tx := x + float64(t.Sub(lim.Start))/float64(lim.Width())*w
		dc.DrawStringAnchored(plotter.FormatTime(t, lim.Width()), tx, y+h+footerHeight/2, 0.5, 0.5)
	}
}

// drawWindow marks the mirrored graph's window on a reference graph.
func drawWindow(dc *gg.Context, r image.Rectangle, full, window chart.Limits) {
	if !full.Valid() || window.IsZero() {
		return
	}
	frac := func(t time.Time) float64 {
		f := float64(t.Sub(full.Start)) / float64(full.Width())
		return min(max(f, 0), 1)
	}
	x0 := float64(r.Min.X) + frac(window.Start)*float64(r.Dx())
	x1 := float64(r.Min.X) + frac(window.End)*float64(r.Dx())
	dc.SetColor(color.RGBA{0, 160, 255, 40})
	dc.DrawRectangle(x0, float64(r.Min.Y), x1-x0, float64(r.Dy()))
	dc.Fill()
	dc.SetColor(color.RGBA{0, 160, 255, 220})
	dc.DrawRectangle(x0, float64(r.Min.Y), x1-x0, float64(r.Dy()))
	dc.Stroke()
}
