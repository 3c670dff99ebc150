package chartview

import (
	"fyne.io/fyne/v2"
	"github.com/roffe/txgraph/pkg/chart"
)

type chartViewRenderer struct {
	*ChartView
}

func (r *chartViewRenderer) MinSize() fyne.Size {
	n := max(len(r.views), 1)
	return fyne.NewSize(axisWidth+200+legendWidth, float32(n)*(titleHeight+footerHeight+60)+footerHeight)
}

func (r *chartViewRenderer) Layout(size fyne.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.layout(size)
}

// layout places every graph in its cell and hands the plot bounds to the
// chart. The first layout after a rebuild also sets the initial windows.
func (cv *ChartView) layout(size fyne.Size) {
	graphArea := fyne.NewSize(max(size.Width-legendWidth, 0), max(size.Height-footerHeight, 0))
	pos, sizes := cv.stack.Cells(graphArea, len(cv.views))

	bounds := make(map[chart.ID]chart.Bounds, len(cv.views))
	for i, v := range cv.views {
		plot := chart.NewBounds(
			pos[i].X+axisWidth,
			pos[i].Y+titleHeight,
			max(sizes[i].Width-axisWidth-8, 0),
			max(sizes[i].Height-titleHeight-footerHeight, 0),
		)
		bounds[v.graph.ID()] = plot
		v.image.Move(plot.Position)
		v.image.Resize(plot.Size)
		v.frame.Move(plot.Position)
		v.frame.Resize(plot.Size)
		v.title.Move(fyne.NewPos(plot.Position.X, pos[i].Y+2))
	}
	cv.chart.Resize(bounds)

	cv.layer.Object().Resize(size)
	cv.scroll.Move(fyne.NewPos(graphArea.Width, 0))
	cv.scroll.Resize(fyne.NewSize(legendWidth, size.Height-footerHeight))
	cv.status.Move(fyne.NewPos(axisWidth, size.Height-footerHeight))
	cv.status.Resize(fyne.NewSize(size.Width-axisWidth, footerHeight))

	cv.chart.Invalidate()
}

func (r *chartViewRenderer) Refresh() {
	for _, v := range r.views {
		v.title.Refresh()
		v.frame.Refresh()
	}
	r.scroll.Refresh()
	r.status.Refresh()
}

func (r *chartViewRenderer) Destroy() {
}

func (r *chartViewRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.views)*(3+valueLabels+timeLabels)+3)
	for _, v := range r.views {
		objs = append(objs, v.image, v.frame, v.title)
		for _, t := range v.values {
			objs = append(objs, t)
		}
		for _, t := range v.times {
			objs = append(objs, t)
		}
	}
	return append(objs, r.layer.Object(), r.scroll, r.status)
}
