package layout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Stack places objects on top of each other, each getting a share of the
// height proportional to its weight. Missing weights count as 1.
type Stack struct {
	Weights []float32
	Gap     float32
}

func (s *Stack) weight(i int) float32 {
	if i < len(s.Weights) && s.Weights[i] > 0 {
		return s.Weights[i]
	}
	return 1
}

// Cells returns the position and size of n stacked cells inside size.
func (s *Stack) Cells(size fyne.Size, n int) ([]fyne.Position, []fyne.Size) {
	if n == 0 {
		return nil, nil
	}
	var total float32
	for i := range n {
		total += s.weight(i)
	}
	avail := size.Height - s.Gap*float32(n-1)
	if avail < 0 {
		avail = 0
	}
	pos := make([]fyne.Position, n)
	sizes := make([]fyne.Size, n)
	var y float32
	for i := range n {
		h := avail * s.weight(i) / total
		pos[i] = fyne.NewPos(0, y)
		sizes[i] = fyne.NewSize(size.Width, h)
		y += h + s.Gap
	}
	return pos, sizes
}

func (s *Stack) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	pos, sizes := s.Cells(size, len(objects))
	for i, o := range objects {
		o.Move(pos[i])
		o.Resize(sizes[i])
	}
}

func (s *Stack) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, o := range objects {
		m := o.MinSize()
		width = max(width, m.Width)
		height += m.Height
	}
	if len(objects) > 1 {
		height += s.Gap * float32(len(objects)-1)
	}
	return fyne.NewSize(width, height)
}

func NewFixedWidth(width float32, obj fyne.CanvasObject) *fyne.Container {
	return container.New(&FixedWidthContainer{width: width}, obj)
}

type FixedWidthContainer struct {
	width float32
}

func (d *FixedWidthContainer) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var h float32
	for _, o := range objects {
		h = max(h, o.MinSize().Height)
	}
	return fyne.NewSize(d.width, h)
}

func (d *FixedWidthContainer) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(fyne.NewSize(d.width, containerSize.Height))
	}
}
