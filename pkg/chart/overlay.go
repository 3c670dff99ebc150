package chart

import "fyne.io/fyne/v2"

// Overlay receives transient feedback drawn over the graphs. Every Erase call
// carries exactly the shape of the preceding Draw, so a surface may implement
// it either as a paint-twice toggle or as retained state.
type Overlay interface {
	DrawRubberBand(r Bounds)
	EraseRubberBand(r Bounds)
	DrawCrosshair(p fyne.Position, clip Bounds)
	EraseCrosshair(p fyne.Position, clip Bounds)
}

type nopOverlay struct{}

func (nopOverlay) DrawRubberBand(Bounds) {}
func (nopOverlay) EraseRubberBand(Bounds) {}
func (nopOverlay) DrawCrosshair(fyne.Position, Bounds) {}
func (nopOverlay) EraseCrosshair(fyne.Position, Bounds) {}
