package layout

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestStackCells(t *testing.T) {
	tests := []struct {
		name    string
		stack   Stack
		n       int
		size    fyne.Size
		heights []float32
		ys      []float32
	}{
		{"even", Stack{}, 2, fyne.NewSize(100, 200), []float32{100, 100}, []float32{0, 100}},
		{"weighted with gap", Stack{Weights: []float32{3, 1}, Gap: 8}, 2, fyne.NewSize(100, 408), []float32{300, 100}, []float32{0, 308}},
		{"missing weight", Stack{Weights: []float32{2}}, 3, fyne.NewSize(10, 400), []float32{200, 100, 100}, []float32{0, 200, 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, sizes := tt.stack.Cells(tt.size, tt.n)
			for i := range tt.n {
				if sizes[i].Height != tt.heights[i] || sizes[i].Width != tt.size.Width {
					t.Errorf("cell %d size = %v, want height %v", i, sizes[i], tt.heights[i])
				}
				if pos[i].Y != tt.ys[i] {
					t.Errorf("cell %d y = %v, want %v", i, pos[i].Y, tt.ys[i])
				}
			}
		})
	}
}

func TestStackEmpty(t *testing.T) {
	s := &Stack{}
	if pos, sizes := s.Cells(fyne.NewSize(10, 10), 0); pos != nil || sizes != nil {
		t.Error("cells for zero objects")
	}
}
