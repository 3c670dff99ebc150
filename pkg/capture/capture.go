package capture

import (
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"github.com/fogleman/gg"
)

// Screenshot writes what c currently shows to a timestamped PNG in dir and
// returns the file name.
func Screenshot(c fyne.Canvas, dir string) (string, error) {
	img := c.Capture()
	filename := filepath.Join(dir, fmt.Sprintf("capture-%s.png", time.Now().Format("2006-01-02-15-04-05")))
	if err := gg.SavePNG(filename, img); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return filename, nil
}
