package capture

import (
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

func TestScreenshot(t *testing.T) {
	test.NewApp()
	c := test.NewCanvas()
	c.SetContent(canvas.NewRectangle(color.RGBA{255, 0, 0, 255}))
	c.Resize(fyne.NewSize(40, 30))

	filename, err := Screenshot(c, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(filename, ".png") {
		t.Errorf("filename = %q", filename)
	}
	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("not a png: %v", err)
	}
}

func TestScreenshotBadDir(t *testing.T) {
	test.NewApp()
	c := test.NewCanvas()
	c.SetContent(canvas.NewRectangle(color.White))
	c.Resize(fyne.NewSize(10, 10))
	if _, err := Screenshot(c, "/nonexistent/dir"); err == nil {
		t.Error("Screenshot() into a missing directory succeeded")
	}
}
