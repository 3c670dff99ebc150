package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("Time,Boost,Lambda,Rpm\n")
	for h := range 48 {
		fmt.Fprintf(&sb, "2022-01-%02d %02d:00,%d,%d,%d\n", 1+h/24, h%24, h%10, 1, h*100)
	}
	path := filepath.Join(t.TempDir(), "engine.csv")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesPNG(t *testing.T) {
	input := writeCSV(t)
	tests := []struct {
		name string
		opts options
	}{
		{"defaults", options{width: 640, height: 480, kind: "line", scale: "Normal", perGraph: 4}},
		{"split with overview", options{width: 640, height: 480, kind: "bar", scale: "Normal", perGraph: 1, overview: true, right: []string{"Rpm"}}},
		{"window", options{width: 320, height: 240, kind: "line", scale: "Normal", from: "2022-01-01 06:00", to: "2022-01-01 18:00"}},
		{"raster", options{width: 320, height: 240, kind: "raster", scale: "Tritanopia"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.opts
			o.output = filepath.Join(t.TempDir(), "out.png")
			if err := run(context.Background(), &o, input); err != nil {
				t.Fatalf("run() failed: %v", err)
			}
			f, err := os.Open(o.output)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			if b := img.Bounds(); b.Dx() != o.width || b.Dy() != o.height {
				t.Errorf("image size = %v, want %dx%d", b.Size(), o.width, o.height)
			}
		})
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	input := writeCSV(t)
	tests := []struct {
		name string
		opts options
	}{
		{"kind", options{width: 100, height: 100, kind: "pie", scale: "Normal"}},
		{"scale", options{width: 100, height: 100, kind: "line", scale: "sepia"}},
		{"empty window", options{width: 100, height: 100, kind: "line", scale: "Normal", from: "2022-01-02", to: "2022-01-01"}},
		{"bad time", options{width: 100, height: 100, kind: "line", scale: "Normal", from: "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.opts
			o.output = filepath.Join(t.TempDir(), "out.png")
			if err := run(context.Background(), &o, input); err == nil {
				t.Error("run() succeeded")
			}
		})
	}
}

func TestDefaultOutputName(t *testing.T) {
	input := writeCSV(t)
	o := options{width: 200, height: 120, kind: "line", scale: "Normal"}
	if err := run(context.Background(), &o, input); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(strings.TrimSuffix(input, ".csv") + ".png"); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}
