package settings

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/colors"
)

func TestDefaults(t *testing.T) {
	a := test.NewApp()
	s := Load(a.Preferences())
	if !s.AutoConnect || s.KeepYLimits {
		t.Errorf("flags = %v/%v, want auto-connect on, keep-Y off", s.AutoConnect, s.KeepYLimits)
	}
	if s.Mode != chart.ModeZoom {
		t.Errorf("mode = %v, want Zoom", s.Mode)
	}
	if s.ScrollFraction != DefaultScrollFraction {
		t.Errorf("scroll fraction = %v", s.ScrollFraction)
	}
}

func TestSaveLoad(t *testing.T) {
	a := test.NewApp()
	want := Settings{
		AutoConnect:    false,
		KeepYLimits:    true,
		Mode:           chart.ModeEdit,
		ScrollFraction: 0.25,
		ExportDir:      "/tmp/charts",
		ColorScale:     colors.ScaleTritanopia,
		DebugLog:       true,
	}
	want.Save(a.Preferences())
	if got := Load(a.Preferences()); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	a := test.NewApp()
	p := a.Preferences()
	p.SetString(prefsMode, "pan")
	p.SetFloat(prefsScrollFraction, 3)
	s := Load(p)
	if s.Mode != chart.ModeZoom {
		t.Errorf("mode = %v, want fallback Zoom", s.Mode)
	}
	if s.ScrollFraction != DefaultScrollFraction {
		t.Errorf("scroll fraction = %v, want fallback", s.ScrollFraction)
	}
}
