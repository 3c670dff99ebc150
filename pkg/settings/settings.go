package settings

import (
	"log"

	"fyne.io/fyne/v2"
	"github.com/roffe/txgraph/pkg/chart"
	"github.com/roffe/txgraph/pkg/colors"
)

const (
	prefsAutoConnect    = "autoConnect"
	prefsKeepYLimits    = "keepYLimits"
	prefsMode           = "interactionMode"
	prefsScrollFraction = "scrollFraction"
	prefsExportDir      = "exportDir"
	prefsColorScale     = "colorScale"
	prefsDebugLog       = "debugLog"
)

const DefaultScrollFraction = 0.5

// Settings is the persisted part of the chart window state.
type Settings struct {
	AutoConnect    bool
	KeepYLimits    bool
	Mode           chart.Mode
	ScrollFraction float64
	ExportDir      string
	ColorScale     colors.Scale
	DebugLog       bool
}

func Load(p fyne.Preferences) Settings {
	mode, err := chart.ParseMode(p.StringWithFallback(prefsMode, chart.ModeZoom.String()))
	if err != nil {
		log.Printf("settings: %v", err)
		mode = chart.ModeZoom
	}
	scale, err := colors.ParseScale(p.StringWithFallback(prefsColorScale, colors.ScaleNormal.String()))
	if err != nil {
		log.Printf("settings: %v", err)
	}
	frac := p.FloatWithFallback(prefsScrollFraction, DefaultScrollFraction)
	if frac <= 0 || frac > 1 {
		frac = DefaultScrollFraction
	}
	return Settings{
		AutoConnect:    p.BoolWithFallback(prefsAutoConnect, true),
		KeepYLimits:    p.BoolWithFallback(prefsKeepYLimits, false),
		Mode:           mode,
		ScrollFraction: frac,
		ExportDir:      p.String(prefsExportDir),
		ColorScale:     scale,
		DebugLog:       p.BoolWithFallback(prefsDebugLog, false),
	}
}

func (s Settings) Save(p fyne.Preferences) {
	p.SetBool(prefsAutoConnect, s.AutoConnect)
	p.SetBool(prefsKeepYLimits, s.KeepYLimits)
	p.SetString(prefsMode, s.Mode.String())
	p.SetFloat(prefsScrollFraction, s.ScrollFraction)
	p.SetString(prefsExportDir, s.ExportDir)
	p.SetString(prefsColorScale, s.ColorScale.String())
	p.SetBool(prefsDebugLog, s.DebugLog)
}

// ChartOptions turns the settings into chart construction options.
func (s Settings) ChartOptions() []chart.Option {
	return []chart.Option{
		chart.WithAutoConnect(s.AutoConnect),
		chart.WithKeepYLimits(s.KeepYLimits),
		chart.WithMode(s.Mode),
	}
}
