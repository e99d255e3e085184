package colorscheme

import (
	"context"
	"os/exec"
	"strings"

	"github.com/bnema/shade/internal/domain/entity"
)

const (
	detectorNameGsettings = "gsettings"
	priorityGsettings     = 10
)

// GsettingsDetector queries org.gnome.desktop.interface color-scheme.
type GsettingsDetector struct {
	lookPath func(string) (string, error)
	output   func(ctx context.Context) ([]byte, error)
}

// NewGsettingsDetector creates a new gsettings-based detector.
func NewGsettingsDetector() *GsettingsDetector {
	return &GsettingsDetector{
		lookPath: exec.LookPath,
		output: func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
		},
	}
}

// Name implements port.BrightnessDetector.
func (*GsettingsDetector) Name() string {
	return detectorNameGsettings
}

// Priority implements port.BrightnessDetector.
func (*GsettingsDetector) Priority() int {
	return priorityGsettings
}

// Detect implements port.BrightnessDetector.
func (d *GsettingsDetector) Detect(ctx context.Context) (entity.Brightness, bool) {
	if _, err := d.lookPath("gsettings"); err != nil {
		return entity.DefaultBrightness, false
	}
	output, err := d.output(ctx)
	if err != nil {
		return entity.DefaultBrightness, false
	}
	return parseColorScheme(string(output))
}

// parseColorScheme parses gsettings output such as "'prefer-dark'\n".
// "default" follows the desktop, which cannot be determined from here.
func parseColorScheme(raw string) (entity.Brightness, bool) {
	value := strings.Trim(strings.TrimSpace(raw), "'\"")

	switch value {
	case "prefer-dark":
		return entity.BrightnessDark, true
	case "prefer-light":
		return entity.BrightnessLight, true
	default:
		return entity.DefaultBrightness, false
	}
}
