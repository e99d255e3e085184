package colorscheme

import (
	"context"
	"os"
	"strings"

	"github.com/bnema/shade/internal/domain/entity"
)

const (
	detectorNameEnv = "GTK_THEME"
	priorityEnv     = 20
)

// EnvDetector reads the GTK_THEME environment variable.
// A theme name containing "dark" (e.g. "Adwaita:dark") means dark mode.
type EnvDetector struct{}

// NewEnvDetector creates a new environment variable-based detector.
func NewEnvDetector() *EnvDetector {
	return &EnvDetector{}
}

// Name implements port.BrightnessDetector.
func (*EnvDetector) Name() string {
	return detectorNameEnv
}

// Priority implements port.BrightnessDetector.
func (*EnvDetector) Priority() int {
	return priorityEnv
}

// Detect implements port.BrightnessDetector.
func (*EnvDetector) Detect(_ context.Context) (entity.Brightness, bool) {
	gtkTheme := os.Getenv("GTK_THEME")
	if gtkTheme == "" {
		return entity.DefaultBrightness, false
	}
	if strings.Contains(strings.ToLower(gtkTheme), "dark") {
		return entity.BrightnessDark, true
	}
	return entity.BrightnessLight, true
}
