package port

import (
	"context"

	"github.com/bnema/shade/internal/domain/entity"
)

// BrightnessDetector reads the desktop's light/dark preference.
// Several detectors can be chained; higher Priority values are asked first.
type BrightnessDetector interface {
	Name() string
	Priority() int

	// Detect returns the preferred mode, or ok=false when the source has no answer.
	Detect(ctx context.Context) (mode entity.Brightness, ok bool)
}
