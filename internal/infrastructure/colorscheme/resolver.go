// Package colorscheme detects the desktop light/dark preference.
package colorscheme

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

// SourceNone is reported when no detector had an answer.
const SourceNone = "none"

// Preference is a resolved system brightness and the detector it came from.
type Preference struct {
	Brightness entity.Brightness
	Source     string
}

// Found reports whether a detector provided the preference.
func (p Preference) Found() bool {
	return p.Source != SourceNone
}

// Resolver asks its detectors in priority order until one answers.
type Resolver struct {
	mu        sync.RWMutex
	detectors []port.BrightnessDetector
}

// NewResolver creates a resolver with the given detectors.
func NewResolver(detectors ...port.BrightnessDetector) *Resolver {
	r := &Resolver{}
	for _, d := range detectors {
		r.RegisterDetector(d)
	}
	return r
}

// NewSystemResolver returns a resolver with the GTK_THEME and gsettings detectors.
func NewSystemResolver() *Resolver {
	return NewResolver(NewEnvDetector(), NewGsettingsDetector())
}

// RegisterDetector adds a detector; it is taken into account on the next Resolve.
func (r *Resolver) RegisterDetector(detector port.BrightnessDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
	sort.SliceStable(r.detectors, func(i, j int) bool {
		return r.detectors[i].Priority() > r.detectors[j].Priority()
	})
}

// Resolve returns the first answer, or the default brightness with SourceNone.
func (r *Resolver) Resolve(ctx context.Context) Preference {
	r.mu.RLock()
	detectors := make([]port.BrightnessDetector, len(r.detectors))
	copy(detectors, r.detectors)
	r.mu.RUnlock()

	log := logging.FromContext(ctx)
	for _, detector := range detectors {
		if mode, ok := detector.Detect(ctx); ok {
			log.Debug().Str("detector", detector.Name()).Str("brightness", mode.String()).Msg("system brightness detected")
			return Preference{Brightness: mode, Source: detector.Name()}
		}
	}

	log.Debug().Msg("no system brightness preference found")
	return Preference{Brightness: entity.DefaultBrightness, Source: SourceNone}
}
