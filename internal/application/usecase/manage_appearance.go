// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/domain/repository"
	"github.com/bnema/shade/internal/logging"
)

// observerWrapper wraps an observer to enable pointer comparison for removal.
type observerWrapper struct {
	fn port.AppearanceObserver
}

// ManageAppearanceUseCase owns the theme and brightness preferences.
// It is the single source of truth for the UI: state is loaded once from the
// preference repository, every mutation is written back and observers are
// notified synchronously before the mutator returns.
type ManageAppearanceUseCase struct {
	prefs repository.PreferenceRepository

	mu        sync.RWMutex
	state     entity.AppearanceState
	location  entity.AssetLocation
	ready     bool
	observers []*observerWrapper
}

// Compile-time interface check.
var _ port.AppearanceStore = (*ManageAppearanceUseCase)(nil)

// NewManageAppearanceUseCase creates the appearance store.
// Until Initialize is called, getters report the default state.
func NewManageAppearanceUseCase(
	prefs repository.PreferenceRepository,
	location entity.AssetLocation,
) *ManageAppearanceUseCase {
	return &ManageAppearanceUseCase{
		prefs:    prefs,
		state:    entity.DefaultAppearanceState(),
		location: location,
	}
}

// Initialize loads the persisted theme and brightness.
// Missing, unreadable or unrecognized values fall back to the defaults.
// Only the first call does anything.
func (uc *ManageAppearanceUseCase) Initialize(ctx context.Context) {
	log := logging.FromContext(ctx)

	uc.mu.RLock()
	ready := uc.ready
	uc.mu.RUnlock()
	if ready {
		log.Debug().Msg("appearance store already initialized")
		return
	}

	theme := uc.loadTheme(ctx)
	brightness := uc.loadBrightness(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.ready {
		return
	}
	uc.state = entity.NewAppearanceState(theme, brightness)
	uc.ready = true

	log.Debug().
		Str("theme", string(theme)).
		Str("brightness", string(brightness)).
		Msg("appearance store initialized")
}

func (uc *ManageAppearanceUseCase) loadTheme(ctx context.Context) entity.ThemeID {
	log := logging.FromContext(ctx)

	raw, found, err := uc.prefs.Get(ctx, repository.KeyThemeColor)
	if err != nil {
		log.Warn().Err(err).Str("key", repository.KeyThemeColor).Msg("failed to read theme, using default")
		return entity.DefaultTheme
	}
	if !found {
		return entity.DefaultTheme
	}

	theme, ok := entity.ParseTheme(raw)
	if !ok {
		log.Debug().Str("value", raw).Msg("unrecognized persisted theme, using default")
	}
	return theme
}

func (uc *ManageAppearanceUseCase) loadBrightness(ctx context.Context) entity.Brightness {
	log := logging.FromContext(ctx)

	raw, found, err := uc.prefs.Get(ctx, repository.KeyBrightnessMode)
	if err != nil {
		log.Warn().Err(err).Str("key", repository.KeyBrightnessMode).Msg("failed to read brightness, using default")
		return entity.DefaultBrightness
	}
	if !found {
		return entity.DefaultBrightness
	}

	mode, err := entity.ParseBrightness(raw)
	if err != nil {
		log.Debug().Str("value", raw).Msg("unrecognized persisted brightness, using default")
	}
	return mode
}

// Ready reports whether Initialize has run.
func (uc *ManageAppearanceUseCase) Ready() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.ready
}

// State returns a consistent snapshot of the current preferences.
func (uc *ManageAppearanceUseCase) State() entity.AppearanceState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

// Theme returns the active theme.
func (uc *ManageAppearanceUseCase) Theme() entity.ThemeID {
	return uc.State().Theme
}

// Brightness returns the active brightness mode.
func (uc *ManageAppearanceUseCase) Brightness() entity.Brightness {
	return uc.State().Brightness
}

// IsLight returns true if light mode is active.
func (uc *ManageAppearanceUseCase) IsLight() bool {
	return uc.Brightness() == entity.BrightnessLight
}

// IsDark returns true if dark mode is active.
func (uc *ManageAppearanceUseCase) IsDark() bool {
	return uc.Brightness() == entity.BrightnessDark
}

// PlaceholderURL returns the view URL of the active theme's placeholder image.
func (uc *ManageAppearanceUseCase) PlaceholderURL() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.location.FileViewURL(uc.state.Placeholder)
}

// SetAssetLocation replaces the bucket used by PlaceholderURL.
// Observers are not notified: the appearance state itself is unchanged.
func (uc *ManageAppearanceUseCase) SetAssetLocation(location entity.AssetLocation) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.location = location
}

// SetTheme activates a theme. Surrounding whitespace is dropped, matching
// what Initialize reads back. Unknown ids are kept otherwise as given; only
// their placeholder falls back to the default one.
func (uc *ManageAppearanceUseCase) SetTheme(ctx context.Context, theme entity.ThemeID) {
	log := logging.FromContext(ctx)
	theme = entity.ThemeID(strings.TrimSpace(string(theme)))

	uc.mu.Lock()
	uc.state = entity.NewAppearanceState(theme, uc.state.Brightness)
	state := uc.state
	uc.mu.Unlock()

	uc.persist(ctx, repository.KeyThemeColor, string(theme))

	log.Info().
		Str("theme", string(theme)).
		Bool("known", theme.IsKnown()).
		Msg("theme changed")

	uc.notify(state)
}

// SetBrightness switches to mode, even if it is already active.
func (uc *ManageAppearanceUseCase) SetBrightness(ctx context.Context, mode entity.Brightness) {
	log := logging.FromContext(ctx)

	uc.mu.Lock()
	uc.state.Brightness = mode
	state := uc.state
	uc.mu.Unlock()

	uc.persist(ctx, repository.KeyBrightnessMode, string(mode))

	log.Info().Str("brightness", string(mode)).Msg("brightness changed")

	uc.notify(state)
}

// ToggleBrightness flips between light and dark.
func (uc *ManageAppearanceUseCase) ToggleBrightness(ctx context.Context) {
	uc.SetBrightness(ctx, uc.Brightness().Complement())
}

// persist writes one key. Failures are logged, never returned: the in-memory
// state stays authoritative for this run.
func (uc *ManageAppearanceUseCase) persist(ctx context.Context, key, value string) {
	if err := uc.prefs.Set(ctx, key, value); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("key", key).
			Str("value", value).
			Msg("failed to persist preference")
	}
}

// Subscribe implements port.AppearanceStore.
func (uc *ManageAppearanceUseCase) Subscribe(observer port.AppearanceObserver) func() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	wrapper := &observerWrapper{fn: observer}
	uc.observers = append(uc.observers, wrapper)

	return func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()

		for i, o := range uc.observers {
			if o == wrapper {
				uc.observers = append(uc.observers[:i], uc.observers[i+1:]...)
				return
			}
		}
	}
}

// notify invokes observers outside of the lock so they may call back into the store.
func (uc *ManageAppearanceUseCase) notify(state entity.AppearanceState) {
	uc.mu.RLock()
	observers := make([]*observerWrapper, len(uc.observers))
	copy(observers, uc.observers)
	uc.mu.RUnlock()

	for _, o := range observers {
		o.fn(state)
	}
}
