package port

import (
	"context"

	"github.com/bnema/shade/internal/domain/entity"
)

//go:generate mockgen -source=appearance.go -destination=mocks/mock_appearance.go -package=mocks

// AppearanceObserver is invoked synchronously after every committed mutation
// with the new state.
type AppearanceObserver func(entity.AppearanceState)

// AppearanceStore is the view of the appearance preferences handed to UI layers.
// Mutators never fail from the caller's point of view: persistence problems
// are logged and the in-memory state stays authoritative.
type AppearanceStore interface {
	// State returns a consistent snapshot of theme, brightness and placeholder.
	State() entity.AppearanceState

	Theme() entity.ThemeID
	Brightness() entity.Brightness
	IsLight() bool
	IsDark() bool

	// PlaceholderURL returns the view URL of the current theme's placeholder image.
	PlaceholderURL() string

	SetTheme(ctx context.Context, theme entity.ThemeID)
	SetBrightness(ctx context.Context, mode entity.Brightness)
	ToggleBrightness(ctx context.Context)

	// Subscribe registers an observer and returns a function removing it.
	Subscribe(observer AppearanceObserver) func()
}
