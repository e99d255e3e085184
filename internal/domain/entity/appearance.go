package entity

import (
	"errors"
	"strings"
)

// ThemeID identifies a named color palette (e.g. "forest").
// Values outside KnownThemes are representable on purpose: the store keeps
// whatever the caller selected and only the placeholder lookup falls back.
type ThemeID string

const (
	ThemeIndigo ThemeID = "indigo"
	ThemeForest ThemeID = "forest"
	ThemeOcean  ThemeID = "ocean"
	ThemeSunset ThemeID = "sunset"
	ThemeRose   ThemeID = "rose"
	ThemeSlate  ThemeID = "slate"

	// DefaultTheme is used when nothing (or nothing usable) is persisted.
	DefaultTheme = ThemeIndigo
)

// placeholders maps each known theme to the asset id of its placeholder image.
var placeholders = map[ThemeID]string{
	ThemeIndigo: "64f1c2a9e07b3d5a18c4",
	ThemeForest: "64f1c2b3a5d92e1f07b6",
	ThemeOcean:  "64f1c2bd91e4f6a3c205",
	ThemeSunset: "64f1c2c7d8b0a4e6f139",
	ThemeRose:   "64f1c2d15e3a7c9b40d8",
	ThemeSlate:  "64f1c2db0c6f8e2a5b71",
}

// knownThemes keeps display order stable.
var knownThemes = []ThemeID{ThemeIndigo, ThemeForest, ThemeOcean, ThemeSunset, ThemeRose, ThemeSlate}

// KnownThemes returns the closed set of selectable themes in display order.
func KnownThemes() []ThemeID {
	out := make([]ThemeID, len(knownThemes))
	copy(out, knownThemes)
	return out
}

// IsKnown reports whether the theme belongs to KnownThemes.
func (t ThemeID) IsKnown() bool {
	_, ok := placeholders[t]
	return ok
}

// String implements fmt.Stringer.
func (t ThemeID) String() string {
	return string(t)
}

// PlaceholderFor returns the placeholder asset id for a theme.
// Unknown themes get the default theme's placeholder.
func PlaceholderFor(t ThemeID) string {
	if id, ok := placeholders[t]; ok {
		return id
	}
	return placeholders[DefaultTheme]
}

// ParseTheme maps a persisted value back to a ThemeID.
// Anything that is not a known theme yields DefaultTheme and ok=false.
func ParseTheme(raw string) (theme ThemeID, ok bool) {
	t := ThemeID(strings.TrimSpace(raw))
	if !t.IsKnown() {
		return DefaultTheme, false
	}
	return t, true
}

// Brightness is the light/dark display mode.
type Brightness string

const (
	BrightnessLight Brightness = "light"
	BrightnessDark  Brightness = "dark"

	// DefaultBrightness is used when nothing usable is persisted.
	DefaultBrightness = BrightnessLight
)

// ErrUnknownBrightness is returned when a value is neither "light" nor "dark".
var ErrUnknownBrightness = errors.New("unknown brightness mode")

// ParseBrightness parses "light" or "dark" (case-insensitive, trimmed).
func ParseBrightness(raw string) (Brightness, error) {
	switch Brightness(strings.ToLower(strings.TrimSpace(raw))) {
	case BrightnessLight:
		return BrightnessLight, nil
	case BrightnessDark:
		return BrightnessDark, nil
	default:
		return DefaultBrightness, ErrUnknownBrightness
	}
}

// Complement returns the opposite mode.
func (b Brightness) Complement() Brightness {
	if b == BrightnessDark {
		return BrightnessLight
	}
	return BrightnessDark
}

// String implements fmt.Stringer.
func (b Brightness) String() string {
	return string(b)
}

// AppearanceState is the observable aggregate of display preferences.
// Placeholder always equals PlaceholderFor(Theme); build it with NewAppearanceState.
type AppearanceState struct {
	Theme       ThemeID
	Brightness  Brightness
	Placeholder string
}

// NewAppearanceState builds a state with the placeholder derived from theme.
func NewAppearanceState(theme ThemeID, brightness Brightness) AppearanceState {
	return AppearanceState{
		Theme:       theme,
		Brightness:  brightness,
		Placeholder: PlaceholderFor(theme),
	}
}

// DefaultAppearanceState returns the state used on first run.
func DefaultAppearanceState() AppearanceState {
	return NewAppearanceState(DefaultTheme, DefaultBrightness)
}

// IsDark returns true if dark mode is active.
func (s AppearanceState) IsDark() bool {
	return s.Brightness == BrightnessDark
}
