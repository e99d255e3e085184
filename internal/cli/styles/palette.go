package styles

import "github.com/bnema/shade/internal/domain/entity"

// Palette is the set of base colors a Theme is derived from.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
}

// accents holds the accent color of each theme, for dark and light backgrounds.
var accents = map[entity.ThemeID]struct{ dark, light string }{
	entity.ThemeIndigo: {dark: "#818cf8", light: "#4f46e5"},
	entity.ThemeForest: {dark: "#4ade80", light: "#15803d"},
	entity.ThemeOcean:  {dark: "#38bdf8", light: "#0369a1"},
	entity.ThemeSunset: {dark: "#fb923c", light: "#c2410c"},
	entity.ThemeRose:   {dark: "#fb7185", light: "#be123c"},
	entity.ThemeSlate:  {dark: "#94a3b8", light: "#475569"},
}

// DefaultDarkPalette returns the neutral dark base colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         accents[entity.DefaultTheme].dark,
		Border:         "#333333",
	}
}

// DefaultLightPalette returns the neutral light base colors.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#fafafa",
		Surface:        "#f0f0f0",
		SurfaceVariant: "#e2e2e2",
		Text:           "#111111",
		Muted:          "#6b6b6b",
		Accent:         accents[entity.DefaultTheme].light,
		Border:         "#d0d0d0",
	}
}

// PaletteFor combines the brightness base with the theme accent.
// Unknown themes use the default theme's accent.
func PaletteFor(state entity.AppearanceState) Palette {
	accent, ok := accents[state.Theme]
	if !ok {
		accent = accents[entity.DefaultTheme]
	}

	if state.IsDark() {
		p := DefaultDarkPalette()
		p.Accent = accent.dark
		return p
	}
	p := DefaultLightPalette()
	p.Accent = accent.light
	return p
}
