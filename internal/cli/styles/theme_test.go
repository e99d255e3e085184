package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/entity"
)

func TestPaletteFor(t *testing.T) {
	dark := styles.PaletteFor(entity.NewAppearanceState(entity.ThemeForest, entity.BrightnessDark))
	light := styles.PaletteFor(entity.NewAppearanceState(entity.ThemeForest, entity.BrightnessLight))

	assert.Equal(t, styles.DefaultDarkPalette().Background, dark.Background)
	assert.Equal(t, styles.DefaultLightPalette().Background, light.Background)
	assert.NotEqual(t, dark.Accent, light.Accent)
}

func TestPaletteFor_DistinctAccents(t *testing.T) {
	seen := map[string]entity.ThemeID{}
	for _, id := range entity.KnownThemes() {
		p := styles.PaletteFor(entity.NewAppearanceState(id, entity.BrightnessDark))
		prev, dup := seen[p.Accent]
		assert.False(t, dup, "%s shares its accent with %s", id, prev)
		seen[p.Accent] = id
	}
}

func TestPaletteFor_UnknownThemeUsesDefaultAccent(t *testing.T) {
	unknown := styles.PaletteFor(entity.NewAppearanceState("neon", entity.BrightnessLight))
	def := styles.PaletteFor(entity.NewAppearanceState(entity.DefaultTheme, entity.BrightnessLight))

	assert.Equal(t, def, unknown)
}

func TestNewTheme(t *testing.T) {
	state := entity.NewAppearanceState(entity.ThemeOcean, entity.BrightnessDark)
	theme := styles.NewTheme(state)

	assert.Equal(t, entity.ThemeOcean, theme.ID)
	assert.Equal(t, entity.BrightnessDark, theme.Brightness)
	assert.Equal(t, lipgloss.Color(styles.PaletteFor(state).Accent), theme.Accent)
	assert.Equal(t, theme.Accent, theme.AccentFor(entity.ThemeOcean))
	assert.NotEqual(t, theme.Accent, theme.AccentFor(entity.ThemeRose))
}
