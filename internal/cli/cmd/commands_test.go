package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shade/internal/cli"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/infrastructure/colorscheme"
	"github.com/bnema/shade/internal/infrastructure/config"
	"github.com/bnema/shade/internal/logging"
)

func newTestApp(t *testing.T) *cli.App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "error"
	cfg.Assets = config.AssetsConfig{Domain: "assets.example.com", BucketID: "themes", Project: "shade"}

	a, err := cli.NewAppWithConfig(cfg, cli.Options{Ephemeral: true})
	require.NoError(t, err)
	return a
}

func TestSetTheme(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	setTheme(&out, a, entity.ThemeForest)

	assert.Equal(t, entity.ThemeForest, a.Store.Theme())
	assert.Contains(t, out.String(), "forest")
	assert.NotContains(t, out.String(), "not a known theme")
}

func TestSetTheme_UnknownIsKeptWithWarning(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	setTheme(&out, a, "neon")

	assert.Equal(t, entity.ThemeID("neon"), a.Store.Theme())
	assert.Equal(t, entity.PlaceholderFor(entity.DefaultTheme), a.Store.State().Placeholder)
	assert.Contains(t, out.String(), "not a known theme")
}

func TestListThemes_MarksCurrent(t *testing.T) {
	a := newTestApp(t)
	a.Store.SetTheme(a.Ctx(), entity.ThemeRose)
	var out bytes.Buffer

	listThemes(&out, a)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, len(entity.KnownThemes()))
	for _, line := range lines {
		if bytes.Contains(line, []byte("rose")) {
			assert.True(t, bytes.HasPrefix(line, []byte("●")))
			continue
		}
		assert.False(t, bytes.HasPrefix(line, []byte("●")))
	}
}

func TestSetBrightness(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	require.NoError(t, setBrightness(&out, a, " Dark "))
	assert.True(t, a.Store.IsDark())
	assert.Equal(t, "dark\n", out.String())
}

func TestSetBrightness_RejectsUnknownMode(t *testing.T) {
	a := newTestApp(t)

	err := setBrightness(&bytes.Buffer{}, a, "dim")
	require.ErrorIs(t, err, entity.ErrUnknownBrightness)
	assert.True(t, a.Store.IsLight())
}

func TestPrintTheme(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	printTheme(&out, a)
	assert.Equal(t, "indigo\n", out.String())
}

func TestRenderPreview(t *testing.T) {
	theme := styles.NewTheme(entity.DefaultAppearanceState())
	var out bytes.Buffer

	renderPreview(&out, theme, false, entity.ToggleStyles())

	for _, style := range entity.ToggleStyles() {
		assert.Contains(t, out.String(), style.String())
	}
	assert.Contains(t, out.String(), "indigo / light")
}

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"indigo", "forest", "ocean", "sunset", "rose", "slate"}, themeNames())
}

type fixedDetector struct {
	mode entity.Brightness
	ok   bool
}

func (fixedDetector) Name() string  { return "fixed" }
func (fixedDetector) Priority() int { return 1 }
func (d fixedDetector) Detect(context.Context) (entity.Brightness, bool) {
	return d.mode, d.ok
}

func TestApplySystemBrightness(t *testing.T) {
	a := newTestApp(t)
	var out bytes.Buffer

	applySystemBrightness(&out, a, colorscheme.NewResolver(fixedDetector{mode: entity.BrightnessDark, ok: true}))

	assert.True(t, a.Store.IsDark())
	assert.Equal(t, "dark (from fixed)\n", out.String())
}

func TestApplySystemBrightness_NoPreferenceKeepsMode(t *testing.T) {
	a := newTestApp(t)
	a.Store.SetBrightness(a.Ctx(), entity.BrightnessDark)
	var out bytes.Buffer

	applySystemBrightness(&out, a, colorscheme.NewResolver(fixedDetector{}))

	assert.True(t, a.Store.IsDark())
	assert.Contains(t, out.String(), "keeping dark")
}

func TestConfigPathCmd(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", root)

	var out bytes.Buffer
	configPathCmd.SetOut(&out)
	t.Cleanup(func() { configPathCmd.SetOut(nil) })

	require.NoError(t, configPathCmd.RunE(configPathCmd, nil))
	assert.Equal(t, filepath.Join(root, "shade", "config.toml")+"\n", out.String())
}

func TestConfigContext_UsesEnvLogLevel(t *testing.T) {
	t.Setenv("SHADE_LOG_LEVEL", "warn")

	assert.Equal(t, zerolog.WarnLevel, logging.FromContext(configContext()).GetLevel())
}
