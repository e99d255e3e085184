package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/application/port/mocks"
	"github.com/bnema/shade/internal/domain/entity"
)

type settingsFixture struct {
	store        *mocks.MockAppearanceStore
	observer     port.AppearanceObserver
	unsubscribed int
}

func newSettingsFixture(t *testing.T, initial entity.AppearanceState) *settingsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &settingsFixture{store: mocks.NewMockAppearanceStore(ctrl)}

	f.store.EXPECT().State().Return(initial).AnyTimes()
	f.store.EXPECT().PlaceholderURL().Return("http://assets.example.com/view").AnyTimes()
	f.store.EXPECT().Subscribe(gomock.Any()).DoAndReturn(func(obs port.AppearanceObserver) func() {
		f.observer = obs
		return func() { f.unsubscribed++ }
	}).MaxTimes(1)
	return f
}

func press(t *testing.T, m SettingsModel, msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SettingsModel)
	require.True(t, ok)
	return sm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSettingsModel_SelectsCurrentThemeOnStart(t *testing.T) {
	f := newSettingsFixture(t, entity.NewAppearanceState(entity.ThemeOcean, entity.BrightnessLight))

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleSwitch)

	assert.Equal(t, entity.ThemeOcean, m.themes[m.selectedIdx])
}

func TestSettingsModel_EnterAppliesSelectedTheme(t *testing.T) {
	f := newSettingsFixture(t, entity.DefaultAppearanceState())
	f.store.EXPECT().SetTheme(gomock.Any(), entity.ThemeForest).Times(1)

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleSwitch)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, m.selectedIdx)
}

func TestSettingsModel_CursorStaysInBounds(t *testing.T) {
	f := newSettingsFixture(t, entity.DefaultAppearanceState())

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleSwitch)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.selectedIdx)

	for range entity.KnownThemes() {
		m, _ = press(t, m, runes("j"))
	}
	assert.Equal(t, len(entity.KnownThemes())-1, m.selectedIdx)
}

func TestSettingsModel_ToggleKeys(t *testing.T) {
	f := newSettingsFixture(t, entity.DefaultAppearanceState())
	f.store.EXPECT().ToggleBrightness(gomock.Any()).Times(2)

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleSwitch)
	m, _ = press(t, m, runes("t"))
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func TestSettingsModel_CyclesToggleStyle(t *testing.T) {
	f := newSettingsFixture(t, entity.DefaultAppearanceState())

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleSwitch)
	for _, want := range []entity.ToggleStyle{
		entity.ToggleStyleCheckbox,
		entity.ToggleStyleSegmented,
		entity.ToggleStyleIcon,
		entity.ToggleStyleRadio,
		entity.ToggleStyleSwitch,
	} {
		m, _ = press(t, m, runes("s"))
		assert.Equal(t, want, m.ToggleStyle())
	}
}

func TestSettingsModel_NotificationBecomesMessage(t *testing.T) {
	f := newSettingsFixture(t, entity.DefaultAppearanceState())

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleSwitch)
	wait := m.Init()
	require.NotNil(t, f.observer, "Init should subscribe to the store")

	// Two notifications before the command runs coalesce into one message.
	f.observer(entity.NewAppearanceState(entity.ThemeRose, entity.BrightnessDark))
	f.observer(entity.NewAppearanceState(entity.ThemeRose, entity.BrightnessDark))

	msg := wait()
	changed, ok := msg.(appearanceChangedMsg)
	require.True(t, ok)

	next, cmd := m.Update(changed)
	assert.NotNil(t, cmd, "model keeps listening after a change")
	sm := next.(SettingsModel)
	assert.Equal(t, entity.DefaultAppearanceState(), sm.state)
}

func TestSettingsModel_ChangeRebuildsTheme(t *testing.T) {
	f := newSettingsFixture(t, entity.DefaultAppearanceState())

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleSwitch)
	dark := entity.NewAppearanceState(entity.ThemeSunset, entity.BrightnessDark)

	next, _ := m.Update(appearanceChangedMsg{state: dark})
	sm := next.(SettingsModel)

	assert.Equal(t, dark, sm.state)
	assert.Equal(t, entity.ThemeSunset, sm.theme.ID)
	assert.Equal(t, entity.BrightnessDark, sm.theme.Brightness)
}

func TestSettingsModel_QuitUnsubscribes(t *testing.T) {
	f := newSettingsFixture(t, entity.DefaultAppearanceState())

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleSwitch)
	_ = m.Init()

	m, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, f.unsubscribed)

	// A second quit does not unsubscribe twice.
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, f.unsubscribed)
}

func TestSettingsModel_WaitEndsWithContext(t *testing.T) {
	f := newSettingsFixture(t, entity.DefaultAppearanceState())
	ctx, cancel := context.WithCancel(context.Background())

	m := NewSettingsModel(ctx, f.store, entity.ToggleStyleSwitch)
	wait := m.Init()
	cancel()

	assert.Nil(t, wait())
}

func TestSettingsModel_View(t *testing.T) {
	f := newSettingsFixture(t, entity.NewAppearanceState(entity.ThemeForest, entity.BrightnessDark))

	m := NewSettingsModel(context.Background(), f.store, entity.ToggleStyleCheckbox)
	view := m.View()

	for _, id := range entity.KnownThemes() {
		assert.Contains(t, view, id.String())
	}
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "Dark mode")
	assert.Contains(t, view, "checkbox")
	assert.Contains(t, view, "http://assets.example.com/view")
}
