// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/shade/internal/application/port"
	"github.com/bnema/shade/internal/cli/styles"
	"github.com/bnema/shade/internal/domain/entity"
	"github.com/bnema/shade/internal/logging"
)

// SettingsModel is the interactive theme and brightness picker.
type SettingsModel struct {
	help help.Model
	keys settingsKeyMap

	themes      []entity.ThemeID
	selectedIdx int
	state       entity.AppearanceState
	toggleStyle entity.ToggleStyle
	width       int

	ctx   context.Context
	store port.AppearanceStore
	sub   *subscription
	theme *styles.Theme
}

// subscription is shared by every copy of the model.
type subscription struct {
	changed chan struct{}
	cancel  func()
}

// appearanceChangedMsg carries the store state after a notification.
type appearanceChangedMsg struct {
	state entity.AppearanceState
}

type settingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Apply  key.Binding
	Toggle key.Binding
	Style  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k settingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Apply, k.Toggle, k.Style, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k settingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Apply},
		{k.Toggle, k.Style},
		{k.Help, k.Quit},
	}
}

func defaultSettingsKeyMap() settingsKeyMap {
	return settingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply theme"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t", " "),
			key.WithHelp("t/space", "toggle dark mode"),
		),
		Style: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle style"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewSettingsModel creates the settings screen for store.
func NewSettingsModel(ctx context.Context, store port.AppearanceStore, toggleStyle entity.ToggleStyle) SettingsModel {
	state := store.State()
	themes := entity.KnownThemes()

	selected := 0
	for i, id := range themes {
		if id == state.Theme {
			selected = i
			break
		}
	}

	return SettingsModel{
		help:        help.New(),
		keys:        defaultSettingsKeyMap(),
		themes:      themes,
		selectedIdx: selected,
		state:       state,
		toggleStyle: toggleStyle,
		width:       80,
		ctx:         ctx,
		store:       store,
		sub:         &subscription{changed: make(chan struct{}, 1)},
		theme:       styles.NewTheme(state),
	}
}

// Init implements tea.Model.
func (m SettingsModel) Init() tea.Cmd {
	changed := m.sub.changed
	m.sub.cancel = m.store.Subscribe(func(entity.AppearanceState) {
		// Coalesce: the waiting command re-reads the latest state anyway.
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	return m.waitForChange()
}

func (m SettingsModel) waitForChange() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.sub.changed:
			return appearanceChangedMsg{state: m.store.State()}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// Update implements tea.Model.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case appearanceChangedMsg:
		m.state = msg.state
		m.theme = styles.NewTheme(msg.state)
		return m, m.waitForChange()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m SettingsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unsubscribe()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.themes)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		selected := m.themes[m.selectedIdx]
		logging.FromContext(m.ctx).Debug().Str("theme", selected.String()).Msg("applying theme")
		m.store.SetTheme(m.ctx, selected)
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.store.ToggleBrightness(m.ctx)
		return m, nil

	case key.Matches(msg, m.keys.Style):
		m.toggleStyle = m.toggleStyle.Next()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m SettingsModel) unsubscribe() {
	if m.sub.cancel != nil {
		m.sub.cancel()
		m.sub.cancel = nil
	}
}

// View implements tea.Model.
func (m SettingsModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("Appearance"))
	b.WriteString("\n\n")

	b.WriteString(t.Subtitle.Render("Theme"))
	b.WriteString("\n")
	for i, id := range m.themes {
		b.WriteString(m.renderThemeRow(i, id))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Toggle(m.toggleStyle, m.state.IsDark(), "Dark mode"))
	b.WriteString("  ")
	b.WriteString(t.Subtle.Render(fmt.Sprintf("(%s)", m.toggleStyle)))
	b.WriteString("\n\n")

	b.WriteString(t.Subtle.Render("Placeholder: " + m.store.PlaceholderURL()))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(m.keys))
	return t.Box.Render(b.String())
}

func (m SettingsModel) renderThemeRow(i int, id entity.ThemeID) string {
	t := m.theme
	swatch := t.Swatch.Background(t.AccentFor(id)).Render("  ")

	marker := " "
	if id == m.state.Theme {
		marker = "●"
	}
	line := fmt.Sprintf("%s %s %s", marker, swatch, id)

	if i == m.selectedIdx {
		return t.ListItemSelected.Render(line)
	}
	return t.ListItem.Render(line)
}

// ToggleStyle returns the style currently used for the dark mode toggle.
func (m SettingsModel) ToggleStyle() entity.ToggleStyle {
	return m.toggleStyle
}
