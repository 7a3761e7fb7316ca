package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"accountdeck/internal/domain"
	"accountdeck/internal/observability"
	"accountdeck/internal/settings"
	"accountdeck/internal/ui"
)

const defaultWidth = 64

// ErrNoStore is reported when saving without a settings store.
var ErrNoStore = errors.New("no settings store configured")

var (
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1F8A4C", Dark: "#3DDC84"})
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"})
	styleApp    = lipgloss.NewStyle().Padding(1, 2)
)

// authChangedMsg is sent when the signed-in account changes.
type authChangedMsg struct{}

// Options configure a Model.
type Options struct {
	// Settings is the initial state of the panel.
	Settings domain.Settings
	// Store receives the settings on save. Saving is disabled when nil.
	Store domain.SettingsStore
	// Auth is watched so the header follows sign-in and sign-out.
	Auth     domain.AuthState
	Resolver *ui.Resolver
	Logger   *slog.Logger
}

// Model is the Bubble Tea model of the settings screen.
type Model struct {
	proxy     *settings.State[domain.ProxyURLs]
	backend   *settings.State[*string]
	proxyEd   settings.ProxyEditor
	backendEd settings.BackendEditor

	store    domain.SettingsStore
	resolver *ui.Resolver
	logger   *slog.Logger

	authMu      sync.Mutex
	authCh      chan struct{}
	authClosed  bool
	closeOnce   sync.Once
	unsubscribe func()

	keys  keyMap
	help  help.Model
	input textinput.Model

	focus   int
	editing bool
	dirty   bool
	quitArm bool
	width   int

	header    string
	headerErr error
	status    string
	err       error
}

// New builds the settings screen from opts.
func New(opts Options) *Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "https://"

	m := &Model{
		proxy:    settings.NewState(opts.Settings.ProxyURLs),
		backend:  settings.NewState(opts.Settings.BackendURL),
		store:    opts.Store,
		resolver: opts.Resolver,
		logger:   observability.Component(opts.Logger, "tui"),
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    in,
		width:    defaultWidth,
		authCh:   make(chan struct{}, 1),
	}
	m.proxy.OnChange = func(domain.ProxyURLs) { m.dirty = true }
	m.backend.OnChange = func(*string) { m.dirty = true }
	m.proxyEd = settings.NewProxyEditor(m.proxy.Setter())
	m.backendEd = settings.NewBackendEditor(m.backend.Setter())

	if opts.Auth != nil {
		m.unsubscribe = opts.Auth.Subscribe(func(*domain.Account) { m.notifyAuth() })
	}
	m.refreshHeader()
	return m
}

// Settings returns the values currently shown in the panel.
func (m *Model) Settings() domain.Settings {
	return domain.Settings{ProxyURLs: m.proxy.Get(), BackendURL: m.backend.Get()}
}

// Dirty reports whether there are unsaved edits.
func (m *Model) Dirty() bool { return m.dirty }

// Close stops watching the auth state and releases a pending waitForAuth.
// It is safe to call more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		m.authMu.Lock()
		m.authClosed = true
		close(m.authCh)
		m.authMu.Unlock()
	})
}

// notifyAuth queues at most one pending auth change. Listeners may still
// fire after Close, so sends check authClosed under authMu.
func (m *Model) notifyAuth() {
	m.authMu.Lock()
	defer m.authMu.Unlock()
	if m.authClosed {
		return
	}
	select {
	case m.authCh <- struct{}{}:
	default:
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForAuth()
}

func (m *Model) waitForAuth() tea.Cmd {
	ch := m.authCh
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return authChangedMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(max(msg.Width-4, 40), defaultWidth)
		m.help.Width = msg.Width
		return m, nil

	case authChangedMsg:
		m.refreshHeader()
		return m, m.waitForAuth()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Close()
			return m, tea.Quit
		}
		if m.editing {
			return m, m.handleEditingKeys(msg)
		}
		return m, m.handleKeys(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, m.keys.Quit) {
		m.quitArm = false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty && !m.quitArm {
			m.quitArm = true
			m.setStatus("Unsaved changes: ctrl+s to save, q again to quit")
			return nil
		}
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.ToggleProxy):
		m.proxyEd.Toggle()
		m.clampFocus()
	case key.Matches(msg, m.keys.ToggleBackend):
		m.backendEd.Toggle()
		m.clampFocus()
	case key.Matches(msg, m.keys.Add):
		return m.addWorker()
	case key.Matches(msg, m.keys.Remove):
		if f := m.focused(); f.Kind == ui.FieldProxyItem {
			m.proxyEd.Remove(f.Index)
			m.clampFocus()
		}
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Activate):
		return m.activate()
	}
	return nil
}

func (m *Model) handleEditingKeys(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Commit) {
		m.editing = false
		m.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value := m.input.Value()
	switch f := m.focused(); f.Kind {
	case ui.FieldProxyItem:
		m.proxyEd.Change(f.Index, value)
	case ui.FieldBackendURL:
		m.backendEd.Edit(value)
	}
	return cmd
}

// activate runs the action of the focused control.
func (m *Model) activate() tea.Cmd {
	switch f := m.focused(); f.Kind {
	case ui.FieldProxyToggle:
		m.proxyEd.Toggle()
		m.clampFocus()
	case ui.FieldBackendToggle:
		m.backendEd.Toggle()
		m.clampFocus()
	case ui.FieldProxyAdd:
		return m.addWorker()
	case ui.FieldProxyItem:
		return m.startEditing(m.proxy.Get()[f.Index])
	case ui.FieldBackendURL:
		var v string
		if b := m.backend.Get(); b != nil {
			v = *b
		}
		return m.startEditing(v)
	}
	return nil
}

// addWorker appends an empty worker and starts editing it.
func (m *Model) addWorker() tea.Cmd {
	m.proxyEd.Add()
	n := len(m.proxy.Get())
	m.focusOn(ui.Field{Kind: ui.FieldProxyItem, Index: n - 1})
	return m.startEditing("")
}

func (m *Model) startEditing(value string) tea.Cmd {
	m.editing = true
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) save() {
	if m.store == nil {
		m.setError(ErrNoStore)
		return
	}
	if err := m.store.SaveSettings(m.Settings()); err != nil {
		m.logger.Error("save settings", slog.Any("err", err))
		m.setError(fmt.Errorf("save settings: %w", err))
		return
	}
	m.dirty = false
	m.setStatus("Settings saved")
}

func (m *Model) fields() []ui.Field {
	return ui.Fields(m.proxy.Get(), m.backend.Get())
}

func (m *Model) focused() ui.Field {
	fields := m.fields()
	if m.focus < 0 || m.focus >= len(fields) {
		return ui.Field{}
	}
	return fields[m.focus]
}

func (m *Model) focusOn(target ui.Field) {
	for i, f := range m.fields() {
		if f == target {
			m.focus = i
			return
		}
	}
}

// move shifts focus by delta, wrapping around.
func (m *Model) move(delta int) {
	n := len(m.fields())
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *Model) clampFocus() {
	if n := len(m.fields()); m.focus >= n {
		m.focus = n - 1
	}
}

func (m *Model) refreshHeader() {
	m.header, m.headerErr = "", nil
	if m.resolver == nil {
		m.header = ui.NoUserAvatar(ui.AvatarOptions{Size: ui.SizeMedium})
		return
	}
	view, ok, err := m.resolver.Render(ui.UserAvatarOptions{
		AvatarOptions: ui.AvatarOptions{Size: ui.SizeMedium},
		WithName:      true,
	})
	switch {
	case err != nil:
		m.logger.Warn("render identity", slog.Any("err", err))
		m.headerErr = err
		m.header = ui.NoUserAvatar(ui.AvatarOptions{Size: ui.SizeMedium})
	case !ok:
		m.header = ui.NoUserAvatar(ui.AvatarOptions{Size: ui.SizeMedium})
	default:
		m.header = view
	}
}

func (m *Model) setStatus(s string) { m.status, m.err = s, nil }
func (m *Model) setError(err error) { m.status, m.err = "", err }

// View implements tea.Model.
func (m *Model) View() string {
	props := ui.ConnectionsProps{
		ProxyURLs:  m.proxy.Get(),
		BackendURL: m.backend.Get(),
		Focus:      m.focused(),
		Width:      m.width,
	}
	if m.editing {
		props.Input = m.input.View()
	}

	parts := []string{m.header}
	if m.headerErr != nil {
		parts = append(parts, styleError.Render("identity unavailable: "+m.headerErr.Error()))
	}
	parts = append(parts, "", ui.ConnectionsPart(props), "")

	switch {
	case m.err != nil:
		parts = append(parts, styleError.Render(m.err.Error()))
	case m.status != "":
		parts = append(parts, styleStatus.Render(m.status))
	}
	if m.editing {
		parts = append(parts, m.help.View(editingKeys{commit: m.keys.Commit}))
	} else {
		parts = append(parts, m.help.View(m.keys))
	}
	return styleApp.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Run shows the settings screen until the user quits and returns the final
// model.
func Run(opts Options) (*Model, error) {
	m := New(opts)
	defer m.Close()
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return m, err
	}
	return m, nil
}
