package app

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/theme"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
	"github.com/Gaurav-Gosain/titlebar/internal/window"
)

const waitTimeout = 2 * time.Second

func newTestModel(t *testing.T, opts window.SimOptions) (*Model, *window.Sim) {
	t.Helper()
	sim := window.NewSim(opts)
	m := New(Options{Owner: sim, External: sim, Width: 60, Height: 20})
	t.Cleanup(func() {
		m.Cleanup()
		sim.Shutdown()
	})
	m.Mount()
	return m, sim
}

// step runs the pending signal command and feeds its message to Update.
func step(t *testing.T, m *Model) tea.Msg {
	t.Helper()
	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- WaitForSignal(m.ctx, m.Controller)() }()

	select {
	case msg := <-msgs:
		m.Update(msg)
		return msg
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for a signal")
		return nil
	}
}

func TestModel_InitialQuery(t *testing.T) {
	m, _ := newTestModel(t, window.SimOptions{StartMaximized: true})

	if m.Snapshot.State != titlebar.StateUnknown {
		t.Fatalf("state before query = %v, want unknown", m.Snapshot.State)
	}

	msg := step(t, m)
	if _, ok := msg.(SignalMsg).Signal.(titlebar.QueryResolved); !ok {
		t.Fatalf("first signal = %#v, want QueryResolved", msg)
	}
	if m.Snapshot.State != titlebar.StateMaximized {
		t.Errorf("state = %v, want maximized", m.Snapshot.State)
	}
	if !strings.Contains(m.Render(), titlebar.DefaultGlyphs.Restore) {
		t.Error("maximized bar does not show the restore glyph")
	}
}

func TestModel_MaximizeButtonRoundTrip(t *testing.T) {
	m, sim := newTestModel(t, window.SimOptions{})
	step(t, m) // query

	m.Activate(titlebar.ControlMaximize)
	if m.LastCommand != titlebar.CommandMaximize {
		t.Fatalf("LastCommand = %v, want maximize", m.LastCommand)
	}
	if m.Snapshot.State != titlebar.StateRestored {
		t.Error("activation must not change state before the owner reports it")
	}

	step(t, m)
	if m.Snapshot.State != titlebar.StateMaximized {
		t.Fatalf("state = %v, want maximized", m.Snapshot.State)
	}

	m.Activate(titlebar.ControlMaximize)
	if m.LastCommand != titlebar.CommandRestore {
		t.Fatalf("LastCommand = %v, want restore", m.LastCommand)
	}
	step(t, m)
	if m.Snapshot.State != titlebar.StateRestored {
		t.Errorf("state = %v, want restored", m.Snapshot.State)
	}
	if sim.State().Maximized {
		t.Error("sim still maximized")
	}
}

func TestModel_ExternalToggleFollowsOwner(t *testing.T) {
	m, _ := newTestModel(t, window.SimOptions{})
	step(t, m)

	m.ExternalToggle()
	step(t, m)
	if m.Snapshot.State != titlebar.StateMaximized {
		t.Fatalf("state = %v, want maximized", m.Snapshot.State)
	}

	m.ExternalRestore()
	step(t, m)
	if m.Snapshot.State != titlebar.StateRestored {
		t.Errorf("state = %v, want restored", m.Snapshot.State)
	}
}

func TestModel_ExternalWithoutManager(t *testing.T) {
	sim := window.NewSim(window.SimOptions{})
	defer sim.Shutdown()

	m := New(Options{Owner: sim})
	defer m.Cleanup()

	m.ExternalToggle()
	if len(m.LogMessages) == 0 || m.LogMessages[len(m.LogMessages)-1].Level != "WARN" {
		t.Error("expected a warning when no window manager is attached")
	}
}

func TestModel_HoverAndBlur(t *testing.T) {
	m, _ := newTestModel(t, window.SimOptions{})

	m.SetHover(titlebar.ControlClose)
	if m.Snapshot.Hover != titlebar.ControlClose {
		t.Fatalf("hover = %v, want close", m.Snapshot.Hover)
	}

	m.Update(tea.BlurMsg{})
	if m.Snapshot.Hover != titlebar.ControlNone {
		t.Errorf("hover after blur = %v, want none", m.Snapshot.Hover)
	}
}

func TestModel_WindowClosedQuits(t *testing.T) {
	m, sim := newTestModel(t, window.SimOptions{})
	step(t, m)

	_, cmd := m.Update(WindowClosedMsg{})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if m.Snapshot.Mounted {
		t.Error("model still mounted after close")
	}
	if n := sim.ListenerCount(); n != 0 {
		t.Errorf("ListenerCount = %d after close, want 0", n)
	}

	// Nothing reaches the snapshot after unmount.
	before := m.Snapshot
	m.Update(SignalMsg{Signal: titlebar.MaximizedEvent{}})
	if m.Snapshot != before {
		t.Errorf("snapshot changed after unmount: %+v -> %+v", before, m.Snapshot)
	}
}

func TestModel_CloseButton(t *testing.T) {
	closed := make(chan struct{})
	sim := window.NewSim(window.SimOptions{OnClose: func() { close(closed) }})
	defer sim.Shutdown()

	m := New(Options{Owner: sim, Closed: closed})
	defer m.Cleanup()
	m.Mount()

	m.Activate(titlebar.ControlClose)

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- WaitForWindowClose(closed)() }()
	select {
	case msg := <-msgs:
		if _, ok := msg.(WindowClosedMsg); !ok {
			t.Fatalf("msg = %#v, want WindowClosedMsg", msg)
		}
	case <-time.After(waitTimeout):
		t.Fatal("window was never closed")
	}
	if !sim.State().Closed {
		t.Error("sim not closed")
	}
}

func TestModel_ConfigReload(t *testing.T) {
	updates := make(chan ConfigUpdate, 1)
	sim := window.NewSim(window.SimOptions{})
	defer sim.Shutdown()

	m := New(Options{Owner: sim, ConfigUpdates: updates})
	defer m.Cleanup()

	cfg := config.DefaultConfig()
	cfg.Appearance.ASCIIOnly = true
	cfg.Appearance.Title = "Reloaded"
	cfg.Labels.Close = "Quit game"

	_, cmd := m.Update(ConfigUpdateMsg{Config: cfg})
	if cmd == nil {
		t.Error("expected to keep listening for config changes")
	}
	if m.Presenter.Glyphs != titlebar.ASCIIGlyphs {
		t.Errorf("glyphs = %+v, want ASCII", m.Presenter.Glyphs)
	}
	if m.Presenter.Labels.Close != "Quit game" {
		t.Errorf("close label = %q", m.Presenter.Labels.Close)
	}
	if !strings.Contains(m.Render(), "Reloaded") {
		t.Error("title not re-rendered")
	}
}

func TestModel_ConfigReloadFailureLogsError(t *testing.T) {
	sim := window.NewSim(window.SimOptions{})
	defer sim.Shutdown()
	m := New(Options{Owner: sim, ConfigUpdates: make(chan ConfigUpdate)})
	defer m.Cleanup()
	before := m.Config

	m.Update(ConfigUpdateMsg{Err: errors.New("bad toml")})
	if m.Config != before {
		t.Error("failed reload replaced the config")
	}
	last := m.LogMessages[len(m.LogMessages)-1]
	if last.Level != "ERROR" || !strings.Contains(last.Message, "bad toml") {
		t.Errorf("last log = %+v, want an ERROR about the reload", last)
	}
}

// Each SSH session builds its own model; run with -race.
func TestModel_SessionsKeepTheirOwnTheme(t *testing.T) {
	themes := []string{"", "dracula", "nord", "definitely-not-a-theme"}

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := themes[i%len(themes)]
			want, _ := theme.Lookup(name)

			sim := window.NewSim(window.SimOptions{})
			defer sim.Shutdown()
			cfg := config.DefaultConfig()
			cfg.Appearance.Theme = name
			m := New(Options{Owner: sim, Config: cfg, Width: 40})
			defer m.Cleanup()

			for range 20 {
				_ = m.Render()
				if m.Palette != want {
					t.Errorf("session with theme %q rendered with another palette", name)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestModel_LogRingIsBounded(t *testing.T) {
	sim := window.NewSim(window.SimOptions{})
	defer sim.Shutdown()
	m := New(Options{Owner: sim})
	defer m.Cleanup()

	for i := range config.MaxLogMessages + 25 {
		m.LogInfo("message %d", i)
	}
	if len(m.LogMessages) != config.MaxLogMessages {
		t.Fatalf("len = %d, want %d", len(m.LogMessages), config.MaxLogMessages)
	}
	if got := m.LogMessages[0].Message; got != "message 25" {
		t.Errorf("oldest = %q, want message 25", got)
	}
}

func TestPresenterFor(t *testing.T) {
	if got := PresenterFor(nil); got != titlebar.DefaultPresenter {
		t.Errorf("PresenterFor(nil) = %+v", got)
	}

	cfg := config.DefaultConfig()
	cfg.Labels.Maximize = ""
	if got := PresenterFor(cfg).Labels.Maximize; got != titlebar.DefaultLabels.Maximize {
		t.Errorf("empty label not defaulted: %q", got)
	}
}
