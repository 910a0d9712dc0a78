package main

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/titlebar/internal/app"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
	"github.com/Gaurav-Gosain/titlebar/internal/window"
)

func TestFilterMouseMotion(t *testing.T) {
	sim := window.NewSim(window.SimOptions{})
	defer sim.Shutdown()
	m := app.New(app.Options{Owner: sim, Width: 40})
	defer m.Cleanup()
	m.Mount()

	// Nothing hovered: motion over the title is dropped.
	if got := filterMouseMotion(m, tea.MouseMotionMsg{X: 3, Y: 0}); got != nil {
		t.Errorf("motion over title passed through: %#v", got)
	}

	// Moving onto a button changes the hover target.
	if got := filterMouseMotion(m, tea.MouseMotionMsg{X: 37, Y: 0}); got == nil {
		t.Error("motion onto close was dropped")
	}

	m.SetHover(titlebar.ControlClose)
	if got := filterMouseMotion(m, tea.MouseMotionMsg{X: 38, Y: 0}); got != nil {
		t.Error("motion within the hovered button passed through")
	}
	if got := filterMouseMotion(m, tea.MouseMotionMsg{X: 3, Y: 0}); got == nil {
		t.Error("motion leaving the button was dropped")
	}

	// Other messages are untouched.
	if got := filterMouseMotion(m, tea.KeyPressMsg{Code: 'm', Text: "m"}); got == nil {
		t.Error("key press was dropped")
	}
}

func TestCLIOverrides(t *testing.T) {
	defer func() { title, queryDelay = "", 0 }()
	title = "Game"
	queryDelay = 2 * time.Second

	o := cliOverrides()
	if o.Title != "Game" || o.QueryDelay != 2*time.Second {
		t.Errorf("overrides = %+v", o)
	}
}
