// Package theme provides the titlebar palette.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

// Palette is the set of colours the titlebar draws with.
type Palette struct {
	Bar              color.Color
	BarBorder        color.Color
	Fg               color.Color
	Title            color.Color
	NeutralHover     color.Color
	DestructiveHover color.Color
	DestructiveFg    color.Color
	Dim              color.Color
	Accent           color.Color
	Warn             color.Color
}

// Default is the built-in dark palette. The close hover red matches the
// usual desktop close button.
var Default = Palette{
	Bar:              lipgloss.Color("#1a1a1a"),
	BarBorder:        lipgloss.Color("#2d2d2d"),
	Fg:               lipgloss.Color("#ffffff"),
	Title:            lipgloss.Color("#ffffff"),
	NeutralHover:     lipgloss.Color("#3a3a3a"),
	DestructiveHover: lipgloss.Color("#e81123"),
	DestructiveFg:    lipgloss.Color("#ffffff"),
	Dim:              lipgloss.Color("#7f7f7f"),
	Accent:           lipgloss.Color("#00cdcd"),
	Warn:             lipgloss.Color("#cdcd00"),
}

// Fallback is the tint used when a named theme does not exist.
var Fallback = tint.TintDraculaPlus

// Lookup resolves a palette by bubbletint ID. An empty name selects Default.
// An unknown name returns the Fallback palette along with an error. Lookup
// keeps no state, so any number of sessions may call it concurrently.
func Lookup(name string) (Palette, error) {
	if name == "" {
		return Default, nil
	}
	if t := tint.DefaultTintsByID(name); t != nil {
		return FromTint(t), nil
	}
	return FromTint(Fallback), fmt.Errorf("unknown theme %q, using %s", name, Fallback.ID)
}

// FromTint maps a bubbletint tint onto the titlebar's colour roles.
func FromTint(t *tint.Tint) Palette {
	if t == nil {
		return Default
	}
	return Palette{
		Bar:              orDefault(t.Bg, Default.Bar),
		BarBorder:        orDefault(t.BrightBlack, Default.BarBorder),
		Fg:               orDefault(t.Fg, Default.Fg),
		Title:            orDefault(t.BrightWhite, Default.Title),
		NeutralHover:     orDefault(t.BrightBlack, Default.NeutralHover),
		DestructiveHover: orDefault(t.Red, Default.DestructiveHover),
		DestructiveFg:    orDefault(t.BrightWhite, Default.DestructiveFg),
		Dim:              orDefault(t.BrightBlack, Default.Dim),
		Accent:           orDefault(t.BrightCyan, Default.Accent),
		Warn:             orDefault(t.Yellow, Default.Warn),
	}
}

// orDefault keeps a nil *tint.Color from becoming a non-nil color.Color.
func orDefault(c *tint.Color, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

// ColorToString converts a colour to a #rrggbb string.
func ColorToString(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
