package app

import (
	"github.com/Gaurav-Gosain/titlebar/internal/config"
	"github.com/Gaurav-Gosain/titlebar/internal/titlebar"
)

// BarRow is the screen row the titlebar occupies.
const BarRow = 0

// ButtonsStart returns the first column of the button strip. The buttons are
// right-aligned, ButtonWidth cells each.
func ButtonsStart(width int) int {
	return max(width-len(titlebar.Controls)*config.ButtonWidth, 0)
}

// ControlAt returns the button under cell (x, y), or ControlNone.
func ControlAt(x, y, width int) titlebar.Control {
	if y != BarRow || x < 0 || x >= width {
		return titlebar.ControlNone
	}
	start := ButtonsStart(width)
	if x < start {
		return titlebar.ControlNone
	}
	idx := (x - start) / config.ButtonWidth
	if idx >= len(titlebar.Controls) {
		return titlebar.ControlNone
	}
	return titlebar.Controls[idx]
}

// InDragRegion reports whether (x, y) is on the bar but not on a button.
func InDragRegion(x, y, width int) bool {
	return y == BarRow && x >= 0 && x < ButtonsStart(width)
}
