package titlebar

import "testing"

func TestButtonStyle_Highlight(t *testing.T) {
	tests := []struct {
		control Control
		hover   Control
		want    Highlight
	}{
		{ControlMinimize, ControlNone, HighlightNone},
		{ControlMaximize, ControlNone, HighlightNone},
		{ControlClose, ControlNone, HighlightNone},
		{ControlMinimize, ControlMinimize, HighlightNeutral},
		{ControlMaximize, ControlMaximize, HighlightNeutral},
		{ControlClose, ControlClose, HighlightDestructive},
		{ControlMinimize, ControlClose, HighlightNone},
		{ControlClose, ControlMaximize, HighlightNone},
	}

	for _, tt := range tests {
		for _, state := range []WindowState{StateUnknown, StateRestored, StateMaximized} {
			got := ButtonStyle(tt.control, tt.hover, state).Highlight
			if got != tt.want {
				t.Errorf("ButtonStyle(%v, hover=%v, %v).Highlight = %v, want %v",
					tt.control, tt.hover, state, got, tt.want)
			}
		}
	}
}

func TestButtonStyle_AtMostOneHighlighted(t *testing.T) {
	for _, hover := range []Control{ControlNone, ControlMinimize, ControlMaximize, ControlClose} {
		highlighted := 0
		for _, c := range Controls {
			if ButtonStyle(c, hover, StateRestored).Highlight != HighlightNone {
				highlighted++
			}
		}
		want := 1
		if hover == ControlNone {
			want = 0
		}
		if highlighted != want {
			t.Errorf("hover=%v: %d buttons highlighted, want %d", hover, highlighted, want)
		}
	}
}

func TestButtonStyle_MaximizeGlyph(t *testing.T) {
	tests := []struct {
		state     WindowState
		wantGlyph string
		wantLabel string
	}{
		{StateUnknown, DefaultGlyphs.Maximize, DefaultLabels.Maximize},
		{StateRestored, DefaultGlyphs.Maximize, DefaultLabels.Maximize},
		{StateMaximized, DefaultGlyphs.Restore, DefaultLabels.Restore},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			st := ButtonStyle(ControlMaximize, ControlNone, tt.state)
			if st.Glyph != tt.wantGlyph || st.Label != tt.wantLabel {
				t.Errorf("got (%q, %q), want (%q, %q)", st.Glyph, st.Label, tt.wantGlyph, tt.wantLabel)
			}
		})
	}
}

// Unknown and restored are visually identical on purpose.
func TestButtonStyle_UnknownLooksRestored(t *testing.T) {
	for _, c := range Controls {
		for _, hover := range []Control{ControlNone, ControlMinimize, ControlMaximize, ControlClose} {
			unknown := ButtonStyle(c, hover, StateUnknown)
			restored := ButtonStyle(c, hover, StateRestored)
			if unknown != restored {
				t.Errorf("%v hover=%v: unknown %+v != restored %+v", c, hover, unknown, restored)
			}
		}
	}
}

func TestPresenter_CustomGlyphsAndLabels(t *testing.T) {
	p := Presenter{
		Glyphs: ASCIIGlyphs,
		Labels: Labels{Minimize: "Minimieren", Maximize: "Maximieren", Restore: "Wiederherstellen", Close: "Schließen"},
	}

	if got := p.Style(ControlMaximize, ControlNone, StateMaximized); got.Glyph != "[=]" || got.Label != "Wiederherstellen" {
		t.Errorf("maximized style = %+v", got)
	}
	if got := p.Style(ControlClose, ControlClose, StateUnknown); got.Glyph != "x" || got.Highlight != HighlightDestructive {
		t.Errorf("hovered close style = %+v", got)
	}
}
