package titlebar

// Highlight is the background treatment of a button.
type Highlight int

const (
	HighlightNone        Highlight = iota // transparent
	HighlightNeutral                      // hovered minimize or maximize
	HighlightDestructive                  // hovered close
)

func (h Highlight) String() string {
	switch h {
	case HighlightNeutral:
		return "neutral"
	case HighlightDestructive:
		return "destructive"
	default:
		return "none"
	}
}

// Glyphs are the button faces.
type Glyphs struct {
	Minimize string
	Maximize string
	Restore  string
	Close    string
}

// Labels are the button tooltips.
type Labels struct {
	Minimize string
	Maximize string
	Restore  string
	Close    string
}

var (
	DefaultGlyphs = Glyphs{Minimize: "—", Maximize: "□", Restore: "❐", Close: "✕"}
	ASCIIGlyphs   = Glyphs{Minimize: "_", Maximize: "[]", Restore: "[=]", Close: "x"}

	DefaultLabels = Labels{
		Minimize: "Minimize window",
		Maximize: "Maximize window",
		Restore:  "Restore window",
		Close:    "Close",
	}
)

// Style is everything needed to draw one button.
type Style struct {
	Highlight Highlight
	Glyph     string
	Label     string
}

// Presenter maps titlebar state to button styles.
type Presenter struct {
	Glyphs Glyphs
	Labels Labels
}

// DefaultPresenter uses the unicode glyphs and English labels.
var DefaultPresenter = Presenter{Glyphs: DefaultGlyphs, Labels: DefaultLabels}

// Style returns how control c looks given the hover target and window state.
// StateUnknown renders exactly like StateRestored.
func (p Presenter) Style(c Control, hover Control, state WindowState) Style {
	var st Style

	if hover == c && c != ControlNone {
		st.Highlight = HighlightNeutral
		if c == ControlClose {
			st.Highlight = HighlightDestructive
		}
	}

	switch c {
	case ControlMinimize:
		st.Glyph, st.Label = p.Glyphs.Minimize, p.Labels.Minimize
	case ControlMaximize:
		if state == StateMaximized {
			st.Glyph, st.Label = p.Glyphs.Restore, p.Labels.Restore
		} else {
			st.Glyph, st.Label = p.Glyphs.Maximize, p.Labels.Maximize
		}
	case ControlClose:
		st.Glyph, st.Label = p.Glyphs.Close, p.Labels.Close
	}

	return st
}

// ButtonStyle is DefaultPresenter.Style.
func ButtonStyle(c Control, hover Control, state WindowState) Style {
	return DefaultPresenter.Style(c, hover, state)
}
