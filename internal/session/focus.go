package session

// Pane is one of the three lists of the main screen.
type Pane int

const (
	PaneSources Pane = iota
	PaneSettings
	PaneFiles
	paneCount
)

func (p Pane) String() string {
	switch p {
	case PaneSources:
		return "Sources"
	case PaneSettings:
		return "Settings"
	case PaneFiles:
		return "Files"
	default:
		return "unknown"
	}
}

func (p Pane) next() Pane { return (p + 1) % paneCount }
func (p Pane) prev() Pane { return (p + paneCount - 1) % paneCount }

// Mode is the kind of focus the session is in.
type Mode int

const (
	ModeUnfocused Mode = iota
	ModeList           // a pane has a cursor
	ModeChoosing       // a choice overlay is open over a settings field
	ModeEditing        // a text overlay is open over a settings field
)

// Focus is where keyboard input goes. Pane and Cursor are meaningful in every
// mode but Unfocused; in the overlay modes Pane is always PaneSettings and
// Cursor is the field being changed.
type Focus struct {
	Mode   Mode
	Pane   Pane
	Cursor int
	Choice int    // highlighted option while choosing
	Buffer []rune // text being edited
}

// InOverlay reports whether a choice or text overlay is open.
func (f Focus) InOverlay() bool {
	return f.Mode == ModeChoosing || f.Mode == ModeEditing
}

// Focused reports whether pane p has the cursor.
func (f Focus) Focused(p Pane) bool {
	return f.Mode != ModeUnfocused && f.Pane == p
}
