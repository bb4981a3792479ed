package session

// Key is an abstract input key, independent of the terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyText // Event.Text holds the typed runes
	KeyQuit
	KeyRun
	KeyToggleDefault
)

// Event is one unit of user input.
type Event struct {
	Key  Key
	Text string
}

// Action is what the caller must do after an event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRun
)
