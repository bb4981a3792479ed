package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"filmcompressor/internal/session"
)

type keyMap struct {
	Quit          key.Binding
	Run           key.Binding
	Up            key.Binding
	Down          key.Binding
	Left          key.Binding
	Right         key.Binding
	Enter         key.Binding
	Escape        key.Binding
	Backspace     key.Binding
	Delete        key.Binding
	ToggleDefault key.Binding
}

// Quit, Run and ToggleDefault use control chords so plain letters can always
// be typed into the text overlay.
func defaultKeyMap() keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^C", "close app")),
		Run:           key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^R", "run jobs")),
		Up:            key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:          key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:          key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev pane")),
		Right:         key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next pane")),
		Enter:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Escape:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Backspace:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Delete:        key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "remove file")),
		ToggleDefault: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^D", "toggle default")),
	}
}

// translate maps a terminal key to a session event. Keys with no meaning
// become KeyNone.
func (k keyMap) translate(msg tea.KeyMsg) session.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return session.Event{Key: session.KeyQuit}
	case key.Matches(msg, k.Run):
		return session.Event{Key: session.KeyRun}
	case key.Matches(msg, k.ToggleDefault):
		return session.Event{Key: session.KeyToggleDefault}
	case key.Matches(msg, k.Up):
		return session.Event{Key: session.KeyUp}
	case key.Matches(msg, k.Down):
		return session.Event{Key: session.KeyDown}
	case key.Matches(msg, k.Left):
		return session.Event{Key: session.KeyLeft}
	case key.Matches(msg, k.Right):
		return session.Event{Key: session.KeyRight}
	case key.Matches(msg, k.Enter):
		return session.Event{Key: session.KeyEnter}
	case key.Matches(msg, k.Escape):
		return session.Event{Key: session.KeyEscape}
	case key.Matches(msg, k.Backspace):
		return session.Event{Key: session.KeyBackspace}
	case key.Matches(msg, k.Delete):
		return session.Event{Key: session.KeyDelete}
	}
	switch msg.Type {
	case tea.KeyRunes:
		return session.Event{Key: session.KeyText, Text: string(msg.Runes)}
	case tea.KeySpace:
		return session.Event{Key: session.KeyText, Text: " "}
	}
	return session.Event{Key: session.KeyNone}
}

// hotkeys lists the bindings that do something in the current state.
func (k keyMap) hotkeys(s *session.Session) []key.Binding {
	out := []key.Binding{k.Quit}
	f := s.Focus
	switch f.Mode {
	case session.ModeUnfocused:
		out = append(out, k.Down)
	case session.ModeList:
		switch f.Pane {
		case session.PaneSources:
			if f.Cursor < s.Catalog.Len() {
				enter := k.Enter
				enter.SetHelp("enter", "toggle enabled")
				out = append(out, enter, k.ToggleDefault)
			}
		case session.PaneSettings:
			enter := k.Enter
			enter.SetHelp("enter", "change")
			out = append(out, enter)
		case session.PaneFiles:
			if len(s.Files) > 0 {
				out = append(out, k.Delete)
			}
		}
		out = append(out, k.Left, k.Right, k.Escape)
	case session.ModeChoosing:
		enter := k.Enter
		enter.SetHelp("enter", "choose")
		esc := k.Escape
		esc.SetHelp("esc", "cancel")
		out = append(out, k.Up, k.Down, enter, esc)
	case session.ModeEditing:
		enter := k.Enter
		enter.SetHelp("enter", "save")
		esc := k.Escape
		esc.SetHelp("esc", "discard")
		out = append(out, enter, esc, k.Backspace)
	}
	if len(s.Files) > 0 && !f.InOverlay() {
		out = append(out, k.Run)
	}
	return out
}
