// Package session holds the interactive state of the compressor and the key
// handling that drives it.
package session

import (
	"filmcompressor/internal/catalog"
	"filmcompressor/internal/encoder"
	"filmcompressor/internal/model"
)

// Session is the complete state of one interactive run.
type Session struct {
	Files    []model.InputFile
	Catalog  catalog.Catalog
	Settings encoder.Settings
	Focus    Focus
	Policy   catalog.Policy
}

// New returns an empty, unfocused session.
func New(settings encoder.Settings, policy catalog.Policy) *Session {
	return &Session{Settings: settings, Policy: policy}
}

// AddFiles appends files to the batch and rebuilds the catalog.
func (s *Session) AddFiles(files ...model.InputFile) {
	s.Files = append(s.Files, files...)
	s.rebuild()
}

// RemoveFile drops file i from the batch. Out-of-range indices are ignored.
func (s *Session) RemoveFile(i int) {
	if i < 0 || i >= len(s.Files) {
		return
	}
	s.Files = append(s.Files[:i:i], s.Files[i+1:]...)
	s.rebuild()
}

func (s *Session) rebuild() {
	s.Catalog = catalog.Rebuild(s.Files, s.Catalog, s.Policy)
	s.clamp()
}

// PaneLen returns the number of rows in pane p.
func (s *Session) PaneLen(p Pane) int {
	switch p {
	case PaneSources:
		return s.Catalog.Len()
	case PaneSettings:
		return len(encoder.Fields())
	case PaneFiles:
		return len(s.Files)
	}
	return 0
}

// PreviewFile is the file whose command is shown: the one under the Files
// cursor, otherwise the first. It is -1 when there are no files.
func (s *Session) PreviewFile() int {
	if len(s.Files) == 0 {
		return -1
	}
	if s.Focus.Mode == ModeList && s.Focus.Pane == PaneFiles {
		return s.Focus.Cursor
	}
	return 0
}

func (s *Session) clamp() {
	if s.Focus.Mode != ModeList {
		return
	}
	n := s.PaneLen(s.Focus.Pane)
	if s.Focus.Cursor >= n {
		s.Focus.Cursor = n - 1
	}
	if s.Focus.Cursor < 0 {
		s.Focus.Cursor = 0
	}
}

// Apply handles one event and reports what the caller should do next.
func (s *Session) Apply(ev Event) Action {
	switch ev.Key {
	case KeyQuit:
		return ActionQuit
	case KeyRun:
		return ActionRun
	}

	switch s.Focus.Mode {
	case ModeUnfocused:
		s.applyUnfocused(ev)
	case ModeList:
		s.applyList(ev)
	case ModeChoosing:
		s.applyChoosing(ev)
	case ModeEditing:
		s.applyEditing(ev)
	}
	return ActionNone
}

func (s *Session) applyUnfocused(ev Event) {
	switch ev.Key {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		s.Focus = Focus{Mode: ModeList, Pane: PaneSources}
	}
}

func (s *Session) applyList(ev Event) {
	f := &s.Focus
	switch ev.Key {
	case KeyUp:
		if f.Cursor > 0 {
			f.Cursor--
		}
	case KeyDown:
		if f.Cursor < s.PaneLen(f.Pane)-1 {
			f.Cursor++
		}
	case KeyLeft:
		*f = Focus{Mode: ModeList, Pane: f.Pane.prev()}
	case KeyRight:
		*f = Focus{Mode: ModeList, Pane: f.Pane.next()}
	case KeyEscape:
		*f = Focus{}
	case KeyEnter:
		s.enter()
	case KeyDelete:
		if f.Pane == PaneFiles {
			s.RemoveFile(f.Cursor)
		}
	case KeyToggleDefault:
		if f.Pane == PaneSources {
			s.Catalog.ToggleDefault(f.Cursor)
		}
	}
}

func (s *Session) enter() {
	f := &s.Focus
	switch f.Pane {
	case PaneSources:
		s.Catalog.ToggleEnabled(f.Cursor)
	case PaneSettings:
		fields := encoder.Fields()
		if f.Cursor < 0 || f.Cursor >= len(fields) {
			return
		}
		switch field := fields[f.Cursor].(type) {
		case encoder.ChoiceField:
			f.Mode = ModeChoosing
			f.Choice = field.Selected(s.Settings)
		case encoder.TextField:
			f.Mode = ModeEditing
			f.Buffer = []rune(field.Text(s.Settings))
		}
	}
}

func (s *Session) applyChoosing(ev Event) {
	f := &s.Focus
	field, ok := encoder.Fields()[f.Cursor].(encoder.ChoiceField)
	if !ok {
		s.closeOverlay()
		return
	}
	switch ev.Key {
	case KeyUp:
		if f.Choice > 0 {
			f.Choice--
		}
	case KeyDown:
		if f.Choice < len(field.Options())-1 {
			f.Choice++
		}
	case KeyEnter:
		field.Choose(&s.Settings, f.Choice)
		s.closeOverlay()
	case KeyEscape:
		s.closeOverlay()
	}
}

func (s *Session) applyEditing(ev Event) {
	f := &s.Focus
	field, ok := encoder.Fields()[f.Cursor].(encoder.TextField)
	if !ok {
		s.closeOverlay()
		return
	}
	switch ev.Key {
	case KeyText:
		f.Buffer = append(f.Buffer, []rune(ev.Text)...)
	case KeyBackspace:
		if n := len(f.Buffer); n > 0 {
			f.Buffer = f.Buffer[:n-1]
		}
	case KeyEnter:
		// A rejected value keeps the editor open with the buffer intact.
		if err := field.Commit(&s.Settings, string(f.Buffer)); err != nil {
			return
		}
		s.closeOverlay()
	case KeyEscape:
		s.closeOverlay()
	}
}

func (s *Session) closeOverlay() {
	s.Focus = Focus{Mode: ModeList, Pane: PaneSettings, Cursor: s.Focus.Cursor}
}
