package encoder

import (
	"fmt"
	"strings"

	"filmcompressor/internal/codec"
	"filmcompressor/internal/util/bitrate"
)

// Field is one editable row of the settings pane. It is either a ChoiceField
// or a TextField; the set of implementations is closed to this package.
type Field interface {
	Label() string
	Value(s Settings) string
	sealed()
}

// ChoiceField selects one variant of a closed enumeration.
type ChoiceField interface {
	Field
	Options() []string
	Selected(s Settings) int
	Choose(s *Settings, i int)
}

// TextField holds a free-form value.
type TextField interface {
	Field
	Text(s Settings) string
	// Commit stores text. On error s is left unchanged.
	Commit(s *Settings, text string) error
}

type variant interface {
	~string
	Name() string
}

type choiceField[T variant] struct {
	label string
	all   func() []T
	get   func(Settings) T
	set   func(*Settings, T)
}

func (f choiceField[T]) sealed() {}
func (f choiceField[T]) Label() string { return f.label }
func (f choiceField[T]) Value(s Settings) string { return f.get(s).Name() }

func (f choiceField[T]) Options() []string {
	all := f.all()
	out := make([]string, len(all))
	for i, v := range all {
		out[i] = v.Name()
	}
	return out
}

func (f choiceField[T]) Selected(s Settings) int {
	return codec.IndexOf(f.all(), f.get(s))
}

func (f choiceField[T]) Choose(s *Settings, i int) {
	all := f.all()
	if i < 0 || i >= len(all) {
		return
	}
	f.set(s, all[i])
}

// optionalField stores nil for blank input.
type optionalField struct {
	label    string
	ptr      func(*Settings) **string
	validate func(string) error
}

func (f optionalField) sealed() {}
func (f optionalField) Label() string { return f.label }

func (f optionalField) Value(s Settings) string {
	if v := *f.ptr(&s); v != nil {
		return *v
	}
	return "auto"
}

func (f optionalField) Text(s Settings) string {
	if v := *f.ptr(&s); v != nil {
		return *v
	}
	return ""
}

func (f optionalField) Commit(s *Settings, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		*f.ptr(s) = nil
		return nil
	}
	if f.validate != nil {
		if err := f.validate(text); err != nil {
			return err
		}
	}
	*f.ptr(s) = &text
	return nil
}

type extraField struct{}

func (extraField) sealed() {}
func (extraField) Label() string { return "Other" }
func (extraField) Text(s Settings) string { return s.Extra }
func (extraField) Commit(s *Settings, text string) error {
	s.Extra = strings.TrimSpace(text)
	return nil
}

func (extraField) Value(s Settings) string {
	if s.Extra == "" {
		return "none"
	}
	return s.Extra
}

var fields = []Field{
	choiceField[codec.Video]{
		label: "Video codec",
		all:   codec.AllVideo,
		get:   func(s Settings) codec.Video { return s.VideoCodec },
		set:   func(s *Settings, v codec.Video) { s.VideoCodec = v },
	},
	choiceField[codec.Audio]{
		label: "Audio codec",
		all:   codec.AllAudio,
		get:   func(s Settings) codec.Audio { return s.AudioCodec },
		set:   func(s *Settings, v codec.Audio) { s.AudioCodec = v },
	},
	choiceField[codec.Subtitle]{
		label: "Subtitle codec",
		all:   codec.AllSubtitles,
		get:   func(s Settings) codec.Subtitle { return s.SubtitleCodec },
		set:   func(s *Settings, v codec.Subtitle) { s.SubtitleCodec = v },
	},
	choiceField[codec.PixelFormat]{
		label: "Pixel format",
		all:   codec.AllPixelFormats,
		get:   func(s Settings) codec.PixelFormat { return s.PixelFormat },
		set:   func(s *Settings, v codec.PixelFormat) { s.PixelFormat = v },
	},
	optionalField{label: "Video bitrate", ptr: func(s *Settings) **string { return &s.VideoBitrate }, validate: checkBitrate},
	optionalField{label: "Audio bitrate", ptr: func(s *Settings) **string { return &s.AudioBitrate }, validate: checkBitrate},
	optionalField{label: "Crop", ptr: func(s *Settings) **string { return &s.Crop }},
	optionalField{label: "Scale", ptr: func(s *Settings) **string { return &s.Scale }},
	extraField{},
}

func checkBitrate(text string) error {
	if !bitrate.Valid(text) {
		return fmt.Errorf("invalid bitrate %q", text)
	}
	return nil
}

// Fields returns the settings rows in pane order.
func Fields() []Field {
	return fields
}

// Summary renders every field as "Label: value".
func (s Settings) Summary() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = fmt.Sprintf("%s: %s", f.Label(), f.Value(s))
	}
	return out
}
