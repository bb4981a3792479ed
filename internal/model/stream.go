package model

import (
	"fmt"
	"strings"
)

// Kind identifies the type of an elementary stream.
type Kind int

const (
	KindVideo Kind = iota
	KindAudio
	KindSubtitle
	KindAttachment

	// KindCount sizes arrays indexed by Kind.
	KindCount
)

// Letter returns the ffmpeg stream specifier letter (v, a, s, t).
func (k Kind) Letter() string {
	switch k {
	case KindVideo:
		return "v"
	case KindAudio:
		return "a"
	case KindSubtitle:
		return "s"
	case KindAttachment:
		return "t"
	default:
		panic(fmt.Sprintf("model: unknown stream kind %d", int(k)))
	}
}

func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "Video"
	case KindAudio:
		return "Audio"
	case KindSubtitle:
		return "Subtitle"
	case KindAttachment:
		return "Attachment"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Stream is one elementary track as reported by ffprobe.
// Streams are compared by value; two files carrying the same track description
// produce equal Streams. Empty Title or Language means the tag was absent.
type Stream struct {
	kind    Kind
	Codec   string
	Default bool

	// Video
	Width  int
	Height int

	// Audio and subtitle
	Title    string
	Language string

	// Audio
	Channels int
}

// NewVideo returns a video stream.
func NewVideo(codec string, isDefault bool, width, height int) Stream {
	return Stream{kind: KindVideo, Codec: codec, Default: isDefault, Width: width, Height: height}
}

// NewAudio returns an audio stream.
func NewAudio(codec string, isDefault bool, title string, channels int, language string) Stream {
	return Stream{kind: KindAudio, Codec: codec, Default: isDefault, Title: title, Channels: channels, Language: language}
}

// NewSubtitle returns a subtitle stream.
func NewSubtitle(codec string, isDefault bool, title, language string) Stream {
	return Stream{kind: KindSubtitle, Codec: codec, Default: isDefault, Title: title, Language: language}
}

// NewAttachment returns an attachment stream (fonts, cover art).
func NewAttachment(codec string, isDefault bool) Stream {
	return Stream{kind: KindAttachment, Codec: codec, Default: isDefault}
}

// Kind is fixed at construction.
func (s Stream) Kind() Kind { return s.kind }

// Equal reports whether both streams describe the same track.
func (s Stream) Equal(o Stream) bool { return s == o }

// String renders a one-line description used by the sources pane. It shows
// every field Equal compares.
func (s Stream) String() string {
	parts := []string{s.kind.String(), s.Codec}
	switch s.kind {
	case KindVideo:
		parts = append(parts, fmt.Sprintf("%dx%d", s.Width, s.Height))
	case KindAudio:
		parts = append(parts, fmt.Sprintf("%dch", s.Channels))
		if s.Language != "" {
			parts = append(parts, "["+s.Language+"]")
		}
		if s.Title != "" {
			parts = append(parts, fmt.Sprintf("%q", s.Title))
		}
	case KindSubtitle:
		if s.Language != "" {
			parts = append(parts, "["+s.Language+"]")
		}
		if s.Title != "" {
			parts = append(parts, fmt.Sprintf("%q", s.Title))
		}
	}
	if s.Default {
		parts = append(parts, "(source default)")
	}
	return strings.Join(parts, " ")
}
