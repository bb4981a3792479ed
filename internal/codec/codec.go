// Package codec lists the encoders and pixel formats the settings pane can choose from.
// Each family is a closed string enum whose value is the exact token passed to ffmpeg.
package codec

import (
	"fmt"
	"strings"
)

// Video is an ffmpeg video encoder.
type Video string

const (
	VideoCopy      Video = "copy"
	VideoLibx264   Video = "libx264"
	VideoLibx265   Video = "libx265"
	VideoH264VAAPI Video = "h264_vaapi"
	VideoHEVCVAAPI Video = "hevc_vaapi"
	VideoLibsvtav1 Video = "libsvtav1"
	VideoAV1VAAPI  Video = "av1_vaapi"
)

// DefaultVideo is preselected when nothing else is configured.
const DefaultVideo = VideoAV1VAAPI

// AllVideo returns every video encoder in display order.
func AllVideo() []Video {
	return []Video{
		VideoCopy,
		VideoLibx264,
		VideoLibx265,
		VideoH264VAAPI,
		VideoHEVCVAAPI,
		VideoLibsvtav1,
		VideoAV1VAAPI,
	}
}

// Name returns the ffmpeg token.
func (v Video) Name() string { return string(v) }

// IsHardwareAccelerated reports whether the encoder runs on a VAAPI device.
func (v Video) IsHardwareAccelerated() bool {
	switch v {
	case VideoH264VAAPI, VideoHEVCVAAPI, VideoAV1VAAPI:
		return true
	default:
		return false
	}
}

// Audio is an ffmpeg audio encoder.
type Audio string

const (
	AudioCopy    Audio = "copy"
	AudioLibopus Audio = "libopus"
	AudioAAC     Audio = "aac"
	AudioAC3     Audio = "ac3"
)

const DefaultAudio = AudioLibopus

// AllAudio returns every audio encoder in display order.
func AllAudio() []Audio {
	return []Audio{AudioCopy, AudioLibopus, AudioAAC, AudioAC3}
}

func (a Audio) Name() string { return string(a) }

// IsOpus reports whether the encoder belongs to the opus family.
func (a Audio) IsOpus() bool { return a == AudioLibopus }

// Subtitle is an ffmpeg subtitle encoder.
type Subtitle string

const (
	SubtitleCopy    Subtitle = "copy"
	SubtitleSRT     Subtitle = "srt"
	SubtitleASS     Subtitle = "ass"
	SubtitleMovText Subtitle = "mov_text"
)

const DefaultSubtitle = SubtitleASS

// AllSubtitles returns every subtitle encoder in display order.
func AllSubtitles() []Subtitle {
	return []Subtitle{SubtitleCopy, SubtitleSRT, SubtitleASS, SubtitleMovText}
}

func (s Subtitle) Name() string { return string(s) }

// PixelFormat is an ffmpeg pixel format. PixelFormatCopy keeps the source format.
type PixelFormat string

const (
	PixelFormatCopy        PixelFormat = "copy"
	PixelFormatYUV420P     PixelFormat = "yuv420p"
	PixelFormatNV12        PixelFormat = "nv12"
	PixelFormatP010LE      PixelFormat = "p010le"
	PixelFormatYUV420P10LE PixelFormat = "yuv420p10le"
)

const DefaultPixelFormat = PixelFormatYUV420P10LE

// AllPixelFormats returns every pixel format in display order.
func AllPixelFormats() []PixelFormat {
	return []PixelFormat{
		PixelFormatCopy,
		PixelFormatYUV420P,
		PixelFormatNV12,
		PixelFormatP010LE,
		PixelFormatYUV420P10LE,
	}
}

func (p PixelFormat) Name() string { return string(p) }

// IsPassthrough reports whether no pixel format conversion should be requested.
func (p PixelFormat) IsPassthrough() bool { return p == PixelFormatCopy }

// ParseVideo validates a configured video encoder name.
func ParseVideo(s string) (Video, error) {
	return parse(s, AllVideo(), "video codec")
}

// ParseAudio validates a configured audio encoder name.
func ParseAudio(s string) (Audio, error) {
	return parse(s, AllAudio(), "audio codec")
}

// ParseSubtitle validates a configured subtitle encoder name.
func ParseSubtitle(s string) (Subtitle, error) {
	return parse(s, AllSubtitles(), "subtitle codec")
}

// ParsePixelFormat validates a configured pixel format name.
func ParsePixelFormat(s string) (PixelFormat, error) {
	return parse(s, AllPixelFormats(), "pixel format")
}

// IndexOf returns the position of v in all, or 0 when absent.
func IndexOf[T comparable](all []T, v T) int {
	for i, c := range all {
		if c == v {
			return i
		}
	}
	return 0
}

func parse[T ~string](s string, all []T, what string) (T, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	names := make([]string, 0, len(all))
	for _, c := range all {
		if string(c) == want {
			return c, nil
		}
		names = append(names, string(c))
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q (valid: %s)", what, s, strings.Join(names, "|"))
}
