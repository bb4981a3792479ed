package encoder

import (
	"strings"

	"filmcompressor/internal/codec"
)

// DefaultVAAPIDevice is the render node used for hardware encoders.
const DefaultVAAPIDevice = "/dev/dri/renderD128"

// opusChannels is the downmix applied whenever libopus is selected.
const opusChannels = "2"

// Settings is the global encode configuration shared by every file in the batch.
// Nil optional values mean "let ffmpeg decide".
type Settings struct {
	VideoCodec    codec.Video
	AudioCodec    codec.Audio
	SubtitleCodec codec.Subtitle
	PixelFormat   codec.PixelFormat

	VideoBitrate *string // e.g. "4M"
	AudioBitrate *string // e.g. "128k"
	Crop         *string // crop filter arguments, e.g. "1920:800"
	Scale        *string // scale filter arguments, e.g. "1280:720"
	Extra        string  // appended verbatim as the last option

	VAAPIDevice string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		VideoCodec:    codec.DefaultVideo,
		AudioCodec:    codec.DefaultAudio,
		SubtitleCodec: codec.DefaultSubtitle,
		PixelFormat:   codec.DefaultPixelFormat,
		VAAPIDevice:   DefaultVAAPIDevice,
	}
}

// InitArgs returns the options that must precede -i. They set up the VAAPI
// device when a hardware encoder is selected.
func (s Settings) InitArgs() []string {
	if !s.VideoCodec.IsHardwareAccelerated() {
		return nil
	}
	return []string{"-hwaccel", "vaapi", "-vaapi_device", valueOr(s.VAAPIDevice, DefaultVAAPIDevice)}
}

// CompressArgs returns the encode options that follow the stream maps.
// For hardware encoders the pixel format lives in the filter chain and
// -pix_fmt is never emitted.
func (s Settings) CompressArgs() []string {
	args := []string{
		"-c:v", s.VideoCodec.Name(),
		"-c:a", s.AudioCodec.Name(),
		"-c:s", s.SubtitleCodec.Name(),
	}

	if s.AudioCodec.IsOpus() {
		args = append(args, "-ac", opusChannels)
	}

	if s.VideoBitrate != nil {
		args = append(args, "-b:v", *s.VideoBitrate)
	}
	if s.AudioBitrate != nil {
		args = append(args, "-b:a", *s.AudioBitrate)
	}

	if vf := s.videoFilter(); vf != "" {
		args = append(args, "-vf", vf)
	}

	if !s.VideoCodec.IsHardwareAccelerated() && !s.PixelFormat.IsPassthrough() {
		args = append(args, "-pix_fmt", s.PixelFormat.Name())
	}

	if s.Extra != "" {
		args = append(args, s.Extra)
	}
	return args
}

func (s Settings) videoFilter() string {
	var chain []string
	if s.Crop != nil {
		chain = append(chain, "crop="+*s.Crop)
	}
	if s.VideoCodec.IsHardwareAccelerated() {
		if s.Scale != nil {
			chain = append(chain, "scale_vaapi="+*s.Scale)
		}
		if !s.PixelFormat.IsPassthrough() {
			chain = append(chain, "format="+s.PixelFormat.Name())
		}
		chain = append(chain, "hwupload")
	} else if s.Scale != nil {
		chain = append(chain, "scale="+*s.Scale)
	}
	return strings.Join(chain, ",")
}

func valueOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
