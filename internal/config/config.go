// Package config resolves options from flags, FILMCOMPRESSOR_* environment
// variables and the config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"filmcompressor/internal/codec"
	"filmcompressor/internal/dirs"
	"filmcompressor/internal/encoder"
	"filmcompressor/internal/model"
	"filmcompressor/internal/util/bitrate"
)

const envPrefix = "FILMCOMPRESSOR"

// Keys bound to persistent flags of the same name with "-" for "_".
var flagKeys = []string{
	"ffmpeg",
	"ffprobe",
	"vaapi_device",
	"video_codec",
	"audio_codec",
	"subtitle_codec",
	"pixel_format",
	"video_bitrate",
	"audio_bitrate",
	"scale",
	"crop",
	"extra_args",
	"preserve_selections",
	"jobs",
	"log_level",
	"log_file",
	"verbose",
}

// Config is the fully resolved configuration.
type Config struct {
	Options  model.CLIOptions
	Settings encoder.Settings
}

// RegisterFlags adds the persistent flags every command understands.
func RegisterFlags(fs *pflag.FlagSet) {
	d := encoder.DefaultSettings()
	fs.String("ffmpeg", "", "Path to ffmpeg (default: look up in PATH)")
	fs.String("ffprobe", "", "Path to ffprobe (default: look up in PATH)")
	fs.String("vaapi-device", d.VAAPIDevice, "VAAPI render node for hardware encoders")
	fs.String("video-codec", d.VideoCodec.Name(), "Video codec")
	fs.String("audio-codec", d.AudioCodec.Name(), "Audio codec")
	fs.String("subtitle-codec", d.SubtitleCodec.Name(), "Subtitle codec")
	fs.String("pixel-format", d.PixelFormat.Name(), "Pixel format")
	fs.String("video-bitrate", "", "Video bitrate, e.g. 4M (default: encoder decides)")
	fs.String("audio-bitrate", "", "Audio bitrate, e.g. 128k (default: encoder decides)")
	fs.String("scale", "", "Scale filter arguments, e.g. 1280:720")
	fs.String("crop", "", "Crop filter arguments, e.g. 1920:800")
	fs.String("extra-args", "", "Extra ffmpeg option appended last")
	fs.Bool("preserve-selections", false, "Keep stream selections when the file list changes")
	fs.Int("jobs", 4, "Max concurrent ffprobe calls")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")
	fs.String("log-file", "", "Log file (default: state dir)")
	fs.BoolP("verbose", "v", false, "Print subprocess command lines")
}

// Bind wires v to the config search path, the environment and the flags in fs.
func Bind(v *viper.Viper, fs *pflag.FlagSet) error {
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		v.AddConfigPath(cfgDir)
	}
	v.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, k := range flagKeys {
		f := fs.Lookup(strings.ReplaceAll(k, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(k, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	}
	return nil
}

// Init binds the global viper instance to root's persistent flags and reads
// the config file if one exists.
func Init(root *cobra.Command) error {
	if err := Bind(viper.GetViper(), root.PersistentFlags()); err != nil {
		return err
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// Load resolves the global viper instance.
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom resolves and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (Config, error) {
	var cfg Config
	var err error
	s := encoder.DefaultSettings()

	if name := v.GetString("video_codec"); name != "" {
		if s.VideoCodec, err = codec.ParseVideo(name); err != nil {
			return cfg, fmt.Errorf("video_codec: %w", err)
		}
	}
	if name := v.GetString("audio_codec"); name != "" {
		if s.AudioCodec, err = codec.ParseAudio(name); err != nil {
			return cfg, fmt.Errorf("audio_codec: %w", err)
		}
	}
	if name := v.GetString("subtitle_codec"); name != "" {
		if s.SubtitleCodec, err = codec.ParseSubtitle(name); err != nil {
			return cfg, fmt.Errorf("subtitle_codec: %w", err)
		}
	}
	if name := v.GetString("pixel_format"); name != "" {
		if s.PixelFormat, err = codec.ParsePixelFormat(name); err != nil {
			return cfg, fmt.Errorf("pixel_format: %w", err)
		}
	}

	for _, b := range []struct {
		key string
		dst **string
	}{
		{"video_bitrate", &s.VideoBitrate},
		{"audio_bitrate", &s.AudioBitrate},
	} {
		raw := strings.TrimSpace(v.GetString(b.key))
		if raw == "" {
			continue
		}
		if _, err := bitrate.Parse(raw); err != nil {
			return cfg, fmt.Errorf("%s: %w", b.key, err)
		}
		*b.dst = &raw
	}
	s.Scale = optional(v.GetString("scale"))
	s.Crop = optional(v.GetString("crop"))
	s.Extra = strings.TrimSpace(v.GetString("extra_args"))
	if dev := strings.TrimSpace(v.GetString("vaapi_device")); dev != "" {
		s.VAAPIDevice = dev
	}

	jobs := v.GetInt("jobs")
	if jobs < 0 {
		return cfg, fmt.Errorf("jobs: must not be negative, got %d", jobs)
	}

	cfg.Settings = s
	cfg.Options = model.CLIOptions{
		FFmpegPath:         v.GetString("ffmpeg"),
		FFprobePath:        v.GetString("ffprobe"),
		Verbose:            v.GetBool("verbose"),
		Jobs:               jobs,
		PreserveSelections: v.GetBool("preserve_selections"),
		LogLevel:           v.GetString("log_level"),
		LogFile:            v.GetString("log_file"),
	}
	return cfg, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
