package encoder

import (
	"reflect"
	"strings"
	"testing"

	"filmcompressor/internal/codec"
)

func strPtr(s string) *string { return &s }

func TestCompressArgs(t *testing.T) {
	tests := []struct {
		name            string
		settings        Settings
		want            []string
		wantContains    []string
		wantNotContains []string
	}{
		{
			name: "vaapi with scale",
			settings: Settings{
				VideoCodec:    codec.VideoAV1VAAPI,
				AudioCodec:    codec.AudioLibopus,
				SubtitleCodec: codec.SubtitleASS,
				PixelFormat:   codec.PixelFormatYUV420P10LE,
				Scale:         strPtr("1280:720"),
			},
			want: []string{
				"-c:v", "av1_vaapi", "-c:a", "libopus", "-c:s", "ass",
				"-ac", "2",
				"-vf", "scale_vaapi=1280:720,format=yuv420p10le,hwupload",
			},
		},
		{
			name: "vaapi without scale still uploads",
			settings: Settings{
				VideoCodec:    codec.VideoHEVCVAAPI,
				AudioCodec:    codec.AudioAAC,
				SubtitleCodec: codec.SubtitleCopy,
				PixelFormat:   codec.PixelFormatNV12,
			},
			want: []string{
				"-c:v", "hevc_vaapi", "-c:a", "aac", "-c:s", "copy",
				"-vf", "format=nv12,hwupload",
			},
		},
		{
			name: "software with scale and bitrates",
			settings: Settings{
				VideoCodec:    codec.VideoLibx264,
				AudioCodec:    codec.AudioAAC,
				SubtitleCodec: codec.SubtitleSRT,
				PixelFormat:   codec.PixelFormatYUV420P,
				VideoBitrate:  strPtr("4M"),
				AudioBitrate:  strPtr("160k"),
				Scale:         strPtr("-2:720"),
			},
			want: []string{
				"-c:v", "libx264", "-c:a", "aac", "-c:s", "srt",
				"-b:v", "4M", "-b:a", "160k",
				"-vf", "scale=-2:720",
				"-pix_fmt", "yuv420p",
			},
		},
		{
			name: "software without scale has no filter",
			settings: Settings{
				VideoCodec:    codec.VideoLibsvtav1,
				AudioCodec:    codec.AudioCopy,
				SubtitleCodec: codec.SubtitleASS,
				PixelFormat:   codec.PixelFormatYUV420P10LE,
			},
			wantContains:    []string{"-pix_fmt yuv420p10le"},
			wantNotContains: []string{"-vf", "-ac"},
		},
		{
			name: "crop precedes scale",
			settings: Settings{
				VideoCodec:    codec.VideoLibx265,
				AudioCodec:    codec.AudioCopy,
				SubtitleCodec: codec.SubtitleCopy,
				PixelFormat:   codec.PixelFormatCopy,
				Crop:          strPtr("1920:800"),
				Scale:         strPtr("1280:-2"),
			},
			wantContains:    []string{"-vf crop=1920:800,scale=1280:-2"},
			wantNotContains: []string{"-pix_fmt"},
		},
		{
			name: "passthrough pixel format on vaapi",
			settings: Settings{
				VideoCodec:    codec.VideoH264VAAPI,
				AudioCodec:    codec.AudioCopy,
				SubtitleCodec: codec.SubtitleCopy,
				PixelFormat:   codec.PixelFormatCopy,
			},
			wantContains:    []string{"-vf hwupload"},
			wantNotContains: []string{"format=", "-pix_fmt"},
		},
		{
			name: "extra settings appended verbatim last",
			settings: Settings{
				VideoCodec:    codec.VideoLibx264,
				AudioCodec:    codec.AudioAAC,
				SubtitleCodec: codec.SubtitleSRT,
				PixelFormat:   codec.PixelFormatYUV420P,
				Extra:         "-preset slow",
			},
			want: []string{
				"-c:v", "libx264", "-c:a", "aac", "-c:s", "srt",
				"-pix_fmt", "yuv420p",
				"-preset slow",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.settings.CompressArgs()
			if tt.want != nil && !reflect.DeepEqual(args, tt.want) {
				t.Errorf("CompressArgs() = %q, want %q", args, tt.want)
			}
			argsStr := strings.Join(args, " ")
			for _, want := range tt.wantContains {
				if !strings.Contains(argsStr, want) {
					t.Errorf("CompressArgs() args missing %q, got: %v", want, args)
				}
			}
			for _, notWant := range tt.wantNotContains {
				if strings.Contains(argsStr, notWant) {
					t.Errorf("CompressArgs() args should not contain %q, got: %v", notWant, args)
				}
			}
		})
	}
}

func TestCompressArgs_PixelFormatExclusive(t *testing.T) {
	for _, v := range codec.AllVideo() {
		for _, pf := range codec.AllPixelFormats() {
			for _, scale := range []*string{nil, strPtr("1280:720")} {
				s := DefaultSettings()
				s.VideoCodec = v
				s.PixelFormat = pf
				s.Scale = scale
				args := s.CompressArgs()

				var hasPixFmt, hasFormatFilter bool
				for i, a := range args {
					if a == "-pix_fmt" {
						hasPixFmt = true
					}
					if a == "-vf" && i+1 < len(args) && strings.Contains(args[i+1], "format=") {
						hasFormatFilter = true
					}
				}
				if hasPixFmt && hasFormatFilter {
					t.Errorf("%s/%s: both -pix_fmt and format= emitted: %v", v, pf, args)
				}
				if v.IsHardwareAccelerated() && hasPixFmt {
					t.Errorf("%s/%s: hardware codec emitted -pix_fmt: %v", v, pf, args)
				}
			}
		}
	}
}

func TestInitArgs(t *testing.T) {
	s := DefaultSettings()
	want := []string{"-hwaccel", "vaapi", "-vaapi_device", "/dev/dri/renderD128"}
	if got := s.InitArgs(); !reflect.DeepEqual(got, want) {
		t.Errorf("InitArgs() = %v, want %v", got, want)
	}

	s.VAAPIDevice = "/dev/dri/renderD129"
	if got := s.InitArgs(); got[len(got)-1] != "/dev/dri/renderD129" {
		t.Errorf("InitArgs() device = %v, want /dev/dri/renderD129", got)
	}

	s.VideoCodec = codec.VideoLibx264
	if got := s.InitArgs(); len(got) != 0 {
		t.Errorf("InitArgs() = %v, want empty for software codec", got)
	}
}
