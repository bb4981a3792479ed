package probe

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"filmcompressor/internal/model"
	"filmcompressor/internal/util"
)

const sampleJSON = `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080,
     "disposition": {"default": 1}},
    {"index": 1, "codec_name": "ac3", "codec_type": "audio", "channels": 6,
     "disposition": {"default": 1}, "tags": {"language": "eng", "title": "Surround"}},
    {"index": 2, "codec_name": "aac", "codec_type": "audio", "channels": 2,
     "disposition": {"default": 0}},
    {"index": 3, "codec_name": "ass", "codec_type": "subtitle",
     "disposition": {"default": 0}, "tags": {"language": "rus"}},
    {"index": 4, "codec_type": "attachment", "tags": {"mimetype": "font/ttf", "filename": "a.ttf"}},
    {"index": 5, "codec_name": "bin_data", "codec_type": "data"}
  ]
}`

func TestParseJSON(t *testing.T) {
	got, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	want := []model.Stream{
		model.NewVideo("h264", true, 1920, 1080),
		model.NewAudio("ac3", true, "Surround", 6, "eng"),
		model.NewAudio("aac", false, "", 2, ""),
		model.NewSubtitle("ass", false, "", "rus"),
		model.NewAttachment("font/ttf", false),
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(model.Stream{})); diff != "" {
		t.Errorf("ParseJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantLen int
	}{
		{name: "malformed", input: `{"streams": [`, wantErr: true},
		{name: "empty object", input: `{}`, wantLen: 0},
		{name: "no streams", input: `{"streams": []}`, wantLen: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJSON([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("ParseJSON() len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

type fakeRunner struct {
	stdout string
	stderr []string
	err    error
	spec   util.CmdSpec
}

func (f *fakeRunner) Run(_ context.Context, spec util.CmdSpec) (util.CmdResult, error) {
	f.spec = spec
	for _, line := range f.stderr {
		if spec.StderrLine != nil {
			spec.StderrLine(line)
		}
	}
	return util.CmdResult{Stdout: []byte(f.stdout), Started: true}, f.err
}

func TestProber_Streams(t *testing.T) {
	r := &fakeRunner{stdout: sampleJSON}
	p := New("/usr/bin/ffprobe", r)
	streams, err := p.Streams(context.Background(), "/media/film.mkv")
	if err != nil {
		t.Fatalf("Streams() error = %v", err)
	}
	if len(streams) != 5 {
		t.Errorf("Streams() len = %d, want 5", len(streams))
	}
	wantArgs := []string{"-v", "error", "-print_format", "json", "-show_streams", "/media/film.mkv"}
	if diff := cmp.Diff(wantArgs, r.spec.Args); diff != "" {
		t.Errorf("ffprobe args mismatch (-want +got):\n%s", diff)
	}
	if !r.spec.CaptureStdout {
		t.Errorf("CaptureStdout = false, want true")
	}
}

func TestProber_RunnerError(t *testing.T) {
	p := New("/usr/bin/ffprobe", &fakeRunner{err: errors.New("exit code 1")})
	if _, err := p.Streams(context.Background(), "missing.mkv"); err == nil {
		t.Errorf("Streams() expected error, got nil")
	}
}

func TestProber_RequiresPath(t *testing.T) {
	p := New("", &fakeRunner{})
	if _, err := p.Streams(context.Background(), "x.mkv"); err == nil {
		t.Errorf("Streams() with empty ffprobe path expected error, got nil")
	}
}

func TestProber_LogsStderr(t *testing.T) {
	var buf bytes.Buffer
	r := &fakeRunner{
		stderr: []string{"missing.mkv: No such file or directory"},
		err:    errors.New("command failed (exit 1)"),
	}
	p := New("/usr/bin/ffprobe", r)
	p.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)

	if _, err := p.Streams(context.Background(), "missing.mkv"); err == nil {
		t.Fatalf("Streams() expected error, got nil")
	}
	out := buf.String()
	if !strings.Contains(out, "No such file or directory") {
		t.Errorf("stderr not logged, got %q", out)
	}
	if !strings.Contains(out, `"level":"debug"`) || !strings.Contains(out, `"path":"missing.mkv"`) {
		t.Errorf("unexpected log entry %q", out)
	}
}
