package util

import (
	"context"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShellQuote(t *testing.T) {
	tests := []struct {
		name string
		path string
		args []string
		want string
	}{
		{name: "plain", path: "ffmpeg", args: []string{"-i", "in.mkv"}, want: "ffmpeg -i in.mkv"},
		{name: "spaces", path: "ffmpeg", args: []string{"-i", "my film.mkv"}, want: "ffmpeg -i 'my film.mkv'"},
		{name: "empty arg", path: "ffmpeg", args: []string{""}, want: "ffmpeg ''"},
		{name: "single quote", path: "ffmpeg", args: []string{"it's.mkv"}, want: `ffmpeg 'it'\''s.mkv'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShellQuote(tt.path, tt.args); got != tt.want {
				t.Errorf("ShellQuote() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_StreamsStderr(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	var lines []string
	res, err := Run(context.Background(), CmdSpec{
		Path:          sh,
		Args:          []string{"-c", "echo out; echo first >&2; echo second >&2"},
		CaptureStdout: true,
		StderrLine:    func(l string) { lines = append(lines, l) },
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff([]string{"first", "second"}, lines); diff != "" {
		t.Errorf("stderr lines mismatch (-want +got):\n%s", diff)
	}
	if string(res.Stdout) != "out\n" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "out\n")
	}
	if string(res.Stderr) != "first\nsecond\n" {
		t.Errorf("Stderr = %q, want %q", res.Stderr, "first\nsecond\n")
	}
}

func TestRun_ExitAndSpawn(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	res, err := Run(context.Background(), CmdSpec{Path: sh, Args: []string{"-c", "exit 3"}})
	if err == nil || res.Code != 3 || !res.Started {
		t.Errorf("Run(exit 3) = %+v, %v; want code 3, started", res, err)
	}

	res, err = Run(context.Background(), CmdSpec{Path: "/nonexistent/ffmpeg"})
	if err == nil || res.Started {
		t.Errorf("Run(missing) = %+v, %v; want error, not started", res, err)
	}
}
