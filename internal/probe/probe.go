// Package probe reads the stream layout of media files with ffprobe.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	xlog "filmcompressor/internal/log"
	"filmcompressor/internal/model"
	"filmcompressor/internal/util"
)

// Prober runs ffprobe through a command runner.
type Prober struct {
	FFprobePath string
	Runner      util.CmdRunner
	// Logger receives ffprobe's stderr as debug lines.
	Logger zerolog.Logger
}

// New returns a Prober for the given ffprobe binary. A nil runner uses os/exec.
func New(ffprobePath string, runner util.CmdRunner) *Prober {
	if runner == nil {
		runner = util.NewDefaultRunner()
	}
	return &Prober{FFprobePath: ffprobePath, Runner: runner, Logger: xlog.WithComponent("probe")}
}

// Streams probes path and returns its streams in container order.
func (p *Prober) Streams(ctx context.Context, path string) ([]model.Stream, error) {
	if p.FFprobePath == "" {
		return nil, errors.New("ffprobe path is required")
	}
	res, err := p.Runner.Run(ctx, util.CmdSpec{
		Path: p.FFprobePath,
		Args: []string{
			"-v", "error",
			"-print_format", "json",
			"-show_streams",
			path,
		},
		CaptureStdout: true,
		StderrLine: func(line string) {
			p.Logger.Debug().Str(xlog.FieldPath, path).Msg(line)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	return ParseJSON(res.Stdout)
}

type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeStream struct {
	CodecName   string            `json:"codec_name"`
	CodecType   string            `json:"codec_type"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Channels    int               `json:"channels"`
	Disposition map[string]int    `json:"disposition"`
	Tags        map[string]string `json:"tags"`
}

// ParseJSON converts ffprobe -show_streams JSON into streams. Data and other
// unmappable stream types are skipped.
func ParseJSON(data []byte) ([]model.Stream, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	streams := make([]model.Stream, 0, len(raw.Streams))
	for _, s := range raw.Streams {
		def := s.Disposition["default"] == 1
		title := s.Tags["title"]
		lang := s.Tags["language"]
		switch s.CodecType {
		case "video":
			streams = append(streams, model.NewVideo(s.CodecName, def, s.Width, s.Height))
		case "audio":
			streams = append(streams, model.NewAudio(s.CodecName, def, title, s.Channels, lang))
		case "subtitle":
			streams = append(streams, model.NewSubtitle(s.CodecName, def, title, lang))
		case "attachment":
			name := s.CodecName
			if name == "" {
				name = s.Tags["mimetype"]
			}
			streams = append(streams, model.NewAttachment(name, def))
		}
	}
	return streams, nil
}
