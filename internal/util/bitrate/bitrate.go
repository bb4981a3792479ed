// Package bitrate validates ffmpeg bitrate strings such as "4M" or "128k".
package bitrate

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Parse converts an ffmpeg bitrate into bits per second. It accepts a
// plain number or one with an SI suffix (k, M, G). ffmpeg also takes K
// for kilo.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty bitrate")
	}
	if strings.HasSuffix(s, "K") {
		s = strings.TrimSuffix(s, "K") + "k"
	}
	v, unit, err := humanize.ParseSI(s)
	if err != nil {
		return 0, fmt.Errorf("invalid bitrate %q: %w", s, err)
	}
	if unit != "" {
		return 0, fmt.Errorf("invalid bitrate %q: unexpected suffix %q", s, unit)
	}
	bps := int64(v)
	if bps <= 0 {
		return 0, fmt.Errorf("invalid bitrate %q: must be at least 1 bit/s", s)
	}
	return bps, nil
}

// Valid reports whether s is an acceptable bitrate.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
