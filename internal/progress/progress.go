// Package progress carries batch-level encode events to an observer.
package progress

import (
	"fmt"
	"io"
	"path/filepath"
)

// Stage identifies where a job is in the batch.
type Stage string

const (
	StageEncoding  Stage = "encoding"
	StageCompleted Stage = "completed"
	StageFailed    Stage = "failed"
)

// Update describes a change for one job. Index is 0-based; Total is the
// batch size.
type Update struct {
	Index  int
	Total  int
	Stage  Stage
	Input  string
	Output string
	Err    error // set for StageFailed
}

// Reporter is implemented by anything interested in batch progress.
type Reporter interface {
	Update(u Update)
}

// Nop discards all updates.
type Nop struct{}

func (Nop) Update(Update) {}

// Text writes one human-readable line per update.
type Text struct {
	W io.Writer
}

func (t Text) Update(u Update) {
	prefix := fmt.Sprintf("[%d/%d]", u.Index+1, u.Total)
	name := filepath.Base(u.Input)
	switch u.Stage {
	case StageEncoding:
		fmt.Fprintf(t.W, "%s Encoding %s -> %s\n", prefix, name, u.Output)
	case StageCompleted:
		fmt.Fprintf(t.W, "%s Done: %s\n", prefix, name)
	case StageFailed:
		fmt.Fprintf(t.W, "%s Failed: %s: %v\n", prefix, name, u.Err)
	}
}
