package ui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"filmcompressor/internal/pipeline"
	"filmcompressor/internal/session"
)

// Outcome is what happened after the TUI closed.
type Outcome struct {
	Ran       bool
	OutputDir string
	Summary   pipeline.Summary
}

// Run launches the TUI over paths. If the user starts the jobs the program
// exits first and the batch then runs on the released terminal.
func Run(ctx context.Context, svc *pipeline.Service, paths []string, sess *session.Session, ffmpegPath string) (Outcome, error) {
	m := NewModel(ctx, svc, paths, sess, ffmpegPath)
	prog := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return Outcome{}, err
	}
	fm, ok := final.(Model)
	if !ok || fm.Action() != session.ActionRun {
		return Outcome{}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve working directory: %w", err)
	}
	dir, err := svc.Prepare(wd)
	if err != nil {
		return Outcome{}, err
	}
	s := fm.Session()
	jobs := pipeline.Plan(s.Settings, s.Files, s.Catalog, dir)
	sum, err := svc.Run(ctx, jobs)
	return Outcome{Ran: true, OutputDir: dir, Summary: sum}, err
}
