package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"filmcompressor/internal/model"
	"filmcompressor/internal/session"
)

// Loader probes the input paths. pipeline.Service satisfies it.
type Loader interface {
	Load(ctx context.Context, paths []string) ([]model.InputFile, error)
}

type Model struct {
	ctx    context.Context
	loader Loader
	paths  []string

	sess       *session.Session
	ffmpegPath string

	loading bool
	loadErr error
	action  session.Action

	width, height int
	styles        Styles
	keys          keyMap
	spinner       spinner.Model
	help          help.Model
}

// NewModel builds the TUI model. Files are loaded from paths once the program
// starts.
func NewModel(ctx context.Context, loader Loader, paths []string, sess *session.Session, ffmpegPath string) Model {
	sty := defaultStyles()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sty.Spinner
	return Model{
		ctx:        ctx,
		loader:     loader,
		paths:      paths,
		sess:       sess,
		ffmpegPath: ffmpegPath,
		loading:    true,
		width:      100,
		styles:     sty,
		keys:       defaultKeyMap(),
		spinner:    sp,
		help:       help.New(),
	}
}

// Action is the session action that ended the program.
func (m Model) Action() session.Action { return m.action }

// Session returns the underlying session.
func (m Model) Session() *session.Session { return m.sess }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	loader, ctx, paths := m.loader, m.ctx, m.paths
	return func() tea.Msg {
		files, err := loader.Load(ctx, paths)
		return filesLoadedMsg{Files: files, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case filesLoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err == nil {
			m.sess.AddFiles(msg.Files...)
		}
		return m, nil

	case tea.KeyMsg:
		ev := m.keys.translate(msg)
		if m.loading || m.loadErr != nil {
			if ev.Key == session.KeyQuit {
				m.action = session.ActionQuit
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.sess.Apply(ev) {
		case session.ActionQuit:
			m.action = session.ActionQuit
			return m, tea.Quit
		case session.ActionRun:
			if len(m.sess.Files) == 0 {
				return m, nil
			}
			m.action = session.ActionRun
			return m, tea.Quit
		}
		return m, nil
	}

	if m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return m.viewHeader() + "\n\n" + m.spinner.View() + " " + m.styles.Faint.Render("Probing files...") + "\n"
	}
	if m.loadErr != nil {
		return m.viewHeader() + "\n\n" + m.styles.Error.Render("Error: "+m.loadErr.Error()) + "\n"
	}
	return m.viewMain()
}
