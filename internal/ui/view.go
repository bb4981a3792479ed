package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"filmcompressor/internal/catalog"
	"filmcompressor/internal/encoder"
	"filmcompressor/internal/pipeline"
	"filmcompressor/internal/session"
	"filmcompressor/internal/util"
	"filmcompressor/internal/util/media"
)

const settingsPaneWidth = 34

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("Film Compressor")
	sub := m.styles.Subtitle.Render(fmt.Sprintf("%d file(s)", len(m.sess.Files)))
	return title + "  " + sub
}

func (m Model) viewMain() string {
	rest := m.width - settingsPaneWidth - 4*3
	if rest < 20 {
		rest = 20
	}
	sourcesW := rest * 2 / 3
	filesW := rest - sourcesW

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pane(session.PaneSources, sourcesW, m.sourceRows()),
		m.pane(session.PaneSettings, settingsPaneWidth, m.sess.Settings.Summary()),
		m.pane(session.PaneFiles, filesW, m.fileRows()),
	)

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(panes)
	b.WriteString("\n")
	if line := m.overlayLine(); line != "" {
		b.WriteString(m.styles.Overlay.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Command.Width(maxInt(m.width-4, 20)).Render(m.commandPreview()))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.hotkeys(m.sess)))
	return b.String()
}

func (m Model) pane(p session.Pane, width int, rows []string) string {
	f := m.sess.Focus
	var b strings.Builder
	b.WriteString(m.styles.PaneTitle.Render(p.String()))
	for i, row := range rows {
		b.WriteString("\n")
		if f.Focused(p) && f.Cursor == i {
			b.WriteString(m.styles.Cursor.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
	}
	style := m.styles.Pane
	if f.Focused(p) {
		style = m.styles.PaneFocus
	}
	return style.Width(width).Render(b.String())
}

func (m Model) sourceRows() []string {
	rows := make([]string, 0, m.sess.Catalog.Len())
	for _, e := range m.sess.Catalog.Settings {
		rows = append(rows, m.sourceRow(e))
	}
	return rows
}

func (m Model) sourceRow(e catalog.Setting) string {
	check := "[x]"
	if !e.Enabled {
		check = "[ ]"
	}
	star := " "
	if e.Default {
		star = m.styles.Default.Render("*")
	}
	row := fmt.Sprintf("%s %s %s (%s)", check, star, e.Stream, e.Membership)
	if !e.Enabled {
		return m.styles.Disabled.Render(row)
	}
	return row
}

func (m Model) fileRows() []string {
	rows := make([]string, len(m.sess.Files))
	for i, f := range m.sess.Files {
		rows[i] = fmt.Sprintf("%s %s", filepath.Base(f.Path), m.styles.Faint.Render(humanize.Bytes(uint64(f.Size))))
	}
	return rows
}

func (m Model) overlayLine() string {
	f := m.sess.Focus
	if !f.InOverlay() {
		return ""
	}
	field := encoder.Fields()[f.Cursor]
	switch field := field.(type) {
	case encoder.ChoiceField:
		opts := field.Options()
		parts := make([]string, len(opts))
		for i, o := range opts {
			if i == f.Choice {
				parts[i] = m.styles.Choice.Render(o)
			} else {
				parts[i] = o
			}
		}
		return field.Label() + ": " + strings.Join(parts, " ")
	case encoder.TextField:
		return field.Label() + ": " + string(f.Buffer) + "▏"
	}
	return ""
}

// commandPreview renders the ffmpeg call for the preview file. The output
// folder is shown by its base name since the numbered folder is only picked
// at run time.
func (m Model) commandPreview() string {
	idx := m.sess.PreviewFile()
	if idx < 0 {
		return m.styles.Faint.Render("No input files")
	}
	jobs := pipeline.Plan(m.sess.Settings, m.sess.Files, m.sess.Catalog, media.OutputDirName)
	bin := m.ffmpegPath
	if bin == "" {
		bin = "ffmpeg"
	}
	return util.ShellQuote(bin, jobs[idx].Args)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
