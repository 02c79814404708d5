package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fdk/internal/edit"
)

func (m *appModel) leftWidth() int {
	w := m.width * 3 / 5
	if w < 30 {
		w = m.width - 2
	}
	return w
}

func (m *appModel) resizeSide() {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	if m.layout == "wide" {
		w := m.width - m.leftWidth() - 3
		if w < 20 {
			w = 20
		}
		m.side.Width = w
		m.side.Height = h
		return
	}
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	m.side.Width = w
	m.side.Height = h - 1
}

// syncSide rebuilds the side viewport's content for the current layout/page.
func (m *appModel) syncSide() {
	w := m.side.Width
	if w <= 0 {
		return
	}
	if m.layout == "wide" {
		m.side.SetContent(strings.Join([]string{
			m.atcSection(w),
			m.notesSection(w),
			m.chartsSection(w),
		}, "\n"+sectionRule(w)+"\n"))
		return
	}
	switch m.page {
	case pageATC:
		m.side.SetContent(m.atcSection(w))
	case pageNotes:
		m.side.SetContent(m.notesSection(w))
	case pageCharts:
		m.side.SetContent(m.chartsSection(w))
	}
}

func sectionRule(w int) string {
	return styleMuted().Render(strings.Repeat(glyphHRule(), w))
}

func sectionTitle(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render(s)
}

func (m *appModel) atcSection(w int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("ATC " + glyphBullet() + " " + m.sess.StageName()))
	b.WriteString("\n")
	tpls := edit.TemplatesForStage(m.atc, m.sess.StageName())
	if len(tpls) == 0 {
		b.WriteString(styleMuted().Render("no templates for this stage"))
		return b.String()
	}
	for _, tpl := range tpls {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(tpl.Name))
		b.WriteString("\n")
		if strings.TrimSpace(tpl.CN) != "" {
			b.WriteString(renderMarkdown(tpl.CN, w))
			b.WriteString("\n")
		}
		if strings.TrimSpace(tpl.EN) != "" {
			b.WriteString(renderMarkdown(tpl.EN, w))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *appModel) notesSection(w int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Stage note"))
	b.WriteString("\n")
	if strings.TrimSpace(m.stageNote) == "" {
		b.WriteString(styleMuted().Render("empty"))
	} else {
		b.WriteString(renderMarkdown(m.stageNote, w))
	}
	b.WriteString("\n\n")
	b.WriteString(sectionTitle("Global note"))
	b.WriteString("\n")
	if strings.TrimSpace(m.globalNote) == "" {
		b.WriteString(styleMuted().Render("empty"))
	} else {
		b.WriteString(renderMarkdown(m.globalNote, w))
	}
	return b.String()
}

func (m *appModel) chartsSection(w int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("Charts"))
	b.WriteString("\n")
	if len(m.charts) == 0 {
		b.WriteString(styleMuted().Render("no charts"))
		return b.String()
	}
	for _, name := range m.charts {
		b.WriteString(truncateLine(glyphBullet()+" "+name, w))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *appModel) headerLine() string {
	if m.sess.Aircraft() == "" {
		return lipgloss.NewStyle().Bold(true).Foreground(colorAccent).
			Render("fdk") + styleMuted().Render("  no aircraft yet; create one with `fdk aircraft create`")
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).
		Render(m.sess.Aircraft() + " - " + m.sess.StageName())
	pos := styleMuted().Render(fmt.Sprintf("  stage %d/%d", m.sess.StageIndex()+1, len(m.sess.StageNames())))
	state := lipgloss.NewStyle().Foreground(colorPending).Render("  in progress")
	if m.sess.Complete() {
		state = lipgloss.NewStyle().Foreground(colorDone).Render("  complete")
	}
	return title + pos + state
}

func (m *appModel) checklistPane(w int) string {
	run := m.sess.Run()
	if run == nil {
		return styleMuted().Render("select an aircraft")
	}
	var lines []string
	for i := 0; i < run.Len(); i++ {
		lines = append(lines, m.rowLine(i, w, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m *appModel) rowLine(i, w int, selected bool) string {
	run := m.sess.Run()
	tree := run.Tree()
	n := tree.Node(i)

	box := glyphUnchecked()
	if run.Checked(i) {
		box = glyphChecked()
	} else if run.Disabled(i) {
		box = glyphLocked()
	}

	label := strings.Repeat("  ", n.Level) + box + " " + n.Text
	if tree.Optional(i) {
		label += " (optional)"
	}

	st := lipgloss.NewStyle()
	switch {
	case selected:
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	case run.Disabled(i):
		st = styleMuted()
	case tree.Optional(i):
		st = faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
	}
	return truncateLine(st.Render(label), w)
}

func (m *appModel) footer() string {
	if m.status != "" {
		return lipgloss.NewStyle().Foreground(colorPending).Render(m.status)
	}
	help := "space: check  n: next stage  [/]: stage  {/}: aircraft  a: all  R: reset  m: layout  q: quit"
	if m.layout == "compact" {
		help = "tab: page  " + help
	}
	return styleMuted().Render(help)
}

func (m *appModel) pageBar() string {
	var parts []string
	for p := pageChecklist; p < pageCount; p++ {
		st := styleMuted()
		if p == m.page {
			st = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
		}
		parts = append(parts, st.Render(p.label()))
	}
	return strings.Join(parts, styleMuted().Render(" "+glyphBullet()+" "))
}

func (m *appModel) View() string {
	if m.width == 0 {
		return ""
	}
	if m.confirmReset {
		body := "Uncheck every item recorded for " + m.sess.Aircraft() + " and return to its first stage?"
		return placeCentered(m.width, m.height,
			renderConfirmModal(m.width, "Reset checks", body, "Reset", "Keep"))
	}

	header := truncateLine(m.headerLine(), m.width)

	var body string
	if m.layout == "wide" {
		leftW := m.leftWidth()
		left := lipgloss.NewStyle().Width(leftW).Render(m.checklistPane(leftW))
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.side.View())
	} else if m.page == pageChecklist {
		body = m.pageBar() + "\n" + m.checklistPane(m.width-2)
	} else {
		body = m.pageBar() + "\n" + m.side.View()
	}

	return strings.Join([]string{header, "", body, "", m.footer()}, "\n")
}
