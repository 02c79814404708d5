package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalWidth(termWidth int) int {
	w := termWidth - 8
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

func renderModalBox(termWidth int, title, body string) string {
	w := modalWidth(termWidth)
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Width(w).
		Padding(0, 1).
		Render(title)
	content := lipgloss.NewStyle().
		Width(w).
		Padding(0, 1).
		Render(body)
	box := lipgloss.JoinVertical(lipgloss.Left, header, content)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Render(box)
}

// renderConfirmModal renders a yes/no prompt. Borders inside the box are
// avoided: some terminals show background artifacts when nesting bordered
// components.
func renderConfirmModal(termWidth int, title, body, confirmLabel, cancelLabel string) string {
	btn := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btn.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		btnActive.Render(confirmLabel),
		" ",
		btn.Render(cancelLabel),
	)
	help := styleMuted().Render("y/enter: confirm   esc/n: cancel")

	content := strings.Join([]string{body, "", controls, "", help}, "\n")
	return renderModalBox(termWidth, title, content)
}

func placeCentered(termWidth, termHeight int, content string) string {
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, content)
}
