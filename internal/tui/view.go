package tui

import (
	"fmt"
	"strings"
)

// View renders the active scene.
func (m Model) View() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: "+m.err.Error()) + "\n\nPress q to quit.\n"
	}
	if m.reports == nil {
		return StatusBarStyle.Render("Loading " + m.configPath + "...")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("fincalc - " + m.currentScene.String()))
	b.WriteString("\n\n")

	switch m.currentScene {
	case ScenePicker:
		m.viewPicker(&b)
	case SceneResults:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StatusBarStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) viewPicker(b *strings.Builder) {
	title := m.reports.Title
	if title != "" {
		b.WriteString(StatusBarStyle.Render(title))
		b.WriteString("\n\n")
	}
	for i := range m.reports.Reports {
		report := &m.reports.Reports[i]
		line := fmt.Sprintf("%s  (%s)", report.Name, report.Calculator)
		if i == m.cursor {
			b.WriteString(SelectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(UnselectedItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
}

func (m Model) helpLine() string {
	if m.currentScene == SceneResults {
		return "↑/↓ scroll • esc back • ctrl+c quit"
	}
	return "↑/↓ move • enter open • q quit"
}
