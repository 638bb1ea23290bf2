package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/fincalc/fincalc/internal/domain"
	"github.com/fincalc/fincalc/internal/output"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width-2, msg.Height-6)
		m.ready = true
		if m.currentScene == SceneResults {
			m.viewport.SetContent(m.resultContent())
		}
		return m, nil

	case DocumentLoadedMsg:
		m.doc = msg.Doc
		m.reports = msg.Reports
		m.cursor = 0
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.currentScene == SceneResults && msg.String() == "q" {
			m.currentScene = ScenePicker
			return m, nil
		}
		return m, tea.Quit

	case "esc":
		if m.currentScene == SceneResults {
			m.currentScene = ScenePicker
		}
		return m, nil

	case "up", "k":
		if m.currentScene == ScenePicker && m.cursor > 0 {
			m.cursor--
		} else if m.currentScene == SceneResults {
			m.viewport.LineUp(1)
		}
		return m, nil

	case "down", "j":
		if m.currentScene == ScenePicker && m.reports != nil && m.cursor < len(m.reports.Reports)-1 {
			m.cursor++
		} else if m.currentScene == SceneResults {
			m.viewport.LineDown(1)
		}
		return m, nil

	case "pgup":
		if m.currentScene == SceneResults {
			m.viewport.HalfViewUp()
		}
		return m, nil

	case "pgdown":
		if m.currentScene == SceneResults {
			m.viewport.HalfViewDown()
		}
		return m, nil

	case "enter":
		if m.currentScene == ScenePicker && m.selectedReport() != nil {
			m.currentScene = SceneResults
			if m.ready {
				m.viewport.SetContent(m.resultContent())
				m.viewport.GotoTop()
			}
		}
		return m, nil
	}

	return m, nil
}

// resultContent renders the selected report with the console formatter so
// the TUI and CLI show identical numbers.
func (m Model) resultContent() string {
	report := m.selectedReport()
	if report == nil {
		return ""
	}
	single := &domain.ReportSet{
		Title:       m.reports.Title,
		GeneratedAt: m.reports.GeneratedAt,
		Reports:     []domain.CalculationReport{*report},
	}
	data, err := (output.ConsoleFormatter{}).Format(single)
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}
	return string(data)
}
