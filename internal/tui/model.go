package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/config"
	"github.com/fincalc/fincalc/internal/domain"
)

// Scene identifies the active screen.
type Scene int

const (
	ScenePicker Scene = iota
	SceneResults
)

// String returns a human-readable name for a scene.
func (s Scene) String() string {
	switch s {
	case ScenePicker:
		return "Calculations"
	case SceneResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Model is the entire application state: the loaded document, the reports
// from running it, and the navigation state between the picker and the
// per-report results view.
type Model struct {
	currentScene Scene

	width  int
	height int

	configPath string
	doc        *domain.Document
	reports    *domain.ReportSet

	cursor   int
	viewport viewport.Model
	ready    bool

	err error
}

// NewModel creates the application model for an input file.
func NewModel(configPath string) Model {
	return Model{
		currentScene: ScenePicker,
		configPath:   configPath,
		width:        80,
		height:       24,
	}
}

// Init kicks off loading and running the input document.
func (m Model) Init() tea.Cmd {
	return loadDocumentCmd(m.configPath)
}

// loadDocumentCmd parses the input file and runs every request through the
// calculation engine off the UI goroutine.
func loadDocumentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		doc, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		engine := calculation.NewEngine()
		reports, err := engine.RunDocument(doc)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return DocumentLoadedMsg{Doc: doc, Reports: reports}
	}
}

// selectedReport returns the report under the cursor, or nil before loading.
func (m Model) selectedReport() *domain.CalculationReport {
	if m.reports == nil || m.cursor < 0 || m.cursor >= len(m.reports.Reports) {
		return nil
	}
	return &m.reports.Reports[m.cursor]
}
