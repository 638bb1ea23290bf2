package tui

import "github.com/fincalc/fincalc/internal/domain"

// DocumentLoadedMsg carries a parsed input document and the reports from
// running it.
type DocumentLoadedMsg struct {
	Doc     *domain.Document
	Reports *domain.ReportSet
}

// ErrorMsg carries a fatal load or calculation error.
type ErrorMsg struct {
	Err error
}
