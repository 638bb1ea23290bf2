package output

import (
	"github.com/fincalc/fincalc/internal/domain"
)

// Formatter renders a report set into a byte stream for one output format.
type Formatter interface {
	Name() string
	Format(results *domain.ReportSet) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVSummarizer{},
	PDFFormatter{},
}

// GetFormatterByName returns the formatter registered under name, or nil if
// no such formatter exists.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names for help text.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}
