package output

import (
	"encoding/json"

	"github.com/fincalc/fincalc/internal/domain"
)

// JSONFormatter renders the full report set as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ReportSet) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
