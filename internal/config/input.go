package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fincalc/fincalc/internal/calculation"
	"github.com/fincalc/fincalc/internal/domain"
)

// InputParser handles parsing of calculation input documents.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation document from a YAML file and validates
// its structure.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates a calculation document from raw YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Document, error) {
	var doc domain.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("document validation failed: %w", err)
	}
	return &doc, nil
}

// ValidateDocument checks document structure: every request must name a
// known calculator and carry the matching input block. Numeric validation
// belongs to the engines (hard errors) and the soft validators (error and
// warning lists), not here.
func (ip *InputParser) ValidateDocument(doc *domain.Document) error {
	if len(doc.Requests) == 0 {
		return fmt.Errorf("no requests provided")
	}
	for i := range doc.Requests {
		if err := ip.validateRequest(&doc.Requests[i]); err != nil {
			return fmt.Errorf("request %d (%s): %w", i, doc.Requests[i].Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateRequest(req *domain.Request) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}

	var block any
	switch req.Calculator {
	case domain.CalculatorAmortization:
		block = req.Loan
	case domain.CalculatorLoanCost:
		block = req.LoanCost
	case domain.CalculatorAutoLoan:
		block = req.AutoLoan
	case domain.CalculatorHomeEquity:
		block = req.HomeEquity
	case domain.CalculatorRetirement:
		block = req.Retirement
	case domain.CalculatorRMD:
		block = req.RMD
	case domain.CalculatorRent:
		block = req.Rent
	case domain.CalculatorRentVsBuy:
		block = req.RentVsBuy
	case "":
		return fmt.Errorf("calculator is required")
	default:
		return fmt.Errorf("unknown calculator %q", req.Calculator)
	}
	if isNilBlock(block) {
		return fmt.Errorf("missing input block for calculator %q", req.Calculator)
	}
	return nil
}

func isNilBlock(block any) bool {
	switch v := block.(type) {
	case *domain.LoanTerms:
		return v == nil
	case *domain.LoanCostRequest:
		return v == nil
	case *domain.AutoLoanInput:
		return v == nil
	case *domain.HomeEquityRequest:
		return v == nil
	case *domain.RetirementProfile:
		return v == nil
	case *domain.RMDProfile:
		return v == nil
	case *domain.RentAffordabilityInput:
		return v == nil
	case *domain.RentVsBuyInput:
		return v == nil
	default:
		return block == nil
	}
}

// SoftValidate runs the projection-engine validators over every request in
// the document, keyed by request name. Only retirement and RMD requests
// produce entries; the loan calculators validate hard at calculation time.
func (ip *InputParser) SoftValidate(doc *domain.Document) map[string]domain.ValidationResult {
	results := make(map[string]domain.ValidationResult)
	for i := range doc.Requests {
		req := &doc.Requests[i]
		switch req.Calculator {
		case domain.CalculatorRetirement:
			if req.Retirement != nil {
				results[req.Name] = calculation.ValidateRetirementProfile(*req.Retirement)
			}
		case domain.CalculatorRMD:
			if req.RMD != nil {
				results[req.Name] = calculation.ValidateRMDProfile(*req.RMD)
			}
		}
	}
	return results
}
