package config

import (
	"fmt"
	"os"

	"github.com/rpgo/slabtax/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of schedule configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads schedules from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ScheduleFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a schedule document
func (ip *InputParser) Parse(data []byte) (*domain.ScheduleFile, error) {
	var file domain.ScheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&file); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &file, nil
}

// ValidateConfiguration validates every schedule in the document
func (ip *InputParser) ValidateConfiguration(file *domain.ScheduleFile) error {
	if len(file.Schedules) == 0 {
		return fmt.Errorf("no schedules provided")
	}

	seen := make(map[string]bool, len(file.Schedules))
	for i := range file.Schedules {
		s := &file.Schedules[i]
		if s.ID == "" {
			return fmt.Errorf("schedule %d: id is required", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("schedule %s: duplicate id", s.ID)
		}
		seen[s.ID] = true

		if err := ip.ValidateSchedule(s); err != nil {
			return fmt.Errorf("schedule %s: %w", s.ID, err)
		}
	}

	return nil
}

// ValidateSchedule checks the structural invariants the calculator relies on
func (ip *InputParser) ValidateSchedule(s *domain.TaxSchedule) error {
	if s.StandardDeduction.IsNegative() {
		return fmt.Errorf("standard deduction cannot be negative")
	}
	if s.RebateThreshold.IsNegative() {
		return fmt.Errorf("rebate threshold cannot be negative")
	}
	if err := validateSlabs(s.Slabs); err != nil {
		return err
	}
	return validateBrackets(s.Brackets)
}

func validateSlabs(slabs []domain.Slab) error {
	if len(slabs) == 0 {
		return fmt.Errorf("at least one slab is required")
	}
	one := decimal.NewFromInt(1)
	for i, slab := range slabs {
		last := i == len(slabs)-1
		if slab.Amount.IsNegative() {
			return fmt.Errorf("slab %d: amount cannot be negative", i)
		}
		if slab.Rate.IsNegative() || slab.Rate.GreaterThan(one) {
			return fmt.Errorf("slab %d: rate must be between 0 and 1", i)
		}
		if slab.Unbounded && !last {
			return fmt.Errorf("slab %d: only the final slab may be unbounded", i)
		}
		if last && !slab.Unbounded {
			return fmt.Errorf("slab %d: final slab must be unbounded", i)
		}
	}
	return nil
}

func validateBrackets(brackets []domain.BracketRange) error {
	if len(brackets) == 0 {
		return fmt.Errorf("at least one bracket is required")
	}
	if !brackets[0].Lower.IsZero() {
		return fmt.Errorf("bracket 0: must start at zero")
	}
	for i, b := range brackets {
		last := i == len(brackets)-1
		if b.Label == "" {
			return fmt.Errorf("bracket %d: label is required", i)
		}
		if b.Unbounded && !last {
			return fmt.Errorf("bracket %d: only the final bracket may be unbounded", i)
		}
		if last && !b.Unbounded {
			return fmt.Errorf("bracket %d: final bracket must be unbounded", i)
		}
		if !b.Unbounded && b.Upper.LessThan(b.Lower) {
			return fmt.Errorf("bracket %d: upper bound below lower bound", i)
		}
		if i > 0 {
			prev := brackets[i-1]
			// Ranges are inclusive, so touching or overlapping ends leave no gap.
			if b.Lower.GreaterThan(prev.Upper) {
				return fmt.Errorf("bracket %d: gap after %s", i, prev.Upper.String())
			}
		}
	}
	return nil
}

// RateWarnings lists slabs whose rate is lower than the slab before them.
// Such schedules still compute, but are not progressive.
func (ip *InputParser) RateWarnings(s domain.TaxSchedule) []string {
	var warnings []string
	for i := 1; i < len(s.Slabs); i++ {
		if s.Slabs[i].Rate.LessThan(s.Slabs[i-1].Rate) {
			warnings = append(warnings, fmt.Sprintf("schedule %s: slab %d rate %s is below slab %d rate %s",
				s.ID, i, s.Slabs[i].Rate, i-1, s.Slabs[i-1].Rate))
		}
	}
	return warnings
}
