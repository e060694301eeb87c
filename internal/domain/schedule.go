package domain

import (
	"github.com/shopspring/decimal"
)

// Slab is one band of a progressive schedule. Amount is the width of the
// band, not its upper bound; the final slab of a schedule is Unbounded.
type Slab struct {
	Amount    decimal.Decimal `yaml:"amount" json:"amount"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Unbounded bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
}

// BracketRange labels an inclusive income range for display.
type BracketRange struct {
	Lower     decimal.Decimal `yaml:"lower" json:"lower"`
	Upper     decimal.Decimal `yaml:"upper" json:"upper"`
	Unbounded bool            `yaml:"unbounded,omitempty" json:"unbounded,omitempty"`
	Label     string          `yaml:"label" json:"label"`
}

// Contains reports whether income lies within the range, both ends inclusive.
func (b BracketRange) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Lower) {
		return false
	}
	return b.Unbounded || income.LessThanOrEqual(b.Upper)
}

// TaxSchedule is one year's slab table plus its deduction and rebate.
type TaxSchedule struct {
	ID                string          `yaml:"id" json:"id"`
	Name              string          `yaml:"name" json:"name"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	// Income at or below RebateThreshold owes no tax.
	RebateThreshold decimal.Decimal `yaml:"rebate_threshold" json:"rebate_threshold"`
	Slabs           []Slab          `yaml:"slabs" json:"slabs"`
	Brackets        []BracketRange  `yaml:"brackets" json:"brackets"`
}

// MaxRate returns the highest marginal rate in the schedule.
func (s TaxSchedule) MaxRate() decimal.Decimal {
	highest := decimal.Zero
	for _, slab := range s.Slabs {
		if slab.Rate.GreaterThan(highest) {
			highest = slab.Rate
		}
	}
	return highest
}

// ScheduleFile is the YAML document accepted by the config loader.
type ScheduleFile struct {
	Prior     string        `yaml:"prior,omitempty" json:"prior,omitempty"`
	Current   string        `yaml:"current,omitempty" json:"current,omitempty"`
	Schedules []TaxSchedule `yaml:"schedules" json:"schedules"`
}
