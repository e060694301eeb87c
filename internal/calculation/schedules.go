package calculation

import (
	"fmt"
	"sort"

	"github.com/rpgo/slabtax/internal/domain"
	"github.com/shopspring/decimal"
)

// Built-in schedule identifiers.
const (
	ScheduleFY2024 = "fy2024-25"
	ScheduleFY2025 = "fy2025-26"
)

func slab(amount int64, rate float64) domain.Slab {
	return domain.Slab{Amount: decimal.NewFromInt(amount), Rate: decimal.NewFromFloat(rate)}
}

func topSlab(rate float64) domain.Slab {
	return domain.Slab{Rate: decimal.NewFromFloat(rate), Unbounded: true}
}

func bracket(lower, upper int64, label string) domain.BracketRange {
	return domain.BracketRange{Lower: decimal.NewFromInt(lower), Upper: decimal.NewFromInt(upper), Label: label}
}

func topBracket(lower int64, label string) domain.BracketRange {
	return domain.BracketRange{Lower: decimal.NewFromInt(lower), Unbounded: true, Label: label}
}

// NewScheduleFY2024 returns the Budget 2024-25 new-regime schedule.
func NewScheduleFY2024() domain.TaxSchedule {
	return domain.TaxSchedule{
		ID:                ScheduleFY2024,
		Name:              "Budget 2024-25",
		StandardDeduction: decimal.NewFromInt(50000),
		RebateThreshold:   decimal.NewFromInt(700000),
		Slabs: []domain.Slab{
			slab(300000, 0.00),
			slab(100000, 0.05),
			slab(300000, 0.05),
			slab(100000, 0.10),
			slab(200000, 0.10),
			slab(200000, 0.15),
			slab(300000, 0.20),
			slab(100000, 0.30),
			slab(400000, 0.30),
			slab(400000, 0.30),
			topSlab(0.30),
		},
		Brackets: []domain.BracketRange{
			bracket(0, 300000, "₹0 - ₹3 lakh (Nil)"),
			bracket(300000, 500000, "₹3 - ₹5 lakh (5%)"),
			bracket(500000, 1000000, "₹5 - ₹10 lakh (10%)"),
			bracket(1000000, 1250000, "₹10 - ₹12.5 lakh (15%)"),
			bracket(1250000, 1500000, "₹12.5 - ₹15 lakh (20%)"),
			topBracket(1500000, "Above ₹15 lakh (30%)"),
		},
	}
}

// NewScheduleFY2025 returns the Budget 2025-26 new-regime schedule.
func NewScheduleFY2025() domain.TaxSchedule {
	return domain.TaxSchedule{
		ID:                ScheduleFY2025,
		Name:              "Budget 2025-26",
		StandardDeduction: decimal.NewFromInt(75000),
		RebateThreshold:   decimal.NewFromInt(1200000),
		Slabs: []domain.Slab{
			slab(400000, 0.00),
			slab(400000, 0.05),
			slab(400000, 0.10),
			slab(400000, 0.15),
			slab(400000, 0.20),
			slab(400000, 0.25),
			topSlab(0.30),
		},
		Brackets: []domain.BracketRange{
			bracket(0, 400000, "₹0 - ₹4 lakh (Nil)"),
			bracket(400000, 800000, "₹4 - ₹8 lakh (5%)"),
			bracket(800000, 1200000, "₹8 - ₹12 lakh (10%)"),
			bracket(1200000, 1600000, "₹12 - ₹16 lakh (15%)"),
			bracket(1600000, 2000000, "₹16 - ₹20 lakh (20%)"),
			bracket(2000000, 2400000, "₹20 - ₹24 lakh (25%)"),
			topBracket(2400000, "Above ₹24 lakh (30%)"),
		},
	}
}

// Registry holds schedules by id. The zero value is not usable; call NewRegistry.
type Registry struct {
	schedules map[string]domain.TaxSchedule
}

// NewRegistry creates a registry preloaded with the built-in schedules.
func NewRegistry() *Registry {
	r := &Registry{schedules: make(map[string]domain.TaxSchedule)}
	r.Register(NewScheduleFY2024())
	r.Register(NewScheduleFY2025())
	return r
}

// Register adds or replaces a schedule.
func (r *Registry) Register(s domain.TaxSchedule) {
	r.schedules[s.ID] = s
}

// Get looks up a schedule by id.
func (r *Registry) Get(id string) (domain.TaxSchedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return domain.TaxSchedule{}, fmt.Errorf("%w: schedule %q", domain.ErrNotFound, id)
	}
	return s, nil
}

// IDs returns the registered schedule ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.schedules))
	for id := range r.schedules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ComputeTaxByID resolves scheduleID and computes the tax on income.
func (r *Registry) ComputeTaxByID(income decimal.Decimal, scheduleID string, logger Logger) (domain.TaxResult, error) {
	s, err := r.Get(scheduleID)
	if err != nil {
		return domain.TaxResult{}, err
	}
	calc := &SlabTaxCalculator{Schedule: s, Logger: orNop(logger)}
	return calc.ComputeTax(income)
}

// CompareByID runs Compare for two registered schedules.
func (r *Registry) CompareByID(income decimal.Decimal, priorID, currentID string, logger Logger) (domain.Comparison, error) {
	prior, err := r.Get(priorID)
	if err != nil {
		return domain.Comparison{}, err
	}
	current, err := r.Get(currentID)
	if err != nil {
		return domain.Comparison{}, err
	}
	return Compare(income, prior, current, logger)
}
