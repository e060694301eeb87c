package calculation

import (
	"fmt"

	"github.com/rpgo/slabtax/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Rebate: income at or below the schedule's rebate threshold owes nothing.
//    The comparison is made on gross income, before the standard deduction.
//
// 2. Slabs are widths, consumed lowest first. An amount exactly equal to a
//    slab's width stays in that slab; only the excess moves up.
//
// 3. Rounding: tax is rounded to 2 places, half away from zero.
//
// 4. No surcharge, cess or marginal relief is modeled.

// SlabTaxCalculator applies a progressive slab schedule to an income.
type SlabTaxCalculator struct {
	Schedule domain.TaxSchedule
	Logger   Logger
}

// NewSlabTaxCalculator creates a calculator for one schedule
func NewSlabTaxCalculator(schedule domain.TaxSchedule) *SlabTaxCalculator {
	return &SlabTaxCalculator{Schedule: schedule, Logger: NopLogger{}}
}

// ComputeTax calculates the tax owed on income and the display bracket it falls in.
func (c *SlabTaxCalculator) ComputeTax(income decimal.Decimal) (domain.TaxResult, error) {
	if income.IsNegative() {
		return domain.TaxResult{}, fmt.Errorf("%w: income %s is negative", domain.ErrInvalidInput, income.String())
	}

	label, err := LookupBracket(income, c.Schedule.Brackets)
	if err != nil {
		return domain.TaxResult{}, fmt.Errorf("schedule %s: %w", c.Schedule.ID, err)
	}

	taxable := decimal.Max(decimal.Zero, income.Sub(c.Schedule.StandardDeduction))
	result := domain.TaxResult{
		ScheduleID:    c.Schedule.ID,
		ScheduleName:  c.Schedule.Name,
		Income:        income,
		TaxableIncome: taxable,
		TaxOwed:       decimal.Zero,
		BracketLabel:  label,
	}

	log := orNop(c.Logger)
	if income.LessThanOrEqual(c.Schedule.RebateThreshold) {
		result.RebateApplied = true
		log.Debugf("schedule %s: income %s within rebate threshold %s", c.Schedule.ID, income, c.Schedule.RebateThreshold)
		return result, nil
	}

	result.TaxOwed = SlabTax(taxable, c.Schedule.Slabs).Round(2)
	log.Debugf("schedule %s: income %s taxable %s tax %s", c.Schedule.ID, income, taxable, result.TaxOwed)
	return result, nil
}

// SlabTax walks the slabs in order and returns the unrounded tax on taxable.
func SlabTax(taxable decimal.Decimal, slabs []domain.Slab) decimal.Decimal {
	remaining := taxable
	var total decimal.Decimal
	for _, slab := range slabs {
		if !slab.Unbounded && remaining.GreaterThan(slab.Amount) {
			total = total.Add(slab.Amount.Mul(slab.Rate))
			remaining = remaining.Sub(slab.Amount)
			continue
		}
		total = total.Add(remaining.Mul(slab.Rate))
		break
	}
	return total
}

// LookupBracket returns the label of the first range containing income.
func LookupBracket(income decimal.Decimal, ranges []domain.BracketRange) (string, error) {
	for _, r := range ranges {
		if r.Contains(income) {
			return r.Label, nil
		}
	}
	return "", fmt.Errorf("%w: no bracket covers income %s", domain.ErrNotFound, income.String())
}

// Compare evaluates income under both schedules and reports the savings.
func Compare(income decimal.Decimal, prior, current domain.TaxSchedule, logger Logger) (domain.Comparison, error) {
	logger = orNop(logger)
	priorCalc := &SlabTaxCalculator{Schedule: prior, Logger: logger}
	currentCalc := &SlabTaxCalculator{Schedule: current, Logger: logger}

	priorResult, err := priorCalc.ComputeTax(income)
	if err != nil {
		return domain.Comparison{}, err
	}
	currentResult, err := currentCalc.ComputeTax(income)
	if err != nil {
		return domain.Comparison{}, err
	}

	cmp := domain.Comparison{
		Income:  income,
		Prior:   priorResult,
		Current: currentResult,
		Savings: priorResult.TaxOwed.Sub(currentResult.TaxOwed),
	}
	logger.Infof("compared %s vs %s at income %s: savings %s", prior.ID, current.ID, income, cmp.Savings)
	return cmp, nil
}
