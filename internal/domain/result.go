package domain

import "github.com/shopspring/decimal"

// TaxResult is the outcome of applying one schedule to one income.
type TaxResult struct {
	ScheduleID    string          `json:"schedule_id"`
	ScheduleName  string          `json:"schedule_name"`
	Income        decimal.Decimal `json:"income"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
	TaxOwed       decimal.Decimal `json:"tax_owed"`
	BracketLabel  string          `json:"bracket_label"`
	RebateApplied bool            `json:"rebate_applied"`
}

// Comparison holds the same income evaluated under the prior and current schedules.
type Comparison struct {
	Income  decimal.Decimal `json:"income"`
	Prior   TaxResult       `json:"prior"`
	Current TaxResult       `json:"current"`
	// Savings is Prior.TaxOwed minus Current.TaxOwed; negative when the
	// current schedule costs more.
	Savings decimal.Decimal `json:"savings"`
}

// HasSavings reports whether the current schedule is strictly cheaper.
func (c Comparison) HasSavings() bool {
	return c.Savings.IsPositive()
}
