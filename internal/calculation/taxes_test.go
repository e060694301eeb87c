package calculation

import (
	"fmt"
	"testing"

	"github.com/rpgo/slabtax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeTaxFY2024 checks the Budget 2024-25 schedule against hand-worked figures
func TestComputeTaxFY2024(t *testing.T) {
	calculator := NewSlabTaxCalculator(NewScheduleFY2024())

	tests := []struct {
		name        string
		income      int64
		expectedTax string
		label       string
		rebate      bool
	}{
		{"zero income", 0, "0", "₹0 - ₹3 lakh (Nil)", true},
		{"below rebate", 450000, "0", "₹3 - ₹5 lakh (5%)", true},
		{"at rebate boundary", 700000, "0", "₹5 - ₹10 lakh (10%)", true},
		{"one rupee over rebate", 700001, "17500.05", "₹5 - ₹10 lakh (10%)", false},
		{"ten lakh", 1000000, "45000", "₹5 - ₹10 lakh (10%)", false},
		{"fifteen lakh", 1500000, "130000", "₹12.5 - ₹15 lakh (20%)", false},
		{"twenty lakh", 2000000, "275000", "Above ₹15 lakh (30%)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calculator.ComputeTax(decimal.NewFromInt(tt.income))
			require.NoError(t, err)
			assert.True(t, result.TaxOwed.Equal(decimal.RequireFromString(tt.expectedTax)),
				"expected %s, got %s", tt.expectedTax, result.TaxOwed.StringFixed(2))
			assert.Equal(t, tt.label, result.BracketLabel)
			assert.Equal(t, tt.rebate, result.RebateApplied)
			assert.Equal(t, ScheduleFY2024, result.ScheduleID)
		})
	}
}

// TestComputeTaxFY2025 checks the Budget 2025-26 schedule against hand-worked figures
func TestComputeTaxFY2025(t *testing.T) {
	calculator := NewSlabTaxCalculator(NewScheduleFY2025())

	tests := []struct {
		name        string
		income      int64
		expectedTax string
		label       string
	}{
		{"zero income", 0, "0", "₹0 - ₹4 lakh (Nil)"},
		{"at rebate boundary", 1200000, "0", "₹8 - ₹12 lakh (10%)"},
		{"one rupee over rebate", 1200001, "52500.10", "₹12 - ₹16 lakh (15%)"},
		{"fifteen lakh", 1500000, "93750", "₹12 - ₹16 lakh (15%)"},
		{"twenty lakh", 2000000, "185000", "₹16 - ₹20 lakh (20%)"},
		{"thirty lakh", 3000000, "457500", "Above ₹24 lakh (30%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calculator.ComputeTax(decimal.NewFromInt(tt.income))
			require.NoError(t, err)
			assert.True(t, result.TaxOwed.Equal(decimal.RequireFromString(tt.expectedTax)),
				"expected %s, got %s", tt.expectedTax, result.TaxOwed.StringFixed(2))
			assert.Equal(t, tt.label, result.BracketLabel)
		})
	}
}

func TestComputeTaxRejectsNegativeIncome(t *testing.T) {
	calculator := NewSlabTaxCalculator(NewScheduleFY2025())
	_, err := calculator.ComputeTax(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestComputeTaxRoundsHalfAwayFromZero(t *testing.T) {
	schedule := domain.TaxSchedule{
		ID:       "flat",
		Slabs:    []domain.Slab{{Rate: decimal.NewFromFloat(0.05), Unbounded: true}},
		Brackets: []domain.BracketRange{{Lower: decimal.Zero, Unbounded: true, Label: "all"}},
	}
	calculator := &SlabTaxCalculator{Schedule: schedule}

	result, err := calculator.ComputeTax(decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	assert.Equal(t, "0.01", result.TaxOwed.StringFixed(2))

	result, err = calculator.ComputeTax(decimal.RequireFromString("0.3"))
	require.NoError(t, err)
	assert.Equal(t, "0.02", result.TaxOwed.StringFixed(2))
}

func TestSlabTaxBoundaryStaysInLowerSlab(t *testing.T) {
	slabs := NewScheduleFY2025().Slabs

	// 4 lakh fills the nil slab exactly; nothing spills into 5%.
	assert.True(t, SlabTax(decimal.NewFromInt(400000), slabs).IsZero())
	assert.True(t, SlabTax(decimal.NewFromInt(800000), slabs).Equal(decimal.NewFromInt(20000)))
	assert.True(t, SlabTax(decimal.NewFromInt(800001), slabs).Equal(decimal.RequireFromString("20000.10")))
	assert.True(t, SlabTax(decimal.Zero, slabs).IsZero())
}

func TestRebateZeroesTaxForAllSchedules(t *testing.T) {
	for _, schedule := range []domain.TaxSchedule{NewScheduleFY2024(), NewScheduleFY2025()} {
		calculator := NewSlabTaxCalculator(schedule)
		step := decimal.NewFromInt(25000)
		for income := decimal.Zero; income.LessThanOrEqual(schedule.RebateThreshold); income = income.Add(step) {
			result, err := calculator.ComputeTax(income)
			require.NoError(t, err)
			assert.True(t, result.TaxOwed.IsZero(), "%s at %s: %s", schedule.ID, income, result.TaxOwed)
		}
	}
}

func TestComputeTaxMonotonicAndBounded(t *testing.T) {
	for _, schedule := range []domain.TaxSchedule{NewScheduleFY2024(), NewScheduleFY2025()} {
		t.Run(schedule.ID, func(t *testing.T) {
			calculator := NewSlabTaxCalculator(schedule)
			maxRate := schedule.MaxRate()
			previous := decimal.Zero
			step := decimal.NewFromInt(10000)
			limit := decimal.NewFromInt(5000000)
			for income := decimal.Zero; income.LessThanOrEqual(limit); income = income.Add(step) {
				result, err := calculator.ComputeTax(income)
				require.NoError(t, err)
				assert.True(t, result.TaxOwed.GreaterThanOrEqual(previous),
					"tax decreased at %s: %s < %s", income, result.TaxOwed, previous)

				ceiling := decimal.Max(decimal.Zero, income.Sub(schedule.StandardDeduction)).Mul(maxRate)
				assert.True(t, result.TaxOwed.LessThanOrEqual(ceiling),
					"tax %s above ceiling %s at %s", result.TaxOwed, ceiling, income)
				previous = result.TaxOwed
			}
		})
	}
}

func TestLookupBracket(t *testing.T) {
	brackets := NewScheduleFY2024().Brackets

	tests := []struct {
		income int64
		label  string
	}{
		{0, "₹0 - ₹3 lakh (Nil)"},
		{300000, "₹0 - ₹3 lakh (Nil)"},
		{300001, "₹3 - ₹5 lakh (5%)"},
		{1500000, "₹12.5 - ₹15 lakh (20%)"},
		{99000000, "Above ₹15 lakh (30%)"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.income), func(t *testing.T) {
			label, err := LookupBracket(decimal.NewFromInt(tt.income), brackets)
			require.NoError(t, err)
			assert.Equal(t, tt.label, label)
		})
	}

	// A partition with a gap is a configuration error.
	gapped := []domain.BracketRange{
		{Lower: decimal.Zero, Upper: decimal.NewFromInt(100), Label: "low"},
		{Lower: decimal.NewFromInt(200), Unbounded: true, Label: "high"},
	}
	_, err := LookupBracket(decimal.NewFromInt(150), gapped)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	calculator := &SlabTaxCalculator{Schedule: domain.TaxSchedule{ID: "gapped", Brackets: gapped}}
	_, err = calculator.ComputeTax(decimal.NewFromInt(150))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompareScenarios(t *testing.T) {
	registry := NewRegistry()

	cmp, err := registry.CompareByID(decimal.NewFromInt(1500000), ScheduleFY2024, ScheduleFY2025, nil)
	require.NoError(t, err)
	assert.True(t, cmp.Prior.TaxOwed.Equal(decimal.NewFromInt(130000)))
	assert.True(t, cmp.Current.TaxOwed.Equal(decimal.NewFromInt(93750)))
	assert.True(t, cmp.Savings.Equal(decimal.NewFromInt(36250)))
	assert.True(t, cmp.HasSavings())

	cmp, err = registry.CompareByID(decimal.NewFromInt(700000), ScheduleFY2024, ScheduleFY2025, nil)
	require.NoError(t, err)
	assert.True(t, cmp.Prior.TaxOwed.IsZero())
	assert.True(t, cmp.Savings.IsZero())
	assert.False(t, cmp.HasSavings())

	// Reversing the schedules turns savings negative.
	cmp, err = registry.CompareByID(decimal.NewFromInt(1500000), ScheduleFY2025, ScheduleFY2024, nil)
	require.NoError(t, err)
	assert.True(t, cmp.Savings.Equal(decimal.NewFromInt(-36250)))
}

type recordingLogger struct {
	NopLogger
	infos []string
}

func (r *recordingLogger) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func TestCompareLogsSummary(t *testing.T) {
	log := &recordingLogger{}
	_, err := Compare(decimal.NewFromInt(1500000), NewScheduleFY2024(), NewScheduleFY2025(), log)
	require.NoError(t, err)
	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "savings 36250")
}
