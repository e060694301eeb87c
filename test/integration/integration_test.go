package integration

import (
	"bytes"
	"testing"

	"github.com/rpgo/slabtax/internal/calculation"
	"github.com/rpgo/slabtax/internal/config"
	"github.com/rpgo/slabtax/internal/output"
	money "github.com/rpgo/slabtax/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadRegistry(t *testing.T) (*calculation.Registry, string, string) {
	t.Helper()
	parser := config.NewInputParser()
	file, err := parser.LoadFromFile("../testdata/schedules.yaml")
	require.NoError(t, err)

	registry := calculation.NewRegistry()
	for _, s := range file.Schedules {
		registry.Register(s)
	}
	return registry, file.Prior, file.Current
}

func TestBuiltInComparisonEndToEnd(t *testing.T) {
	income, err := money.ParseAmount("₹15,00,000")
	require.NoError(t, err)

	registry := calculation.NewRegistry()
	cmp, err := registry.CompareByID(income, calculation.ScheduleFY2024, calculation.ScheduleFY2025, nil)
	require.NoError(t, err)

	assert.Equal(t, "₹1,30,000", money.FormatINR(cmp.Prior.TaxOwed))
	assert.Equal(t, "₹93,750", money.FormatINR(cmp.Current.TaxOwed))
	assert.Equal(t, "₹36,250", money.FormatINR(cmp.Savings))

	for _, format := range output.AvailableFormatterNames() {
		var buf bytes.Buffer
		assert.NoError(t, output.GenerateReport(&buf, &cmp, format), format)
		assert.NotEmpty(t, buf.Bytes(), format)
	}
}

func TestConfiguredScheduleComparison(t *testing.T) {
	registry, prior, current := loadRegistry(t)
	assert.Equal(t, []string{"fy2024-25", "fy2025-26", "fy2026-27"}, registry.IDs())

	// Between the two rebate thresholds only the draft schedule zeroes the tax.
	cmp, err := registry.CompareByID(decimal.NewFromInt(1250000), prior, current, nil)
	require.NoError(t, err)
	assert.True(t, cmp.Prior.TaxOwed.Equal(decimal.NewFromInt(57500)), cmp.Prior.TaxOwed.String())
	assert.True(t, cmp.Current.TaxOwed.IsZero())
	assert.True(t, cmp.Current.RebateApplied)
	assert.True(t, cmp.HasSavings())

	// Above both thresholds the schedules agree.
	cmp, err = registry.CompareByID(decimal.NewFromInt(3000000), prior, current, nil)
	require.NoError(t, err)
	assert.True(t, cmp.Savings.IsZero())
	assert.Equal(t, cmp.Prior.BracketLabel, cmp.Current.BracketLabel)
}

func TestSlabTableForAllSchedules(t *testing.T) {
	registry, _, _ := loadRegistry(t)

	for _, id := range registry.IDs() {
		s, err := registry.Get(id)
		require.NoError(t, err)

		data, err := output.FormatSlabTable(s)
		require.NoError(t, err)
		assert.Contains(t, string(data), s.Name)
	}
}
