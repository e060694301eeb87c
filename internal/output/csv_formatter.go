package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/slabtax/internal/domain"
)

// CSVFormatter writes one row per schedule with plain two-decimal amounts.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Schedule", "Name", "Income", "TaxableIncome", "TaxOwed", "Bracket", "RebateApplied"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range []domain.TaxResult{results.Prior, results.Current} {
		row := []string{
			r.ScheduleID,
			r.ScheduleName,
			r.Income.StringFixed(2),
			r.TaxableIncome.StringFixed(2),
			r.TaxOwed.StringFixed(2),
			r.BracketLabel,
			boolToString(r.RebateApplied),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"savings", "", "", "", results.Savings.StringFixed(2), "", ""}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
