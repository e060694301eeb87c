package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/slabtax/internal/domain"
	"github.com/shopspring/decimal"
)

// SlabRange is a contiguous income range taxed at one rate, with
// consecutive equal-rate slabs merged.
type SlabRange struct {
	From      decimal.Decimal
	To        decimal.Decimal
	Unbounded bool
	Rate      decimal.Decimal
}

// Label renders the range as "₹3,00,000 - ₹7,00,000" or "Above ₹15,00,000".
func (r SlabRange) Label() string {
	if r.Unbounded {
		return "Above " + FormatCurrency(r.From)
	}
	return FormatCurrency(r.From) + " - " + FormatCurrency(r.To)
}

// SlabRanges converts a schedule's slab widths into cumulative ranges.
func SlabRanges(s domain.TaxSchedule) []SlabRange {
	var ranges []SlabRange
	lower := decimal.Zero
	for _, slab := range s.Slabs {
		r := SlabRange{From: lower, Rate: slab.Rate, Unbounded: slab.Unbounded}
		if !slab.Unbounded {
			r.To = lower.Add(slab.Amount)
			lower = r.To
		}
		if n := len(ranges); n > 0 && ranges[n-1].Rate.Equal(r.Rate) {
			ranges[n-1].To = r.To
			ranges[n-1].Unbounded = r.Unbounded
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// FormatSlabTable lists the slab ranges, deduction and rebate of each schedule.
func FormatSlabTable(schedules ...domain.TaxSchedule) ([]byte, error) {
	var buf bytes.Buffer
	for i, s := range schedules {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		heading := fmt.Sprintf("%s (%s)", s.Name, s.ID)
		fmt.Fprintln(&buf, heading)
		fmt.Fprintln(&buf, underline(heading))
		fmt.Fprintf(&buf, "Standard deduction: %s\n", FormatCurrency(s.StandardDeduction))
		fmt.Fprintf(&buf, "No tax on income up to: %s\n", FormatCurrency(s.RebateThreshold))

		tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "Taxable Income\tRate")
		for _, r := range SlabRanges(s) {
			fmt.Fprintf(tw, "%s\t%s\n", r.Label(), FormatSlabRate(r.Rate))
		}
		if err := tw.Flush(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
