package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/slabtax/internal/domain"
)

// ConsoleFormatter renders the comparison table followed by a short summary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	prior, current := results.Prior, results.Current

	title := fmt.Sprintf("TAX COMPARISON: %s vs %s", prior.ScheduleName, current.ScheduleName)
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, underline(title))
	fmt.Fprintf(&buf, "Annual Income: %s\n\n", FormatCurrency(results.Income))

	tw := tabwriter.NewWriter(&buf, 0, 0, 3, ' ', 0)
	for _, row := range comparisonRows(results) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row[0], row[1], row[2])
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintf(&buf, "Tax under %s: %s\n", prior.ScheduleName, FormatCurrency(prior.TaxOwed))
	fmt.Fprintf(&buf, "Tax under %s: %s\n", current.ScheduleName, FormatCurrency(current.TaxOwed))
	fmt.Fprintln(&buf, SummaryMessage(results))
	return buf.Bytes(), nil
}

// SummaryMessage states the savings, or that there are none.
func SummaryMessage(results *domain.Comparison) string {
	if results.HasSavings() {
		return fmt.Sprintf("You save: %s", FormatCurrency(results.Savings))
	}
	return fmt.Sprintf("No tax savings under %s", results.Current.ScheduleName)
}

// comparisonRows builds the category rows shared by the table formatters.
func comparisonRows(results *domain.Comparison) [][3]string {
	prior, current := results.Prior, results.Current
	income := FormatCurrency(results.Income)
	return [][3]string{
		{"Category", prior.ScheduleName, current.ScheduleName},
		{"Annual Income", income, income},
		{"Tax Bracket", prior.BracketLabel, current.BracketLabel},
		{"Tax Under " + prior.ScheduleName, FormatCurrency(prior.TaxOwed), "-"},
		{"Tax Under " + current.ScheduleName, "-", FormatCurrency(current.TaxOwed)},
		{"Tax Savings", "-", FormatCurrency(results.Savings)},
	}
}

func underline(s string) string {
	return string(bytes.Repeat([]byte("="), len([]rune(s))))
}
