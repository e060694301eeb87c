package main

import (
	"fmt"
	"io"

	"github.com/rpgo/slabtax/internal/calculation"
	"github.com/rpgo/slabtax/internal/config"
	"github.com/rpgo/slabtax/internal/domain"
	"github.com/rpgo/slabtax/internal/logging"
	"github.com/rpgo/slabtax/internal/output"
	money "github.com/rpgo/slabtax/pkg/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// invalidPlaceholder is shown instead of an amount that cannot be formatted.
const invalidPlaceholder = "Invalid Input"

type rootOptions struct {
	logLevel  string
	logJSON   bool
	schedules string
}

type compareOptions struct {
	income  string
	prior   string
	current string
	format  string
	output  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "taxcompare",
		Short:         "Compare income tax under two slab schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "emit JSON logs")
	cmd.PersistentFlags().StringVar(&opts.schedules, "schedules", "", "YAML file with additional tax schedules")

	cmd.AddCommand(newCompareCmd(opts), newFormatCmd(), newSlabsCmd(opts))
	return cmd
}

// setup builds the logger and the schedule registry, loading any extra
// schedules from the configured file. The returned ids are the file's
// prior/current defaults, if it names them.
func setup(opts *rootOptions) (*zap.Logger, *calculation.Registry, string, string, error) {
	logger, err := logging.New(logging.Config{Level: opts.logLevel, EnableJSON: opts.logJSON})
	if err != nil {
		return nil, nil, "", "", err
	}

	registry := calculation.NewRegistry()
	if opts.schedules == "" {
		return logger, registry, "", "", nil
	}

	parser := config.NewInputParser()
	file, err := parser.LoadFromFile(opts.schedules)
	if err != nil {
		return nil, nil, "", "", err
	}
	for _, s := range file.Schedules {
		for _, w := range parser.RateWarnings(s) {
			logger.Warn("schedule is not progressive", zap.String("detail", w))
		}
		registry.Register(s)
		logger.Debug("registered schedule", zap.String("id", s.ID), zap.Int("slabs", len(s.Slabs)))
	}
	return logger, registry, file.Prior, file.Current, nil
}

func newCompareCmd(root *rootOptions) *cobra.Command {
	opts := &compareOptions{}
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Show tax owed under the prior and current schedules and the savings",
		Example: "  taxcompare compare --income 1500000\n" +
			"  taxcompare compare --income '₹12,34,567' --format json",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, registry, filePrior, fileCurrent, err := setup(root)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			prior, current := opts.prior, opts.current
			if !cmd.Flags().Changed("prior") && filePrior != "" {
				prior = filePrior
			}
			if !cmd.Flags().Changed("current") && fileCurrent != "" {
				current = fileCurrent
			}
			return runCompare(cmd.OutOrStdout(), logger, registry, opts.income, prior, current, opts.format, opts.output)
		},
	}
	cmd.Flags().StringVar(&opts.income, "income", "", "annual income, e.g. 1500000 or ₹15,00,000")
	cmd.Flags().StringVar(&opts.prior, "prior", calculation.ScheduleFY2024, "prior-year schedule id")
	cmd.Flags().StringVar(&opts.current, "current", calculation.ScheduleFY2025, "current-year schedule id")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "output format (console, csv, html, json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func runCompare(w io.Writer, logger *zap.Logger, registry *calculation.Registry, incomeText, priorID, currentID, format, outputPath string) error {
	income, err := money.ParseAmount(incomeText)
	if err != nil {
		return fmt.Errorf("income: %w", err)
	}
	logger.Debug("comparing schedules",
		zap.String("income", income.String()),
		zap.String("prior", priorID),
		zap.String("current", currentID))

	cmp, err := registry.CompareByID(income, priorID, currentID, logger.Sugar())
	if err != nil {
		return err
	}

	f := output.GetFormatterByName(format)
	if outputPath == "" || f == nil {
		return output.GenerateReport(w, &cmp, format)
	}
	if err := output.WriteFormatted(f, &cmp, outputPath); err != nil {
		return err
	}
	logger.Info("report written", zap.String("path", outputPath), zap.String("format", f.Name()))
	fmt.Fprintf(w, "Report written to %s\n", outputPath)
	return nil
}

func newFormatCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "format <amount>...",
		Short: "Format amounts with South Asian digit grouping",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				formatted, err := money.FormatString(arg)
				if err != nil {
					if strict {
						return err
					}
					formatted = invalidPlaceholder
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first unparseable amount")
	return cmd
}

func newSlabsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "slabs [schedule-id]...",
		Short: "Print the slab tables of the given schedules (default: all)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, registry, _, _, err := setup(root)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ids := args
			if len(ids) == 0 {
				ids = registry.IDs()
			}
			return writeSlabTables(cmd.OutOrStdout(), registry, ids)
		},
	}
}

func writeSlabTables(w io.Writer, registry *calculation.Registry, ids []string) error {
	schedules := make([]domain.TaxSchedule, 0, len(ids))
	for _, id := range ids {
		s, err := registry.Get(id)
		if err != nil {
			return err
		}
		schedules = append(schedules, s)
	}
	data, err := output.FormatSlabTable(schedules...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
