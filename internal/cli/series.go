package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/carson-networks/budget-planner/internal/recurrence"
)

func newSeriesCommand() *cobra.Command {
	series := &cobra.Command{
		Use:   "series",
		Short: "Inspect recurring task series",
	}
	series.AddCommand(newSeriesPreviewCommand())
	return series
}

type previewOptions struct {
	start     string
	until     string
	frequency string
	weekdays  []int
	monthDays []int
}

func newSeriesPreviewCommand() *cobra.Command {
	opts := &previewOptions{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the days a recurrence rule expands to",
		Example: `  budget-planner series preview --start 2024-01-01 --frequency weekly --weekdays 1,3 --until 2024-01-15
  budget-planner series preview --start 2024-01-31 --frequency monthly`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rule, err := opts.rule()
			if err != nil {
				return err
			}
			dates, err := recurrence.Expand(rule)
			if err != nil {
				return err
			}
			for _, d := range dates {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d.Format(time.DateOnly), d.Weekday())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d instances\n", len(dates))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.start, "start", "", "first day of the series (YYYY-MM-DD)")
	flags.StringVar(&opts.until, "until", "", "last day of the series, inclusive (YYYY-MM-DD)")
	flags.StringVar(&opts.frequency, "frequency", string(recurrence.Weekly), "daily, weekly, biweekly or monthly")
	flags.IntSliceVar(&opts.weekdays, "weekdays", nil, "weekdays for weekly series, 0=Sunday")
	flags.IntSliceVar(&opts.monthDays, "monthdays", nil, "days of month for monthly series")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func (o *previewOptions) rule() (recurrence.Rule, error) {
	start, err := time.Parse(time.DateOnly, o.start)
	if err != nil {
		return recurrence.Rule{}, fmt.Errorf("invalid --start: %w", err)
	}
	frequency, err := recurrence.ParseFrequency(o.frequency)
	if err != nil {
		return recurrence.Rule{}, err
	}

	rule := recurrence.Rule{Frequency: frequency, Start: start, MonthDays: o.monthDays}
	if o.until != "" {
		until, err := time.Parse(time.DateOnly, o.until)
		if err != nil {
			return recurrence.Rule{}, fmt.Errorf("invalid --until: %w", err)
		}
		rule.End = &until
	}
	for _, wd := range o.weekdays {
		rule.WeekDays = append(rule.WeekDays, time.Weekday(wd))
	}
	return rule, nil
}
