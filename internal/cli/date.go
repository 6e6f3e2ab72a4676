package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/govalues/datatype"
)

func dateCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "date <YYYY-MM-DD>",
		Short: "Show the day-number, weekday and calendar week of a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := datatype.ParseDate(args[0])
			if err != nil {
				return err
			}
			opts.log.Debug("date.parsed", "input", args[0], "days", d.Days())
			return printReport(cmd.OutOrStdout(), dateReport(d), opts.output)
		},
	}
	c.AddCommand(dateFromDaysCmd(opts))
	c.AddCommand(dateAddCmd(opts))
	return c
}

func dateFromDaysCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "from-days <n>",
		Short: "Convert a day-number (days since 1000-01-01) to a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			d, err := datatype.NewDateFromDays(n)
			if err != nil {
				return err
			}
			opts.log.Debug("date.from_days", "days", n, "date", d)
			return printReport(cmd.OutOrStdout(), dateReport(d), opts.output)
		},
	}
}

func dateAddCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "add <YYYY-MM-DD> <n>",
		Short: "Add n days to a date (n may be negative)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := datatype.ParseDate(args[0])
			if err != nil {
				return err
			}
			n, err := parseInt(args[1])
			if err != nil {
				return err
			}
			e, err := d.AddDays(n)
			if err != nil {
				return err
			}
			opts.log.Debug("date.add", "date", d, "days", n, "result", e)
			return printReport(cmd.OutOrStdout(), dateReport(e), opts.output)
		},
	}
	// Negative n after the date is an argument, not a flag.
	c.Flags().SetInterspersed(false)
	return c
}

func dateReport(d datatype.Date) report {
	return report{}.
		add("date", d).
		add("days", d.Days()).
		add("weekday", d.Weekday().String()).
		add("calendar_week", d.CalendarWeek()).
		add("month", d.YearMonth()).
		add("first_day_of_year", d.FirstDayOfYear()).
		add("last_day_of_year", d.LastDayOfYear())
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return n, nil
}
