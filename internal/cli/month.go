package cli

import (
	"github.com/spf13/cobra"

	"github.com/govalues/datatype"
)

func monthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "month <YYYY-MM>",
		Short: "Show the integer encoding and the bounds of a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := datatype.ParseMonth(args[0])
			if err != nil {
				return err
			}
			opts.log.Debug("month.parsed", "input", args[0], "int", m.Int())

			r := report{}.
				add("month", m).
				add("int", m.Int()).
				add("days", m.Days()).
				add("first_day", m.FirstDay()).
				add("last_day", m.LastDay())
			if prev, err := m.Prev(); err == nil {
				r = r.add("prev", prev)
			}
			if next, err := m.Next(); err == nil {
				r = r.add("next", next)
			}
			return printReport(cmd.OutOrStdout(), r, opts.output)
		},
	}
}
