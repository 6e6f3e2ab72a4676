package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/datatype"
)

func rateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <rate>",
		Short: `Show a rate such as "12.5 %" as a fraction and in both units`,
		Long: `Show a rate such as "12.5 %" as a fraction and in both units.
Negative rates must follow "--", as in: datatype rate -- "-3 ‰"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := datatype.ParseRate(args[0])
			if err != nil {
				return err
			}
			opts.log.Debug("rate.parsed", "input", args[0], "type", q.Type().String())

			f, err := q.Fraction()
			if err != nil {
				return err
			}
			r := report{}.
				add("rate", q).
				add("fraction", f.String())
			for _, typ := range []datatype.RateType{datatype.Percent, datatype.Permille} {
				c, err := q.Convert(typ)
				if err != nil {
					opts.log.Warn("rate.convert", "rate", q, "type", typ.String(), "error", err)
					continue
				}
				r = r.add(strings.ToLower(typ.String()), c)
			}
			return printReport(cmd.OutOrStdout(), r, opts.output)
		},
	}
}
