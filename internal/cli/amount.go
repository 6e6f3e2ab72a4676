package cli

import (
	"github.com/spf13/cobra"

	"github.com/govalues/datatype"
)

func amountCmd(opts *options) *cobra.Command {
	c := &cobra.Command{
		Use:   "amount",
		Short: "Exact arithmetic on monetary amounts",
	}
	c.AddCommand(amountSumCmd(opts))
	c.AddCommand(amountSubCmd(opts))
	return c
}

func amountSumCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sum <amount>...",
		Short: `Add amounts such as "12.50 EUR" or "3 TEUR"`,
		Long: `Add amounts such as "12.50 EUR" or "3 TEUR".
Negative amounts must follow "--", as in: datatype amount sum -- "-5 EUR" "3 EUR"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amounts, err := parseAmounts(args)
			if err != nil {
				return err
			}
			s, err := datatype.Sum(amounts...)
			if err != nil {
				return err
			}
			opts.log.Debug("amount.sum", "operands", len(amounts), "result", s)
			r, err := amountReport(s)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), r, opts.output)
		},
	}
}

func amountSubCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sub <amount> <amount>",
		Short: "Subtract the second amount from the first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amounts, err := parseAmounts(args)
			if err != nil {
				return err
			}
			d, err := amounts[0].Sub(amounts[1])
			if err != nil {
				return err
			}
			opts.log.Debug("amount.sub", "minuend", amounts[0], "subtrahend", amounts[1], "result", d)
			r, err := amountReport(d)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), r, opts.output)
		},
	}
}

func parseAmounts(args []string) ([]datatype.Amount, error) {
	amounts := make([]datatype.Amount, 0, len(args))
	for _, s := range args {
		a, err := datatype.ParseAmount(s)
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, a)
	}
	return amounts, nil
}

func amountReport(a datatype.Amount) (report, error) {
	d, err := a.Decimal()
	if err != nil {
		return nil, err
	}
	return report{}.
		add("amount", a).
		add("value", d.String()).
		add("currency", a.Curr().Code()).
		add("decimals", a.Decimals()).
		add("volume", a.Volume().String()), nil
}
