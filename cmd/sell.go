package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/yfei/fundfolio"
)

type sellCmd struct {
	group string
	date  string
	fee   float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell on a holding" }
func (*sellCmd) Usage() string {
	return `ff sell [-g <group>] [-d <date>] [-fee <fee>] <code> <shares> <price>

  Records a sell of <shares> at the unit <price>. Selling more shares than
  held liquidates the position. The realized gain, net of the fee, is folded
  into the holding's cumulative return.

Usage Examples:
# Sell 200 shares at 4.85 with a 2.00 fee.
$ ff sell -fee 2.00 110011 200 4.85
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to search the fund code in.")
	f.StringVar(&c.date, "d", fundfolio.Today().String(), "Date of the transaction.")
	f.Float64Var(&c.fee, "fee", 0, "Transaction fee, deducted from the proceeds.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <code> <shares> <price>.")
		return subcommands.ExitUsageError
	}
	day, err := fundfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := strconv.ParseFloat(f.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing shares %q: %v\n", f.Arg(1), err)
		return subcommands.ExitUsageError
	}
	p, err := strconv.ParseFloat(f.Arg(2), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", f.Arg(2), err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	h, err := findHolding(store, f.Arg(0), c.group)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	tx := fundfolio.NewSell(day, fundfolio.Q(s), fundfolio.CNY(p), fundfolio.CNY(c.fee))
	h, err = store.Record(h.ID, tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording sell: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold shares of %s (%s); position now %s shares, realized gain %s.\n",
		h.DisplayName, h.Code, h.Shares, h.RealizedGain.SignedString())
	return subcommands.ExitSuccess
}
