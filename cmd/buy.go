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

type buyCmd struct {
	group string
	date  string
	fee   float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy on a holding" }
func (*buyCmd) Usage() string {
	return `ff buy [-g <group>] [-d <date>] [-fee <fee>] <code> <shares> <amount>

  Records a buy: <amount> is the full cash outlay, fee included, and it is
  folded entirely into the cost basis. The execution price is derived from the
  net amount over the shares.

Usage Examples:
# Buy 500 shares for a total of 2110.50 including a 10.50 fee.
$ ff buy -fee 10.50 110011 500 2110.50
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to search the fund code in.")
	f.StringVar(&c.date, "d", fundfolio.Today().String(), "Date of the transaction.")
	f.Float64Var(&c.fee, "fee", 0, "Transaction fee, part of the amount.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <code> <shares> <amount>.")
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
	if s <= 0 {
		fmt.Fprintln(os.Stderr, "Error: shares must be positive.")
		return subcommands.ExitUsageError
	}
	a, err := strconv.ParseFloat(f.Arg(2), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", f.Arg(2), err)
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

	shares := fundfolio.Q(s)
	amount := fundfolio.CNY(a)
	fee := fundfolio.CNY(c.fee)
	price := amount.Sub(fee).Div(shares)

	tx := fundfolio.NewBuy(day, shares, price, amount, fee)
	h, err = store.Record(h.ID, tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording buy: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %s shares of %s (%s); position now %s shares at %s average cost.\n",
		shares, h.DisplayName, h.Code, h.Shares, h.AverageCost)
	return subcommands.ExitSuccess
}
