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

type addCmd struct {
	group string
	name  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a fund position to a group" }
func (*addCmd) Usage() string {
	return `ff add [-g <group>] [-n <name>] <code> [<shares> <avg_cost>]

  Adds a fund holding to a group. With shares and average cost the position is
  seeded with an implicit buy; without them the holding starts flat. The fund
  name is fetched from the quote source when -n is omitted.

Usage Examples:
# Add 1000 shares of 110011 bought at an average cost of 4.20.
$ ff add 110011 1000 4.20

# Add a flat position in a named group.
$ ff add -g retirement 161725
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to add the holding to. Defaults to the default group.")
	f.StringVar(&c.name, "n", "", "Display name. Defaults to the name reported by the quote source.")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 && f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <code> or <code> <shares> <avg_cost>.")
		return subcommands.ExitUsageError
	}
	code := f.Arg(0)

	shares, avgCost := fundfolio.Q(0), fundfolio.CNY(0)
	if f.NArg() == 3 {
		s, err := strconv.ParseFloat(f.Arg(1), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing shares %q: %v\n", f.Arg(1), err)
			return subcommands.ExitUsageError
		}
		p, err := strconv.ParseFloat(f.Arg(2), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing average cost %q: %v\n", f.Arg(2), err)
			return subcommands.ExitUsageError
		}
		shares, avgCost = fundfolio.Q(s), fundfolio.CNY(p)
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	g, err := resolveGroup(store, c.group)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	h, err := store.AddHolding(ctx, code, c.name, g.ID, shares, avgCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding holding: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s (%s) to group %q.\n", h.DisplayName, h.Code, g.Name)
	return subcommands.ExitSuccess
}
