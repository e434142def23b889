package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yfei/fundfolio"
	"github.com/yfei/fundfolio/renderer"
)

type historyCmd struct {
	count int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show a fund's recent settled NAV series" }
func (*historyCmd) Usage() string {
	return `ff history [-n <count>] <code>

  Shows the last settled NAV observations for a fund, oldest first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 30, "Number of NAV points to fetch.")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one fund code is required.")
		return subcommands.ExitUsageError
	}
	code := f.Arg(0)

	points, err := fundfolio.FetchHistory(ctx, code, c.count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching history: %v\n", err)
		return subcommands.ExitFailure
	}

	// Use the tracked name when the fund happens to be a holding.
	name := code
	if store, err := openStore(); err == nil {
		if h, err := store.HoldingByCode(code, ""); err == nil && h.DisplayName != "" {
			name = h.DisplayName
		}
	}

	printMarkdown(renderer.History(&renderer.HistoryReport{Code: code, Name: name, Points: points}))
	return subcommands.ExitSuccess
}
