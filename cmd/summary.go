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

type summaryCmd struct {
	offline bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio performance summary" }
func (*summaryCmd) Usage() string {
	return `ff summary [-offline]

  Displays the portfolio totals and a per-group roll-up: market value, today's
  profit and the cumulative return. Quotes are refreshed first unless -offline
  is given.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Report on the stored valuations without refreshing.")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.offline {
		if err := store.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: refresh failed, reporting stored valuations: %v\n", err)
		}
	}

	holdings := store.Holdings()
	report := &renderer.SummaryReport{
		Date:   fundfolio.Today(),
		Total:  fundfolio.PortfolioTotals(holdings),
		Groups: fundfolio.GroupStats(store.Groups(), holdings),
	}
	printMarkdown(renderer.Summary(report))
	return subcommands.ExitSuccess
}
