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

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "show a market index snapshot" }
func (*marketCmd) Usage() string {
	return `ff market [<secid>...]

  Shows a snapshot of market indices. Without arguments the SSE composite and
  the Shenzhen component index are shown. Extra instruments can be requested
  by exchange-prefixed id, e.g. 1.000300 for the CSI 300.
`
}

func (*marketCmd) SetFlags(_ *flag.FlagSet) {}

func (c *marketCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes, err := fundfolio.MarketSnapshot(ctx, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching market snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Market(quotes))
	return subcommands.ExitSuccess
}
