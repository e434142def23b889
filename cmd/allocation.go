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

type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "show market value split by tag" }
func (*allocationCmd) Usage() string {
	return `ff allocation

  Shows how the portfolio's market value splits across the holdings' primary
  tags. Untagged holdings fall under "other".
`
}

func (*allocationCmd) SetFlags(_ *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Allocations(fundfolio.AllocationByTag(store.Holdings())))
	return subcommands.ExitSuccess
}
