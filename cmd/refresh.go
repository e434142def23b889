package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "refresh all holdings from the quote sources" }
func (*refreshCmd) Usage() string {
	return `ff refresh

  Fetches fresh quotes for every holding, reconciles them into the valuations
  and persists the result. A holding whose sources all fail keeps its last
  known valuation.
`
}

func (*refreshCmd) SetFlags(_ *flag.FlagSet) {}

func (c *refreshCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := store.Refresh(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Refreshed %d holdings.\n", len(store.Holdings()))
	return subcommands.ExitSuccess
}
