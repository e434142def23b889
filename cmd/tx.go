package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yfei/fundfolio/renderer"
)

type txCmd struct {
	group string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list a holding's transactions" }
func (*txCmd) Usage() string {
	return `ff tx [-g <group>] <code-or-id>

  Lists the ledger entries of one holding, in the order they were recorded.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to search the fund code in.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one holding id or fund code is required.")
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

	printMarkdown(renderer.Transactions(h))
	return subcommands.ExitSuccess
}
