package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	group string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a holding" }
func (*rmCmd) Usage() string {
	return `ff rm [-g <group>] <code-or-id>

  Removes a holding, identified by its id or by its fund code. When the same
  fund is held in several groups, use -g to pick the group.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to search the fund code in.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := store.DeleteHolding(h.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing holding: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s (%s).\n", h.DisplayName, h.Code)
	return subcommands.ExitSuccess
}
