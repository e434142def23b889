package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type watchCmd struct {
	group string
	name  string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "track a fund without holding a position" }
func (*watchCmd) Usage() string {
	return `ff watch [-g <group>] [-n <name>] <code>

  Adds a watchlist-only holding: it shows live valuations but carries zero
  shares and is excluded from all totals.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to add the watch entry to. Defaults to the default group.")
	f.StringVar(&c.name, "n", "", "Display name. Defaults to the name reported by the quote source.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one fund code is required.")
		return subcommands.ExitUsageError
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

	h, err := store.AddWatch(ctx, f.Arg(0), c.name, g.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding watch entry: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Watching %s (%s) in group %q.\n", h.DisplayName, h.Code, g.Name)
	return subcommands.ExitSuccess
}
