package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type groupCmd struct {
	add string
	rm  string
}

func (*groupCmd) Name() string     { return "group" }
func (*groupCmd) Synopsis() string { return "list, create or delete holding groups" }
func (*groupCmd) Usage() string {
	return `ff group [-add <name> | -rm <name>]

  Without flags, lists the groups. -add creates a new group; -rm deletes a
  group and every holding in it. The default group cannot be deleted.

Usage Examples:
# Create a group.
$ ff group -add retirement
`
}

func (c *groupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create a group with this name.")
	f.StringVar(&c.rm, "rm", "", "Delete the group with this name or id, cascading its holdings.")
}

func (c *groupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.add != "" && c.rm != "" {
		fmt.Fprintln(os.Stderr, "Error: -add and -rm cannot be used together.")
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		g, err := store.AddGroup(c.add)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating group: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created group %q (%s).\n", g.Name, g.ID)

	case c.rm != "":
		if err := store.DeleteGroup(c.rm); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting group: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted group %q and its holdings.\n", c.rm)

	default:
		holdings := store.Holdings()
		counts := make(map[string]int, len(holdings))
		for _, h := range holdings {
			counts[h.GroupID]++
		}
		for _, g := range store.Groups() {
			marker := ""
			if g.IsDefault {
				marker = " (default)"
			}
			fmt.Printf("%s%s: %d holdings\n", g.Name, marker, counts[g.ID])
		}
	}
	return subcommands.ExitSuccess
}
