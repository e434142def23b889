package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/yfei/fundfolio"
	"github.com/yfei/fundfolio/renderer"
)

type holdingsCmd struct {
	group   string
	offline bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list holdings with their live valuations" }
func (*holdingsCmd) Usage() string {
	return `ff holdings [-g <group>] [-offline]

  Lists holdings with shares, cost basis, estimated value and today's move.
  Without -g every group is listed in turn.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "g", "", "Group to list. Lists all groups by default.")
	f.BoolVar(&c.offline, "offline", false, "Report on the stored valuations without refreshing.")
}

func (c *holdingsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	groups := store.Groups()
	if c.group != "" {
		g, err := store.Group(c.group)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		groups = []fundfolio.Group{g}
	}

	holdings := store.Holdings()
	var b strings.Builder
	for _, g := range groups {
		var in []fundfolio.Holding
		for _, h := range holdings {
			if h.GroupID == g.ID {
				in = append(in, h)
			}
		}
		if len(in) == 0 && c.group == "" {
			continue
		}
		b.WriteString(renderer.Holdings(&renderer.HoldingsReport{GroupName: g.Name, Holdings: in}))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
