package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/yfei/fundfolio"
	"github.com/yfei/fundfolio/agent"
	"github.com/yfei/fundfolio/renderer"
	"google.golang.org/genai"
)

type assistCmd struct {
	offline bool
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI analyst" }
func (*assistCmd) Usage() string {
	return `ff assist [-offline] [<question>]

  Starts an interactive chat with the AI fund analyst. The analyst is seeded
  with the current portfolio report, so it answers about your actual
  positions. Requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Seed the analyst with stored valuations without refreshing.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.offline {
		if err := store.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: refresh failed, the analyst sees stored valuations: %v\n", err)
		}
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(portfolioReport(store))
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// portfolioReport builds the markdown context document the analyst is seeded
// with: the summary plus every group's holdings.
func portfolioReport(store *fundfolio.Store) string {
	holdings := store.Holdings()
	var b strings.Builder
	b.WriteString(renderer.Summary(&renderer.SummaryReport{
		Date:   fundfolio.Today(),
		Total:  fundfolio.PortfolioTotals(holdings),
		Groups: fundfolio.GroupStats(store.Groups(), holdings),
	}))
	for _, g := range store.Groups() {
		var in []fundfolio.Holding
		for _, h := range holdings {
			if h.GroupID == g.ID {
				in = append(in, h)
			}
		}
		if len(in) == 0 {
			continue
		}
		b.WriteString(renderer.Holdings(&renderer.HoldingsReport{GroupName: g.Name, Holdings: in}))
	}
	return b.String()
}
