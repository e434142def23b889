package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/yfei/fundfolio"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the current market session phase" }
func (*statusCmd) Usage() string {
	return `ff status

  Shows the A-share market session phase right now: PRE_MARKET, MARKET,
  LUNCH_BREAK, POST_MARKET or CLOSED.
`
}

func (*statusCmd) SetFlags(_ *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	phase := fundfolio.PhaseAt(time.Now())
	fmt.Printf("Market phase: %s\n", phase)
	if phase.Live() {
		fmt.Println("Live estimates are in effect.")
	} else {
		fmt.Println("Estimates are pinned to the last settled NAV.")
	}
	return subcommands.ExitSuccess
}
