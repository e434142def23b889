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

type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the fund registry by code, name or pinyin" }
func (*searchCmd) Usage() string {
	return `ff search [-n <limit>] <query>

  Searches the full fund list for candidates matching the query. The query
  matches the fund code, the name, or the pinyin abbreviation.

Usage Examples:
# Find funds by pinyin abbreviation.
$ ff search YFDA

# Find a fund by code.
$ ff search 110011
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 10, "Maximum number of results to show.")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search query is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	results, err := fundfolio.Search(ctx, query, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching funds: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(results) == 0 {
		fmt.Printf("No fund matches %q.\n", query)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SearchResults(results))
	return subcommands.ExitSuccess
}
