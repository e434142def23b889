// Package cmd implements the CLI application to track fund positions.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/yfei/fundfolio"
)

// Commands lists every subcommand. A main package ranges over it to register
// them on a commander.
var Commands = []subcommands.Command{
	&searchCmd{},
	&addCmd{},
	&watchCmd{},
	&rmCmd{},
	&groupCmd{},

	&buyCmd{},
	&sellCmd{},
	&txCmd{},

	&refreshCmd{},
	&summaryCmd{},
	&holdingsCmd{},
	&allocationCmd{},
	&historyCmd{},
	&marketCmd{},
	&statusCmd{},

	&exportCmd{},
	&importCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data", defaultDataDir(), "Path to the data folder holding the store files")

// defaultDataDir resolves the store location: $FF_DATA when set, otherwise
// ~/.fundfolio.
func defaultDataDir() string {
	if dir := os.Getenv("FF_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fundfolio"
	}
	return filepath.Join(home, ".fundfolio")
}

// openStore is the central function to open the application store, wired to
// the live estimate source.
func openStore() (*fundfolio.Store, error) {
	return fundfolio.Open(fundfolio.DirBackend{Dir: *dataDir}, fundfolio.NewEstimator())
}

// resolveGroup maps the -g flag value to a group, defaulting to the default
// group when the flag is empty.
func resolveGroup(s *fundfolio.Store, idOrName string) (fundfolio.Group, error) {
	if idOrName == "" {
		return s.DefaultGroup(), nil
	}
	return s.Group(idOrName)
}

// findHolding resolves a command argument to a holding, first as a holding id
// and then as a fund code, optionally scoped to a group.
func findHolding(s *fundfolio.Store, codeOrID, group string) (fundfolio.Holding, error) {
	if h, err := s.Holding(codeOrID); err == nil {
		return h, nil
	}
	groupID := ""
	if group != "" {
		g, err := s.Group(group)
		if err != nil {
			return fundfolio.Holding{}, err
		}
		groupID = g.ID
	}
	return s.HoldingByCode(codeOrID, groupID)
}
