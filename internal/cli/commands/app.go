// Package commands provides the command-line interface for tagit.
package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/mpyw/tagit/internal/cli/commands/apply"
	cliinternal "github.com/mpyw/tagit/internal/cli/commands/internal"
	"github.com/mpyw/tagit/internal/cli/commands/plan"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "tagit",
		Usage:   "Apply uniform tags to AWS resources across tagging APIs",
		Version: "0.1.0",
		Commands: []*cli.Command{
			apply.Command(),
			plan.Command(),
		},
		CommandNotFound: cliinternal.CommandNotFound,
	}
}

// App is the main CLI application.
var App = MakeApp()
