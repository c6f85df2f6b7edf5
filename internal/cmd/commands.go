package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/overseer-monitoring/overseer-go/internal/cmd/base"
	"github.com/overseer-monitoring/overseer-go/internal/cmd/commands/export"
	"github.com/overseer-monitoring/overseer-go/internal/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.New(log, ui)

	Commands = map[string]cli.CommandFactory{
		"export": func() (cli.Command, error) {
			return export.NewCommand(b), nil
		},
		"version": func() (cli.Command, error) {
			return &versionCommand{ui: ui}, nil
		},
	}
}

type versionCommand struct {
	ui cli.Ui
}

func (c *versionCommand) Synopsis() string {
	return "Print the overseer version"
}

func (c *versionCommand) Help() string {
	return "Usage: overseer version"
}

func (c *versionCommand) Run(args []string) int {
	c.ui.Output(version.Version)
	return 0
}
