// Package base carries the dependencies shared by every CLI command.
package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by every CLI command to provide logging and UI output.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// New returns a Command with the given logger and UI.
func New(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{Log: log, UI: ui}
}
