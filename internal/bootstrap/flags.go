// Package bootstrap wires the classsweep command line.
package bootstrap

import (
	urfavecli "github.com/urfave/cli/v3"
)

// globalFlags returns all flags of the classsweep command.
// Note: --version is provided automatically by urfave/cli via Command.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "root",
			Aliases: []string{"r"},
			Usage:   "Directory to sweep (default: the directory holding the executable)",
		},
		&urfavecli.StringSliceFlag{
			Name:    "suffix",
			Aliases: []string{"s"},
			Usage:   "File name suffix to delete (repeatable, default: .class)",
		},
		&urfavecli.StringSliceFlag{
			Name:    "exclude",
			Aliases: []string{"x"},
			Usage:   "Directory name never descended into (repeatable)",
		},
		&urfavecli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "Print what would be deleted without deleting anything",
		},
		&urfavecli.StringFlag{
			Name:  "summary",
			Usage: "Print a summary line on stderr: auto, always or never",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringSliceFlag{
			Name:    "config",
			Aliases: []string{"C"},
			Usage:   "Override config values (repeatable): --config=cs.key=value",
		},
	}
}
