// Package cli provides the command-line interface for timegrid.
package cli

import "github.com/jessevdk/go-flags"

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	SampleCommand  SampleCommand  `command:"sample" description:"map a single y-position onto the time grid"`
	ReplayCommand  ReplayCommand  `command:"replay" description:"map the drags of a recorded mouse session onto the time grid"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts

// NewParser returns the parser for opts. A command is required.
func NewParser(opts *CommandLineOpts, options flags.Options) *flags.Parser {
	parser := flags.NewParser(opts, options)
	parser.SubcommandsOptional = false
	return parser
}
