package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggingOptions are the logging flags shared by the commands.
type LoggingOptions struct {
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs go to stderr)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
	Verbose       bool   `long:"verbose" description:"log debug output"`
}

// setUp sets up the global logger according to the options.
// The returned function closes the log file, if one was opened.
func (o *LoggingOptions) setUp() (func(), error) {
	level := zerolog.InfoLevel
	if o.Verbose {
		level = zerolog.DebugLevel
	}

	if o.LogOutputFile == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
		return func() {}, nil
	}

	file, err := os.OpenFile(o.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file '%s' (%w)", o.LogOutputFile, err)
	}
	var fileLogger io.Writer
	if o.LogPretty {
		fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
	} else {
		fileLogger = file
	}
	log.Logger = zerolog.New(fileLogger).With().Timestamp().Caller().Logger().Level(level)

	return func() { file.Close() }, nil
}
