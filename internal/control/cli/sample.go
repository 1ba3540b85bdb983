package cli

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/timegrid/internal/timegrid"
	"github.com/ja-he/timegrid/internal/ui"
)

// SampleCommand contains flags for the `sample` command line command, for
// `go-flags` to parse command line args into.
type SampleCommand struct {
	ViewOptions
	LoggingOptions

	Y int `short:"y" long:"y" description:"the y-position to sample" value-name:"<y>" required:"true"`

	out io.Writer
}

// Execute executes the sample command.
// (This gets called by `go-flags` when `sample` is provided on the command
// line)
func (command *SampleCommand) Execute(args []string) error {
	closeLog, err := command.setUp()
	if err != nil {
		return err
	}
	defer closeLog()

	configData, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := command.buildView(configData, "")
	if err != nil {
		return err
	}

	session, err := timegrid.NewEventDataFactory(v.context, nil)
	if err != nil {
		return err
	}
	data, err := v.eventData(session, ui.MouseCursorPos{X: 0, Y: command.Y})
	if err != nil {
		return fmt.Errorf("could not sample y=%d (%w)", command.Y, err)
	}

	out := command.out
	if out == nil {
		out = os.Stdout
	}
	encoder := yaml.NewEncoder(out)
	defer encoder.Close()
	return encoder.Encode(toSampleOutput(data))
}
