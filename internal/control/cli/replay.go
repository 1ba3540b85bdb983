package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/timegrid/internal/handler"
	"github.com/ja-he/timegrid/internal/timegrid"
	"github.com/ja-he/timegrid/internal/tui"
)

// ReplayCommand contains flags for the `replay` command line command, for
// `go-flags` to parse command line args into.
type ReplayCommand struct {
	ViewOptions
	LoggingOptions

	Args struct {
		Recording string `positional-arg-name:"<recording.yaml>" description:"the recorded mouse samples"`
	} `positional-args:"yes" required:"yes"`

	out io.Writer
}

// dragOutput is the printed form of a replayed drag.
type dragOutput struct {
	Samples   []sampleOutput `yaml:"samples"`
	Selection string         `yaml:"selection"`
	Delta     string         `yaml:"delta"`
}

// Execute executes the replay command.
// (This gets called by `go-flags` when `replay` is provided on the command
// line)
func (command *ReplayCommand) Execute(args []string) error {
	closeLog, err := command.setUp()
	if err != nil {
		return err
	}
	defer closeLog()

	yamlData, err := os.ReadFile(command.Args.Recording)
	if err != nil {
		return fmt.Errorf("can't read recording (%w)", err)
	}
	recording, err := tui.ParseRecording(yamlData)
	if err != nil {
		return fmt.Errorf("can't parse recording '%s' (%w)", command.Args.Recording, err)
	}
	events, err := recording.Events()
	if err != nil {
		return fmt.Errorf("invalid recording '%s' (%w)", command.Args.Recording, err)
	}

	configData, err := loadConfig()
	if err != nil {
		return err
	}
	v, err := command.buildView(configData, recording.Date)
	if err != nil {
		return err
	}

	drags := tui.Drags(events)
	log.Info().Int("samples", len(events)).Int("drags", len(drags)).Msg("replaying recording")

	var creation handler.TimeCreation
	var move handler.TimeMove
	output := make([]dragOutput, 0, len(drags))
	for i, drag := range drags {
		// the view does not change during a drag
		session, err := creation.NewEventDataFactory(v.context, nil)
		if err != nil {
			return err
		}

		samples := make([]timegrid.EventData, 0, len(drag))
		for _, ev := range drag {
			data, err := v.eventData(session, ev)
			if err != nil {
				return fmt.Errorf("drag %d: %w", i, err)
			}
			samples = append(samples, data)
		}

		first, last := samples[0], samples[len(samples)-1]
		selection, err := creation.Selection(first, last)
		if err != nil {
			return fmt.Errorf("drag %d: %w", i, err)
		}

		d := dragOutput{
			Selection: selection.String(),
			Delta:     move.Delta(first, last).String(),
		}
		for _, s := range samples {
			d.Samples = append(d.Samples, toSampleOutput(s))
		}
		output = append(output, d)
	}

	out := command.out
	if out == nil {
		out = os.Stdout
	}
	encoder := yaml.NewEncoder(out)
	defer encoder.Close()
	return encoder.Encode(output)
}
