package cli

import "fmt"

// version is set at build time (-ldflags "-X ...cli.version=...").
var version = "development"

// VersionCommand is the command `version`, which prints the program version.
type VersionCommand struct{}

// Execute prints the version.
func (command *VersionCommand) Execute(args []string) error {
	fmt.Println("timegrid version", version)
	return nil
}
