// Command whisperctl is a thin CLI wrapper around package whisper:
// create, inspect, fetch from, write to, and resize whisper files.
package main

import (
	"os"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/whisper/internal/climsg"
)

func allCommands() []*Command {
	return []*Command{
		createCommand(),
		infoCommand(),
		fetchCommand(),
		updateCommand(),
		resizeCommand(),
		configInitCommand(),
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	io := climsg.New(stdout, stderr)

	globalFlags := flag.NewFlagSet("whisperctl", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlagsConfig := globalFlags.String("config", "", "Use specified config file")

	if err := globalFlags.Parse(args[1:]); err != nil {
		return 2
	}

	cwd, err := os.Getwd()
	if err != nil {
		io.Errorln(err)

		return 1
	}

	cfg, err := LoadConfig(cwd, *globalFlagsConfig)
	if err != nil {
		io.Errorln(err)

		return 1
	}

	commandAndArgs := globalFlags.Args()

	commands := allCommands()

	if len(commandAndArgs) == 0 {
		printUsage(io, commands)

		return 1
	}

	name := commandAndArgs[0]

	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd.Run(io, cfg, commandAndArgs[1:])
		}
	}

	io.Errorf("unknown command %q", name)
	printUsage(io, commands)

	return 2
}

func printUsage(io *climsg.IO, commands []*Command) {
	io.Println("Usage: whisperctl [--config file] <command> [args]")
	io.Println()
	io.Println("Commands:")

	for _, cmd := range commands {
		io.Println(cmd.HelpLine())
	}
}
