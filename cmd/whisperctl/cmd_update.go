package main

import (
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/whisper/internal/climsg"
	"github.com/calvinalkan/whisper/whisper"
)

func updateCommand() *Command {
	flags := flag.NewFlagSet("update", flag.ContinueOnError)
	timestamp := flags.Uint64("timestamp", 0, "Point timestamp, unix seconds (default now)")

	return &Command{
		Name:  "update",
		Usage: "update <path> <value>",
		Short: "Write a single point into a whisper file",
		Flags: flags,
		Exec: func(o *climsg.IO, _ Config, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("update: expected <path> and <value>")
			}

			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("update: parsing <value>: %w", err)
			}

			var opts whisper.UpdateOptions
			if flags.Changed("timestamp") {
				opts.Timestamp = timestamp
			}

			if err := whisper.Update(args[0], value, opts); err != nil {
				return err
			}

			o.Println("updated", args[0])

			return nil
		},
	}
}
