package main

import (
	"fmt"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/whisper/internal/climsg"
	"github.com/calvinalkan/whisper/whisper"
)

func fetchCommand() *Command {
	flags := flag.NewFlagSet("fetch", flag.ContinueOnError)
	until := flags.Uint64("until", 0, "End of the requested window, unix seconds (default now)")

	return &Command{
		Name:  "fetch",
		Usage: "fetch <path> <from>",
		Short: "Fetch a time window from a whisper file",
		Flags: flags,
		Exec: func(o *climsg.IO, _ Config, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("fetch: expected <path> and <from>")
			}

			from, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("fetch: parsing <from>: %w", err)
			}

			var opts whisper.FetchOptions
			if flags.Changed("until") {
				opts.Until = until
			}

			result, err := whisper.Fetch(args[0], from, opts)
			if err != nil {
				return err
			}

			if result == nil {
				o.Println("(empty: requested window outside retention)")

				return nil
			}

			o.Printf("step=%d from=%d until=%d\n", result.TimeInfo.Step, result.TimeInfo.FromInterval, result.TimeInfo.UntilInterval)

			for _, p := range result.Values {
				o.Printf("%d %g\n", p.Timestamp, p.Value)
			}

			return nil
		},
	}
}
