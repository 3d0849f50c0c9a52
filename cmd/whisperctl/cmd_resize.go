package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/whisper/internal/climsg"
	"github.com/calvinalkan/whisper/whisper"
)

func resizeCommand() *Command {
	flags := flag.NewFlagSet("resize", flag.ContinueOnError)
	retentions := flags.String("retentions", "", "New archive list, e.g. \"1s:1d,1m:7d,10m:1y\" (required)")
	xFilesFactor := flags.Float64("x-files-factor", 0, "Propagation threshold in [0,1] (default: keep existing)")
	aggregation := flags.String("aggregation", "", "Aggregation method: average|sum|last|max|min (default: keep existing)")

	return &Command{
		Name:  "resize",
		Usage: "resize <path>",
		Short: "Re-layout a whisper file onto a new archive list, migrating data",
		Flags: flags,
		Exec: func(o *climsg.IO, _ Config, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("resize: expected exactly one path argument")
			}

			if *retentions == "" {
				return fmt.Errorf("resize: --retentions is required")
			}

			archives, err := parseRetentionDefs(*retentions)
			if err != nil {
				return err
			}

			var opts whisper.ResizeOptions

			if flags.Changed("x-files-factor") {
				opts.XFilesFactor = xFilesFactor
			}

			if flags.Changed("aggregation") {
				method, err := parseAggregationMethod(*aggregation)
				if err != nil {
					return err
				}

				opts.AggregationMethod = &method
			}

			if err := whisper.Resize(args[0], archives, opts); err != nil {
				return err
			}

			o.Println("resized", args[0])

			return nil
		},
	}
}
