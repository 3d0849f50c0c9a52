package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/whisper/internal/climsg"
	"github.com/calvinalkan/whisper/whisper"
)

func createCommand() *Command {
	flags := flag.NewFlagSet("create", flag.ContinueOnError)
	retentions := flags.String("retentions", "", "Archive list, e.g. \"1s:1d,1m:7d,10m:1y\" (default from config)")
	xFilesFactor := flags.Float64("x-files-factor", 0, "Propagation threshold in [0,1] (default from config)")
	aggregation := flags.String("aggregation", "", "Aggregation method: average|sum|last|max|min (default from config)")
	sparse := flags.Bool("sparse", false, "Create a sparse file instead of zero-filling it")

	return &Command{
		Name:  "create",
		Usage: "create <path>",
		Short: "Create a new whisper file",
		Flags: flags,
		Exec: func(o *climsg.IO, cfg Config, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("create: expected exactly one path argument")
			}

			retentionSpec := *retentions
			if retentionSpec == "" {
				retentionSpec = cfg.Retentions
			}

			if retentionSpec == "" {
				return fmt.Errorf("create: no --retentions given and none configured")
			}

			archives, err := parseRetentionDefs(retentionSpec)
			if err != nil {
				return err
			}

			opts := whisper.DefaultCreateOptions()
			opts.Sparse = *sparse

			if cfg.XFilesFactor != nil {
				opts.XFilesFactor = *cfg.XFilesFactor
			}

			if flags.Changed("x-files-factor") {
				opts.XFilesFactor = *xFilesFactor
			}

			methodName := cfg.AggregationMethod
			if flags.Changed("aggregation") {
				methodName = *aggregation
			}

			method, err := parseAggregationMethod(methodName)
			if err != nil {
				return err
			}

			opts.AggregationMethod = method

			if err := whisper.Create(args[0], archives, opts); err != nil {
				return err
			}

			o.Println("created", args[0])

			return nil
		},
	}
}

func parseAggregationMethod(name string) (whisper.AggregationMethod, error) {
	switch name {
	case "", "average":
		return whisper.Average, nil
	case "sum":
		return whisper.Sum, nil
	case "last":
		return whisper.Last, nil
	case "max":
		return whisper.Max, nil
	case "min":
		return whisper.Min, nil
	default:
		return 0, fmt.Errorf("unknown aggregation method %q", name)
	}
}
