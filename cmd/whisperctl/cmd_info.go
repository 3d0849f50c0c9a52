package main

import (
	"fmt"

	"github.com/calvinalkan/whisper/internal/climsg"
	"github.com/calvinalkan/whisper/whisper"
)

func infoCommand() *Command {
	return &Command{
		Name:  "info",
		Usage: "info <path>",
		Short: "Print a whisper file's header",
		Exec: func(o *climsg.IO, _ Config, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("info: expected exactly one path argument")
			}

			header, err := whisper.Info(args[0])
			if err != nil {
				return err
			}

			o.Printf("aggregationMethod: %s\n", header.AggregationType)
			o.Printf("maxRetention: %d\n", header.MaxRetention)
			o.Printf("xFilesFactor: %g\n", header.XFilesFactor)

			for i, a := range header.Archives {
				o.Printf("archive %d: secondsPerPoint=%d points=%d retention=%d offset=%d\n",
					i, a.SecondsPerPoint, a.Points, a.Retention(), a.Offset)
			}

			return nil
		},
	}
}
