package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/calvinalkan/whisper/internal/climsg"
)

func configInitCommand() *Command {
	return &Command{
		Name:  "config-init",
		Usage: "config-init <path>",
		Short: "Write a default .whisperctl.json at path",
		Exec: func(o *climsg.IO, _ Config, args []string) error {
			path := ConfigFileName
			if len(args) == 1 {
				path = args[0]
			} else if len(args) != 0 {
				return fmt.Errorf("config-init: expected at most one path argument")
			}

			body, err := json.MarshalIndent(DefaultConfig(), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding default config: %w", err)
			}

			// atomic.WriteFile guards against a reader observing a half
			// written config file if whisperctl is interrupted mid-write.
			if err := atomic.WriteFile(path, strings.NewReader(string(body)+"\n")); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			o.Println("wrote", path)

			return nil
		},
	}
}
