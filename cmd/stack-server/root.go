// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stack Programming Community

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/stack-community/stack-server/internal/config"
	"github.com/stack-community/stack-server/internal/interp"
	"github.com/stack-community/stack-server/internal/logging"
)

// Global flags available to the command.
var configFile string

// NewRootCmd creates the root command for the interpreter CLI.
func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "stack-server [FILE]",
		Short: "Server edition of the Stack programming language",
		Long: `Stack is a concatenative, stack-based scripting language with an
embedded HTTP server, basic authentication, SQL access, and templating.

With FILE, the program is evaluated and the process exits; without it an
interactive session reads blank-line-terminated blocks.`,
		Args:    cobra.MaximumNArgs(1),
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			logging.SetDefault("stack-server", version, cfg.Log.Format, logging.ParseLevel(cfg.Log.Level))

			if len(args) == 1 {
				mode := interp.ModeScript
				if debug {
					mode = interp.ModeDebug
				}
				return runScript(args[0], mode)
			}
			runREPL(cfg.REPL.Prompt)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
	cmd.Flags().String("log-format", "text", "log format (json or text)")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// runScript evaluates one program file and returns.
func runScript(path string, mode interp.Mode) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return oops.With("path", path).Wrapf(err, "reading program file")
	}
	interp.New(mode).Evaluate(string(code))
	return nil
}

// runREPL evaluates blank-line-terminated blocks until input ends.
// Interactive sessions always run in debug mode.
func runREPL(prompt string) {
	fmt.Println("Stack Programming Language: Server Edition")
	executor := interp.New(interp.ModeDebug)

	for {
		var code strings.Builder
		for {
			line, err := executor.ReadLine(prompt)
			if errors.Is(err, io.EOF) && line == "" {
				return
			}
			code.WriteString(line)
			code.WriteString("\n")
			if line == "" {
				break
			}
		}
		executor.Evaluate(code.String())
	}
}
