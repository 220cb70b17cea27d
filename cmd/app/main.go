// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "dev"

func main() {
	commands := getSystemCommands(version)
	commands = append(commands, getKeyCommands()...)
	commands = append(commands, getTokenCommands()...)

	cmd := &cli.Command{
		Name:     "tokenguard",
		Usage:    "Tamper-evident token protection service",
		Version:  version,
		Commands: commands,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
