package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tokenguard/cmd/app/commands"
	"github.com/allisson/tokenguard/internal/app"
	"github.com/allisson/tokenguard/internal/config"
)

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encode",
			Usage: "Protect a string value with the configured keys",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Required: true,
					Usage:    "Value to protect",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ProtectionUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncode(ctx, useCase, commands.DefaultIO().Writer, cmd.String("value"), cmd.String("format"))
			},
		},
		{
			Name:  "decode",
			Usage: "Verify a string token and print its value",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Required: true,
					Usage:    "Token produced by encode",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.ProtectionUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecode(ctx, useCase, commands.DefaultIO().Writer, cmd.String("token"), cmd.String("format"))
			},
		},
	}
}
