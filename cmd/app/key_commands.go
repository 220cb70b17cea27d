package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tokenguard/cmd/app/commands"
	"github.com/allisson/tokenguard/internal/app"
	"github.com/allisson/tokenguard/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-keys",
			Usage: "Generate VALIDATION_KEY and DECRYPTION_KEY for the chosen algorithms",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "validation-algorithm",
					Aliases: []string{"v"},
					Value:   "HMACSHA1",
					Usage:   "Validation algorithm (MD5, HMACSHA1, TripleDES, AES)",
				},
				&cli.StringFlag{
					Name:    "decryption-algorithm",
					Aliases: []string{"d"},
					Value:   "Auto",
					Usage:   "Decryption algorithm (Auto, DES, 3DES, AES)",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "Seal the keys with this KMS key (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunGenerateKeys(
					ctx,
					container.KMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("validation-algorithm"),
					cmd.String("decryption-algorithm"),
					cmd.String("kms-key-uri"),
					cmd.String("format"),
				)
			},
		},
	}
}
