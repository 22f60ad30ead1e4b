package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/credseal/cmd/app/commands"
	"github.com/allisson/credseal/internal/app"
	"github.com/allisson/credseal/internal/config"
)

func keyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "key",
		Aliases: []string{"k"},
		Usage:   "Passphrase (defaults to CREDENTIAL_ENCRYPTION_KEY, then the development key)",
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Credentials file (defaults to CREDENTIALS_FILE)",
	}
}

// singleArg returns the only positional argument or an error naming it.
func singleArg(cmd *cli.Command, name string) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("expected exactly one %s argument, got %d", name, cmd.Args().Len())
	}
	return cmd.Args().First(), nil
}

func getCredentialCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "encrypt",
			Usage:     "Encrypt a plaintext and print the envelope with a round-trip check",
			ArgsUsage: "<plaintext>",
			Flags:     []cli.Flag{keyFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				plaintext, err := singleArg(cmd, "plaintext")
				if err != nil {
					return err
				}

				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					useCase,
					container.KeyResolver(),
					container.Logger(),
					commands.DefaultIO().Writer,
					plaintext,
					cmd.String("key"),
				)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt an envelope and print the plaintext",
			ArgsUsage: "<envelope>",
			Flags:     []cli.Flag{keyFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				envelope, err := singleArg(cmd, "envelope")
				if err != nil {
					return err
				}

				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecrypt(
					ctx,
					useCase,
					container.KeyResolver(),
					container.Logger(),
					commands.DefaultIO().Writer,
					envelope,
					cmd.String("key"),
				)
			},
		},
		{
			Name:      "store-credential",
			Usage:     "Encrypt a plaintext and write it to the credentials file",
			ArgsUsage: "<plaintext>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Credential ID, e.g. ADMIN_PASSWORD",
				},
				fileFlag(),
				keyFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				plaintext, err := singleArg(cmd, "plaintext")
				if err != nil {
					return err
				}

				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				path := cmd.String("file")
				if path == "" {
					path = cfg.CredentialsFile
				}

				recordUseCase, err := container.RecordUseCase(path)
				if err != nil {
					return err
				}

				return commands.RunStoreCredential(
					ctx,
					recordUseCase,
					container.KeyResolver(),
					container.Logger(),
					commands.DefaultIO().Writer,
					path,
					cmd.String("name"),
					plaintext,
					cmd.String("key"),
				)
			},
		},
		{
			Name:  "verify-credentials",
			Usage: "Check that every credential in a file opens under the current key",
			Flags: []cli.Flag{
				fileFlag(),
				keyFlag(),
				&cli.StringFlag{
					Name:  "format",
					Value: "text",
					Usage: "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				path := cmd.String("file")
				if path == "" {
					path = cfg.CredentialsFile
				}

				recordUseCase, err := container.RecordUseCase(path)
				if err != nil {
					return err
				}

				return commands.RunVerifyCredentials(
					ctx,
					recordUseCase,
					container.KeyResolver(),
					container.Logger(),
					commands.DefaultIO().Writer,
					path,
					cmd.String("key"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-key",
			Usage: "Print a random passphrase for CREDENTIAL_ENCRYPTION_KEY",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   32,
					Usage:   "Number of random bytes before base64 encoding",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateKey(commands.DefaultIO().Writer, int(cmd.Int("length")))
			},
		},
	}
}
