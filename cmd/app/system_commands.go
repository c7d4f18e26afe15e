package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/iga/cmd/app/commands"
	"github.com/allisson/iga/internal/app"
	"github.com/allisson/iga/internal/config"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunServer(ctx, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "encrypt-provisioning-token",
			Usage: "Encrypt the chat workspace token for PROVISIONING_CHAT_TOKEN",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "keeper-uri",
					Aliases: []string{"k"},
					Usage:   "gocloud.dev secrets URL (defaults to PROVISIONING_CHAT_TOKEN_KEEPER_URI)",
				},
				&cli.StringFlag{
					Name:    "token",
					Aliases: []string{"t"},
					Usage:   "Plaintext token (omit to read it from stdin)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)

				keeperURI := cmd.String("keeper-uri")
				if keeperURI == "" {
					keeperURI = cfg.ProvisioningChatTokenKeeperURI
				}

				return commands.RunEncryptProvisioningToken(
					ctx,
					container.Logger(),
					keeperURI,
					cmd.String("token"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
