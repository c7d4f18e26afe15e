package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/iga/cmd/app/commands"
	"github.com/allisson/iga/internal/app"
	"github.com/allisson/iga/internal/config"
)

func getIdentityCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "resolve-role",
			Usage: "Print the entitlements a business role resolves to",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "role",
					Aliases:  []string{"r"},
					Required: true,
					Usage:    "Business role to resolve",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)

				resolver, err := container.Resolver()
				if err != nil {
					return err
				}

				return commands.RunResolveRole(
					resolver,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("role"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "reprovision-identity",
			Usage: "Push the stored entitlements of an identity to the chat workspace again",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Identity ID",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				identityUseCase, err := container.IdentityUseCase()
				if err != nil {
					return err
				}

				return commands.RunReprovisionIdentity(
					ctx,
					identityUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int64(cmd.Int("id")),
					cmd.String("format"),
				)
			},
		},
	}
}
