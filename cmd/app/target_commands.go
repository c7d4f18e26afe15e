package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/iga/cmd/app/commands"
	"github.com/allisson/iga/internal/app"
	"github.com/allisson/iga/internal/config"
)

func getTargetCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-target-application",
			Usage: "Register a downstream target application",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Unique target application name",
				},
				&cli.StringFlag{
					Name:  "protocol",
					Usage: "Integration protocol (e.g., REST, SCIM)",
				},
				&cli.StringFlag{
					Name:  "auth-type",
					Usage: "Authentication scheme (e.g., OAuth, API Key)",
				},
				&cli.StringFlag{
					Name:  "base-url",
					Usage: "Base URL of the target API",
				},
				&cli.StringFlag{
					Name:  "config",
					Usage: "JSON object with target specific settings",
				},
				&cli.BoolFlag{
					Name:    "active",
					Aliases: []string{"a"},
					Value:   true,
					Usage:   "Whether the target application is active",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				targetUseCase, err := container.TargetApplicationUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateTargetApplication(
					ctx,
					targetUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
					cmd.String("protocol"),
					cmd.String("auth-type"),
					cmd.String("base-url"),
					cmd.String("config"),
					cmd.Bool("active"),
					cmd.String("format"),
				)
			},
		},
	}
}
