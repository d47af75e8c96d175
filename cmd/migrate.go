package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"ysocial/internal/app/db"
	"ysocial/internal/configs"
	"ysocial/internal/pkg/logx"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Subcommands: []*cli.Command{
			migrateSubcommand("up", "Apply all pending migrations"),
			migrateSubcommand("status", "Print the status of every migration"),
		},
	}
}

func migrateSubcommand(command, usage string) *cli.Command {
	return &cli.Command{
		Name:  command,
		Usage: usage,
		Action: func(c *cli.Context) error {
			dsn, err := configs.LoadDatabaseDSN()
			if err != nil {
				return err
			}

			logx.InitGlobalLogger(true)
			if err := db.Migrate(c.Context, dsn, command); err != nil {
				return fmt.Errorf("migrate %s: %w", command, err)
			}
			return nil
		},
	}
}
