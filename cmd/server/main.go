package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mmynk/kleurenwiezen/internal/config"
	"github.com/mmynk/kleurenwiezen/internal/service"
	"github.com/mmynk/kleurenwiezen/internal/storage/sqlite"
	"github.com/mmynk/kleurenwiezen/pkg/logging"
)

func main() {
	app := &cli.App{
		Name:  "kwserver",
		Usage: "kleurenwiezen score tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"KW_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			exportCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("kwserver failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the config and sets up logging before any command runs.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the Connect API and web frontend",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return serve(c.Context, cfg)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create or upgrade the database schema",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			// Opening the store runs every pending migration
			store, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return err
			}
			slog.Info("Database migrated", "database", cfg.Database.Path)
			return store.Close()
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write a group's sessions as tsv or xlsx",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "code", Usage: "join code of the group", Required: true},
			&cli.StringFlag{Name: "format", Value: service.FormatTSV, Usage: "tsv or xlsx"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default: stdout)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			format := c.String("format")
			if format != service.FormatTSV && format != service.FormatXLSX {
				return fmt.Errorf("unknown export format %q", format)
			}

			store, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			group, err := store.GetGroupByJoinCode(c.Context, c.String("code"))
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if path := c.String("out"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", path, err)
				}
				defer f.Close()
				w = f
			}

			if err := service.ExportGroup(c.Context, store, group.ID, format, w); err != nil {
				return err
			}
			slog.Info("Export written", "group", group.Name, "format", format)
			return nil
		},
	}
}
