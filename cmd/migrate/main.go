package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	appMigrations "github.com/yigit/university/internal/app/migrations"
	"github.com/yigit/university/internal/config"
	"github.com/yigit/university/internal/pkg/logger"
)

const usage = `usage: migrate <command>

commands:
  up             apply all pending migrations
  down [n]       roll back n migrations (default 1)
  version        print the current schema version
  force <v>      set the schema version without running migrations`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}
	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format == "text",
	})
	lgr := log.Logger

	migrator, err := appMigrations.NewMigrator(cfg.GetMigrationURL(), lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialise migrator")
		os.Exit(1)
	}

	runErr := run(migrator, os.Args[1], os.Args[2:])
	if err := migrator.Close(); err != nil {
		lgr.Warn().Err(err).Msg("Failed to close migrator")
	}
	if runErr != nil {
		lgr.Error().Err(runErr).Str("command", os.Args[1]).Msg("Migration command failed")
		os.Exit(1)
	}
}

func run(migrator *appMigrations.Migrator, command string, args []string) error {
	switch command {
	case "up":
		return migrator.Up()
	case "down":
		steps := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[0], err)
			}
			steps = n
		}
		return migrator.Down(steps)
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Schema version")
		return nil
	case "force":
		if len(args) < 1 {
			return fmt.Errorf("force requires a version")
		}
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}
		return migrator.Force(v)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}
