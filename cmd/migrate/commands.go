package main

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/config"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/dotenv"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/postgres"
	"github.com/tarekkanon/nightshift-logistics/migrations"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger"
	"github.com/tarekkanon/nightshift-logistics/pkg/logger/zap_adapter"
)

type rootOptions struct {
	envFile  string
	logLevel string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply nightshift-logistics database migrations",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "env file with POSTGRES_* variables")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level")

	cmd.AddCommand(newUpCommand(opts))
	cmd.AddCommand(newDownCommand(opts))
	cmd.AddCommand(newStatusCommand(opts))

	return cmd
}

func newUpCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, opts, func(db *sql.DB) error {
				return goose.UpContext(cmd.Context(), db, ".")
			})
		},
	}
}

func newDownCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, opts, func(db *sql.DB) error {
				return goose.DownContext(cmd.Context(), db, ".")
			})
		},
	}
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, opts, func(db *sql.DB) error {
				return goose.StatusContext(cmd.Context(), db, ".")
			})
		},
	}
}

func withDB(cmd *cobra.Command, opts *rootOptions, fn func(db *sql.DB) error) error {
	if err := dotenv.LoadEnv(opts.envFile); err != nil {
		return err
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(opts.logLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	db, err := postgres.NewStdDB(cmd.Context(), log, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	return fn(db)
}
