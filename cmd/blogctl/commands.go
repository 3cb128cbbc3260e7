package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/config"
	"blog-api/internal/database"
	"blog-api/internal/router"
	"blog-api/internal/seed"
)

type options struct {
	configPath string
	dsn        string
	driver     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "blogctl [command] [flags]",
		Short:         "Operator tasks for the blog service database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "configs/config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "database DSN, overrides the config file")
	rootCmd.PersistentFlags().StringVar(&opts.driver, "driver", database.DriverPostgres, "database driver (postgres|sqlite)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newMigrateCmd(opts), newSeedCmd(opts))
	return rootCmd
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every blog table and the default categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(opts, func(db *gorm.DB, logger *zap.Logger) error {
				if err := migrate(cmd.Context(), db, logger); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migration completed")
				return nil
			})
		},
	}
}

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample users, posts, comments and likes",
		Long:  "Insert sample data. Users are matched by email and posts by title, so it is safe to run repeatedly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(opts, func(db *gorm.DB, logger *zap.Logger) error {
				if err := migrate(cmd.Context(), db, logger); err != nil {
					return err
				}
				result, err := seed.NewSeeder(db, logger).Run(cmd.Context())
				if err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users, %d posts, %d comments, %d likes\n",
					result.Users, result.Posts, result.Comments, result.Likes)
				return nil
			})
		},
	}
}

func migrate(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	if err := database.AutoMigrate(db, logger); err != nil {
		return err
	}
	services := router.NewServices(router.Config{DB: db, Logger: logger})
	return services.Category.EnsureDefaults(ctx)
}

func withDB(opts *options, fn func(db *gorm.DB, logger *zap.Logger) error) error {
	logger := zap.NewNop()
	if opts.verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer logger.Sync()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	dsn := opts.dsn
	if dsn == "" {
		dsn = cfg.Database.GetDSN()
	}

	db, err := database.New(database.Config{
		Driver:          opts.driver,
		DSN:             dsn,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer database.Close(db)

	return fn(db, logger)
}
