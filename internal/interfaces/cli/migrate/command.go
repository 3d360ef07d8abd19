package migrate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"covena/internal/infrastructure/config"
	"covena/internal/infrastructure/database"
	"covena/internal/infrastructure/migration"
	"covena/internal/shared/biztime"
	"covena/internal/shared/logger"
)

const scriptsPath = "./internal/infrastructure/migration/scripts"

// NewCommand builds the migrate command tree. Schema changes in test and
// production run through versioned SQL scripts; development uses GORM
// auto-migration and never needs this command.
func NewCommand() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "production", "environment (development, test, production)")

	cmd.AddCommand(newUpCommand(&env))
	cmd.AddCommand(newDownCommand(&env))
	cmd.AddCommand(newStatusCommand(&env))
	cmd.AddCommand(newCreateCommand())

	return cmd
}

func newUpCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(*env); err != nil {
				return err
			}
			defer database.Close()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath)
			if err := strategy.Migrate(database.Get()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			logger.Info("migrations applied")
			return nil
		},
	}
}

func newDownCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default 1 step)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil || parsed < 1 {
					return fmt.Errorf("invalid step count %q", args[0])
				}
				steps = parsed
			}

			if err := initEnv(*env); err != nil {
				return err
			}
			defer database.Close()

			strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
			if !ok {
				return fmt.Errorf("rollback requires the golang-migrate strategy")
			}
			if err := strategy.MigrateDown(database.Get(), steps); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}

			logger.Info("migrations rolled back", "steps", steps)
			return nil
		},
	}
}

func newStatusCommand(env *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initEnv(*env); err != nil {
				return err
			}
			defer database.Close()

			strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
			if !ok {
				return fmt.Errorf("status requires the golang-migrate strategy")
			}

			version, dirty, err := strategy.GetVersion(database.Get())
			if err != nil {
				return fmt.Errorf("failed to read migration version: %w", err)
			}

			fmt.Printf("version: %d\n", version)
			fmt.Printf("dirty:   %t\n", dirty)
			return nil
		},
	}
}

func newCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new pair of timestamped migration scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := migration.NewGenerator(scriptsPath)
			if err := generator.CreateMigration(args[0]); err != nil {
				return fmt.Errorf("failed to create migration: %w", err)
			}
			return nil
		},
	}
}

// initEnv loads configuration and brings up logging, the business timezone
// and the database connection for a one-shot command.
func initEnv(env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	if err := biztime.Init(""); err != nil {
		return fmt.Errorf("failed to init timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}
