// Command leadflowctl is the operator CLI: schema migrations, stage
// seeding and build information.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/leadflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/leadflow-backend/internal/config"
)

var dsnFlag string

var rootCmd = &cobra.Command{
	Use:           "leadflowctl",
	Short:         "Operate a leadflow deployment",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "PostgreSQL DSN (defaults to DATABASE_DSN from config)")
	rootCmd.AddCommand(migrateCmd(), seedStagesCmd(), versionCmd())
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// databaseConfig prefers --dsn, so migrations can run without the full
// server configuration.
func databaseConfig() (config.DatabaseConfig, error) {
	if dsnFlag != "" {
		return config.DatabaseConfig{DSN: dsnFlag, MaxConns: 2, MinConns: 0}, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return config.DatabaseConfig{}, err
	}
	return cfg.Database, nil
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	dbCfg, err := databaseConfig()
	if err != nil {
		return nil, err
	}
	return postgres.NewPool(ctx, dbCfg)
}
