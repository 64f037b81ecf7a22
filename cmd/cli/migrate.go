package cli

import (
	"context"
	"fmt"
	"log/slog"

	"car-rental-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/cobra"
)

const defaultMigrationsDir = "migrations"

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations with the atlas CLI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return applyMigrations(cmd.Context(), cfg.DB, dir)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultMigrationsDir, "directory holding the migration files and atlas.sum")
	return cmd
}

// applyMigrations needs the atlas binary on PATH.
func applyMigrations(ctx context.Context, dbCfg config.DBConfig, dir string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: "file://" + dir,
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
