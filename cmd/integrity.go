package cmd

import (
	"context"
	"errors"
	"fmt"

	"profile-exporter/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the export destinations",
	Long:  `Checks the local export folder, the storage bucket folders and the export index schema, depending on the configured destination.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// localCmd represents the integrity local command
var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Check and fix the local export folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and migrate the export index schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(localCmd, structureCmd, schemaCmd)

	localCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing folders")
	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the index tables")
}

func runIntegrityChecks(ctx context.Context, runLocal, runStructure, runSchema bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := loadDeps(ctx, runSchema)
	if err != nil {
		return err
	}
	logg := rt.logger
	defer logg.Sync()

	svc := integrity.NewFeature(rt.store, rt.cfg.Storage.Bucket, rt.cfg.Export, rt.db, logg).Service()
	failed := false

	if runLocal && svc.UsesFiles() {
		logg.Info("Checking local export folder...", zap.String("path", rt.cfg.Export.FilesPath))
		report, err := svc.CheckLocal()
		if err != nil {
			return fmt.Errorf("local check failed: %w", err)
		}

		if len(report.MissingFolders) > 0 {
			logg.Warn("Missing export folders", zap.Strings("missing", report.MissingFolders))
			if fixFlag {
				if err := svc.FixLocal(report.MissingFolders); err != nil {
					return err
				}
				logg.Info("Export folders created.")
			} else {
				failed = true
				logg.Info("Run with --fix to create missing folders.")
			}
		}
		for _, f := range report.Invalid {
			logg.Warn("Invalid profile file", zap.String("file", f.Path), zap.String("reason", f.Reason))
			failed = true
		}
		logg.Info("Local export folder checked", zap.Int("files", report.Files), zap.Int("invalid", len(report.Invalid)))
	}

	if runStructure && svc.UsesStorage() {
		logg.Info("Checking bucket structure...", zap.String("bucket", rt.cfg.Storage.Bucket))
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if fixFlag {
				if err := svc.FixStructure(ctx, missing); err != nil {
					return err
				}
				logg.Info("Structure fixed successfully.")
			} else {
				failed = true
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runSchema {
		if fixFlag {
			if err := svc.FixSchema(); err != nil && !errors.Is(err, integrity.ErrDatabaseDisabled) {
				return fmt.Errorf("schema migration failed: %w", err)
			}
		}

		report, err := svc.CheckSchema()
		switch {
		case errors.Is(err, integrity.ErrDatabaseDisabled):
			logg.Info("No database connected, skipping schema check.")
		case err != nil:
			return fmt.Errorf("schema check failed: %w", err)
		case report.Matched:
			logg.Info("Export index schema matches its models.", zap.String("dialect", report.Dialect))
		default:
			failed = true
			for table, tbl := range report.Tables {
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}

	if failed {
		return errors.New("integrity problems found")
	}
	return nil
}
