package cmd

import (
	"fmt"

	"dataset-reconciler/core/config"
	"dataset-reconciler/core/database"
	"dataset-reconciler/core/history"
	"dataset-reconciler/core/logger"

	"github.com/spf13/cobra"
)

var runsLimit int

// runsCmd lists recent reconciliation runs from the history database.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent reconciliation runs",
	Long: `Runs lists the latest reconciliations recorded in the history
database, newest first, with the bucket counts of each run.

Examples:
  # The last 20 runs
  runs

  # Only the most recent run
  runs --limit 1`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to show")

	RootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to the run history database: %w", err)
	}

	recorder, err := history.NewRecorder(db)
	if err != nil {
		return err
	}

	runs, err := recorder.Recent(runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %8s  %8s  %8s  %10s  %s\n",
		"RUN ID", "PROFILE", "ADDED", "REMOVED", "UNCHANGED", "NEW MASTER", "CREATED")
	for _, run := range runs {
		fmt.Printf("%-36s  %-20s  %8d  %8d  %8d  %10d  %s\n",
			run.RunID,
			run.Profile,
			run.AddedCount,
			run.RemovedCount,
			run.UnchangedCount,
			run.NewMasterCount,
			run.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
