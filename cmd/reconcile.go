package cmd

import (
	"fmt"
	"strings"
	"time"

	"dataset-reconciler/core/config"
	"dataset-reconciler/core/csvio"
	"dataset-reconciler/core/database"
	"dataset-reconciler/core/history"
	"dataset-reconciler/core/logger"
	"dataset-reconciler/core/profile"
	"dataset-reconciler/core/reconcile"
	"dataset-reconciler/core/report"
	"dataset-reconciler/core/table"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	reconcileProfile string
	reconcileMaster  string
	reconcileFilter  string
	reconcileExtra   bool
	reconcileNoSave  bool
	reconcileStamp   bool
)

// reconcileCmd compares a master snapshot against newly captured data.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile --master <master.csv> <new.csv> [more.csv...]",
	Short: "Reconcile a master dataset against newly captured data",
	Long: `Reconcile compares a master dataset snapshot against one or more newly
captured CSV files and classifies every row as added, removed or unchanged.

The incoming files are concatenated in argument order before comparison.
Results are printed as tables and written to CSV files: the added rows,
the removed rows, the unchanged rows, and the next master dataset.

Examples:
  # Compare the CLIA master against two fresh captures
  reconcile --master Master/master.csv captures/data1.csv captures/data2.csv

  # Use a custom profile from the config file
  reconcile --profile state-registry --master master.csv capture.csv

  # Restrict both sides to Alabama labs before comparing
  reconcile --master master.csv capture.csv --filter STATE=AL

  # Print only, keep no files
  reconcile --master master.csv capture.csv --no-save`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&reconcileProfile, "profile", "p", "", "Dataset profile (default from config)")
	reconcileCmd.Flags().StringVarP(&reconcileMaster, "master", "m", "", "Master CSV file to compare against (required)")
	reconcileCmd.Flags().StringVar(&reconcileFilter, "filter", "", "Restrict both sides before comparing, e.g. STATE=AL,AK")
	reconcileCmd.Flags().BoolVarP(&reconcileExtra, "extra", "e", false, "Also display the loaded master and incoming tables")
	reconcileCmd.Flags().BoolVar(&reconcileNoSave, "no-save", false, "Skip writing result files")
	reconcileCmd.Flags().BoolVar(&reconcileStamp, "timestamp", false, "Add a timestamp to result file names")
	_ = reconcileCmd.MarkFlagRequired("master")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	name := reconcileProfile
	if name == "" {
		name = cfg.Server.DefaultProfile
	}
	p, err := profile.Resolve(cfg.Profiles, name)
	if err != nil {
		return err
	}
	if reconcileFilter != "" {
		filter, err := parseFilter(reconcileFilter, p)
		if err != nil {
			return err
		}
		p.Filter = filter
	}

	l.Info("Loading master data", zap.String("path", reconcileMaster))
	master, err := csvio.ReadTableFile(reconcileMaster, p.Columns, p.MasterHasHeader)
	if err != nil {
		return err
	}

	l.Info("Combining incoming data files", zap.Int("files", len(args)))
	incoming, err := csvio.LoadSources(args, p.Columns, p.IncomingHasHeader)
	if err != nil {
		return err
	}

	if master, err = p.ApplyFilter(master); err != nil {
		return err
	}
	if incoming, err = p.ApplyFilter(incoming); err != nil {
		return err
	}

	result, err := reconcile.Reconcile(master, incoming, p.Key)
	if err != nil {
		return err
	}

	display := cfg.Display
	fmt.Printf("Number of rows displayed restricted to '%d'\n", display.MaxRows)

	if reconcileExtra {
		fmt.Print(report.Banner("Master data"))
		fmt.Print(report.Render(master, display))
		fmt.Print(report.Banner("Incoming data combined from new data file(s)"))
		fmt.Print(report.Render(incoming, display))
	}

	fmt.Print(report.Banner("Added rows (present in the incoming data, not in the master)"))
	fmt.Print(report.Render(result.Added, display))

	fmt.Print(report.Banner("Removed rows (present in the master, not in the incoming data)"))
	fmt.Print(report.Render(result.Removed, display))

	fmt.Print(report.Banner("Unchanged rows (present in both the master and the incoming data)"))
	fmt.Print(report.Render(result.Unchanged, display))

	fmt.Print(report.Banner("Next master dataset (added + unchanged)"))
	fmt.Print(report.Render(result.NewMaster, display))

	outputDir := ""
	if !reconcileNoSave {
		outputDir = cfg.Output.Dir
		if err := saveResults(cfg, p, result); err != nil {
			return err
		}
	}

	fmt.Print(report.Banner(fmt.Sprintf("Total rows in the next master dataset: %d", result.Summary.NewMaster)))
	fmt.Print(report.RenderSummary(result.Summary))

	recordRun(l, cfg, p.Name, reconcileMaster, args, outputDir, result.Summary)
	return nil
}

// saveResults writes the four result buckets under the output directory.
func saveResults(cfg *config.Config, p profile.Profile, result *reconcile.Result) error {
	now := time.Now()
	stamped := cfg.Output.Timestamp || reconcileStamp

	buckets := []struct {
		name  string
		table table.Table
	}{
		{"added", result.Added},
		{"removed", result.Removed},
		{"unchanged", result.Unchanged},
		{"new_master", result.NewMaster},
	}

	fmt.Print(report.Banner("Results saved to CSV files"))
	for _, b := range buckets {
		path := csvio.OutputName(cfg.Output.Dir, p.Slug, b.name, now, stamped)
		size, err := csvio.WriteTableFile(path, b.table)
		if err != nil {
			return fmt.Errorf("failed to save %s rows: %w", b.name, err)
		}
		fmt.Printf("Saved %-10s %s\n", b.name+":", report.FileLine(path, size))
	}
	return nil
}

// recordRun stores the run in the history database when one is reachable.
// Reconciliation results are already on disk, so a missing database only
// warrants a warning.
func recordRun(l *zap.Logger, cfg *config.Config, profileName, masterPath string, sources []string, outputDir string, s reconcile.Summary) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		l.Warn("Run history database unavailable, skipping record", zap.Error(err))
		return
	}
	recorder, err := history.NewRecorder(db)
	if err != nil {
		l.Warn("Run history unavailable, skipping record", zap.Error(err))
		return
	}
	run := history.NewRun(profileName, masterPath, sources, outputDir, s)
	if err := recorder.Record(run); err != nil {
		l.Warn("Failed to record run", zap.Error(err))
		return
	}
	l.Info("Recorded run", zap.String("run_id", run.RunID))
}

// parseFilter parses a COLUMN=VALUE[,VALUE...] flag into a profile filter.
func parseFilter(s string, p profile.Profile) (*profile.Filter, error) {
	column, values, ok := strings.Cut(s, "=")
	if !ok || column == "" || values == "" {
		return nil, fmt.Errorf("invalid filter %q: expected COLUMN=VALUE[,VALUE...]", s)
	}
	filter := &profile.Filter{
		Column: strings.TrimSpace(column),
		Allow:  strings.Split(values, ","),
	}
	q := p
	q.Filter = filter
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return filter, nil
}
