package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"dataset-reconciler/core/config"
	"dataset-reconciler/core/logger"
	"dataset-reconciler/core/profile"
	"dataset-reconciler/core/report"
	"dataset-reconciler/core/storage"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the archive commands
	archiveProfile string
	archiveOut     string
	archiveKeep    int
)

// archiveCmd is the parent command for snapshot archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Store and retrieve master snapshots in object storage",
	Long: `Archive keeps timestamped master snapshots in S3-compatible object
storage, one prefix per profile, so no run ever overwrites history.

Examples:
  # Archive today's master
  archive push Output/clia_labs_new_master.csv

  # See what is stored for the default profile
  archive list

  # Fetch the newest snapshot back
  archive pull --out master.csv

  # Keep only the five newest snapshots
  archive prune --keep 5`,
}

var archivePushCmd = &cobra.Command{
	Use:   "push <file.csv>",
	Short: "Push a snapshot into the archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchivePush,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the profile's archived snapshots, oldest first",
	RunE:  runArchiveList,
}

var archivePullCmd = &cobra.Command{
	Use:   "pull [key]",
	Short: "Pull a snapshot from the archive (the newest when no key is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runArchivePull,
}

var archivePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove the profile's oldest snapshots",
	RunE:  runArchivePrune,
}

func init() {
	archiveCmd.PersistentFlags().StringVarP(&archiveProfile, "profile", "p", "", "Dataset profile (default from config)")
	archivePullCmd.Flags().StringVarP(&archiveOut, "out", "o", "", "Output file (defaults to the key's base name)")
	archivePruneCmd.Flags().IntVar(&archiveKeep, "keep", 5, "Number of newest snapshots to keep")

	archiveCmd.AddCommand(archivePushCmd)
	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archivePullCmd)
	archiveCmd.AddCommand(archivePruneCmd)

	RootCmd.AddCommand(archiveCmd)
}

// archiveSetup loads config, builds the logger, resolves the profile and
// opens the snapshot archive. Shared by every archive subcommand.
func archiveSetup() (*config.Config, *zap.Logger, profile.Profile, *storage.Archive, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, profile.Profile{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, profile.Profile{}, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	name := archiveProfile
	if name == "" {
		name = cfg.Server.DefaultProfile
	}
	p, err := profile.Resolve(cfg.Profiles, name)
	if err != nil {
		return nil, nil, profile.Profile{}, nil, err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, profile.Profile{}, nil, err
	}

	return cfg, l, p, storage.NewArchive(client, cfg.Storage.Bucket), nil
}

func runArchivePush(cmd *cobra.Command, args []string) error {
	_, l, p, archive, err := archiveSetup()
	if err != nil {
		return err
	}
	defer l.Sync()

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := archive.EnsureBucket(ctx); err != nil {
		return err
	}

	key, err := archive.Push(ctx, p.Slug, time.Now(), f, info.Size())
	if err != nil {
		return err
	}

	fmt.Println("Archived snapshot as:", report.FileLine(key, info.Size()))
	l.Info("Snapshot archived", zap.String("key", key), zap.String("profile", p.Name))
	return nil
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	_, l, p, archive, err := archiveSetup()
	if err != nil {
		return err
	}
	defer l.Sync()

	snapshots, err := archive.List(context.Background(), p.Slug)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Printf("No snapshots archived for profile %q\n", p.Name)
		return nil
	}

	for _, snap := range snapshots {
		fmt.Printf("%-60s %10s  %s\n",
			snap.Key,
			units.HumanSize(float64(snap.Size)),
			snap.LastModified.Format(time.RFC3339))
	}
	fmt.Printf("%d snapshot(s)\n", len(snapshots))
	return nil
}

func runArchivePull(cmd *cobra.Command, args []string) error {
	_, l, p, archive, err := archiveSetup()
	if err != nil {
		return err
	}
	defer l.Sync()

	ctx := context.Background()

	key := ""
	if len(args) == 1 {
		key = args[0]
	} else {
		latest, err := archive.Latest(ctx, p.Slug)
		if err != nil {
			return err
		}
		key = latest.Key
	}

	object, err := archive.Pull(ctx, key)
	if err != nil {
		return err
	}
	defer object.Close()

	out := archiveOut
	if out == "" {
		out = filepath.Base(key)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	size, err := io.Copy(f, object)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Println("Pulled snapshot to:", report.FileLine(out, size))
	l.Info("Snapshot pulled from archive", zap.String("key", key), zap.String("out", out))
	return nil
}

func runArchivePrune(cmd *cobra.Command, args []string) error {
	_, l, p, archive, err := archiveSetup()
	if err != nil {
		return err
	}
	defer l.Sync()

	removed, err := archive.Prune(context.Background(), p.Slug, archiveKeep)
	if err != nil {
		return err
	}

	for _, key := range removed {
		fmt.Println("Removed:", key)
	}
	fmt.Printf("Pruned %d snapshot(s), kept the newest %d\n", len(removed), archiveKeep)
	l.Info("Archive pruned", zap.String("profile", p.Name), zap.Int("removed", len(removed)))
	return nil
}
