package history

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dataset-reconciler/core/reconcile"
)

// ErrNoRecorder is returned when run history is requested but no
// history database is connected.
var ErrNoRecorder = errors.New("history: no run history database connected")

// Run is one recorded reconciliation: which profile ran, what it consumed
// and the resulting bucket sizes.
type Run struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	RunID          string    `gorm:"size:36;uniqueIndex" json:"run_id"`
	Profile        string    `gorm:"size:128;index" json:"profile"`
	MasterPath     string    `gorm:"size:512" json:"master_path"`
	Sources        string    `gorm:"size:2048" json:"sources"`
	MasterRows     int       `json:"master_rows"`
	IncomingRows   int       `json:"incoming_rows"`
	AddedCount     int       `json:"added"`
	RemovedCount   int       `json:"removed"`
	UnchangedCount int       `json:"unchanged"`
	NewMasterCount int       `json:"new_master"`
	OutputDir      string    `gorm:"size:512" json:"output_dir"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewRun builds a Run from the run inputs and the resulting summary.
func NewRun(profile, masterPath string, sources []string, outputDir string, s reconcile.Summary) *Run {
	return &Run{
		Profile:        profile,
		MasterPath:     masterPath,
		Sources:        strings.Join(sources, ","),
		OutputDir:      outputDir,
		MasterRows:     s.MasterRows,
		IncomingRows:   s.IncomingRows,
		AddedCount:     s.Added,
		RemovedCount:   s.Removed,
		UnchangedCount: s.Unchanged,
		NewMasterCount: s.NewMaster,
	}
}

// Recorder persists reconciliation runs.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder migrates the runs table and returns a Recorder bound to db.
func NewRecorder(db *gorm.DB) (*Recorder, error) {
	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("migrate run history: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Record stores one run, assigning a fresh run ID when the caller did not.
func (r *Recorder) Record(run *Run) error {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first. A non-positive limit falls
// back to 20.
func (r *Recorder) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []Run
	if err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
