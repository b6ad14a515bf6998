package reconcileapi

import (
	"fmt"

	"dataset-reconciler/core/history"
	"dataset-reconciler/core/profile"
	"dataset-reconciler/core/reconcile"
	"dataset-reconciler/feature/reconcileapi/models"

	"go.uber.org/zap"
)

// Service runs reconciliations for the HTTP API.
type Service struct {
	profiles       []profile.Profile
	defaultProfile string
	logger         *zap.Logger
	recorder       *history.Recorder
}

// NewService creates a new reconciliation service. The recorder may be
// nil when no run history database is available.
func NewService(custom []profile.Profile, defaultProfile string, logger *zap.Logger, recorder *history.Recorder) *Service {
	return &Service{
		profiles:       custom,
		defaultProfile: defaultProfile,
		logger:         logger,
		recorder:       recorder,
	}
}

// Reconcile compares the request's master and incoming datasets and
// returns the classified buckets. The comparison key comes from the
// request override, or else from the resolved profile.
func (s *Service) Reconcile(req models.ReconcileRequest) (*models.ReconcileResponse, error) {
	name := req.Profile
	if name == "" {
		name = s.defaultProfile
	}
	p, err := profile.Resolve(s.profiles, name)
	if err != nil {
		return nil, err
	}

	master, err := req.Master.Table()
	if err != nil {
		return nil, fmt.Errorf("master table: %w", err)
	}
	incoming, err := req.Incoming.Table()
	if err != nil {
		return nil, fmt.Errorf("incoming table: %w", err)
	}

	if master, err = p.ApplyFilter(master); err != nil {
		return nil, fmt.Errorf("master table: %w", err)
	}
	if incoming, err = p.ApplyFilter(incoming); err != nil {
		return nil, fmt.Errorf("incoming table: %w", err)
	}

	key := req.Key
	if len(key) == 0 {
		key = p.Key
	}

	result, err := reconcile.Reconcile(master, incoming, key)
	if err != nil {
		return nil, err
	}

	s.record(p.Name, result)

	return &models.ReconcileResponse{
		Profile:   p.Name,
		Summary:   result.Summary,
		Added:     models.FromTable(result.Added),
		Removed:   models.FromTable(result.Removed),
		Unchanged: models.FromTable(result.Unchanged),
		NewMaster: models.FromTable(result.NewMaster),
	}, nil
}

// ListProfiles returns the built-in profiles plus the custom ones.
func (s *Service) ListProfiles() []profile.Profile {
	return profile.All(s.profiles)
}

// RecentRuns returns the newest recorded runs.
func (s *Service) RecentRuns(limit int) ([]history.Run, error) {
	if s.recorder == nil {
		return nil, history.ErrNoRecorder
	}
	return s.recorder.Recent(limit)
}

// record stores the run in the history database. Failures are logged
// rather than surfaced since the reconciliation itself succeeded.
func (s *Service) record(profileName string, result *reconcile.Result) {
	if s.recorder == nil {
		return
	}
	run := history.NewRun(profileName, "api", nil, "", result.Summary)
	if err := s.recorder.Record(run); err != nil {
		s.logger.Warn("Failed to record run history", zap.Error(err))
	}
}
