package reconcileapi

import (
	"testing"

	"dataset-reconciler/core/database"
	"dataset-reconciler/core/history"
	"dataset-reconciler/core/profile"
	"dataset-reconciler/feature/reconcileapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testProfiles() []profile.Profile {
	return []profile.Profile{
		{
			Name:    "registry",
			Columns: []string{"ID", "STATE", "PHONE"},
			Key:     []string{"ID", "STATE"},
		},
		{
			Name:    "registry-alabama",
			Columns: []string{"ID", "STATE", "PHONE"},
			Key:     []string{"ID", "STATE"},
			Filter:  &profile.Filter{Column: "STATE", Allow: []string{"AL"}},
		},
	}
}

func testRecorder(t *testing.T) *history.Recorder {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	recorder, err := history.NewRecorder(db)
	require.NoError(t, err)
	return recorder
}

func testRequest() models.ReconcileRequest {
	return models.ReconcileRequest{
		Master: models.TablePayload{
			Columns: []string{"ID", "STATE", "PHONE"},
			Rows: [][]string{
				{"1", "AL", "205-555-0100"},
				{"2", "TX", "512-555-0101"},
			},
		},
		Incoming: models.TablePayload{
			Columns: []string{"ID", "STATE", "PHONE"},
			Rows: [][]string{
				{"1", "AL", "205-555-0100"},
				{"3", "AK", "907-555-0102"},
			},
		},
	}
}

func TestServiceReconcileDefaultProfile(t *testing.T) {
	svc := NewService(testProfiles(), "registry", zap.NewNop(), nil)

	resp, err := svc.Reconcile(testRequest())
	require.NoError(t, err)

	assert.Equal(t, "registry", resp.Profile)
	assert.Equal(t, 1, resp.Summary.Added)
	assert.Equal(t, 1, resp.Summary.Removed)
	assert.Equal(t, 1, resp.Summary.Unchanged)
	assert.Equal(t, [][]string{{"3", "AK", "907-555-0102"}}, resp.Added.Rows)
	assert.Equal(t, [][]string{{"2", "TX", "512-555-0101"}}, resp.Removed.Rows)
}

func TestServiceReconcileAppliesProfileFilter(t *testing.T) {
	svc := NewService(testProfiles(), "registry", zap.NewNop(), nil)

	req := testRequest()
	req.Profile = "registry-alabama"

	resp, err := svc.Reconcile(req)
	require.NoError(t, err)

	// Only the AL rows survive the filter, and they match.
	assert.Equal(t, 0, resp.Summary.Added)
	assert.Equal(t, 0, resp.Summary.Removed)
	assert.Equal(t, 1, resp.Summary.Unchanged)
}

func TestServiceReconcileKeyOverride(t *testing.T) {
	svc := NewService(testProfiles(), "registry", zap.NewNop(), nil)

	req := testRequest()
	// Key on ID only: row 1 matches regardless of the other columns.
	req.Key = []string{"ID"}

	resp, err := svc.Reconcile(req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Summary.Unchanged)
}

func TestServiceReconcileUnknownProfile(t *testing.T) {
	svc := NewService(testProfiles(), "registry", zap.NewNop(), nil)

	req := testRequest()
	req.Profile = "nope"

	_, err := svc.Reconcile(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestServiceReconcileRaggedMaster(t *testing.T) {
	svc := NewService(testProfiles(), "registry", zap.NewNop(), nil)

	req := testRequest()
	req.Master.Rows = append(req.Master.Rows, []string{"short"})

	_, err := svc.Reconcile(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "master table")
}

func TestServiceRecordsHistory(t *testing.T) {
	recorder := testRecorder(t)
	svc := NewService(testProfiles(), "registry", zap.NewNop(), recorder)

	_, err := svc.Reconcile(testRequest())
	require.NoError(t, err)

	runs, err := recorder.Recent(1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "registry", runs[0].Profile)
	assert.Equal(t, "api", runs[0].MasterPath)
	assert.Equal(t, 1, runs[0].AddedCount)
}

func TestServiceRecentRunsWithoutRecorder(t *testing.T) {
	svc := NewService(testProfiles(), "registry", zap.NewNop(), nil)

	_, err := svc.RecentRuns(5)
	assert.ErrorIs(t, err, history.ErrNoRecorder)
}

func TestServiceListProfiles(t *testing.T) {
	svc := NewService(testProfiles(), "registry", zap.NewNop(), nil)

	names := make([]string, 0)
	for _, p := range svc.ListProfiles() {
		names = append(names, p.Name)
	}

	assert.Contains(t, names, "registry")
	assert.Contains(t, names, "registry-alabama")
	assert.Contains(t, names, "clia-labs")
	assert.Contains(t, names, "clia-labs-tracked")
}
