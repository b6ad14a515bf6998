package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataset-reconciler/core/database"
	"dataset-reconciler/core/reconcile"
)

func setupRecorder(t *testing.T) *Recorder {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   ":memory:",
	})
	require.NoError(t, err)

	rec, err := NewRecorder(db)
	require.NoError(t, err)
	return rec
}

func TestRecordAssignsRunID(t *testing.T) {
	rec := setupRecorder(t)

	run := NewRun("clia-labs", "Master/master.csv", []string{"day1.csv", "day2.csv"}, "Output", reconcile.Summary{
		MasterRows:   10,
		IncomingRows: 11,
		Added:        2,
		Removed:      1,
		Unchanged:    9,
		NewMaster:    11,
	})
	require.NoError(t, rec.Record(run))

	_, err := uuid.Parse(run.RunID)
	assert.NoError(t, err)
	assert.Equal(t, "day1.csv,day2.csv", run.Sources)
	assert.NotZero(t, run.ID)
}

func TestRecordKeepsCallerRunID(t *testing.T) {
	rec := setupRecorder(t)

	run := NewRun("clia-labs", "m.csv", nil, "Output", reconcile.Summary{})
	run.RunID = "5a8f6f96-2c66-4d9e-b85b-000000000001"
	require.NoError(t, rec.Record(run))

	assert.Equal(t, "5a8f6f96-2c66-4d9e-b85b-000000000001", run.RunID)
}

func TestRecentNewestFirst(t *testing.T) {
	rec := setupRecorder(t)

	for i := 0; i < 3; i++ {
		run := NewRun("clia-labs", "m.csv", nil, "Output", reconcile.Summary{Added: i})
		require.NoError(t, rec.Record(run))
	}

	runs, err := rec.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 2, runs[0].AddedCount)
	assert.Equal(t, 1, runs[1].AddedCount)
}

func TestRecentDefaultLimit(t *testing.T) {
	rec := setupRecorder(t)

	runs, err := rec.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
