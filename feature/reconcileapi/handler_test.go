package reconcileapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dataset-reconciler/core/history"
	"dataset-reconciler/feature/reconcileapi/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, recorder *history.Recorder) *fiber.App {
	t.Helper()
	app := fiber.New()
	svc := NewService(testProfiles(), "registry", zap.NewNop(), recorder)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app
}

func postReconcile(t *testing.T, app *fiber.App, req models.ReconcileRequest) (*http.Response, []byte) {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest("POST", "/reconcile", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestHandleReconcile(t *testing.T) {
	app := setupTestApp(t, nil)

	httpResp, raw := postReconcile(t, app, testRequest())
	require.Equal(t, fiber.StatusOK, httpResp.StatusCode)

	var resp models.ReconcileResponse
	require.NoError(t, json.Unmarshal(raw, &resp))

	assert.Equal(t, "registry", resp.Profile)
	assert.Equal(t, 1, resp.Summary.Added)
	assert.Equal(t, 1, resp.Summary.Removed)
	assert.Equal(t, 1, resp.Summary.Unchanged)
	assert.Equal(t, 2, resp.Summary.NewMaster)
}

func TestHandleReconcileBadJSON(t *testing.T) {
	app := setupTestApp(t, nil)

	req := httptest.NewRequest("POST", "/reconcile", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleReconcileUnknownProfile(t *testing.T) {
	app := setupTestApp(t, nil)

	req := testRequest()
	req.Profile = "nope"

	httpResp, raw := postReconcile(t, app, req)
	assert.Equal(t, fiber.StatusBadRequest, httpResp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body["error"], "nope")
}

func TestHandleListProfiles(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/profiles", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var profiles []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profiles))
	assert.GreaterOrEqual(t, len(profiles), 4)
}

func TestHandleRecentRunsUnavailable(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/runs", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleRecentRuns(t *testing.T) {
	app := setupTestApp(t, testRecorder(t))

	httpResp, _ := postReconcile(t, app, testRequest())
	require.Equal(t, fiber.StatusOK, httpResp.StatusCode)

	resp, err := app.Test(httptest.NewRequest("GET", "/runs?limit=5", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var runs []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "registry", runs[0]["profile"])
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
