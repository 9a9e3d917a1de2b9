package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/pkg/config"
	"github.com/ijoka-ai/ijoka/pkg/models"
	testdb "github.com/ijoka-ai/ijoka/test/database"
)

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)
	cfg, err := config.Load()
	require.NoError(t, err)

	router := gin.New()
	NewServer(db, cfg).RegisterRoutes(router)

	return router, "/tmp/ijoka-api/" + t.Name()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeInto(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCreateAndGetFeature(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Description: "Add OAuth login",
		Category:    "auth",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created ent.Feature
	decodeInto(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Add OAuth login", created.Description)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/features/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/features/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateFeature_BadRequests(t *testing.T) {
	router, project := setupRouter(t)

	// Missing project query parameter
	rec := doJSON(t, router, http.MethodPost, "/api/v1/features", models.CreateFeatureRequest{
		Description: "x", Category: "y",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Service-level validation: no description
	rec = doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Category: "auth",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	decodeInto(t, rec, &body)
	assert.Contains(t, body["error"], "description")
}

func TestListFeatures(t *testing.T) {
	router, project := setupRouter(t)

	// Lookups never create projects
	rec := doJSON(t, router, http.MethodGet, "/api/v1/features?project="+project, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for _, desc := range []string{"first", "second"} {
		rec = doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
			Description: desc, Category: "core",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/features?project="+project, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	decodeInto(t, rec, &body)
	assert.Equal(t, 2, body.Count)
}

func TestStartFeature_ConflictMapsToBadRequest(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Description: "contested work", Category: "core",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var feat ent.Feature
	decodeInto(t, rec, &feat)

	for _, sid := range []string{"sess-a", "sess-b"} {
		rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions/start", StartSessionRequest{
			SessionID: sid, Agent: "claude-code", ProjectPath: project,
		})
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/features/"+feat.ID+"/start", models.StartFeatureRequest{
		Agent: "claude-code", SessionID: "sess-a",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/features/"+feat.ID+"/start", models.StartFeatureRequest{
		Agent: "codex", SessionID: "sess-b",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	decodeInto(t, rec, &body)
	assert.Equal(t, "claude-code", body["held_by"])
	assert.Equal(t, "sess-a", body["session_id"])

	// Force override wins
	rec = doJSON(t, router, http.MethodPost, "/api/v1/features/"+feat.ID+"/start", models.StartFeatureRequest{
		Agent: "codex", SessionID: "sess-b", ForceOverride: true,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStartNextFeature_EmptyBacklogIs404(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/sessions/start", StartSessionRequest{
		SessionID: "sess-1", Agent: "claude-code", ProjectPath: project,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/features/start-next?project="+project, models.StartFeatureRequest{
		Agent: "claude-code", SessionID: "sess-1",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteFeatureFlow(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Description: "finishable", Category: "core",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var feat ent.Feature
	decodeInto(t, rec, &feat)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/features/"+feat.ID+"/complete", CompleteFeatureRequest{
		Agent: "claude-code",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var completed ent.Feature
	decodeInto(t, rec, &completed)
	assert.Equal(t, "complete", string(completed.Status))
	assert.NotNil(t, completed.CompletedAt)
}

func TestLinkParent_CycleIsBadRequest(t *testing.T) {
	router, project := setupRouter(t)

	var ids []string
	for _, desc := range []string{"epic", "child"} {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
			Description: desc, Category: "core",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var f ent.Feature
		decodeInto(t, rec, &f)
		ids = append(ids, f.ID)
	}

	rec := doJSON(t, router, http.MethodPut, "/api/v1/features/"+ids[1]+"/parent", LinkParentRequest{ParentID: ids[0]})
	require.Equal(t, http.StatusOK, rec.Code)

	// Linking the parent under its own child closes a cycle
	rec = doJSON(t, router, http.MethodPut, "/api/v1/features/"+ids[0]+"/parent", LinkParentRequest{ParentID: ids[1]})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/features/"+ids[0]+"/children", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Count int `json:"count"`
	}
	decodeInto(t, rec, &body)
	assert.Equal(t, 1, body.Count)
}

func TestIngestEventEndpoint(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/events", models.IngestEventRequest{
		EventType:   "ToolCall",
		SessionID:   "sess-ingest",
		ProjectPath: project,
		SourceAgent: "claude-code",
		ToolName:    "Edit",
		FilePath:    "/work/repo/main.go",
		Success:     true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.IngestEventResponse
	decodeInto(t, rec, &resp)
	assert.NotEmpty(t, resp.EventID)
	assert.NotEmpty(t, resp.FeatureID, "work events always land somewhere")

	// Missing event_type is rejected before any write
	rec = doJSON(t, router, http.MethodPost, "/api/v1/events", models.IngestEventRequest{
		SessionID:   "sess-ingest",
		ProjectPath: project,
		SourceAgent: "claude-code",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionLifecycleEndpoints(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/sessions/start", StartSessionRequest{
		SessionID: "sess-life", Agent: "claude-code", ProjectPath: project,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/sess-life", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sess ent.AgentSession
	decodeInto(t, rec, &sess)
	assert.Equal(t, "active", string(sess.Status))

	rec = doJSON(t, router, http.MethodPost, "/api/v1/sessions/end", models.SessionEndRequest{
		SessionID: "sess-life",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/sess-life", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &sess)
	assert.Equal(t, "ended", string(sess.Status))

	rec = doJSON(t, router, http.MethodGet, "/api/v1/sessions/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusEndpoint(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Description: "visible work", Category: "core",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/status?project="+project, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status models.StatusResponse
	decodeInto(t, rec, &status)
	assert.Equal(t, project, status.Project)
	assert.Equal(t, 1, status.Stats.Pending)
}

func TestInsightEndpoints(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Description: "stabilise tests", Category: "infra",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var feat ent.Feature
	decodeInto(t, rec, &feat)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/insights", models.CreateInsightRequest{
		Description: "Flaky container startup fixed by waiting on the ready log line",
		PatternType: "solution",
		Tags:        []string{"Testcontainers"},
		FeatureID:   feat.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var insight ent.Insight
	decodeInto(t, rec, &insight)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/insights?q=container", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var search struct {
		Count int `json:"count"`
	}
	decodeInto(t, rec, &search)
	assert.Equal(t, 1, search.Count)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/insights/feedback", models.InsightFeedbackRequest{
		InsightID: insight.ID, Helpful: true,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyticsEndpoints(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Description: "seed", Category: "core",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for _, path := range []string{
		"/api/v1/analytics/patterns?project=" + project,
		"/api/v1/analytics/velocity?project=" + project,
		"/api/v1/analytics/digest?project=" + project,
		"/api/v1/analytics/profile?project=" + project + "&agent=claude-code",
	} {
		rec = doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/v1/analytics/query?project="+project, models.QueryRequest{
		Question: "what is blocked?",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.QueryResponse
	decodeInto(t, rec, &resp)
	assert.Equal(t, "bottlenecks", resp.QueryType)
}

func TestPlanEndpoints(t *testing.T) {
	router, project := setupRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Description: "planned work", Category: "core",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var feat ent.Feature
	decodeInto(t, rec, &feat)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/features/"+feat.ID+"/plan", models.SetPlanRequest{
		Steps: []string{"write schema", "wire handler"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/features/"+feat.ID+"/plan", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var plan models.PlanResponse
	decodeInto(t, rec, &plan)
	assert.Len(t, plan.Steps, 2)
	assert.Equal(t, 2, plan.Progress.Total)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/features/"+feat.ID+"/checkpoint", models.CheckpointRequest{
		StepCompleted: "write schema",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var cp models.CheckpointResponse
	decodeInto(t, rec, &cp)
	assert.Equal(t, 1, cp.Progress.Completed)

	rec = doJSON(t, router, http.MethodPatch, "/api/v1/steps/no-such-step", UpdateStepRequest{Status: "completed"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivePlanEndpoints(t *testing.T) {
	router, project := setupRouter(t)

	// No in-progress feature to resolve yet
	rec := doJSON(t, router, http.MethodGet, "/api/v1/plan?project="+project, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/features?project="+project, models.CreateFeatureRequest{
		Description: "active work", Category: "core",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var feat ent.Feature
	decodeInto(t, rec, &feat)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/features/"+feat.ID+"/start", models.StartFeatureRequest{
		Agent: "claude-code",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/plan?project="+project, models.SetPlanRequest{
		Steps: []string{"write schema", "wire handler"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var plan models.PlanResponse
	decodeInto(t, rec, &plan)
	assert.Equal(t, feat.ID, plan.FeatureID)

	// Untouched plan: the active step is the lowest-order pending one
	rec = doJSON(t, router, http.MethodGet, "/api/v1/plan?project="+project, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeInto(t, rec, &plan)
	require.NotNil(t, plan.ActiveStep)
	assert.Equal(t, "write schema", plan.ActiveStep.Description)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkpoint?project="+project, models.CheckpointRequest{
		StepCompleted: "write schema",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var cp models.CheckpointResponse
	decodeInto(t, rec, &cp)
	assert.Equal(t, 1, cp.Progress.Completed)
	require.NotNil(t, cp.ActiveStep)
	assert.Equal(t, "wire handler", cp.ActiveStep.Description)
}
