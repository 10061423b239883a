package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/ai4health/triage-api/dispatch"
	"github.com/ai4health/triage-api/mocks"
	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/store"
)

var testNow = time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC)

type testServer struct {
	*Server

	store      *mocks.MockTriageCore
	mongo      *mocks.MockMongoStore
	inference  *mocks.MockClient
	resolver   *mocks.MockLocationResolver
	escalation *mocks.MockEscalationTrigger
	video      *mocks.MockVideoClient
	auditor    *mocks.MockAuditor
}

func newTestServer(ctl *gomock.Controller) *testServer {
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		store:      mocks.NewMockTriageCore(ctl),
		mongo:      mocks.NewMockMongoStore(ctl),
		inference:  mocks.NewMockClient(ctl),
		resolver:   mocks.NewMockLocationResolver(ctl),
		escalation: mocks.NewMockEscalationTrigger(ctl),
		video:      mocks.NewMockVideoClient(ctl),
		auditor:    mocks.NewMockAuditor(ctl),
	}

	directory := store.NewMemoryDirectory(schema.DefaultHospitals, schema.DefaultDoctors, schema.DefaultNGOs)
	ts.Server = &Server{
		store:            ts.store,
		mongoStore:       ts.mongo,
		jwtSecret:        []byte("test-secret"),
		inference:        ts.inference,
		locationResolver: ts.resolver,
		escalation:       ts.escalation,
		videoRooms:       ts.video,
		auditor:          ts.auditor,
		dispatcher:       dispatch.New(directory, dispatch.WithClock(func() time.Time { return testNow })),
	}
	return ts
}

func (ts *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.setupRouter().ServeHTTP(w, req)
	return w
}

func jsonRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %s", w.Body.String())
	}
	return body
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code int64) {
	assert.Equal(t, status, w.Code)
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, code, resp.Code)
}

func TestHealthz(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.store.EXPECT().Ping().Return(nil)
	ts.mongo.EXPECT().Ping().Return(nil)

	w := ts.serve(httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", decodeBody(t, w)["status"])
}

func TestHealthzStoreDown(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.store.EXPECT().Ping().Return(errors.New("connection refused"))

	w := ts.serve(httptest.NewRequest("GET", "/healthz", nil))
	assertErrorCode(t, w, http.StatusInternalServerError, 999)
}

func TestMetricsRequireAPIKey(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	viper.Set("server.apikey.metric", "metric-key")
	defer viper.Set("server.apikey.metric", "")

	ts := newTestServer(ctl)

	w := ts.serve(httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Api-Token", "metric-key")
	w = ts.serve(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRateLimit(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)
	ts.limiter = newClientRateLimiter(rate.Every(time.Hour), 1)
	router := ts.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/symptoms", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/symptoms", nil))
	assertErrorCode(t, w, http.StatusTooManyRequests, 1005)
}

func TestRateLimitDisabled(t *testing.T) {
	assert.Nil(t, newClientRateLimiter(0, 10))

	l := newClientRateLimiter(rate.Every(time.Hour), 0)
	assert.True(t, l.allow("10.0.0.1"))
	assert.False(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))
}

func TestRateLimitEvictsIdleClients(t *testing.T) {
	l := newClientRateLimiter(rate.Every(time.Hour), 1)
	now := testNow
	l.now = func() time.Time { return now }
	l.lastSweep = now

	assert.True(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))
	assert.False(t, l.allow("10.0.0.1"))

	now = testNow.Add(5 * time.Minute)
	assert.False(t, l.allow("10.0.0.2"))
	assert.Len(t, l.limiters, 2)

	now = testNow.Add(12 * time.Minute)
	assert.True(t, l.allow("10.0.0.3"))
	assert.Len(t, l.limiters, 2)
	assert.NotContains(t, l.limiters, "10.0.0.1")

	// an evicted client starts with a full bucket
	now = testNow.Add(13 * time.Minute)
	assert.True(t, l.allow("10.0.0.1"))
	assert.Len(t, l.limiters, 3)
}

func TestGetSymptoms(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	w := ts.serve(httptest.NewRequest("GET", "/api/symptoms?lang=en", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Symptoms      []schema.SymptomEntry `json:"symptoms"`
		Comorbidities []string              `json:"comorbidities"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Symptoms, 24)
	assert.Equal(t, "cardiac_arrest", body.Symptoms[0].ID)
	assert.Equal(t, schema.CriticalTier, body.Symptoms[0].Tier)
	assert.Equal(t, 40, body.Symptoms[0].Points)
	assert.Contains(t, body.Comorbidities, "diabetes")
}

func TestSetupRouter(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(ctl)

	var r *gin.Engine
	if !assert.NotPanics(t, func() { r = ts.setupRouter() }) {
		return
	}

	routes := map[string]bool{}
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	for _, route := range []string{
		"POST /api/dispatch/emergency",
		"POST /api/dispatches/:dispatchID/arrived",
		"POST /api/process_symptoms",
		"POST /api/diagnose",
		"POST /api/teleconsult/video_call",
		"GET /api/care/recommendations",
		"GET /api/history",
		"POST /api/history",
		"GET /healthz",
	} {
		assert.True(t, routes[route], "missing route %s", route)
	}
}
