package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/cycle-count-relay/internal/logger"
	"github.com/MKhiriev/cycle-count-relay/internal/service"
	"github.com/MKhiriev/cycle-count-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// fakes
// ─────────────────────────────────────────────

// fakeRelayService records the last request it received and answers with
// a fixed envelope.
type fakeRelayService struct {
	env models.Envelope

	authReq      *models.AuthRequest
	forwardOp    models.Operation
	forwardReq   *models.ForwardRequest
	inventoryReq *models.InventoryRequest
	panicWith    any
}

func (f *fakeRelayService) Authenticate(_ context.Context, req models.AuthRequest) models.Envelope {
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	f.authReq = &req
	return f.env
}

func (f *fakeRelayService) Forward(_ context.Context, op models.Operation, req models.ForwardRequest) models.Envelope {
	f.forwardOp = op
	f.forwardReq = &req
	return f.env
}

func (f *fakeRelayService) GetInventory(_ context.Context, req models.InventoryRequest) models.Envelope {
	f.inventoryReq = &req
	return f.env
}

type fakeAppInfoService struct {
	info models.AppBuildInfo
}

func (f *fakeAppInfoService) GetAppInfo(_ context.Context) models.AppBuildInfo {
	return f.info
}

func newTestHandler(relay *fakeRelayService, metrics http.Handler) *Handler {
	svcs := &service.Services{
		RelayService:   relay,
		AppInfoService: &fakeAppInfoService{info: models.AppBuildInfo{Version: "v1.2.3", Date: "today", Commit: "abc123"}},
	}
	return NewHandler(svcs, metrics, logger.Nop())
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got), "body: %s", rr.Body.String())
	return got
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	metrics := http.NotFoundHandler()
	log := logger.Nop()

	h := NewHandler(svcs, metrics, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.metrics)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_RegistersRelayRoutes(t *testing.T) {
	relay := &fakeRelayService{env: models.Succeeded(map[string]any{"ok": true})}
	router := newTestHandler(relay, nil).Init()

	paths := []string{
		"/api/auth",
		"/api/initiateCount",
		"/api/validateItemAndGetItemDetails",
		"/api/acceptQuantity",
		"/api/persistCountDetails",
		"/api/getInventory",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rr := doRequest(t, router, http.MethodPost, path, `{}`)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, true, decodeEnvelope(t, rr)["success"])
		})
	}
}

func TestInit_WrongMethodOnRelayRoute_NotFound(t *testing.T) {
	router := newTestHandler(&fakeRelayService{}, nil).Init()

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := doRequest(t, router, method, "/api/auth", "")
		assert.Equal(t, http.StatusNotFound, rr.Code, method)
	}
}

func TestInit_UnknownRoute_NotFound(t *testing.T) {
	router := newTestHandler(&fakeRelayService{}, nil).Init()

	rr := doRequest(t, router, http.MethodPost, "/api/deleteEverything", `{}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_Health(t *testing.T) {
	router := newTestHandler(&fakeRelayService{}, nil).Init()

	rr := doRequest(t, router, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","version":"v1.2.3","commit":"abc123"}`, rr.Body.String())
}

func TestInit_MetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("relay_metric 1\n"))
	})

	t.Run("served when configured", func(t *testing.T) {
		router := newTestHandler(&fakeRelayService{}, metrics).Init()

		rr := doRequest(t, router, http.MethodGet, "/metrics", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "relay_metric 1\n", rr.Body.String())
	})

	t.Run("absent when not configured", func(t *testing.T) {
		router := newTestHandler(&fakeRelayService{}, nil).Init()

		rr := doRequest(t, router, http.MethodGet, "/metrics", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestInit_EchoesTraceID(t *testing.T) {
	router := newTestHandler(&fakeRelayService{env: models.Failure("x")}, nil).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(`{}`))
	req.Header.Set(traceIDHeader, "trace-42")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
}
