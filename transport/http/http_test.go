package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dost/config"
	"dost/internal/session"
	transport "dost/transport/http"
	"dost/transport/http/router"
)

type passthroughMiddleware struct{}

func (passthroughMiddleware) Tracing(next http.Handler) http.Handler { return next }

func (passthroughMiddleware) CORS(next http.Handler) http.Handler { return next }

func (passthroughMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

type passthroughAuthRole struct{}

func (passthroughAuthRole) Auth(next http.Handler) http.Handler { return next }

func (passthroughAuthRole) RBAC(next http.Handler) http.Handler { return next }

func newTestServer(store *session.Store) *transport.HTTP {
	cfg := &config.Config{}
	r := router.New(router.DomainHandlers{}, passthroughAuthRole{})

	return transport.New(cfg, r, nil, passthroughMiddleware{}, store)
}

func TestSetup_OpensSessionLoadingGate(t *testing.T) {
	store := session.NewStore()

	if !store.Snapshot().Loading {
		t.Fatal("expected a fresh store to report loading")
	}

	srv := newTestServer(store)
	srv.Handler()

	snap := store.Snapshot()

	if snap.Loading {
		t.Error("expected loading to clear once the server finished setup")
	}

	if snap.User != nil {
		t.Errorf("expected no user before sign-in, got %+v", snap.User)
	}
}

func TestHealthCheck_DemoMode(t *testing.T) {
	srv := newTestServer(session.NewStore())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
