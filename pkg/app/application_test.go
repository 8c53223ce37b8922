package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"renovacampo/pkg/config"
	"renovacampo/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type routeHandler func(*httprouter.Router)

func (f routeHandler) RegisterRoutes(r *httprouter.Router) { f(r) }

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	cfg := config.FromEnv()
	cfg.Log = logger.New(logger.Config{Level: "info", Format: logger.JSON, Output: io.Discard, Service: "test"})

	a := NewApplication(cfg)
	a.SetApp(
		routeHandler(func(r *httprouter.Router) {
			r.POST("/api/v1/echo", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
				w.WriteHeader(http.StatusCreated)
			})
		}),
		routeHandler(func(r *httprouter.Router) {
			r.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
				w.WriteHeader(http.StatusOK)
			})
		}),
	)
	t.Cleanup(func() { a.stopWorkers(context.Background()) })
	return a
}

func TestApplication_Routing(t *testing.T) {
	a := newTestApplication(t)
	h := a.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Errorf("app status = %d, want 201", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("request ID header missing")
	}
}

func TestApplication_AppStackEnforcesContentType(t *testing.T) {
	a := newTestApplication(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader("nome=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415", rec.Code)
	}
}

func TestApplication_ShutdownHooksRun(t *testing.T) {
	a := newTestApplication(t)

	var order []string
	a.OnShutdown(func(context.Context) error { order = append(order, "producer"); return nil })
	a.OnShutdown(func(context.Context) error { order = append(order, "archive"); return nil })

	a.stopWorkers(context.Background())
	if len(order) != 2 || order[0] != "producer" || order[1] != "archive" {
		t.Errorf("order = %v", order)
	}
}
