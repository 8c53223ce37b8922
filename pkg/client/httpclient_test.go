package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"renovacampo/pkg/model"
)

func TestHttpClient_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/things" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":7,"name":"` + body["name"] + `"}`))
	}))
	defer server.Close()

	c := NewHttpClient(server.URL)
	resp, err := c.Send(context.Background(), http.MethodPost, "/things", map[string]string{"name": "Fazenda"})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	var got struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	if err := resp.DecodeJSON(&got); err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if got.ID != 7 || got.Name != "Fazenda" {
		t.Errorf("got %+v", got)
	}
}

func TestHttpClient_SendStatusError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "message wins", body: `{"message":"duplicated tax id","error":"Conflict"}`, wantMessage: "duplicated tax id"},
		{name: "error field", body: `{"error":"Conflict"}`, wantMessage: "Conflict"},
		{name: "not json", body: `<html>boom</html>`, wantMessage: "Conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewHttpClient(server.URL).Send(context.Background(), http.MethodPost, "/x", map[string]int{"a": 1})

			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error = %v, want *StatusError", err)
			}
			if statusErr.StatusCode != http.StatusConflict {
				t.Errorf("StatusCode = %d", statusErr.StatusCode)
			}
			if statusErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", statusErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestHttpClient_PlainVerbsDoNotFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	resp, err := NewHttpClient(server.URL).GET(context.Background(), "/missing")
	if err != nil {
		t.Fatalf("GET() error = %v", err)
	}
	if resp.StatusCode != http.StatusNotFound || resp.IsSuccess() {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
}

func TestHttpClient_UploadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)

		if header.Filename != "lote.jpg" || string(content) != "jpeg-bytes" {
			t.Errorf("file = %q %q", header.Filename, content)
		}
		if r.FormValue("description") != "vista aerea" {
			t.Errorf("description = %q", r.FormValue("description"))
		}
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	_, err := NewHttpClient(server.URL).UploadFile(context.Background(), "/upload", "lote.jpg",
		strings.NewReader("jpeg-bytes"), map[string]string{"description": "vista aerea"})
	if err != nil {
		t.Fatalf("UploadFile() error = %v", err)
	}
}

func TestHttpClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHttpClient(server.URL).GET(ctx, "/"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestEntityClients_Paths(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.RequestURI())
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx := context.Background()
	b := NewBackend(server.URL, DefaultTimeout)

	calls := []func() (*Response, error){
		func() (*Response, error) { return b.Properties.GetByID(ctx, "12") },
		func() (*Response, error) {
			return b.Properties.UploadPhoto(ctx, "12", "a.png", strings.NewReader("x"))
		},
		func() (*Response, error) { return b.Projects.GetByStatus(ctx, "IN_PROGRESS") },
		func() (*Response, error) { return b.Projects.GetCategories(ctx) },
		func() (*Response, error) { return b.Projects.Search(ctx, "milho safra") },
		func() (*Response, error) { return b.Projects.UpdateStatus(ctx, "3", "APPROVED") },
		func() (*Response, error) { return b.Investors.GetByTaxID(ctx, "52998224725") },
		func() (*Response, error) { return b.Investors.Activate(ctx, "9") },
		func() (*Response, error) { return b.Investors.Deactivate(ctx, "9") },
		func() (*Response, error) { return b.Investors.SearchByName(ctx, "Ana") },
	}
	for i, call := range calls {
		if _, err := call(); err != nil {
			t.Fatalf("call %d error = %v", i, err)
		}
	}

	want := []string{
		"GET /api/v1/property/12",
		"POST /api/v1/photos/upload/12",
		"GET /api/v1/project/status/IN_PROGRESS",
		"GET /api/v1/project/categories",
		"GET /api/v1/project/search?q=milho+safra",
		"PATCH /api/v1/project/3/status?status=APPROVED",
		"GET /api/v1/investors/taxId/52998224725",
		"PATCH /api/v1/investors/9/activate",
		"PATCH /api/v1/investors/9/deactivate",
		"GET /api/v1/investors/search?name=Ana",
	}
	if len(seen) != len(want) {
		t.Fatalf("seen %d requests, want %d: %v", len(seen), len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("request %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestBackend_CreateRoutesByKind(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	defer server.Close()

	b := NewBackend(server.URL, DefaultTimeout)
	entities := []model.Entity{
		&model.PropertyPayload{Name: "Sitio"},
		&model.ProjectPayload{Name: "Irrigacao"},
		&model.InvestorPayload{Name: "Ana"},
	}
	for _, e := range entities {
		stored, err := b.Create(context.Background(), e)
		if err != nil {
			t.Fatalf("Create(%s) error = %v", e.Kind(), err)
		}
		if string(stored) != `{"id":42}` {
			t.Errorf("stored = %s", stored)
		}
	}

	want := []string{PropertyPath, ProjectPath, InvestorPath}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path %d = %q, want %q", i, paths[i], want[i])
		}
	}
}
