package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/internal/service"
)

func newTestRouter() http.Handler {
	return NewRouter(Routes{
		Base:     New(nil, "http://localhost:5173"),
		Projects: NewProjectHandler(service.NewProjectService(repository.NewMemProjectRepository(repository.SeedProjects()))),
		Contacts: NewContactHandler(service.NewContactService(repository.NewMemContactRepository())),
	})
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/unknown"},
		{http.MethodGet, "/"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodPost, "/api/projects"},
		{http.MethodGet, "/api/projects/1/images"},
	} {
		rec := serve(router, tc.method, tc.path, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tc.method, tc.path, rec.Code)
			continue
		}
		var resp messageResponse
		_ = json.NewDecoder(rec.Body).Decode(&resp)
		if resp.Success || resp.Message != "Route not found" {
			t.Errorf("%s %s: unexpected body %+v", tc.method, tc.path, resp)
		}
	}
}

func TestRouter_MiddlewareHeaders(t *testing.T) {
	rec := serve(newTestRouter(), http.MethodGet, "/api/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Error("expected CORS header")
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers")
	}
}

func TestRouter_ProjectCatalog(t *testing.T) {
	router := newTestRouter()

	rec := serve(router, http.MethodGet, "/api/projects?featured=true", "")
	var list struct {
		Success bool             `json:"success"`
		Count   int              `json:"count"`
		Data    []*model.Project `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Count != len(repository.SeedProjects()) {
		t.Errorf("expected all seeded projects to be featured, got %d", list.Count)
	}
	for i := 1; i < len(list.Data); i++ {
		if list.Data[i-1].Order > list.Data[i].Order {
			t.Errorf("projects not sorted by order")
		}
	}

	rec = serve(router, http.MethodGet, "/api/projects?category=frontend", "")
	if !strings.Contains(rec.Body.String(), `"count":0`) {
		t.Errorf("expected empty frontend list, got %s", rec.Body.String())
	}

	rec = serve(router, http.MethodGet, "/api/projects/3", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "College Placement") {
		t.Errorf("unexpected get response %d %s", rec.Code, rec.Body.String())
	}

	rec = serve(router, http.MethodGet, "/api/projects/99", "")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Project not found") {
		t.Errorf("unexpected missing project response %d %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ContactFlow(t *testing.T) {
	router := newTestRouter()

	rec := serve(router, http.MethodPost, "/api/contact", `{"name":"A","email":"not-an-email","subject":"s","message":"m"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", rec.Code)
	}

	rec = serve(router, http.MethodPost, "/api/contact", `{"name":"A","email":"a.b@c.org","subject":"","message":"m"}`)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "All fields are required") {
		t.Fatalf("expected 400 for missing subject, got %d %s", rec.Code, rec.Body.String())
	}

	for _, name := range []string{"First", "Second"} {
		rec = serve(router, http.MethodPost, "/api/contact", `{"name":"`+name+`","email":"a.b@c.org","subject":"s","message":"m"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", rec.Code, rec.Body.String())
		}
	}

	rec = serve(router, http.MethodGet, "/api/contact", "")
	var list struct {
		Count int                     `json:"count"`
		Data  []*model.ContactMessage `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Count != 2 {
		t.Fatalf("expected 2 stored messages (rejected ones not stored), got %d", list.Count)
	}
	if list.Data[0].Name != "Second" || list.Data[0].ID != "2" {
		t.Errorf("expected newest first, got %+v", list.Data[0])
	}
	if list.Data[0].Read {
		t.Error("expected read=false")
	}
}
