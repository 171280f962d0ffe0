package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lead_intake_backend/internal/auth"
	authservice "lead_intake_backend/internal/auth/service"
	"lead_intake_backend/internal/events"
	apphttp "lead_intake_backend/internal/http"
	"lead_intake_backend/internal/http/router"
	"lead_intake_backend/internal/leads"
	"lead_intake_backend/internal/leads/repository"
	"lead_intake_backend/internal/leads/transport"
	"lead_intake_backend/internal/storage"
	"lead_intake_backend/platform/logger"
	"lead_intake_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const testMaxResumeSize = 1 << 20

type testConfig struct{}

func (testConfig) GetHTTPAddr() string             { return ":0" }
func (testConfig) GetCORSAllowAll() bool           { return true }
func (testConfig) GetCORSOrigins() []string        { return nil }
func (testConfig) GetCORSAllowCreds() bool         { return false }
func (testConfig) GetJWTSecret() string            { return "test-signing-secret" }
func (testConfig) GetJWTAlgorithm() string         { return "HS256" }
func (testConfig) GetInternalUsername() string     { return "admin" }
func (testConfig) GetTokenTTL() time.Duration      { return time.Hour }
func (testConfig) GetInternalPasswordHash() string { return "" }

type memStore struct{}

func (memStore) Put(_ context.Context, name string, _ []byte, _ string) (string, error) {
	return "uploads/" + name, nil
}

func newTestEngine(t *testing.T) (*gin.Engine, *repository.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.New("development")
	val := validator.New()
	cfg := testConfig{}

	repo := repository.NewMemory()
	resumes := storage.NewServiceWithStore(memStore{}, testMaxResumeSize, log)
	bus := events.NewInMemoryBus(log)

	leadsModule := leads.NewModuleWithRepository(repo, resumes, bus, val, log)
	authModule := auth.NewModule(cfg, val, log)

	app := &apphttp.App{
		Config:  cfg,
		Logger:  log,
		Modules: []apphttp.Module{authModule, leadsModule},
	}

	return router.New(app), repo
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := authservice.New(testConfig{}, logger.New("development")).IssueToken("admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func multipartForm(t *testing.T, fields map[string]string, resumeName string, resumeContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	if resumeName != "" {
		part, err := w.CreateFormFile("resume", resumeName)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(resumeContent); err != nil {
			t.Fatalf("failed to write file content: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func submitLead(t *testing.T, engine *gin.Engine, fields map[string]string, resumeName string, resumeContent []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartForm(t, fields, resumeName, resumeContent)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func validFields() map[string]string {
	return map[string]string{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane@example.com",
	}
}

func TestSubmitLead(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := submitLead(t, engine, validFields(), "resume.pdf", []byte("resume bytes"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	var lead transport.LeadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &lead); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if lead.State != "PENDING" {
		t.Fatalf("state = %q, want PENDING", lead.State)
	}
	if lead.FirstName != "Jane" || lead.LastName != "Doe" || lead.Email != "jane@example.com" {
		t.Fatalf("unexpected lead payload: %+v", lead)
	}
	if lead.ResumePath == nil || !strings.HasSuffix(*lead.ResumePath, ".pdf") {
		t.Fatalf("unexpected resume path: %v", lead.ResumePath)
	}
	if strings.Contains(*lead.ResumePath, "resume.pdf") {
		t.Fatalf("resume path %q must not keep the original filename", *lead.ResumePath)
	}
}

func TestSubmitLeadFormErrors(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name       string
		fields     map[string]string
		resumeName string
		wantStatus int
	}{
		{"missing first name", map[string]string{"last_name": "Doe", "email": "jane@example.com"}, "resume.pdf", http.StatusUnprocessableEntity},
		{"missing last name", map[string]string{"first_name": "Jane", "email": "jane@example.com"}, "resume.pdf", http.StatusUnprocessableEntity},
		{"missing email", map[string]string{"first_name": "Jane", "last_name": "Doe"}, "resume.pdf", http.StatusUnprocessableEntity},
		{"invalid email", map[string]string{"first_name": "Jane", "last_name": "Doe", "email": "not-an-email"}, "resume.pdf", http.StatusUnprocessableEntity},
		{"missing resume", validFields(), "", http.StatusUnprocessableEntity},
		{"bad resume extension", validFields(), "malware.exe", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := submitLead(t, engine, tt.fields, tt.resumeName, []byte("content"))
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestSubmitLeadOversizedResume(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec := submitLead(t, engine, validFields(), "big.pdf", make([]byte, testMaxResumeSize+1))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}

	rec = submitLead(t, engine, validFields(), "exact.pdf", make([]byte, testMaxResumeSize))
	if rec.Code != http.StatusCreated {
		t.Fatalf("content at the size limit must be accepted, got %d", rec.Code)
	}
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	engine, _ := newTestEngine(t)

	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/leads", nil),
		httptest.NewRequest(http.MethodGet, "/api/leads/unknown", nil),
		httptest.NewRequest(http.MethodPatch, "/api/leads/unknown", strings.NewReader(`{"state":"REACHED_OUT"}`)),
	}

	for _, req := range requests {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: status = %d, want 401", req.Method, req.URL.Path, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status = %d, want 401", rec.Code)
	}
}

func TestListAndGetLeads(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := bearerToken(t)

	rec := submitLead(t, engine, validFields(), "resume.pdf", []byte("content"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit failed: %d", rec.Code)
	}
	var created transport.LeadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created lead: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d, want 200", rec.Code)
	}
	var listed []transport.LeadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", listed)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/leads/"+created.ID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status = %d, want 200", rec.Code)
	}

	for _, id := range []string{"not-a-uuid", "00000000-0000-0000-0000-000000000001"} {
		req = httptest.NewRequest(http.MethodGet, "/api/leads/"+id, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec = httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("get %s: status = %d, want 404", id, rec.Code)
		}
	}
}

func TestUpdateLeadState(t *testing.T) {
	engine, _ := newTestEngine(t)
	token := bearerToken(t)

	rec := submitLead(t, engine, validFields(), "resume.pdf", []byte("content"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit failed: %d", rec.Code)
	}
	var created transport.LeadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created lead: %v", err)
	}

	patch := func(id, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/api/leads/"+id, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	rec2 := patch(created.ID, `{"state":"REACHED_OUT"}`)
	if rec2.Code != http.StatusOK {
		t.Fatalf("patch: status = %d, want 200; body: %s", rec2.Code, rec2.Body.String())
	}
	var updated transport.LeadResponse
	if err := json.Unmarshal(rec2.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode updated lead: %v", err)
	}
	if updated.State != "REACHED_OUT" {
		t.Fatalf("state = %q, want REACHED_OUT", updated.State)
	}

	if rec2 = patch(created.ID, `{"state":"REACHED_OUT"}`); rec2.Code != http.StatusBadRequest {
		t.Fatalf("repeat patch: status = %d, want 400", rec2.Code)
	}
	if rec2 = patch(created.ID, `{"state":"PENDING"}`); rec2.Code != http.StatusBadRequest {
		t.Fatalf("patch to PENDING: status = %d, want 400", rec2.Code)
	}
	if rec2 = patch(created.ID, `{"state":"ARCHIVED"}`); rec2.Code != http.StatusBadRequest {
		t.Fatalf("patch unknown state: status = %d, want 400", rec2.Code)
	}
	if rec2 = patch(created.ID, `{}`); rec2.Code != http.StatusUnprocessableEntity {
		t.Fatalf("patch without state: status = %d, want 422", rec2.Code)
	}
	if rec2 = patch("00000000-0000-0000-0000-000000000002", `{"state":"REACHED_OUT"}`); rec2.Code != http.StatusNotFound {
		t.Fatalf("patch unknown lead: status = %d, want 404", rec2.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	engine, _ := newTestEngine(t)

	body := fmt.Sprintf(`{"username":%q,"password":%q}`, "admin", "whatever")
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login with unconfigured hash: status = %d, want 401", rec.Code)
	}
}
