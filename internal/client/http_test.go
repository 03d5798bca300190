package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// testHandler captures the incoming request details and returns a canned response.
type testHandler struct {
	// captured from the request
	method    string
	path      string
	query     string
	auth      string
	requestID string

	// canned response
	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.query = r.URL.RawQuery
	h.auth = r.Header.Get("Authorization")
	h.requestID = r.Header.Get("X-Request-ID")

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

// newTestClient creates an HTTPClient pointed at a test server with the given handler.
func newTestClient(h http.Handler, token string) (*HTTPClient, *httptest.Server) {
	srv := httptest.NewServer(h)
	c := NewHTTPClient(srv.URL, token)
	return c, srv
}

func TestHTTPClient_GetQuests(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"quests": [
				{
					"id": 12,
					"description": "Reboot the fleet",
					"creator": "alice",
					"labors": [
						{"id": 1, "host": "web01", "completion_time": "2026-03-01T10:00:00Z"},
						{"id": 2, "host": "web02"}
					]
				},
				{"id": 13, "description": "No labors yet"}
			]
		}`,
	}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	quests, err := c.GetQuests(context.Background())
	if err != nil {
		t.Fatalf("GetQuests() error = %v", err)
	}

	if h.method != http.MethodGet {
		t.Errorf("method = %q, want GET", h.method)
	}
	if h.path != "/api/v1/quests" {
		t.Errorf("path = %q, want /api/v1/quests", h.path)
	}
	for _, want := range []string{"filterClosed=true", "limit=all", "expand=labors"} {
		if !strings.Contains(h.query, want) {
			t.Errorf("query %q missing %q", h.query, want)
		}
	}
	if h.requestID == "" {
		t.Error("expected X-Request-ID header to be set")
	}

	if len(quests) != 2 {
		t.Fatalf("got %d quests, want 2", len(quests))
	}
	if quests[0].ID != 12 || quests[0].Creator != "alice" {
		t.Errorf("quests[0] = %+v", quests[0])
	}
	if len(quests[0].Labors) != 2 {
		t.Fatalf("got %d labors, want 2", len(quests[0].Labors))
	}
	if !quests[0].Labors[0].Finished() {
		t.Error("labor 1 should be finished")
	}
	if quests[0].Labors[1].Finished() {
		t.Error("labor 2 should not be finished")
	}
	if quests[1].Labors != nil {
		t.Errorf("quests[1].Labors = %v, want nil", quests[1].Labors)
	}
}

func TestHTTPClient_GetFates(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"fates": [
				{
					"id": 1,
					"creationEventType": {"id": 9, "category": "system-reboot", "state": "required"},
					"completionEventType": {"id": 10, "category": "system-reboot", "state": "completed"},
					"description": "reboot it"
				},
				{
					"id": 2,
					"follows_id": 1,
					"description": "release it"
				}
			]
		}`,
	}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	fates, err := c.GetFates(context.Background())
	if err != nil {
		t.Fatalf("GetFates() error = %v", err)
	}

	if h.path != "/api/v1/fates" {
		t.Errorf("path = %q, want /api/v1/fates", h.path)
	}
	for _, want := range []string{"expand=eventtypes", "limit=all"} {
		if !strings.Contains(h.query, want) {
			t.Errorf("query %q missing %q", h.query, want)
		}
	}

	if len(fates) != 2 {
		t.Fatalf("got %d fates, want 2", len(fates))
	}
	if fates[0].CreationEventType == nil || fates[0].CreationEventType.ID != 9 {
		t.Errorf("fates[0].CreationEventType = %+v", fates[0].CreationEventType)
	}
	if fates[0].FollowsID != nil {
		t.Errorf("fates[0].FollowsID = %v, want nil", *fates[0].FollowsID)
	}
	if fates[1].FollowsID == nil || *fates[1].FollowsID != 1 {
		t.Errorf("fates[1].FollowsID = %v, want 1", fates[1].FollowsID)
	}
}

func TestHTTPClient_Health(t *testing.T) {
	h := &testHandler{responseBody: `{"status": "ok"}`}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	status, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if status != "ok" {
		t.Errorf("status = %q, want ok", status)
	}
	if h.path != "/api/v1/health" {
		t.Errorf("path = %q, want /api/v1/health", h.path)
	}
}

func TestHTTPClient_BearerToken(t *testing.T) {
	h := &testHandler{responseBody: `{"fates": []}`}
	c, srv := newTestClient(h, "sekrit")
	defer srv.Close()

	if _, err := c.GetFates(context.Background()); err != nil {
		t.Fatalf("GetFates() error = %v", err)
	}
	if h.auth != "Bearer sekrit" {
		t.Errorf("Authorization = %q, want Bearer sekrit", h.auth)
	}
}

func TestHTTPClient_APIError(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusInternalServerError,
		responseBody: `{"error": "database unavailable"}`,
	}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	_, err := c.GetFates(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
	if apiErr.Message != "database unavailable" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "database unavailable")
	}
}

func TestHTTPClient_APIErrorNonJSONBody(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusBadGateway,
		responseBody: "upstream timeout",
	}
	c, srv := newTestClient(h, "")
	defer srv.Close()

	_, err := c.GetQuests(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Message != "upstream timeout" {
		t.Errorf("got %+v", apiErr)
	}
}
