package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/napat/kanri/internal/model"
)

// respondWith builds a generateContent response whose first candidate
// carries the given text payload.
func respondWith(t *testing.T, text string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func testClient(srv *httptest.Server) *Client {
	c := New("test-key", "test-model")
	c.baseURL = srv.URL
	c.client = srv.Client()
	return c
}

func TestGeneratePlanSuccess(t *testing.T) {
	plan := `{
		"name": "CRM Migration",
		"description": "Move the sales team to the new CRM",
		"category": "INTERNAL",
		"tasks": [
			{"title": "Export contacts", "priority": "HIGH", "assignee": "Data Engineer", "estimatedDays": 2},
			{"title": "Train the team", "priority": "MEDIUM"}
		]
	}`

	var gotPath string
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		respondWith(t, plan)(w, r)
	}))
	defer srv.Close()

	c := testClient(srv)
	p, err := c.GeneratePlan(context.Background(), "migrate our CRM")
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if gotPath != "/models/test-model:generateContent" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotBody.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Errorf("mime type = %q", gotBody.GenerationConfig.ResponseMIMEType)
	}
	if gotBody.GenerationConfig.ResponseSchema == nil {
		t.Error("request carried no response schema")
	}
	if len(gotBody.Contents) == 0 || !strings.Contains(gotBody.Contents[0].Parts[0].Text, "migrate our CRM") {
		t.Error("prompt missing from request")
	}

	if p.Name != "CRM Migration" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Category != model.CategoryInternal {
		t.Errorf("category = %q", p.Category)
	}
	if len(p.Tasks) != 2 {
		t.Fatalf("task count = %d", len(p.Tasks))
	}
	if p.Tasks[0].EstimatedDays != 2 {
		t.Errorf("estimate = %d, want 2", p.Tasks[0].EstimatedDays)
	}
}

func TestGeneratePlanNoAPIKey(t *testing.T) {
	c := New("", "")
	_, err := c.GeneratePlan(context.Background(), "anything")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestGeneratePlanEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := testClient(srv)
	_, err := c.GeneratePlan(context.Background(), "anything")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestGeneratePlanMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(respondWith(t, "not json at all"))
	defer srv.Close()

	c := testClient(srv)
	_, err := c.GeneratePlan(context.Background(), "anything")
	if err == nil || !strings.Contains(err.Error(), "failed to parse plan response") {
		t.Errorf("err = %v, want parse failure", err)
	}
}

func TestGeneratePlanRejectsBadEnum(t *testing.T) {
	tests := []struct {
		name string
		plan string
	}{
		{
			name: "invalid category",
			plan: `{"name": "X", "description": "d", "category": "SIDEWAYS", "tasks": []}`,
		},
		{
			name: "invalid priority",
			plan: `{"name": "X", "description": "d", "category": "INTERNAL",
				"tasks": [{"title": "Y", "priority": "URGENT"}]}`,
		},
		{
			name: "missing name",
			plan: `{"name": "", "description": "d", "category": "INTERNAL", "tasks": []}`,
		},
		{
			name: "missing description",
			plan: `{"name": "X", "description": "", "category": "INTERNAL", "tasks": []}`,
		},
		{
			name: "missing task title",
			plan: `{"name": "X", "description": "d", "category": "INTERNAL",
				"tasks": [{"title": "", "priority": "LOW"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(respondWith(t, tc.plan))
			defer srv.Close()

			c := testClient(srv)
			if _, err := c.GeneratePlan(context.Background(), "anything"); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGeneratePlanAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"code": 429, "message": "quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	c := testClient(srv)
	_, err := c.GeneratePlan(context.Background(), "anything")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("err = %v, want quota message", err)
	}
}

func TestSuggestBreakdown(t *testing.T) {
	srv := httptest.NewServer(respondWith(t, `{"subtasks": ["Draft outline", "Review", "Publish"]}`))
	defer srv.Close()

	c := testClient(srv)
	steps, err := c.SuggestBreakdown(context.Background(), "Write blog post")
	if err != nil {
		t.Fatalf("SuggestBreakdown: %v", err)
	}
	if len(steps) != 3 || steps[0] != "Draft outline" {
		t.Errorf("steps = %v", steps)
	}
}

func TestSuggestBreakdownDegradesOnBadPayload(t *testing.T) {
	srv := httptest.NewServer(respondWith(t, "garbage"))
	defer srv.Close()

	c := testClient(srv)
	steps, err := c.SuggestBreakdown(context.Background(), "anything")
	if err != nil {
		t.Fatalf("expected silent degrade, got %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("steps = %v, want empty", steps)
	}
}
