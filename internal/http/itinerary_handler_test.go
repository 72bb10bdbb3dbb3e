package http

import (
	"fmt"
	"net/http"
	"testing"

	"travelpal/internal/llm"
	"travelpal/internal/service"
)

const generatedItineraryJSON = `{
	"destination": "Tokyo",
	"duration": 2,
	"summary": "Two days in Tokyo",
	"days": [
		{"day": 1, "title": "Shinjuku", "activities": []},
		{"day": 2, "title": "Asakusa", "activities": []}
	]
}`

func TestItineraryCreateAndGet(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/itinerary", `{
		"destination": "Tokyo",
		"title": "Tokyo getaway",
		"budget": 1200,
		"content": {
			"destination": "Tokyo",
			"duration": 2,
			"summary": "Two days in Tokyo",
			"days": []
		}
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created struct {
		ID          string `json:"id"`
		Destination string `json:"destination"`
		Title       string `json:"title"`
		Budget      *int   `json:"budget"`
	}
	decodeBody(t, w, &created)
	if created.ID == "" || created.Destination != "Tokyo" || created.Budget == nil || *created.Budget != 1200 {
		t.Fatalf("unexpected itinerary: %+v", created)
	}

	w = env.do(t, http.MethodGet, "/api/itinerary/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var fetched struct {
		ID      string `json:"id"`
		Content struct {
			Summary string `json:"summary"`
		} `json:"content"`
	}
	decodeBody(t, w, &fetched)
	if fetched.ID != created.ID || fetched.Content.Summary != "Two days in Tokyo" {
		t.Fatalf("round trip lost data: %+v", fetched)
	}
}

func TestItineraryGetNotFound(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/api/itinerary/missing-id", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestItineraryCreateValidation(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/itinerary", `{"destination": "Tokyo"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without title/content, got %d: %s", w.Code, w.Body.String())
	}
}

func TestItineraryGenerate(t *testing.T) {
	env := newTestEnv()
	env.llm.JSONText = generatedItineraryJSON

	w := env.do(t, http.MethodPost, "/api/itinerary/generate", `{
		"destination": "Tokyo, Japan",
		"duration_days": 2,
		"preferences": "food and temples"
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Content struct {
			Destination string `json:"destination"`
			MapLocation string `json:"mapLocation"`
			Days        []struct {
				Day int `json:"day"`
			} `json:"days"`
		} `json:"content"`
	}
	decodeBody(t, w, &resp)
	if resp.Content.Destination != "Tokyo" || len(resp.Content.Days) != 2 {
		t.Fatalf("unexpected content: %+v", resp.Content)
	}
	if resp.Content.MapLocation != "Tokyo, Japan" {
		t.Fatalf("expected map location from the request, got %q", resp.Content.MapLocation)
	}
}

func TestItineraryGenerateProviderFailure(t *testing.T) {
	env := newTestEnv()
	env.llm.JSONErr = fmt.Errorf("completion: %w", llm.ErrQuotaExhausted)

	w := env.do(t, http.MethodPost, "/api/itinerary/generate", `{
		"destination": "Tokyo",
		"duration_days": 2,
		"preferences": "food"
	}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["error"] != service.ErrGenerationQuota.Error() {
		t.Fatalf("expected quota message, got %q", resp["error"])
	}
}

func TestItineraryGenerateValidation(t *testing.T) {
	env := newTestEnv()

	cases := []string{
		`{"duration_days": 2, "preferences": "food"}`,
		`{"destination": "Tokyo", "preferences": "food"}`,
		`{"destination": "Tokyo", "duration_days": -1, "preferences": "food"}`,
		`{"destination": "Tokyo", "duration_days": 2}`,
	}
	for i, body := range cases {
		if w := env.do(t, http.MethodPost, "/api/itinerary/generate", body); w.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d: %s", i, w.Code, w.Body.String())
		}
	}
}
