package http

import (
	"net/http"
	"testing"
)

func TestWaitlistJoin(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/waitlist", `{
		"name": "Ana",
		"email": "Ana@Example.com",
		"travel_interests": "beaches",
		"newsletter": true
	}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var entry struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Newsletter bool   `json:"newsletter"`
	}
	decodeBody(t, w, &entry)
	if entry.ID == "" || entry.Email != "ana@example.com" || !entry.Newsletter {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestWaitlistJoinDuplicate(t *testing.T) {
	env := newTestEnv()

	body := `{"name": "Ana", "email": "ana@example.com"}`
	if w := env.do(t, http.MethodPost, "/api/waitlist", body); w.Code != http.StatusCreated {
		t.Fatalf("first join: expected 201, got %d", w.Code)
	}

	w := env.do(t, http.MethodPost, "/api/waitlist", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	decodeBody(t, w, &resp)
	if resp["error"] != "Email already registered" {
		t.Fatalf("unexpected error body: %v", resp)
	}
}

func TestWaitlistJoinValidation(t *testing.T) {
	env := newTestEnv()

	cases := []string{
		`{"email": "ana@example.com"}`,
		`{"name": "Ana"}`,
		`{"name": "Ana", "email": "not-an-email"}`,
	}
	for i, body := range cases {
		if w := env.do(t, http.MethodPost, "/api/waitlist", body); w.Code != http.StatusBadRequest {
			t.Fatalf("case %d: expected 400, got %d: %s", i, w.Code, w.Body.String())
		}
	}
}
