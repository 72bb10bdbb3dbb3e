package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearch_EmptyWithoutKey(t *testing.T) {
	c := NewClient("", nil, nil)
	got := c.Search(context.Background(), "ramen in tokyo", "")
	if string(got) != `{"results":[]}` {
		t.Fatalf("expected empty result set, got %s", got)
	}
}

func TestSearch_Passthrough(t *testing.T) {
	const body = `{"results":[{"name":"Ichiran","rating":4.5}],"status":"OK"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/textsearch/json") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "ramen" || r.URL.Query().Get("type") != "restaurant" {
			t.Errorf("unexpected query params: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient("key", nil, nil)
	c.baseURL = srv.URL

	got := c.Search(context.Background(), "ramen", "restaurant")
	if string(got) != body {
		t.Fatalf("expected provider passthrough, got %s", got)
	}
}

func TestSearch_EmptyOnProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("key", nil, nil)
	c.baseURL = srv.URL

	if got := c.Search(context.Background(), "ramen", ""); string(got) != `{"results":[]}` {
		t.Fatalf("expected empty result set, got %s", got)
	}
}

func TestDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/details/json") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("place_id") != "abc123" {
			t.Errorf("unexpected place_id %q", r.URL.Query().Get("place_id"))
		}
		_, _ = w.Write([]byte(`{"result":{"name":"Ichiran"},"status":"OK"}`))
	}))
	defer srv.Close()

	c := NewClient("key", nil, nil)
	c.baseURL = srv.URL

	got := c.Details(context.Background(), "abc123")
	if string(got) != `{"name":"Ichiran"}` {
		t.Fatalf("expected unwrapped result, got %s", got)
	}
}

func TestDetails_NilWithoutKey(t *testing.T) {
	c := NewClient("", nil, nil)
	if got := c.Details(context.Background(), "abc123"); got != nil {
		t.Fatalf("expected nil details, got %s", got)
	}
}
