package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchAllPresentAndAbsent(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"v":"5.5.7"}`))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer bad.Close()

	l := NewLoader(0)
	got := l.FetchAll(context.Background(), map[string]string{
		"wallet":  good.URL,
		"success": bad.URL,
		"loading": "",
	})

	if len(got) != 3 {
		t.Fatalf("expected an entry per requested name, got %d", len(got))
	}
	if got["wallet"] == nil {
		t.Fatalf("expected wallet animation present")
	}
	if string(got["wallet"].Data) != `{"v":"5.5.7"}` {
		t.Fatalf("unexpected data: %s", got["wallet"].Data)
	}
	if got["success"] != nil || got["loading"] != nil {
		t.Fatalf("failed fetches must degrade to nil")
	}
}

func TestFetchInvalidJSONIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	l := NewLoader(0)
	if anim := l.Fetch(context.Background(), "x", srv.URL); anim != nil {
		t.Fatalf("expected nil for non-JSON body")
	}
}

func TestFetchTimeoutIsAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	l := NewLoader(20 * time.Millisecond)
	if anim := l.Fetch(context.Background(), "slow", srv.URL); anim != nil {
		t.Fatalf("expected nil on timeout")
	}
}
