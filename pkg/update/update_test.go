package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveRelease(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	old := latestURL
	latestURL = srv.URL
	t.Cleanup(func() { latestURL = old })
}

func TestIsLatest(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		version    string
		wantLatest bool
		wantTag    string
	}{
		{"newer release", 200, `{"tag_name":"v1.2.0"}`, "v1.1.9", false, "v1.2.0"},
		{"same release", 200, `{"tag_name":"v1.2.0"}`, "v1.2.0", true, "v1.2.0"},
		{"older release", 200, `{"tag_name":"v1.0.0"}`, "v1.2.0", true, "v1.0.0"},
		{"server error", 500, ``, "v1.2.0", true, "v1.2.0"},
		{"bad json", 200, `{`, "v1.2.0", true, "v1.2.0"},
		{"invalid tag", 200, `{"tag_name":"latest"}`, "v1.2.0", true, "v1.2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serveRelease(t, tt.status, tt.body)
			latest, tag := IsLatest(context.Background(), tt.version)
			if latest != tt.wantLatest || tag != tt.wantTag {
				t.Errorf("IsLatest(%q) = %v, %q, want %v, %q", tt.version, latest, tag, tt.wantLatest, tt.wantTag)
			}
		})
	}
}
