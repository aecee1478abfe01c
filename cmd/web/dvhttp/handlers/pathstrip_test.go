package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	testLog "github.com/sirupsen/logrus/hooks/test"
)

func TestWithPathStrip(t *testing.T) {
	logger, _ := testLog.NewNullLogger()

	var gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	})

	h := WithPathStrip(logger, "/verify")(mux)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/verify/api/health", nil)
	h.ServeHTTP(rec, req)

	if want := "/api/health"; gotPath != want {
		t.Errorf("WithPathStrip() path = %q, want %q", gotPath, want)
	}
}

func Test_normalizeSlashes(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "All OK", path: "/verify", want: "/verify"},
		{name: "Fixing Suffix", path: "/verify/", want: "/verify"},
		{name: "Fixing Prefix", path: "verify/", want: "/verify"},
		{name: "Fixing Both", path: "verify", want: "/verify"},
	}

	t.Run("Logs", func(t *testing.T) {
		t.Run("Prefix", func(t *testing.T) {
			logger, hook := testLog.NewNullLogger()
			_ = normalizeSlashes(logger, "foo")

			if len(hook.Entries) != 1 {
				t.Errorf("Expected a log message, instead I got %d %+v", len(hook.Entries), hook.Entries)
				return
			}

			if hook.Entries[0].Level != logrus.WarnLevel {
				t.Errorf("Expected warning level messages")
			}
		})

		t.Run("Suffix", func(t *testing.T) {
			logger, hook := testLog.NewNullLogger()
			_ = normalizeSlashes(logger, "/foo/")

			if len(hook.Entries) != 1 {
				t.Errorf("Expected a log message, instead I got %d %+v", len(hook.Entries), hook.Entries)
				return
			}

			if hook.Entries[0].Level != logrus.WarnLevel {
				t.Errorf("Expected warning level messages")
			}
		})
	})

	logger, _ := testLog.NewNullLogger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeSlashes(logger, tt.path); got != tt.want {
				t.Errorf("normalizeSlashes() = %v, want %v", got, tt.want)
			}
		})
	}
}
