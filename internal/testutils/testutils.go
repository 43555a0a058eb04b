// Package testutils holds helpers shared by the integration tests.
package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/givefund/give/internal/config"
	"github.com/joho/godotenv"
)

// ConfigForTests loads the .env.test file, points the public API at
// apiBaseURL and returns a validated config.
func ConfigForTests(t *testing.T, apiBaseURL string) *config.Config {
	t.Helper()

	// Find project root by looking for go.mod to reliably locate .env.test
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}
	t.Setenv("API_BASE_URL", apiBaseURL)

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}

// PublicAPI is a fake of the public events API.
type PublicAPI struct {
	*httptest.Server
	// Images maps relative image paths to their bodies.
	Images map[string]string
}

// NewPublicAPI serves eventsJSON at /api/public/events and the given images
// under /api/images/. Everything else is a 404. The server is closed when the
// test ends.
func NewPublicAPI(t *testing.T, eventsJSON string, images map[string]string) *PublicAPI {
	t.Helper()
	api := &PublicAPI{Images: images}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/public/events":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, eventsJSON)
		case strings.HasPrefix(r.URL.Path, "/api/images/"):
			body, ok := api.Images[strings.TrimPrefix(r.URL.Path, "/api/images/")]
			if !ok {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = io.WriteString(w, body)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(api.Close)
	return api
}
