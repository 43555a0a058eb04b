package publicapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/givefund/give/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "/api/public/events", 2*time.Second,
		WithHTTPClient(srv.Client()),
		WithMetrics(metrics.New(prometheus.NewRegistry())),
	)
}

func TestClient_Events(t *testing.T) {
	t.Run("decodes an array", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/public/events", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `[{"id":"1","title":"Food Drive","status":"UPCOMING"},{"_id":"2","title":"Gala","status":"COMPLETED"}]`)
		})

		events, err := client.Events(context.Background())
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "Food Drive", events[0].Title)
		assert.Equal(t, "2", events[1].ID)
	})

	t.Run("non-array body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"content":[]}`)
		})

		events, err := client.Events(context.Background())
		require.ErrorIs(t, err, ErrNotArray)
		assert.Nil(t, events)
	})

	t.Run("server error", func(t *testing.T) {
		calls := 0
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.Events(context.Background())
		require.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Equal(t, 1, calls, "the client must not retry")
	})

	t.Run("malformed json", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"title":`)
		})

		_, err := client.Events(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode events")
	})

	t.Run("skips malformed records", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[{"id":"1","title":42},{"id":"2","title":"Gala"}]`)
		})

		events, err := client.Events(context.Background())
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "Gala", events[0].Title)
	})

	t.Run("cancelled context", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `[]`)
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Events(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClient_Image(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/images/events/ok.png" {
			w.Header().Set("Content-Type", "image/png")
			_, _ = io.WriteString(w, "png-bytes")
			return
		}
		http.NotFound(w, r)
	})

	t.Run("found", func(t *testing.T) {
		resp, err := client.Image(context.Background(), "events/ok.png")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(body))
	})

	t.Run("missing", func(t *testing.T) {
		resp, err := client.Image(context.Background(), "events/missing.png")
		require.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Nil(t, resp)
	})
}

func TestClient_ImageRejectsEscapes(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.NotFound(w, r)
	})

	for _, rel := range []string{"", "/etc/passwd", "../admin", "events/../../admin", "./events/a.jpg", `..\admin`} {
		resp, err := client.Image(context.Background(), rel)
		require.ErrorIs(t, err, ErrInvalidImagePath, rel)
		assert.Nil(t, resp)
	}
	assert.Zero(t, calls, "rejected paths must not reach the api")
}

func TestClient_ImageEscapesPath(t *testing.T) {
	var got string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "image/png")
		_, _ = io.WriteString(w, "png-bytes")
	})

	resp, err := client.Image(context.Background(), "events/gala night%2f.jpg")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "/api/images/events/gala%20night%252f.jpg", got)
}

func TestCleanImagePath(t *testing.T) {
	for _, raw := range []string{"..%2fadmin", "events%2f..%2f..%2fadmin", "%2fetc%2fpasswd", "bad%zzescape"} {
		_, err := CleanImagePath(raw)
		require.ErrorIs(t, err, ErrInvalidImagePath, raw)
	}

	rel, err := CleanImagePath("events%2Fgala%20night.jpg")
	require.NoError(t, err)
	assert.Equal(t, "events/gala night.jpg", rel)

	rel, err = CleanImagePath("events//a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "events/a.jpg", rel)
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://api.example.org/api/images/events/a.jpg", ImageURL("https://api.example.org", "events/a.jpg"))
	assert.Equal(t, "https://api.example.org/api/images/events/a.jpg", ImageURL("https://api.example.org/", "/events/a.jpg"))
}
