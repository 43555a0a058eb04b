package server_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/givefund/give/internal/app"
	"github.com/givefund/give/internal/config"
	"github.com/givefund/give/internal/server"
	"github.com/givefund/give/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upstreamEvents = `[
	{"id":"1","title":"Spring Marathon","description":"Run for a cause.","date":"2030-03-10T09:00:00Z","location":"City Park","status":"UPCOMING","imageUrl":"events/marathon.jpg"},
	{"_id":"2","title":"Old Gala","date":"2020-01-01T18:00:00Z","status":"COMPLETED"},
	{"id":"3","title":"Book Fair","eventDate":"2030-01-15T10:00:00Z","status":"UPCOMING"}
]`

// setupIntegrationTest starts a fake public API and a full server wired
// against it. overrides adjust the loaded test config.
func setupIntegrationTest(t *testing.T, overrides ...func(*config.Config)) *httptest.Server {
	t.Helper()

	upstream := testutils.NewPublicAPI(t, upstreamEvents, map[string]string{
		"events/marathon.jpg": "jpeg",
	})
	cfg := testutils.ConfigForTests(t, upstream.URL)
	for _, override := range overrides {
		override(cfg)
	}

	ctx := context.Background()
	s, err := server.New(ctx, cfg, server.Options{Modules: app.NewModules(), Version: "test"})
	require.NoError(t, err)
	require.NoError(t, s.RegisterRoutes(ctx))

	ts := httptest.NewServer(s.E)
	t.Cleanup(func() {
		ts.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	})
	return ts
}

func fetch(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServer_Integration(t *testing.T) {
	ts := setupIntegrationTest(t)
	client := ts.Client()

	t.Run("home page composes the sections", func(t *testing.T) {
		resp, body := fetch(t, client, ts.URL+"/")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

		hero := strings.Index(body, "hero-section")
		events := strings.Index(body, "events-section")
		testimonials := strings.Index(body, "testimonials-section")
		assert.True(t, hero > 0 && hero < events && events < testimonials)
	})

	t.Run("upcoming events fragment", func(t *testing.T) {
		resp, body := fetch(t, client, ts.URL+"/events/upcoming")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 2, strings.Count(body, `class="event-card"`))
		assert.Less(t, strings.Index(body, "Book Fair"), strings.Index(body, "Spring Marathon"))
		assert.Contains(t, body, `src="/images/events/marathon.jpg"`)
	})

	t.Run("image proxy and placeholder", func(t *testing.T) {
		resp, body := fetch(t, client, ts.URL+"/images/events/marathon.jpg")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "jpeg", body)

		resp, _ = fetch(t, client, ts.URL+"/images/events/gone.jpg")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	})

	t.Run("calendar export", func(t *testing.T) {
		resp, body := fetch(t, client, ts.URL+"/events/spring-marathon/calendar.ics")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "SUMMARY:Spring Marathon")
		assert.Contains(t, body, "DTSTART:20300310T090000Z")
	})

	t.Run("testimonials follow the viewport", func(t *testing.T) {
		_, body := fetch(t, client, ts.URL+"/testimonials?vw=1200")
		assert.Equal(t, 3, strings.Count(body, `class="testimonial-card"`))

		_, body = fetch(t, client, ts.URL+"/testimonials?vw=500")
		assert.Contains(t, body, "testimonial-swiper")
	})

	t.Run("static assets", func(t *testing.T) {
		resp, _ := fetch(t, client, ts.URL+"/static/crowdfund_logo.png")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("health and metrics", func(t *testing.T) {
		resp, body := fetch(t, client, ts.URL+"/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"ok","version":"test"}`, body)

		_, body = fetch(t, client, ts.URL+"/metrics")
		assert.Contains(t, body, "give_public_api_requests_total")
		assert.Contains(t, body, "give_section_renders_total")
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, body := fetch(t, client, ts.URL+"/nowhere/at/all")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "error-page")
	})
}

func TestServer_DonateRouteState(t *testing.T) {
	ts := setupIntegrationTest(t)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	resp, body := fetch(t, client, ts.URL+"/donate")
	require.Equal(t, http.StatusOK, resp.StatusCode, "the redirect lands on the home page")
	assert.Contains(t, body, `data-scroll-to="DonationCard"`)

	_, body = fetch(t, client, ts.URL+"/")
	assert.NotContains(t, body, "data-scroll-to", "route state is consumed by one render")
}

func TestServer_MinimalConfig(t *testing.T) {
	ts := setupIntegrationTest(t, func(cfg *config.Config) {
		cfg.SessionSecret = ""
		cfg.ImageProxy = false
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	t.Run("image proxy is not routed", func(t *testing.T) {
		resp, _ := fetch(t, client, ts.URL+"/images/events/marathon.jpg")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("route state works with a generated session key", func(t *testing.T) {
		resp, body := fetch(t, client, ts.URL+"/donate")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `data-scroll-to="DonationCard"`)
	})
}
