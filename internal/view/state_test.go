package view_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/givefund/give/internal/view"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newStateServer() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	e.GET("/set", func(c echo.Context) error {
		if err := view.SetRouteState(c, view.StateScrollTo, "DonationCard"); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/pop", func(c echo.Context) error {
		return c.String(http.StatusOK, view.PopRouteState(c, view.StateScrollTo))
	})
	return e
}

func TestRouteState(t *testing.T) {
	e := newStateServer()

	t.Run("consumed exactly once", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/set", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
		cookie := rec.Header().Get("Set-Cookie")
		require.NotEmpty(t, cookie)

		req := httptest.NewRequest(http.MethodGet, "/pop", nil)
		req.Header.Set("Cookie", strings.Split(cookie, ";")[0])
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, "DonationCard", rec.Body.String())

		cleared := rec.Header().Get("Set-Cookie")
		require.NotEmpty(t, cleared, "popping should rewrite the session")

		req = httptest.NewRequest(http.MethodGet, "/pop", nil)
		req.Header.Set("Cookie", strings.Split(cleared, ";")[0])
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("no session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pop", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestTempl(t *testing.T) {
	var sb strings.Builder
	err := view.Templ(html.Em(g.Text("wrapped"))).Render(context.Background(), &sb)
	require.NoError(t, err)
	assert.Equal(t, "<em>wrapped</em>", sb.String())
}
