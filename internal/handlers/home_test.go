package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/givefund/give/internal/module"
	"github.com/givefund/give/internal/rendering"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type fakeSection struct {
	module.BaseModule
	name string
	err  error
}

func (s *fakeSection) Name() string { return s.name }

func (s *fakeSection) Section(c echo.Context) (g.Node, error) {
	if s.err != nil {
		return nil, s.err
	}
	return h.Section(h.Class(s.name)), nil
}

func TestHomeGet(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	handler := NewHomeHandler([]module.Section{
		&fakeSection{name: "first"},
		&fakeSection{name: "broken", err: errors.New("boom")},
		&fakeSection{name: "second"},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.HomeGet(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "<title>Give</title>")
	assert.NotContains(t, body, "broken")
	first := strings.Index(body, `class="first"`)
	second := strings.Index(body, `class="second"`)
	assert.True(t, first > 0 && first < second, "sections keep their order")
	assert.NotContains(t, body, "data-scroll-to", "no route state without a session")
}

func TestHomeGet_RequiresRenderer(t *testing.T) {
	e := echo.New()
	handler := NewHomeHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	assert.ErrorIs(t, handler.HomeGet(e.NewContext(req, rec)), echo.ErrRendererNotRegistered)
}
