package assets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Placeholder(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "crowdfund_logo.png", []byte("logo"), 0644))

	data, err := New(memFs).Placeholder()
	require.NoError(t, err)
	assert.Equal(t, "logo", string(data))
}

func TestStore_PlaceholderMissing(t *testing.T) {
	_, err := New(afero.NewMemMapFs()).Placeholder()
	assert.Error(t, err)
}

func TestStore_Handler(t *testing.T) {
	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "css/site.css", []byte("body{}"), 0644))

	srv := httptest.NewServer(http.StripPrefix(Prefix, New(memFs).Handler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/static/css/site.css")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "body{}", string(body))
}

func TestNewEmbedded(t *testing.T) {
	store, err := NewEmbedded()
	require.NoError(t, err)

	data, err := store.Placeholder()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "\x89PNG", string(data[:4]))
}
