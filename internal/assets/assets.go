// Package assets serves the site's static files and the image placeholder.
package assets

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/givefund/give/web"
	"github.com/spf13/afero"
)

const (
	// Prefix is the URL prefix static files are served under.
	Prefix = "/static"

	placeholderFile = "crowdfund_logo.png"

	// PlaceholderPath is the URL of the image shown when an event image is
	// missing or fails to load.
	PlaceholderPath = Prefix + "/" + placeholderFile

	// HeroImagePath and AvatarPath are the bundled illustrations.
	HeroImagePath = Prefix + "/img/homesection.png"
	AvatarPath    = Prefix + "/img/avatar.png"

	StylesheetPath = Prefix + "/css/site.css"
	ScriptPath     = Prefix + "/js/site.js"
)

// Store is a read-only view of the static asset tree.
type Store struct {
	fs afero.Fs
}

// New wraps an afero filesystem whose root is the static directory.
func New(fsys afero.Fs) *Store {
	return &Store{fs: afero.NewReadOnlyFs(fsys)}
}

// NewEmbedded returns a Store over the assets compiled into the binary.
func NewEmbedded() (*Store, error) {
	sub, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("open embedded static dir: %w", err)
	}
	return New(afero.FromIOFS{FS: sub}), nil
}

// Handler serves the asset tree. Mount it with the Prefix stripped.
func (s *Store) Handler() http.Handler {
	return http.FileServer(http.FS(afero.NewIOFS(s.fs)))
}

// Placeholder returns the bytes of the fallback image.
func (s *Store) Placeholder() ([]byte, error) {
	data, err := afero.ReadFile(s.fs, placeholderFile)
	if err != nil {
		return nil, fmt.Errorf("read placeholder: %w", err)
	}
	return data, nil
}
