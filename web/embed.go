package web

import "embed"

// FS contains the embedded static assets served under /static: stylesheet,
// site script, images and the placeholder used when an event image fails.
//
//go:embed static/*
var FS embed.FS
