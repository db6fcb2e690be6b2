package web

import "embed"

//go:embed static/*
var embeddedStaticFiles embed.FS //nolint:gochecknoglobals
