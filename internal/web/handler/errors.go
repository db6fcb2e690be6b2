package handler

import "errors"

// ErrNilDeps is returned by Init when the app or a collaborator is missing.
var ErrNilDeps = errors.New("app or handler dependencies are nil")
