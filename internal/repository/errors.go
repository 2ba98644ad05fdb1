package repository

import "errors"

// ErrNotFound is returned by FindByID when no row has the requested id.
// UpdateStatus and Delete never return it; both are no-ops for missing rows.
var ErrNotFound = errors.New("record not found")
