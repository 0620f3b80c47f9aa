package repositories

import "errors"

// ErrNotFound is returned when a document matching the filter does not
// exist. Handlers translate it to a 404 (or a 401 during identity
// resolution).
var ErrNotFound = errors.New("not found")
