package service

import "errors"

// ErrNotFound is returned by store implementations when a row is absent or
// belongs to a different tenant. Services translate it into the taxonomy with
// an entity-specific message; callers can never distinguish the two cases.
var ErrNotFound = errors.New("record not found")
