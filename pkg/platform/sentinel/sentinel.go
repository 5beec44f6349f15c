package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores, registries and loaders
// return these (optionally wrapped) so callers can branch with errors.Is.
//
//   - ErrNotFound: the named project, environment or file does not exist
//   - ErrConflict: a name is defined more than once
//   - ErrInvalidState: configuration is present but unusable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
