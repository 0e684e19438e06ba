package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Caches and infrastructure layers
// return these (optionally wrapped) so services can translate them into domain
// errors.
//
// - ErrNotFound: the referenced record does not exist in the scope queried
// - ErrUnavailable: the upstream or resource could not be reached
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
