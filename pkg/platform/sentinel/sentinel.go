package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors. Validation
// failures use pkg/derrors directly.
var (
	ErrNotFound = errors.New("not found")
)
