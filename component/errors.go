package component

import "errors"

// Sentinel errors returned by this package. Consumers match them with
// errors.Is rather than comparing message strings.
var (
	// ErrUnknownOperation is returned when a configured operation name is not
	// one of the known lifecycle operations.
	ErrUnknownOperation = errors.New("unknown lifecycle operation")
)
