package tracker

import "errors"

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Error kinds returned by tracker operations. Operation errors wrap one of
// these with detail, so callers match them with errors.Is.
const (
	ErrValidation         TrackerError = "validation error"
	ErrNotFound           TrackerError = "not found"
	ErrInvariantViolation TrackerError = "invariant violation"
)

// Constructor errors
const (
	ErrNilConfig          TrackerError = "config cannot be nil"
	ErrNilFriendRepo      TrackerError = "friend repository cannot be nil"
	ErrNilDrinkLogRepo    TrackerError = "drink log repository cannot be nil"
	ErrNilDrinkConfigRepo TrackerError = "drink config repository cannot be nil"
	ErrNilClock           TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator   TrackerError = "UUID generator cannot be nil"
)

// ErrorKind names the kind of a tracker error for logs and metrics
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvariantViolation):
		return "invariant_violation"
	default:
		return "internal"
	}
}
