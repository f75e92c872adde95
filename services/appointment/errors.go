package appointment

import (
	"errors"

	appointmentRepo "medhub/database/repository/appointment"
)

// ErrSlotTaken is surfaced when the requested slot is already booked, either
// by the pre-check or by losing the conditional insert race.
var ErrSlotTaken = appointmentRepo.ErrSlotTaken

// ValidationError rejects a booking before any write call is issued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
