package contact

import "errors"

// ErrValidation is returned when a required inquiry field is blank.
var ErrValidation = errors.New("validation error")

// Inquiry is the transient contact-form payload. Nothing here is persisted.
type Inquiry struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Status reports the simulated acknowledgment state of the form.
type Status struct {
	Sent bool `json:"sent"`
}
