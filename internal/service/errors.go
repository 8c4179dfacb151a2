package service

import "errors"

// Sentinel errors returned by the services. Validation failures are reported
// separately as validator.ValidationErrors.
var (
	// ErrDuplicateID indicates a registration conflict on an existing ID.
	ErrDuplicateID = errors.New("identifier already registered")

	// ErrInvalidCredentials covers every credential mismatch. No detail is
	// attached about which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStudentNotFound indicates the target student does not exist.
	ErrStudentNotFound = errors.New("student not found")
)
