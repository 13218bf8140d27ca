package domain

// ValidationError is a client-detected rule violation. Fields carries
// per-field messages for form validation; it is nil for form-scoped errors
// such as an empty cart.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}
