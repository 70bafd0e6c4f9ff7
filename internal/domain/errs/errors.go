// Package errs defines the two domain failure classes of the origination
// core. Anything else coming out of a repository or gateway is passed
// through unchanged.
package errs

import "errors"

// ValidationError reports malformed or out-of-policy caller input. Field
// names the offending input; it is empty when the whole request body is
// missing and "User" when the applicant is unknown to the user directory.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidation builds a ValidationError for the given field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConfigurationError reports missing required reference data (an absent
// loan type or workflow state). It signals an operator or data-seeding
// defect, never a user mistake.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }

// NewConfiguration builds a ConfigurationError.
func NewConfiguration(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

// AsValidation unwraps err into a *ValidationError when it carries one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsConfiguration unwraps err into a *ConfigurationError when it carries one.
func AsConfiguration(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
