package model

import (
	"fmt"
	"net/url"
	"unicode/utf8"
)

// Validation failure reasons.
const (
	ReasonRequired = "required"
	ReasonLength   = "length"
	ReasonRange    = "range"
	ReasonFormat   = "format"
	ReasonEmpty    = "empty"
)

// ValidationError reports the first field that failed validation and why.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s (%s)", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// requireString enforces presence plus inclusive length bounds on a
// required string field.
func requireString(field, value string, min, max int) *ValidationError {
	if value == "" {
		return invalid(field, ReasonRequired)
	}
	return boundString(field, value, min, max)
}

// boundString enforces inclusive length bounds on a string already known to
// be present. Lengths are counted in runes, matching how the documents were
// validated before they reached this service.
func boundString(field, value string, min, max int) *ValidationError {
	if n := utf8.RuneCountInString(value); n < min || n > max {
		return invalid(field, ReasonLength)
	}
	return nil
}

// optionalString enforces an upper length bound on a field that may be absent.
func optionalString(field string, value *string, max int) *ValidationError {
	if value == nil {
		return nil
	}
	return boundString(field, *value, 0, max)
}

// requireURL rejects anything that does not parse as an absolute http(s) URL.
func requireURL(field, value string) *ValidationError {
	if value == "" {
		return invalid(field, ReasonRequired)
	}
	return checkURL(field, value)
}

func optionalURL(field string, value *string) *ValidationError {
	if value == nil {
		return nil
	}
	return checkURL(field, *value)
}

func checkURL(field, value string) *ValidationError {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid(field, ReasonFormat)
	}
	return nil
}
