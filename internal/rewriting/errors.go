package rewriting

import "fmt"

// APICallError represents a failure calling the LLM provider
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a malformed or schema-invalid LLM response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ContactDroppedError is returned when the model's rewritten resume no longer
// contains the candidate's original contact details. The response is rejected
// rather than repaired because fabricated or mangled contact info is worse
// than no rewrite at all.
type ContactDroppedError struct {
	MissingFields []string
}

func (e *ContactDroppedError) Error() string {
	return fmt.Sprintf("rewritten resume dropped contact fields: %v", e.MissingFields)
}
