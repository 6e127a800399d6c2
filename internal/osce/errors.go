package osce

import "fmt"

// ErrorKind classifies upstream failures. The orchestrator treats every kind
// the same way (retry, then fail); the kind and message survive for diagnostics.
type ErrorKind string

const (
	KindTimeout  ErrorKind = "timeout"
	KindHTTP     ErrorKind = "http"
	KindBusiness ErrorKind = "business"
)

// APIError is the error returned for any failed upstream call.
type APIError struct {
	Kind    ErrorKind
	Code    string // upstream resultadoT01 code, when present
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("osce %s error (code %s): %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("osce %s error: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

func timeoutError(cause error) *APIError {
	return &APIError{Kind: KindTimeout, Message: "request timeout", Cause: cause}
}

func httpError(msg string, cause error) *APIError {
	return &APIError{Kind: KindHTTP, Message: msg, Cause: cause}
}

func businessError(code, msg string) *APIError {
	return &APIError{Kind: KindBusiness, Code: code, Message: msg}
}
