package core

import "fmt"

// Error represents a structured error with code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is matching by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WrapError creates a new error with the same code but with a cause.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Predefined errors. Only the config errors are fatal; validation,
// provider and simulation errors are recovered locally and degrade the
// affected record to a neutral outcome.
var (
	// Record validation errors
	ErrInvalidRecord = &Error{Code: "INVALID_RECORD", Message: "market data record invalid"}

	// Provider errors
	ErrProviderFailed  = &Error{Code: "PROVIDER_FAILED", Message: "signal provider failed"}
	ErrProviderTimeout = &Error{Code: "PROVIDER_TIMEOUT", Message: "signal provider timed out"}

	// Sentiment analyzer errors
	ErrSentimentFailed = &Error{Code: "SENTIMENT_FAILED", Message: "sentiment analysis failed"}

	// Simulation errors
	ErrSimulationFailed = &Error{Code: "SIMULATION_FAILED", Message: "trade simulation failed"}

	// Config errors
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "required configuration missing"}

	// Data errors
	ErrNoData = &Error{Code: "NO_DATA", Message: "no data available"}
)

func errMissingField(field string) error {
	return fmt.Errorf("required field %q missing or malformed", field)
}
