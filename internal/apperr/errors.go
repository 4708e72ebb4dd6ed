package apperr

// ErrInvalidRequest is the code reported for every ValidationError.
const ErrInvalidRequest Code = "invalid_request"

// ValidationError rejects a request before any expression is evaluated:
// a malformed body, an unknown command or an input over the length limit.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidRequest so callers can test for it without errors.As.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func (e *ValidationError) ErrorCode() Code {
	return ErrInvalidRequest
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
