package articles

const (
	// ErrCodeValidation marks failures the caller can fix by correcting the request.
	ErrCodeValidation = "CreateArticle.Validation"

	// ErrCodeInternal marks persistence or publish failures. The article may
	// already exist when publish fails; there is no compensation step.
	ErrCodeInternal = "CreateArticle.Internal"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func validationError(message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message}
}

func internalError(message string) *Error {
	return &Error{Code: ErrCodeInternal, Message: message}
}
