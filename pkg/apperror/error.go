package apperror

import "net/http"

type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Details string      `json:"details,omitempty"`
	Fields  interface{} `json:"fields,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation is a 400 carrying per-field messages for the form.
func Validation(message string, fields interface{}, err error) *AppError {
	e := New(http.StatusBadRequest, message, err)
	e.Fields = fields
	return e
}

// TooManyRequests is the rate limiter's rejection.
func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

// Internal keeps the cause in Details; the error middleware decides whether to expose it.
func Internal(message string, err error) *AppError {
	e := New(http.StatusInternalServerError, message, err)
	if err != nil {
		e.Details = err.Error()
	}
	return e
}
