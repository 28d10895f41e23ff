package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

// HTTPError is the transport view of a failure: status, public code and message.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

type errorMapping struct {
	status int
	code   string
}

// assessmentErrors maps domain codes raised while scoring a submission.
var assessmentErrors = map[string]errorMapping{
	apperrors.CodeInvalidInput:   {http.StatusBadRequest, "invalid_request"},
	apperrors.CodeSchemaMismatch: {http.StatusInternalServerError, apperrors.CodeSchemaMismatch},
}

// assessError converts an Assess failure. Anything not listed is a failed prediction.
func assessError(err error) *HTTPError {
	m, ok := assessmentErrors[apperrors.CodeOf(err)]
	if !ok {
		m = errorMapping{http.StatusInternalServerError, "prediction_failed"}
	}
	return NewHTTPError(m.status, m.code, errMessage(err), err)
}

func asHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
}

func abortWithError(c *gin.Context, err *HTTPError) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
