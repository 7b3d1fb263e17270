package skinapi

import (
	"errors"
	"net/http"

	"skinkit/internal/palette"
	"skinkit/internal/persist"
	"skinkit/internal/theme"
)

// APIError is the JSON error body. Status is not serialized separately from
// the response code.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Cause   error  `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error { return e.Cause }

func mapError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, theme.ErrUnknownVariant):
		return &APIError{Code: "UNKNOWN_VARIANT", Message: "skin variant is not known", Status: http.StatusNotFound, Cause: err}
	case errors.Is(err, palette.ErrUnknownState):
		return &APIError{Code: "UNKNOWN_STATE", Message: "state name is not known", Status: http.StatusBadRequest, Cause: err}
	case errors.Is(err, persist.ErrUnsupportedVersion):
		return &APIError{Code: "UNSUPPORTED_VERSION", Message: "skin document version is not supported", Status: http.StatusUnprocessableEntity, Cause: err}
	case errors.Is(err, persist.ErrUnknownElement):
		return &APIError{Code: "UNKNOWN_ELEMENT", Message: "skin document names an element no control has", Status: http.StatusUnprocessableEntity, Cause: err}
	case errors.Is(err, persist.ErrNotValues):
		return &APIError{Code: "READ_ONLY_ELEMENT", Message: "skin document stores values into a shared provider", Status: http.StatusUnprocessableEntity, Cause: err}
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return &APIError{Code: "BODY_TOO_LARGE", Message: "request body exceeds max size", Status: http.StatusRequestEntityTooLarge, Cause: err}
	}
	return &APIError{Code: "INTERNAL_ERROR", Message: "skin api internal error", Status: http.StatusInternalServerError, Cause: err}
}
