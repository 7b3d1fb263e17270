package skinapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"skinkit/internal/palette"
	"skinkit/internal/persist"
	"skinkit/internal/theme"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{name: "variant", err: fmt.Errorf("%w: sepia", theme.ErrUnknownVariant), code: "UNKNOWN_VARIANT", status: http.StatusNotFound},
		{name: "state", err: fmt.Errorf("%w: %q", palette.ErrUnknownState, "hovered"), code: "UNKNOWN_STATE", status: http.StatusBadRequest},
		{name: "version", err: fmt.Errorf("%w: 9", persist.ErrUnsupportedVersion), code: "UNSUPPORTED_VERSION", status: http.StatusUnprocessableEntity},
		{name: "element", err: fmt.Errorf("%w: slider.knob", persist.ErrUnknownElement), code: "UNKNOWN_ELEMENT", status: http.StatusUnprocessableEntity},
		{name: "body", err: fmt.Errorf("decode skin document: %w", &http.MaxBytesError{Limit: 1}), code: "BODY_TOO_LARGE", status: http.StatusRequestEntityTooLarge},
		{name: "other", err: errors.New("disk on fire"), code: "INTERNAL_ERROR", status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapError(tt.err)
			if got.Code != tt.code || got.Status != tt.status {
				t.Fatalf("mapError() = %s/%d, want %s/%d", got.Code, got.Status, tt.code, tt.status)
			}
			if !errors.Is(got, tt.err) {
				t.Fatal("mapped error should unwrap to its cause")
			}
		})
	}
}

func TestMapErrorKeepsAPIError(t *testing.T) {
	t.Parallel()

	in := &APIError{Code: "BAD_JSON", Status: http.StatusBadRequest}
	if got := mapError(fmt.Errorf("wrapped: %w", in)); got != in {
		t.Fatalf("mapError() = %+v, want the original", got)
	}
}
