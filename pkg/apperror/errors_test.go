package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func TestMapErrorToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrConflict, http.StatusConflict},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrRateLimitExceeded, http.StatusTooManyRequests},
		{errors.New("something else"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrConflict), http.StatusConflict},
	}

	for _, tc := range cases {
		if got := MapErrorToStatus(tc.err); got != tc.want {
			t.Fatalf("MapErrorToStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	if got := Translate(nil); got != nil {
		t.Fatalf("Translate(nil) = %v", got)
	}
	if got := Translate(gorm.ErrRecordNotFound); !errors.Is(got, ErrNotFound) {
		t.Fatalf("record-not-found: got %v", got)
	}
	if got := Translate(gorm.ErrDuplicatedKey); !errors.Is(got, ErrConflict) {
		t.Fatalf("duplicated-key: got %v", got)
	}
	if got := Translate(ErrConflict); !errors.Is(got, ErrConflict) {
		t.Fatalf("sentinel passthrough: got %v", got)
	}

	opaque := errors.New("disk on fire")
	if got := Translate(opaque); got != opaque {
		t.Fatalf("opaque error mutated: got %v", got)
	}
}
