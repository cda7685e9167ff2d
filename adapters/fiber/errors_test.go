package fiber

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ecocycle/server/core"
)

// Requirement: mapErrorToStatus maps core errors to the right HTTP status codes
func TestMapErrorToStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "maps ErrInvalidCredentials to 401",
			err:        core.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "maps ErrSessionExpired to 401",
			err:        core.ErrSessionExpired,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "maps ErrForbidden to 403",
			err:        core.ErrForbidden,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "maps ErrPickupNotFound to 404",
			err:        core.ErrPickupNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "maps ErrNoItemDetected to 404",
			err:        core.ErrNoItemDetected,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "maps ErrUserExists to 409",
			err:        core.ErrUserExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "maps ErrInsufficientCoins to 409",
			err:        core.ErrInsufficientCoins,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "maps ErrEmailRequired to 400",
			err:        core.ErrEmailRequired,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "maps ErrDateInPast to 400",
			err:        core.ErrDateInPast,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "maps wrapped errors through errors.Is",
			err:        wrapped{core.ErrForbidden},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "defaults unknown errors to 500",
			err:        errors.New("unknown error"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "nil is OK",
			err:        nil,
			wantStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			status := mapErrorToStatus(test.err)

			// Assert
			if status != test.wantStatus {
				t.Errorf("mapErrorToStatus should map error to %d; got %d", test.wantStatus, status)
			}
		})
	}
}

type wrapped struct{ err error }

func (w wrapped) Error() string { return "wrapped: " + w.err.Error() }
func (w wrapped) Unwrap() error { return w.err }
