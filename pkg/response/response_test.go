package response

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"OnShift/pkg/errors"
)

func TestErrorToHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errors.Unauthorized, http.StatusUnauthorized},
		{errors.InvalidCredentials, http.StatusUnauthorized},
		{errors.PermissionDenied, http.StatusForbidden},
		{errors.UserInactive, http.StatusForbidden},
		{errors.UserNotFound, http.StatusNotFound},
		{errors.AlreadyCheckedIn, http.StatusConflict},
		{errors.NotCheckedIn, http.StatusConflict},
		{errors.UsernameTaken, http.StatusConflict},
		{errors.ToggleInProgress, http.StatusConflict},
		{errors.RateLimited, http.StatusTooManyRequests},
		{errors.InvalidAction, http.StatusBadRequest},
		{errors.InvalidDate, http.StatusBadRequest},
		{errors.InvalidUserID, http.StatusBadRequest},
		{errors.ValidationFailed, http.StatusBadRequest},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ErrorToHTTPStatus(tc.err), "code %v", tc.err)
	}
}

func TestErrorToHTTPStatusUnknownErrorIs500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, ErrorToHTTPStatus(stderrors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError,
		ErrorToHTTPStatus(errors.Definition{Code: "SOMETHING_ELSE", Message: "x"}))
}
