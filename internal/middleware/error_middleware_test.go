package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	HandleAPIError(ctx, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, &body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"account suspended", apperrors.ErrAccountSuspended, http.StatusForbidden, dto.ErrorCodeAccountSuspended},
		{"registration closed", apperrors.ErrRegistrationClosed, http.StatusForbidden, dto.ErrorCodeRegistrationClosed},
		{"maintenance mode", apperrors.ErrMaintenanceMode, http.StatusServiceUnavailable, dto.ErrorCodeMaintenanceMode},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeUnauthorized},
		{"no active session", apperrors.ErrNoActiveSession, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"resource not found", apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"already exists", apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"token invalid", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"unknown list", apperrors.ErrUnknownUserList, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorSuspendedMessage(t *testing.T) {
	_, body := handleError(t, apperrors.ErrAccountSuspended)

	require.NotNil(t, body.Error)
	assert.Equal(t, "Access Denied: Your account has been suspended. Contact Administration.", body.Error.Message)
}

func TestHandleAPIErrorCustomMessagePreserved(t *testing.T) {
	status, body := handleError(t, apperrors.NewForbiddenError("Only the session owner can close it"))

	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Only the session owner can close it", body.Error.Message)
}
