package auth_test

//go:generate mockgen -source=auth.go -destination=mocks/mocks.go -package=mocks JWTValidator

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"assurance/pkg/platform/middleware/auth"
	"assurance/pkg/platform/middleware/auth/mocks"
)

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newHandler := func(v auth.JWTValidator, seen *string) http.Handler {
		return auth.RequireAuth(v, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*seen = auth.GetUserID(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))
	}

	t.Run("valid token stores subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := mocks.NewMockJWTValidator(ctrl)
		validator.EXPECT().ValidateToken("good").Return(&auth.JWTClaims{UserID: "user-1"}, nil)

		var seen string
		req := httptest.NewRequest(http.MethodPost, "/beneficiary-insurance", nil)
		req.Header.Set("Authorization", "Bearer good")
		rr := httptest.NewRecorder()
		newHandler(validator, &seen).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "user-1", seen)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := mocks.NewMockJWTValidator(ctrl)
		validator.EXPECT().ValidateToken("bad").Return(nil, errors.New("invalid token"))

		var seen string
		req := httptest.NewRequest(http.MethodPost, "/beneficiary-insurance", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rr := httptest.NewRecorder()
		newHandler(validator, &seen).ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"error":"unauthorized","error_description":"Invalid or expired token"}`, rr.Body.String())
		assert.Empty(t, seen)
	})

	t.Run("missing header never reaches validator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := mocks.NewMockJWTValidator(ctrl)

		var seen string
		for _, header := range []string{"", "Basic abc", "Bearer "} {
			req := httptest.NewRequest(http.MethodPost, "/beneficiary-insurance", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rr := httptest.NewRecorder()
			newHandler(validator, &seen).ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code, header)
		}
		assert.Empty(t, seen)
	})
}
