package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartchain/heartchain/internal/service"
	"github.com/heartchain/heartchain/internal/utils"
	"github.com/heartchain/heartchain/models"
)

// authProbe records whether the wrapped handler ran and which admin ID it
// saw in the request context.
type authProbe struct {
	called  bool
	adminID string
	found   bool
}

func (p *authProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.adminID, p.found = utils.GetAdminIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// TestAuthMiddleware_Success verifies that a valid bearer token lets the
// request through with the admin ID stored in the context.
func TestAuthMiddleware_Success(t *testing.T) {
	const adminID = "admin-42"

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{AdminID: adminID}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	probe := &authProbe{}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(probe.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, probe.called)
	assert.True(t, probe.found)
	assert.Equal(t, adminID, probe.adminID)
}

// TestAuthMiddleware_Rejections verifies that missing, malformed and invalid
// credentials are all rejected with 401 and never reach the wrapped handler.
func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		parseErr   error
	}{
		{name: "missing header"},
		{name: "header without token", authHeader: "Bearer"},
		{name: "empty token", authHeader: "Bearer "},
		{name: "invalid token", authHeader: "Bearer bad.jwt.token", parseErr: service.ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{}, tt.parseErr
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: auth})

			probe := &authProbe{}
			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			h.auth(probe.handler()).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, probe.called)
		})
	}
}

// TestGetTokenFromAuthHeader exercises the raw header parsing.
func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "well formed", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
