package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blog-api/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func identityRouter(resolver auth.IdentityResolver, protected bool) *gin.Engine {
	r := gin.New()
	r.Use(Identity(resolver, zap.NewNop()))
	handlers := []gin.HandlerFunc{}
	if protected {
		handlers = append(handlers, RequireIdentity())
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, userID.String())
	})
	r.GET("/whoami", handlers...)
	return r
}

func TestIdentity(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		resolver auth.ResolverFunc
		wantBody string
	}{
		{
			name:     "성공: 식별된 사용자 저장",
			resolver: func(r *http.Request) (uuid.UUID, error) { return userID, nil },
			wantBody: userID.String(),
		},
		{
			name:     "성공: 인증 정보 없음은 익명",
			resolver: func(r *http.Request) (uuid.UUID, error) { return uuid.Nil, auth.ErrNoIdentity },
			wantBody: "anonymous",
		},
		{
			name:     "성공: 잘못된 토큰도 익명으로 진행",
			resolver: func(r *http.Request) (uuid.UUID, error) { return uuid.Nil, auth.ErrInvalidToken },
			wantBody: "anonymous",
		},
		{
			name:     "성공: 신뢰할 수 없는 헤더는 무시",
			resolver: func(r *http.Request) (uuid.UUID, error) { return uuid.Nil, auth.ErrUntrustedCaller },
			wantBody: "anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			identityRouter(tt.resolver, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRequireIdentity(t *testing.T) {
	anonymous := auth.ResolverFunc(func(r *http.Request) (uuid.UUID, error) { return uuid.Nil, auth.ErrNoIdentity })
	w := httptest.NewRecorder()
	identityRouter(anonymous, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":{"code":"UNAUTHORIZED","message":"Authentication required"}}`, w.Body.String())

	userID := uuid.New()
	known := auth.ResolverFunc(func(r *http.Request) (uuid.UUID, error) { return userID, nil })
	w = httptest.NewRecorder()
	identityRouter(known, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestIdentity_TrustedHeaderChain(t *testing.T) {
	userID := uuid.New()
	resolver := auth.NewChainResolver(auth.NewTrustedHeaderResolver("internal-key"))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(auth.UserIDHeader, userID.String())
	w := httptest.NewRecorder()
	identityRouter(resolver, true).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "user id header alone cannot impersonate")

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(auth.UserIDHeader, userID.String())
	req.Header.Set(auth.InternalAPIKeyHeader, "internal-key")
	w = httptest.NewRecorder()
	identityRouter(resolver, true).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}
