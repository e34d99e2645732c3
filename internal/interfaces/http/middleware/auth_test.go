package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/infrastructure/auth"
	"aster/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newAuthTestRig(t *testing.T) (*AuthMiddleware, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	return NewAuthMiddleware(jwtService, noopLogger{}), jwtService
}

type capturedIdentity struct {
	userID  uint
	isStaff bool
	isAdmin bool
}

func identityEndpoint(captured *capturedIdentity) gin.HandlerFunc {
	return func(c *gin.Context) {
		captured.userID = UserID(c)
		captured.isStaff = IsStaff(c)
		captured.isAdmin = c.GetBool(ContextKeyIsAdmin)
		c.Status(http.StatusOK)
	}
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	mw, jwtService := newAuthTestRig(t)

	var captured capturedIdentity
	engine := gin.New()
	engine.GET("/protected", mw.RequireAuth(), identityEndpoint(&captured))

	t.Run("ValidToken", func(t *testing.T) {
		pair, err := jwtService.Generate(3, "morgan@example.com", true, false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), captured.userID)
		assert.True(t, captured.isStaff)
		assert.False(t, captured.isAdmin)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	// Refresh tokens open no doors on their own.
	t.Run("RefreshTokenRejected", func(t *testing.T) {
		pair, err := jwtService.Generate(3, "morgan@example.com", true, false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware_RequireStaff(t *testing.T) {
	mw, jwtService := newAuthTestRig(t)

	engine := gin.New()
	engine.GET("/staff", mw.RequireAuth(), mw.RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("StaffAllowed", func(t *testing.T) {
		pair, err := jwtService.Generate(3, "morgan@example.com", true, false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NonStaffForbidden", func(t *testing.T) {
		pair, err := jwtService.Generate(9, "dana@example.com", false, false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	mw, jwtService := newAuthTestRig(t)

	engine := gin.New()
	engine.DELETE("/admin", mw.RequireAuth(), mw.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("AdminAllowed", func(t *testing.T) {
		pair, err := jwtService.Generate(1, "admin@example.com", true, true)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("StaffWithoutAdminForbidden", func(t *testing.T) {
		pair, err := jwtService.Generate(3, "morgan@example.com", true, false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodDelete, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	mw, jwtService := newAuthTestRig(t)

	var captured capturedIdentity
	engine := gin.New()
	engine.GET("/public", mw.OptionalAuth(), identityEndpoint(&captured))

	t.Run("AnonymousPassesThrough", func(t *testing.T) {
		captured = capturedIdentity{}
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, captured.userID)
		assert.False(t, captured.isStaff)
	})

	t.Run("ValidTokenResolvesIdentity", func(t *testing.T) {
		captured = capturedIdentity{}
		pair, err := jwtService.Generate(3, "morgan@example.com", true, false)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), captured.userID)
		assert.True(t, captured.isStaff)
	})

	t.Run("BadTokenStillPassesThrough", func(t *testing.T) {
		captured = capturedIdentity{}
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, captured.userID)
	})
}
