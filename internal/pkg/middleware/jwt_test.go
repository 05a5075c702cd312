package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	jwtpkg "github.com/tutorcito/tutorcito/internal/pkg/jwt"
	"github.com/tutorcito/tutorcito/internal/pkg/models"
)

func jwtTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tutorcito",
		},
	}
}

func TestJWTAuthMiddleware_AcceptsIssuedToken(t *testing.T) {
	cfg := jwtTestConfig()
	userID := uuid.New()

	token, expiresAt, err := jwtpkg.GenerateToken(userID, "student@example.com", "student", cfg)
	assert.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uuid.UUID
	var authed bool
	next := func(c echo.Context) error {
		gotID, authed = UserIDFromContext(c)
		return c.NoContent(http.StatusOK)
	}

	err = JWTAuthMiddleware(cfg.JWT)(next)(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, authed)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "student", c.Get("user_role"))
}

func TestJWTAuthMiddleware_RejectsBadCredentials(t *testing.T) {
	cfg := jwtTestConfig()
	otherSecret := jwtTestConfig()
	otherSecret.JWT.Secret = "another-secret"
	foreignToken, _, err := jwtpkg.GenerateToken(uuid.New(), "student@example.com", "student", otherSecret)
	assert.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Basic abc123"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing secret", "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			next := func(c echo.Context) error {
				t.Fatal("handler must not run for an unauthenticated request")
				return nil
			}

			err := JWTAuthMiddleware(cfg.JWT)(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
