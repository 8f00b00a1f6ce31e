package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamelist/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(tokens *jwt.Manager, required bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	identity := func(c *gin.Context) {
		username, ok := Username(c)
		c.JSON(http.StatusOK, gin.H{"username": username, "authenticated": ok})
	}

	if required {
		r.GET("/whoami", Middleware(tokens), identity)
	} else {
		r.GET("/whoami", OptionalMiddleware(tokens), identity)
	}
	return r
}

func TestMiddleware(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	router := setupRouter(tokens, true)

	token, err := tokens.Generate("alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"scheme only", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + mustToken(t, "other-secret"), http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	t.Run("identity is exposed to the handler", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username": "alice", "authenticated": true}`, w.Body.String())
	})
}

func TestOptionalMiddleware(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	router := setupRouter(tokens, false)

	t.Run("missing header passes through as anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username": "", "authenticated": false}`, w.Body.String())
	})

	t.Run("invalid token degrades to anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username": "", "authenticated": false}`, w.Body.String())
	})

	t.Run("valid token sets the identity", func(t *testing.T) {
		token, err := tokens.Generate("bob")
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username": "bob", "authenticated": true}`, w.Body.String())
	})
}

func mustToken(t *testing.T, secret string) string {
	t.Helper()
	token, err := jwt.NewManager(secret, time.Hour).Generate("alice")
	require.NoError(t, err)
	return token
}
