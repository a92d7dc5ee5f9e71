package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-auth-service/internal/application"
	"github.com/oksasatya/go-auth-service/internal/infrastructure/memory"
	"github.com/oksasatya/go-auth-service/internal/infrastructure/security"
	handlers "github.com/oksasatya/go-auth-service/internal/interface/http"
	"github.com/oksasatya/go-auth-service/internal/interface/middleware"
	"github.com/oksasatya/go-auth-service/pkg/validation"
)

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type tokenData struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// newTestRouter mirrors the production route layout without the redis
// rate limiters.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	codec := security.NewTokenCodec("test-secret", time.Hour, nil)
	svc := application.NewService(
		memory.NewUserRepository(),
		memory.NewRefreshTokenRepository(),
		security.NewBcryptHasher(bcrypt.MinCost),
		codec,
		nil,
		nil,
		nil,
	)
	h := handlers.NewAuthHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/refresh", h.Refresh)
	auth := api.Group("/")
	auth.Use(middleware.Auth(codec))
	auth.GET("/auth/profile", h.GetProfile)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestAuthEndpoints(t *testing.T) {
	r := newTestRouter(t)
	creds := gin.H{"email": "jane@example.com", "password": "Str0ng!Pass"}

	t.Run("health", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, "/api/health", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
	})

	t.Run("register", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", creds, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "user registered successfully", env.Message)
	})

	t.Run("register duplicate conflicts", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", creds, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("register weak password names the rule", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
			"email":    "other@example.com",
			"password": "short1!",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "weak password", env.Message)
		assert.Contains(t, string(env.Error), "must be at least 8 characters long")
	})

	t.Run("register missing fields", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{"email": "x@example.com"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, string(env.Error), "password")
	})

	t.Run("login wrong password is unauthorized", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
			"email":    "jane@example.com",
			"password": "Wr0ng!Pass",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	var tokens tokenData
	t.Run("login issues tokens", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/login", creds, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(env.Data, &tokens))
		assert.NotEmpty(t, tokens.Token)
		assert.Len(t, tokens.RefreshToken, 64)
		assert.Equal(t, 3600, tokens.ExpiresIn)
	})

	t.Run("profile requires a token", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/auth/profile", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile rejects a garbage token", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodGet, "/api/auth/profile", nil, map[string]string{
			"Authorization": "Bearer not.a.token",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile returns the authenticated identity", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, "/api/auth/profile", nil, map[string]string{
			"Authorization": fmt.Sprintf("Bearer %s", tokens.Token),
		})
		require.Equal(t, http.StatusOK, w.Code)

		var profile struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &profile))
		assert.Equal(t, "jane@example.com", profile.Email)
		assert.NotEmpty(t, profile.ID)
	})

	t.Run("refresh rotates and the old token dies", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
			"refresh_token": tokens.RefreshToken,
		}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var next tokenData
		require.NoError(t, json.Unmarshal(env.Data, &next))
		assert.NotEqual(t, tokens.RefreshToken, next.RefreshToken)
		assert.NotEmpty(t, next.Token)

		w, _ = doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
			"refresh_token": tokens.RefreshToken,
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh with an unknown token is unauthorized", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/refresh", gin.H{
			"refresh_token": "deadbeef",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
