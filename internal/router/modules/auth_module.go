package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-auth-service/internal/application"
	"github.com/oksasatya/go-auth-service/internal/container"
	handlers "github.com/oksasatya/go-auth-service/internal/interface/http"
	"github.com/oksasatya/go-auth-service/internal/interface/middleware"
)

// AuthModule wires the credential endpoints.
// Public: POST /api/auth/register, /api/auth/login, /api/auth/refresh,
// GET /api/health. Protected: GET /api/auth/profile.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Decoder application.TokenDecoder
}

func NewAuthModule(h *handlers.AuthHandler, decoder application.TokenDecoder) *AuthModule {
	return &AuthModule{Handler: h, Decoder: decoder}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rdb := container.GetRedis()

	// Per-IP limits on the credential endpoints; health probes from
	// private networks bypass them.
	registerLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(rdb, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	refreshLimiter := middleware.RateLimit(rdb, 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/health", m.Handler.Health)
	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Decoder))
	auth.Use(middleware.RateLimit(rdb, 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("/auth/profile", m.Handler.GetProfile)
	}
}
