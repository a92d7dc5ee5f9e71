package router

import (
	"github.com/oksasatya/go-auth-service/internal/application"
	"github.com/oksasatya/go-auth-service/internal/container"
	pginfra "github.com/oksasatya/go-auth-service/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-auth-service/internal/interface/http"
	"github.com/oksasatya/go-auth-service/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	pool := container.GetPGPool()
	users := pginfra.NewUserRepository(pool)
	tokens := pginfra.NewRefreshTokenRepository(pool)
	codec := container.GetTokenCodec()

	// Avoid a typed-nil publisher when RabbitMQ is not configured.
	var events application.EventPublisher
	if pub := container.GetRabbitPub(); pub != nil {
		events = pub
	}

	svc := application.NewService(
		users,
		tokens,
		container.GetHasher(),
		codec,
		events,
		container.GetLogger(),
		nil, // wall clock
	)

	handler := handlers.NewAuthHandler(svc, container.GetLogger())
	return modules.NewAuthModule(handler, codec)
}

// InitModules initializes all application modules and registers them
// with the router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	if container.GetConfig() != nil && container.GetConfig().Env == "development" {
		r.Add(modules.NewDebugModule())
	}
}
