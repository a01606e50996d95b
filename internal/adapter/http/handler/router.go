package handler

import (
	"net/http"

	"tx-composer/internal/adapter/http/middleware"
	"tx-composer/internal/adapter/monitor"
	redisStore "tx-composer/internal/adapter/storage/redis"
	"tx-composer/internal/core/domain"
	"tx-composer/internal/core/ports"
	"tx-composer/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	SessionSvc     ports.SigningSessionService
	TokenSvc       ports.TokenService
	Chain          domain.Chain
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        *monitor.Metrics // nil = no request metrics
	MetricsHandler http.Handler     // served on /metrics when set
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))
	r.Use(middleware.AuditLog(logger.Component(deps.Logger, "audit")))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.HTTPMiddleware())
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/login", rl("auth_login"), authHandler.Login)

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	h := NewSessionHandler(deps.SessionSvc, deps.Chain)

	sessions := v1.Group("/sessions", jwtAuth)
	{
		sessions.POST("", rl("sessions_open"), h.Open)
		sessions.GET("/:id", rl("sessions"), h.Get)
		sessions.DELETE("/:id", rl("sessions"), h.Close)
		sessions.PUT("/:id/calls", rl("sessions"), h.SetCalls)
		sessions.PUT("/:id/signatory", rl("sessions"), h.SelectSignatory)
		sessions.PUT("/:id/shard", rl("sessions"), h.SelectShard)
		sessions.GET("/:id/signers", rl("sessions"), h.Signers)
		sessions.GET("/:id/fee", rl("chain"), h.Fee)
		sessions.GET("/:id/deposits", rl("chain"), h.Deposits)
		sessions.GET("/:id/estimate", rl("chain"), h.Estimate)
		sessions.POST("/:id/unsigned", rl("chain"), h.Unsigned)
	}

	return r
}
