package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-users-api/internal/core/auth"
	"go-users-api/internal/transport/http/handler"
	mdw "go-users-api/internal/transport/http/middleware"
)

// NewAPIEngine assembles the single public engine: hardening middleware, a
// public group for register/login and an authenticated group for everything
// else.
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, ah *handler.AuthHandler, uh *handler.UserHandler, sh *handler.StateHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public: registration and login, tighter per-IP budget against
	// credential stuffing.
	public := r.Group("")
	public.Use(mdw.RateLimitPerIP(5, 10))
	public.POST("/register", ah.Register)
	public.POST("/login", ah.Login)

	// Everything past the gate.
	authed := r.Group("")
	authed.Use(mdw.AuthJWT(jwter))

	authed.POST("/logout", ah.Logout)
	authed.GET("/me", ah.Me)

	authed.GET("/states", sh.List)
	authed.POST("/state", sh.Create)

	authed.GET("/users", uh.List)
	authed.GET("/users/:id", uh.Get)
	authed.POST("/users", uh.Create)
	authed.PUT("/users/:id", uh.Update)
	authed.DELETE("/users/:id", uh.Delete)

	return r
}
