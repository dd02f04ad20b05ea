package http

import (
	"context"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dkrasov/huddle/internal/adapters/rtc"
	"github.com/dkrasov/huddle/internal/adapters/signal"
	"github.com/dkrasov/huddle/internal/config"
)

func genClientToken() string {
	return uuid.NewString()
}

// ClientTokenMiddleware tags every browser with a stable token cookie. The
// token identifies a client for upgrade rate limiting; it is not the user
// identity, which arrives over the socket in the setup event.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, ctl *signal.SignalWSController) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("HuddleSessions", store))
	r.Use(ClientTokenMiddleware())

	r.Static("/static", cfg.StaticPath)
	r.GET("/", func(c *gin.Context) {
		c.File(cfg.StaticPath + "/index.html")
	})

	log.Info().Str("module", "adapters.http").Str("static", cfg.StaticPath).Msg("router setup")

	limiter := signal.NewConnRateLimiter(cfg.ConnRateLimit, cfg.ConnRateWindow)

	api := r.Group("/api")

	api.GET("/ice", func(c *gin.Context) {
		c.JSON(http.StatusOK, rtc.ICEServers(cfg))
	})

	api.GET("/ws/signal", func(c *gin.Context) {
		token := c.GetString("client_token")
		if !limiter.Allow(token) {
			log.Warn().Str("module", "adapters.http").Str("ct", token).Msg("upgrade rate limited")
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		log.Info().Str("module", "adapters.http").Str("ct", token).Msg("ws signal endpoint hit")
		ctl.HandleSignal(ctx, c)
	})

	return r
}
