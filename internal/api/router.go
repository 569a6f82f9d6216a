package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/MehdiDinari/ADEI-Repo/internal/api/handler"
	"github.com/MehdiDinari/ADEI-Repo/internal/api/metrics"
	"github.com/MehdiDinari/ADEI-Repo/internal/api/middleware"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/service"
	"github.com/MehdiDinari/ADEI-Repo/internal/infrastructure/config"
	mongodb "github.com/MehdiDinari/ADEI-Repo/internal/infrastructure/db/mongo"
	redisdb "github.com/MehdiDinari/ADEI-Repo/internal/infrastructure/db/redis"
	"github.com/MehdiDinari/ADEI-Repo/internal/infrastructure/ratelimit"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil, in which case the auth rate limiter counts in memory.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("adei"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	clubRepo := mongodb.NewClubRepository(db)

	// --- Services ---
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, log)
	contactService := service.NewContactService(messageRepo, log)
	contentService := service.NewContentService(newsRepo, eventRepo, clubRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)
	contactHandler := handler.NewContactHandler(contactService)
	contentHandler := handler.NewContentHandler(contentService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	// --- Middleware ---
	authed := middleware.Auth(tokens, userRepo)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	var counters middleware.CounterStore
	if rdb != nil {
		counters = redisdb.NewCounterStore(rdb)
	} else {
		counters = ratelimit.NewMemoryStore()
	}
	authLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Store:  counters,
		Limit:  cfg.RateLimit.AuthRequests,
		Window: cfg.RateLimit.AuthWindow,
		Scope:  "auth",
		Log:    log,
	})

	// A coarse token-bucket limiter over the whole API, on top of the
	// stricter fixed window guarding the credential endpoints.
	apiLimiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit.APIRate),
			Burst:     cfg.RateLimit.APIBurst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			metrics.RateLimitedTotal.WithLabelValues("api").Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, retry later")
		},
	})

	// --- Routes ---
	api := e.Group("/api", apiLimiter)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register, authLimiter)
	auth.POST("/login", authHandler.Login, authLimiter)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, authed)

	api.GET("/news", contentHandler.ListNews)
	api.GET("/news/:id", contentHandler.GetNews)
	api.POST("/news", contentHandler.CreateNews, authed, adminOnly)
	api.PUT("/news/:id", contentHandler.UpdateNews, authed, adminOnly)
	api.DELETE("/news/:id", contentHandler.DeleteNews, authed, adminOnly)

	api.GET("/events", contentHandler.ListEvents)
	api.GET("/events/:id", contentHandler.GetEvent)
	api.POST("/events", contentHandler.CreateEvent, authed, adminOnly)
	api.PUT("/events/:id", contentHandler.UpdateEvent, authed, adminOnly)
	api.DELETE("/events/:id", contentHandler.DeleteEvent, authed, adminOnly)

	api.GET("/clubs", contentHandler.ListClubs)
	api.GET("/clubs/:id", contentHandler.GetClub)
	api.POST("/clubs", contentHandler.CreateClub, authed, adminOnly)
	api.PUT("/clubs/:id", contentHandler.UpdateClub, authed, adminOnly)
	api.DELETE("/clubs/:id", contentHandler.DeleteClub, authed, adminOnly)

	api.POST("/contact", contactHandler.Submit)
	api.GET("/messages", contactHandler.Messages, authed, adminOnly)

	feedbacks := api.Group("/feedbacks", authed)
	feedbacks.POST("", feedbackHandler.Submit)
	feedbacks.GET("", feedbackHandler.List)
	feedbacks.POST("/:id/like", feedbackHandler.Like)
	feedbacks.POST("/:id/response", feedbackHandler.Respond, adminOnly)
	feedbacks.PATCH("/:id/status", feedbackHandler.SetStatus, adminOnly)

	users := api.Group("/users", authed, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operational endpoints (no auth, outside /api) ---
	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
