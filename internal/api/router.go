package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/pagecraft/blog/internal/api/handler"
	"github.com/pagecraft/blog/internal/api/middleware"
	"github.com/pagecraft/blog/internal/api/session"
	"github.com/pagecraft/blog/internal/api/view"
	"github.com/pagecraft/blog/internal/core/ports"
)

// Dependencies is everything the router wires into handlers.
type Dependencies struct {
	Auth     ports.AuthService
	Posts    ports.PostService
	Comments ports.CommentService
	Contact  ports.ContactService
	Sessions *session.Manager

	// DB is pinged by the readiness probe; Redis and Mongo are optional.
	DB    *gorm.DB
	Redis *redis.Client
	Mongo *mongo.Database

	// Registry backs /metrics and receives the HTTP request metrics.
	Registry *prometheus.Registry
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	renderer, err := view.New()
	if err != nil {
		return nil, err
	}
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "blog",
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(middleware.LoadPrincipal(deps.Sessions, deps.Auth, deps.Log))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Sessions)
	postHandler := handler.NewPostHandler(deps.Posts, deps.Comments, deps.Sessions)
	contactHandler := handler.NewContactHandler(deps.Contact, deps.Sessions)
	pageHandler := handler.NewPageHandler(deps.Sessions)

	adminOnly := middleware.AdminOnly()
	loginRequired := middleware.RequireLogin(deps.Sessions)

	// --- Public pages ---
	e.GET("/", postHandler.Home)
	e.GET("/post", postHandler.Show)
	e.POST("/post", postHandler.Comment)
	e.GET("/about", pageHandler.About)
	e.GET("/contact", contactHandler.Form)
	e.POST("/contact", contactHandler.Send)

	// --- Accounts ---
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)

	// --- Admin ---
	e.GET("/add", postHandler.NewPost, adminOnly)
	e.POST("/add", postHandler.Create, adminOnly)
	e.GET("/edit", postHandler.EditPost, adminOnly, loginRequired)
	e.POST("/edit", postHandler.Update, adminOnly, loginRequired)
	e.GET("/delete", postHandler.Delete, adminOnly, loginRequired)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))

	return e, nil
}

// requestLogger logs one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
