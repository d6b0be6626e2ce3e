package httpserver

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pscheid92/scopedemo/internal/adapter/metrics"
	"github.com/pscheid92/scopedemo/internal/routing"
)

func (s *Server) registerRoutes() {
	s.echo.HTTPErrorHandler = s.handleHTTPError

	s.echo.Use(correlationMiddleware)
	s.echo.Use(s.setupRequestLoggerMiddleware())
	s.echo.Use(s.httpMetrics.Middleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(ErrorHandlingMiddleware())
	s.echo.Use(middleware.BodyLimit(s.config.BodyLimit))
	if s.config.RateLimitRPS > 0 {
		s.echo.Use(newRateLimiter(s.config.RateLimitRPS, s.config.RateLimitBurst))
	}

	s.registerHealthRoutes()
	s.echo.GET("/metrics", echo.WrapHandler(metrics.Handler(s.registry)))

	s.registerDemoRoutes()
}

// registerDemoRoutes lays out the public surface. Order only matters between
// candidates of equal specificity on the same path; the two host scopes on
// "/" outrank the unguarded hello route regardless of where they appear.
func (s *Server) registerDemoRoutes() {
	root := s.router.Root()
	root.Configure(configureApp)

	root.Scope("/app").GET("/index.html", "index", s.handleIndex)
	root.GET("", "hello", handleHello)

	root.Scope("/", routing.Host(s.config.WWWHost)).
		Configure(configureScoped).
		To("", "www", respondText("www"))
	root.Scope("/", routing.Host(s.config.UsersHost)).
		To("", "user", respondText("user"))

	root.POST("/echo", "echo", handleEcho)
	root.GET("/hey", "hey", handleHey)
	root.Scope("/users").GET("/show", "show_users", handleShowUsers)
}

func (s *Server) setupRequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogHost:    true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"host", v.Host,
				"status", v.Status,
				"latency", v.Latency,
			}
			if route, ok := c.Get(routing.ContextKeyRoute).(string); ok {
				attrs = append(attrs, "route", route)
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			slog.InfoContext(c.Request().Context(), "Request", attrs...)
			return nil
		},
	})
}
