package httpserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/pscheid92/scopedemo/internal/platform/errors"
	"github.com/pscheid92/scopedemo/internal/routing"
)

func respondText(body string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, body)
	}
}

func methodNotAllowed(c echo.Context) error {
	return c.NoContent(http.StatusMethodNotAllowed)
}

var (
	handleHello     = respondText("Hello world!")
	handleHey       = respondText("Hey there!")
	handleShowUsers = respondText("List of users...")
)

func handleEcho(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return apperrors.InternalError("failed to read request body", err)
	}
	return c.String(http.StatusOK, string(body))
}

// configureApp is the application-wide route set mounted at the root.
func configureApp(s *routing.Scope) {
	s.GET("/app", "app", respondText("app"))
	s.HEAD("/app", "app_head", methodNotAllowed)
}

// configureScoped is mounted inside the www host scope only.
func configureScoped(s *routing.Scope) {
	s.GET("/test", "test", respondText("test"))
	s.HEAD("/test", "test_head", methodNotAllowed)
}
