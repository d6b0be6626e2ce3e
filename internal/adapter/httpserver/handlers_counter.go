package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleIndex(c echo.Context) error {
	n := s.counter.Increment()
	return c.String(http.StatusOK, fmt.Sprintf("Hi %s!\n\tRequest number: %d", s.identity.Name(), n))
}
