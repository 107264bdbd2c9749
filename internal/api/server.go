// Package api exposes the report store over REST. Routes mirror what the
// admin views consume: full-collection list, create with optional photo,
// status patch, full update, and delete. Business rules stay out; the status
// sent by the client is accepted as given.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kilnworks/safetydesk/internal/store"
	"github.com/kilnworks/safetydesk/pkg/types"
)

// Server wires the echo router to the report store.
type Server struct {
	Echo    *echo.Echo
	backend *store.Backend
}

// NewServer builds the router with logging and panic recovery middleware and
// registers all report routes.
func NewServer(backend *store.Backend) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	s := &Server{Echo: e, backend: backend}

	g := e.Group("/api")
	g.GET("/:type", s.listReports)
	g.POST("/:type", s.createReport)
	g.GET("/:type/:id", s.getReport)
	g.PATCH("/:type/:id", s.updateStatus)
	g.PUT("/:type/:id", s.updateReport)
	g.DELETE("/:type/:id", s.deleteReport)
	g.GET("/:type/:id/photo", s.getPhoto)

	return s
}

// Start begins serving on addr and blocks until shutdown.
func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

// reports resolves the accessor for the :type route parameter.
func (s *Server) reports(c echo.Context) (*store.Reports, error) {
	r, err := s.backend.Reports(c.Param("type"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "unknown report type")
	}
	return r, nil
}

// httpError maps store errors onto HTTP status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, types.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	case errors.Is(err, types.ErrInvalidID), errors.Is(err, types.ErrInvalidStatus), errors.Is(err, types.ErrInvalidData):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
