package dashboard

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type Handler struct {
	svc *Service
	log zerolog.Logger
}

func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard/unified/:user_id/:user_email", h.Unified)
	api.GET("/dashboard/overall/:user_id", h.Overall)
	api.GET("/dashboard/:user_email", h.UnifiedByEmail)
}

func (h *Handler) Unified(c echo.Context) error {
	out, err := h.svc.Unified(c.Request().Context(), c.Param("user_id"), c.Param("user_email"))
	if err != nil {
		return h.dbError(c, "unified dashboard", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Overall(c echo.Context) error {
	var day *time.Time
	if dateStr := c.QueryParam("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		}
		day = &parsed
	}

	out, err := h.svc.OverallByUser(c.Request().Context(), c.Param("user_id"), day)
	if err != nil {
		return h.dbError(c, "overall dashboard", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) UnifiedByEmail(c echo.Context) error {
	out, err := h.svc.UnifiedByEmail(c.Request().Context(), c.Param("user_email"))
	if err != nil {
		return h.dbError(c, "dashboard by email", err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) dbError(c echo.Context, op string, err error) error {
	h.log.Error().Err(err).Str("op", op).Msg("dashboard query failed")
	return echo.NewHTTPError(http.StatusInternalServerError, "database error")
}
