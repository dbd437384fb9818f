package profile

import (
	"errors"
	"net/http"

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
	api.GET("/profile/:user_id", h.Get)
	api.PUT("/profile/:user_id", h.Upsert)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("user_id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	}
	if err != nil {
		h.log.Error().Err(err).Str("op", "get_profile").Msg("database error")
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Upsert(c echo.Context) error {
	var req UpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res, err := h.svc.Upsert(c.Request().Context(), c.Param("user_id"), req)
	if err != nil {
		h.log.Error().Err(err).Str("op", "upsert_profile").Msg("database error")
		return echo.NewHTTPError(http.StatusInternalServerError, "database error")
	}
	status := http.StatusOK
	message := "profile updated"
	if res.Created {
		status = http.StatusCreated
		message = "profile created"
	}
	return c.JSON(status, echo.Map{"message": message, "profile": res.Profile})
}
