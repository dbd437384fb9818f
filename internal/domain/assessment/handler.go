package assessment

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
	api.POST("/comprehensive-assessment", h.Start)
	api.GET("/comprehensive-assessment/user/:user_id", h.ListByUser)
	api.GET("/comprehensive-assessment/:session_id", h.Get)
	api.PUT("/comprehensive-assessment/:session_id/step", h.UpdateStep)
	api.PUT("/comprehensive-assessment/:session_id/phq9", h.SavePHQ9)
	api.PUT("/comprehensive-assessment/:session_id/gad7", h.SaveGAD7)
	api.PUT("/comprehensive-assessment/:session_id/mood-groove", h.SaveMoodGroove)
	api.PUT("/comprehensive-assessment/:session_id/additional", h.SaveAdditional)
	api.PUT("/comprehensive-assessment/:session_id/complete", h.Complete)
}

// dbError logs the underlying failure and returns an opaque 500. Raw
// database errors never reach the response body.
func (h *Handler) dbError(c echo.Context, op string, err error) error {
	h.log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("database error")
	return echo.NewHTTPError(http.StatusInternalServerError, "database error")
}

func (h *Handler) Start(c echo.Context) error {
	var req StartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	res, err := h.svc.Start(c.Request().Context(), req.UserID)
	if err != nil {
		return h.dbError(c, "start", err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) Get(c echo.Context) error {
	detail, err := h.svc.Get(c.Request().Context(), c.Param("session_id"))
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	if err != nil {
		return h.dbError(c, "get", err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateStep(c echo.Context) error {
	var req StepUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	err := h.svc.UpdateStep(c.Request().Context(), c.Param("session_id"), req)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "session not found")
	}
	if err != nil {
		return h.dbError(c, "update_step", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "session updated"})
}

func (h *Handler) SavePHQ9(c echo.Context) error {
	var req PHQ9Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	err := h.svc.SavePHQ9(c.Request().Context(), c.Param("session_id"), req)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	if err != nil {
		return h.dbError(c, "save_phq9", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "PHQ-9 results saved"})
}

func (h *Handler) SaveGAD7(c echo.Context) error {
	var req GAD7Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	err := h.svc.SaveGAD7(c.Request().Context(), c.Param("session_id"), req)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	if err != nil {
		return h.dbError(c, "save_gad7", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "GAD-7 results saved"})
}

func (h *Handler) SaveMoodGroove(c echo.Context) error {
	var req MoodGrooveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	err := h.svc.SaveMoodGroove(c.Request().Context(), c.Param("session_id"), req)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	if err != nil {
		return h.dbError(c, "save_mood_groove", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "mood groove results saved"})
}

func (h *Handler) SaveAdditional(c echo.Context) error {
	var req AdditionalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one of resilience, stress, sleep_quality, social_support is required")
	}
	err := h.svc.SaveAdditional(c.Request().Context(), c.Param("session_id"), req)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	if err != nil {
		return h.dbError(c, "save_additional", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "additional assessments saved"})
}

func (h *Handler) Complete(c echo.Context) error {
	var req CompleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	err := h.svc.Complete(c.Request().Context(), c.Param("session_id"), req)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	if err != nil {
		return h.dbError(c, "complete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "assessment completed"})
}

func (h *Handler) ListByUser(c echo.Context) error {
	items, err := h.svc.ListByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return h.dbError(c, "list_by_user", err)
	}
	return c.JSON(http.StatusOK, items)
}
