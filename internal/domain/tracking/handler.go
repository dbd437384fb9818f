package tracking

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/calmnest/calmnest/internal/platform/auth"
)

type Handler struct {
	svc *Service
	log zerolog.Logger
}

func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/test-submission", h.CreateTestSubmission)
	api.POST("/mood-groove", h.CreateMoodGroove)
	api.GET("/mood-groove-by-email/:email", h.MoodGroovesByEmail)
	api.POST("/chat", h.CreateChatLog)
	api.POST("/breathing-exercise", h.CreateBreathingLog)
	api.POST("/interactions", h.CreateInteraction)
	api.POST("/facial-analysis", h.CreateFacialSession)
	api.GET("/facial-analysis/:email", h.FacialReport)
}

func (h *Handler) dbError(c echo.Context, op string, err error) error {
	h.log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("database error")
	return echo.NewHTTPError(http.StatusInternalServerError, "database error")
}

func (h *Handler) CreateTestSubmission(c echo.Context) error {
	var req TestSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if _, err := h.svc.CreateTestSubmission(c.Request().Context(), req); err != nil {
		return h.dbError(c, "create_test_submission", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "test submission saved"})
}

func (h *Handler) CreateMoodGroove(c echo.Context) error {
	var req MoodGrooveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	// userEmail is optional on the wire; fall back to the authenticated
	// identity so email-keyed dashboard lookups still find the result.
	if req.UserEmail == nil {
		if email := auth.UserEmailFromContext(c.Request().Context()); email != "" {
			req.UserEmail = &email
		}
	}
	m, err := h.svc.CreateMoodGroove(c.Request().Context(), req)
	if err != nil {
		return h.dbError(c, "create_mood_groove", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "mood groove result added", "id": m.ID})
}

func (h *Handler) MoodGroovesByEmail(c echo.Context) error {
	items, err := h.svc.ListMoodGroovesByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return h.dbError(c, "mood_grooves_by_email", err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateChatLog(c echo.Context) error {
	var req ChatLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if _, err := h.svc.CreateChatLog(c.Request().Context(), req); err != nil {
		return h.dbError(c, "create_chat_log", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "chat log added"})
}

func (h *Handler) CreateBreathingLog(c echo.Context) error {
	var req BreathingExerciseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if _, err := h.svc.CreateBreathingLog(c.Request().Context(), req); err != nil {
		return h.dbError(c, "create_breathing_log", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "breathing exercise log added"})
}

func (h *Handler) CreateInteraction(c echo.Context) error {
	var req InteractionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if _, err := h.svc.CreateInteraction(c.Request().Context(), req); err != nil {
		return h.dbError(c, "create_interaction", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "interaction logged"})
}

func (h *Handler) CreateFacialSession(c echo.Context) error {
	var req FacialAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	fs, err := h.svc.CreateFacialSession(c.Request().Context(), req)
	if err != nil {
		return h.dbError(c, "create_facial_session", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "facial analysis session saved", "id": fs.ID})
}

func (h *Handler) FacialReport(c echo.Context) error {
	report, err := h.svc.FacialReport(c.Request().Context(), c.Param("email"))
	if err != nil {
		return h.dbError(c, "facial_report", err)
	}
	return c.JSON(http.StatusOK, report)
}
