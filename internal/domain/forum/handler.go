package forum

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/calmnest/calmnest/pkg/pagination"
)

type Handler struct {
	svc *Service
	log zerolog.Logger
}

func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/forum", h.CreatePost)
	api.GET("/forum", h.ListPosts)
	api.POST("/feedback", h.CreateFeedback)
	api.GET("/feedback", h.ListFeedback)
}

func (h *Handler) dbError(c echo.Context, op string, err error) error {
	h.log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("database error")
	return echo.NewHTTPError(http.StatusInternalServerError, "database error")
}

func (h *Handler) CreatePost(c echo.Context) error {
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if _, err := h.svc.CreatePost(c.Request().Context(), req); err != nil {
		return h.dbError(c, "create_post", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "forum post created"})
}

func (h *Handler) ListPosts(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListPosts(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return h.dbError(c, "list_posts", err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) CreateFeedback(c echo.Context) error {
	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if _, err := h.svc.CreateFeedback(c.Request().Context(), req); err != nil {
		return h.dbError(c, "create_feedback", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "feedback submitted"})
}

func (h *Handler) ListFeedback(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListFeedback(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return h.dbError(c, "list_feedback", err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
