package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MehdiDinari/ADEI-Repo/internal/api/metrics"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/ports"
)

// FeedbackHandler serves feedback submission, browsing and moderation.
type FeedbackHandler struct {
	feedbackService ports.FeedbackService
}

func NewFeedbackHandler(feedbackService ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

type submitFeedbackRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=avis reclamation suggestion autre"`
}

type respondFeedbackRequest struct {
	Text string `json:"text" validate:"required"`
}

type feedbackStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=nouveau en_traitement traite"`
}

type feedbackResponse struct {
	Success  bool             `json:"success"`
	Feedback *domain.Feedback `json:"feedback,omitempty"`
}

type feedbackListResponse struct {
	Success   bool               `json:"success"`
	Feedbacks []*domain.Feedback `json:"feedbacks"`
}

// Submit stores a new feedback entry attributed to the caller.
//
// @Summary      Submit feedback
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitFeedbackRequest  true  "Feedback"
// @Success      201   {object}  feedbackResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /feedbacks [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := currentUser(c)
	if err != nil {
		return err
	}

	feedback, err := h.feedbackService.Submit(c.Request().Context(), ports.SubmitFeedbackInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Type:    domain.FeedbackType(req.Type),
		UserID:  user.ID,
	})
	if err != nil {
		return err
	}

	metrics.FeedbackSubmittedTotal.WithLabelValues(string(feedback.Type)).Inc()
	return c.JSON(http.StatusCreated, feedbackResponse{Success: true, Feedback: feedback})
}

// List returns all feedback entries, newest first.
//
// @Summary      List feedback
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  feedbackListResponse
// @Failure      401  {object}  errorResponse
// @Router       /feedbacks [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	feedbacks, err := h.feedbackService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if feedbacks == nil {
		feedbacks = []*domain.Feedback{}
	}
	return c.JSON(http.StatusOK, feedbackListResponse{Success: true, Feedbacks: feedbacks})
}

// Like toggles the caller's like on an entry.
//
// @Summary      Toggle like on a feedback entry
// @Tags         feedbacks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Feedback id"
// @Success      200  {object}  feedbackResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /feedbacks/{id}/like [post]
func (h *FeedbackHandler) Like(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	feedback, err := h.feedbackService.ToggleLike(c.Request().Context(), c.Param("id"), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedbackResponse{Success: true, Feedback: feedback})
}

// Respond attaches an admin reply to an entry.
//
// @Summary      Respond to a feedback entry
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Feedback id"
// @Param        body  body      respondFeedbackRequest  true  "Reply"
// @Success      200   {object}  feedbackResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /feedbacks/{id}/response [post]
func (h *FeedbackHandler) Respond(c echo.Context) error {
	var req respondFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	admin, err := currentUser(c)
	if err != nil {
		return err
	}

	feedback, err := h.feedbackService.Respond(c.Request().Context(), c.Param("id"), admin.ID, req.Text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedbackResponse{Success: true, Feedback: feedback})
}

// SetStatus moves an entry through the moderation workflow.
//
// @Summary      Set the status of a feedback entry
// @Tags         feedbacks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Feedback id"
// @Param        body  body      feedbackStatusRequest  true  "New status"
// @Success      200   {object}  feedbackResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /feedbacks/{id}/status [patch]
func (h *FeedbackHandler) SetStatus(c echo.Context) error {
	var req feedbackStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	feedback, err := h.feedbackService.SetStatus(c.Request().Context(), c.Param("id"), domain.FeedbackStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedbackResponse{Success: true, Feedback: feedback})
}
