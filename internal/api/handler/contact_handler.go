package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MehdiDinari/ADEI-Repo/internal/api/metrics"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/ports"
)

// ContactHandler serves the public contact form and the admin-side
// message inbox.
type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type messageListResponse struct {
	Success  bool                     `json:"success"`
	Messages []*domain.ContactMessage `json:"messages"`
}

// Submit stores a contact form submission. No authentication required.
//
// @Summary      Submit the contact form
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      200   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.contactService.Submit(c.Request().Context(), ports.SubmitMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusOK, contactResponse{Success: true, Message: "message sent"})
}

// Messages returns all contact submissions, newest first.
//
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /messages [get]
func (h *ContactHandler) Messages(c echo.Context) error {
	messages, err := h.contactService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if messages == nil {
		messages = []*domain.ContactMessage{}
	}
	return c.JSON(http.StatusOK, messageListResponse{Success: true, Messages: messages})
}
