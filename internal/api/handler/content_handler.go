package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MehdiDinari/ADEI-Repo/internal/core/domain"
	"github.com/MehdiDinari/ADEI-Repo/internal/core/ports"
)

// ContentHandler serves the public catalogue (news, events, clubs) and
// its admin-side CRUD.
type ContentHandler struct {
	contentService ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// --- News ---

// ListNews handles GET /api/news.
//
// @Summary      List news
// @Tags         news
// @Produce      json
// @Success      200  {object}  newsListResponse
// @Router       /news [get]
func (h *ContentHandler) ListNews(c echo.Context) error {
	news, err := h.contentService.ListNews(c.Request().Context())
	if err != nil {
		return err
	}
	if news == nil {
		news = []*domain.NewsItem{}
	}
	return c.JSON(http.StatusOK, newsListResponse{Success: true, News: news})
}

// GetNews handles GET /api/news/:id.
//
// @Summary      Get a news article
// @Tags         news
// @Produce      json
// @Param        id  path  string  true  "News id"
// @Success      200  {object}  newsResponse
// @Failure      404  {object}  errorResponse
// @Router       /news/{id} [get]
func (h *ContentHandler) GetNews(c echo.Context) error {
	item, err := h.contentService.GetNews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newsResponse{Success: true, News: item})
}

// CreateNews handles POST /api/news (admin).
//
// @Summary      Create a news article
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNewsRequest  true  "Article"
// @Success      201   {object}  newsResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /news [post]
func (h *ContentHandler) CreateNews(c echo.Context) error {
	var req createNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.contentService.CreateNews(c.Request().Context(), ports.NewsInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newsResponse{Success: true, News: item})
}

// UpdateNews handles PUT /api/news/:id (admin).
//
// @Summary      Update a news article
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "News id"
// @Param        body  body      updateNewsRequest  true  "Fields to change"
// @Success      200   {object}  newsResponse
// @Failure      404   {object}  errorResponse
// @Router       /news/{id} [put]
func (h *ContentHandler) UpdateNews(c echo.Context) error {
	var req updateNewsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.contentService.UpdateNews(c.Request().Context(), c.Param("id"), ports.NewsInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		PublishedAt: req.PublishedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newsResponse{Success: true, News: item})
}

// DeleteNews handles DELETE /api/news/:id (admin).
//
// @Summary      Delete a news article
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "News id"
// @Success      200  {object}  newsResponse
// @Failure      404  {object}  errorResponse
// @Router       /news/{id} [delete]
func (h *ContentHandler) DeleteNews(c echo.Context) error {
	if err := h.contentService.DeleteNews(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newsResponse{Success: true})
}

// --- Events ---

// ListEvents handles GET /api/events.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Success      200  {object}  eventListResponse
// @Router       /events [get]
func (h *ContentHandler) ListEvents(c echo.Context) error {
	events, err := h.contentService.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return c.JSON(http.StatusOK, eventListResponse{Success: true, Events: events})
}

// GetEvent handles GET /api/events/:id.
//
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id  path  string  true  "Event id"
// @Success      200  {object}  eventResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [get]
func (h *ContentHandler) GetEvent(c echo.Context) error {
	event, err := h.contentService.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventResponse{Success: true, Event: event})
}

// CreateEvent handles POST /api/events (admin).
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event"
// @Success      201   {object}  eventResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /events [post]
func (h *ContentHandler) CreateEvent(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.contentService.CreateEvent(c.Request().Context(), ports.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, eventResponse{Success: true, Event: event})
}

// UpdateEvent handles PUT /api/events/:id (admin).
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event id"
// @Param        body  body      updateEventRequest  true  "Fields to change"
// @Success      200   {object}  eventResponse
// @Failure      404   {object}  errorResponse
// @Router       /events/{id} [put]
func (h *ContentHandler) UpdateEvent(c echo.Context) error {
	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.contentService.UpdateEvent(c.Request().Context(), c.Param("id"), ports.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventResponse{Success: true, Event: event})
}

// DeleteEvent handles DELETE /api/events/:id (admin).
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Event id"
// @Success      200  {object}  eventResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [delete]
func (h *ContentHandler) DeleteEvent(c echo.Context) error {
	if err := h.contentService.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, eventResponse{Success: true})
}

// --- Clubs ---

// ListClubs handles GET /api/clubs.
//
// @Summary      List clubs
// @Tags         clubs
// @Produce      json
// @Success      200  {object}  clubListResponse
// @Router       /clubs [get]
func (h *ContentHandler) ListClubs(c echo.Context) error {
	clubs, err := h.contentService.ListClubs(c.Request().Context())
	if err != nil {
		return err
	}
	if clubs == nil {
		clubs = []*domain.Club{}
	}
	return c.JSON(http.StatusOK, clubListResponse{Success: true, Clubs: clubs})
}

// GetClub handles GET /api/clubs/:id.
//
// @Summary      Get a club
// @Tags         clubs
// @Produce      json
// @Param        id  path  string  true  "Club id"
// @Success      200  {object}  clubResponse
// @Failure      404  {object}  errorResponse
// @Router       /clubs/{id} [get]
func (h *ContentHandler) GetClub(c echo.Context) error {
	club, err := h.contentService.GetClub(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clubResponse{Success: true, Club: club})
}

// CreateClub handles POST /api/clubs (admin).
//
// @Summary      Create a club
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClubRequest  true  "Club"
// @Success      201   {object}  clubResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /clubs [post]
func (h *ContentHandler) CreateClub(c echo.Context) error {
	var req createClubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	club, err := h.contentService.CreateClub(c.Request().Context(), ports.ClubInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ContactMail: req.ContactMail,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, clubResponse{Success: true, Club: club})
}

// UpdateClub handles PUT /api/clubs/:id (admin).
//
// @Summary      Update a club
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Club id"
// @Param        body  body      updateClubRequest  true  "Fields to change"
// @Success      200   {object}  clubResponse
// @Failure      404   {object}  errorResponse
// @Router       /clubs/{id} [put]
func (h *ContentHandler) UpdateClub(c echo.Context) error {
	var req updateClubRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	club, err := h.contentService.UpdateClub(c.Request().Context(), c.Param("id"), ports.ClubInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ContactMail: req.ContactMail,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clubResponse{Success: true, Club: club})
}

// DeleteClub handles DELETE /api/clubs/:id (admin).
//
// @Summary      Delete a club
// @Tags         clubs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Club id"
// @Success      200  {object}  clubResponse
// @Failure      404  {object}  errorResponse
// @Router       /clubs/{id} [delete]
func (h *ContentHandler) DeleteClub(c echo.Context) error {
	if err := h.contentService.DeleteClub(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clubResponse{Success: true})
}
