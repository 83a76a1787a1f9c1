package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightweb/agency-api/internal/core/ports"
)

// PortfolioHandler serves the public portfolio and its admin management.
type PortfolioHandler struct {
	service ports.PortfolioService
}

func NewPortfolioHandler(service ports.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

type createPortfolioRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url"   validate:"required,url"`
	Category    string `json:"category"    validate:"required"`
	Client      string `json:"client"`
	Challenge   string `json:"challenge"`
	Strategy    string `json:"strategy"`
	Results     string `json:"results"`
}

// List handles GET /api/portfolio.
//
// @Summary      List portfolio items, newest first
// @Tags         portfolio
// @Produce      json
// @Success      200  {array}  domain.PortfolioItem
// @Router       /api/portfolio [get]
func (h *PortfolioHandler) List(c echo.Context) error {
	items, err := h.service.ListItems(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/portfolio/:id.
//
// @Summary      Get a single portfolio item
// @Tags         portfolio
// @Produce      json
// @Param        id   path      string  true  "Portfolio item id"
// @Success      200  {object}  domain.PortfolioItem
// @Failure      404  {object}  map[string]string
// @Router       /api/portfolio/{id} [get]
func (h *PortfolioHandler) Get(c echo.Context) error {
	item, err := h.service.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/portfolio (admin only).
//
// @Summary      Create a portfolio item
// @Tags         portfolio
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPortfolioRequest  true  "Portfolio item"
// @Success      201   {object}  domain.PortfolioItem
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/portfolio [post]
func (h *PortfolioHandler) Create(c echo.Context) error {
	var req createPortfolioRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), ports.CreatePortfolioInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Client:      req.Client,
		Challenge:   req.Challenge,
		Strategy:    req.Strategy,
		Results:     req.Results,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Delete handles DELETE /api/portfolio/:id (admin only).
//
// @Summary      Delete a portfolio item
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Portfolio item id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/portfolio/{id} [delete]
func (h *PortfolioHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Portfolio item deleted"})
}
