package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightweb/agency-api/internal/core/domain"
	"github.com/brightweb/agency-api/internal/core/ports"
)

// CatalogHandler serves the public service catalog and its admin management.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type formFieldRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Label    string   `json:"label"    validate:"required"`
	Type     string   `json:"type"     validate:"required,oneof=text textarea number url select"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

type createServiceRequest struct {
	Name        string             `json:"name"        validate:"required"`
	Description string             `json:"description" validate:"required"`
	Fields      []formFieldRequest `json:"fields"      validate:"omitempty,dive"`
}

// List handles GET /api/services.
//
// @Summary      List catalog services, newest first
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /api/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.service.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Create handles POST /api/services (admin only). When fields are omitted
// the default intake template is applied.
//
// @Summary      Create a catalog service
// @Tags         services
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "Service definition"
// @Success      201   {object}  domain.Service
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fields := make([]domain.FormField, 0, len(req.Fields))
	for _, f := range req.Fields {
		fields = append(fields, domain.FormField{
			Name:     f.Name,
			Label:    f.Label,
			Type:     f.Type,
			Required: f.Required,
			Options:  f.Options,
		})
	}

	svc, err := h.service.CreateService(c.Request().Context(), ports.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Fields:      fields,
		CreatedBy:   userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// Delete handles DELETE /api/services/:id (admin only). Existing requests
// referencing the service keep their weak reference.
//
// @Summary      Delete a catalog service
// @Tags         services
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Service id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteService(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Service deleted"})
}
