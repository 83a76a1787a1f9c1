package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightweb/agency-api/internal/api/metrics"
	"github.com/brightweb/agency-api/internal/core/domain"
	"github.com/brightweb/agency-api/internal/core/ports"
)

// RequestHandler drives the service-request lifecycle over HTTP.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

type submitRequestRequest struct {
	ServiceID string         `json:"serviceId" validate:"required"`
	FormData  map[string]any `json:"formData"  validate:"required"`
}

type submitRequestResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type setStatusResponse struct {
	Message string             `json:"message"`
	Request *ports.RequestView `json:"request"`
}

// Submit handles POST /api/service-requests.
//
// @Summary      Submit a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Service id and intake form data"
// @Success      201   {object}  submitRequestResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/service-requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequestRequest
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

	created, err := h.service.Submit(c.Request().Context(), ports.SubmitRequestInput{
		UserID:    userID,
		ServiceID: req.ServiceID,
		FormData:  req.FormData,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, submitRequestResponse{
		ID:      created.ID,
		Message: "Service request submitted successfully",
	})
}

// ListMine handles GET /api/my-requests. Admin callers receive every
// request in the system.
//
// @Summary      List the caller's service requests, newest first
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.RequestView
// @Failure      401  {object}  map[string]string
// @Router       /api/my-requests [get]
func (h *RequestHandler) ListMine(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListMine(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// SetStatus handles PUT /api/requests/:id/status. Admin only; moving a
// request to completed also mails the customer.
//
// @Summary      Update a request's status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Request id"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  setStatusResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/requests/{id}/status [put]
func (h *RequestHandler) SetStatus(c echo.Context) error {
	return h.setStatus(c, true, "Status updated successfully")
}

// SetStatusAdmin handles PUT /api/admin/requests/:id/status, the legacy
// management path that updates the status without the completion mail.
//
// @Summary      Update a request's status (no notification)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Request id"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  setStatusResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/requests/{id}/status [put]
func (h *RequestHandler) SetStatusAdmin(c echo.Context) error {
	return h.setStatus(c, false, "Status updated")
}

func (h *RequestHandler) setStatus(c echo.Context, notify bool, message string) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status, notify)
	if err != nil {
		return err
	}

	if view.Status == string(domain.StatusCompleted) {
		metrics.RequestsCompletedTotal.Inc()
	}

	return c.JSON(http.StatusOK, setStatusResponse{Message: message, Request: view})
}

// ListAll handles GET /api/admin/requests and /api/admin/service-requests.
//
// @Summary      List every service request, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.RequestView
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/requests [get]
func (h *RequestHandler) ListAll(c echo.Context) error {
	views, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
