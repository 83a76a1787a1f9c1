package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightweb/agency-api/internal/api/metrics"
	"github.com/brightweb/agency-api/internal/core/ports"
)

// ContactHandler receives public contact-form submissions.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type contactResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact message"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.service.Submit(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return err
	}

	metrics.ContactMessagesTotal.Inc()

	return c.JSON(http.StatusCreated, contactResponse{
		ID:      msg.ID,
		Message: "Message sent successfully",
	})
}
