package handlers

import (
	"errors"
	"net/http"

	"storefront/internal/models"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

const errCaptureLead = "failed to capture lead"

// LeadRequest is the payload of the lead API. Shop defaults to "Individual".
type LeadRequest struct {
	Name    string `json:"name" example:"Ravi"`
	Shop    string `json:"shop,omitempty" example:"Ravi Mobiles"`
	Address string `json:"address" example:"12 MG Road"`
	Phone   string `json:"phone" example:"9876543210"`
}

// @Summary      Capture a lead
// @Description  Records the contact and marks the popup shown for this browser session.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      LeadRequest  true  "Contact details"
// @Success      201   {object}  models.Lead
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/leads [post]
func (h *Handler) captureLead(c *gin.Context) {
	var req LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	lead, err := h.services.Leads.Capture(c.Request.Context(), models.Lead{
		Name:    req.Name,
		Shop:    req.Shop,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if errors.Is(err, service.ErrLeadIncomplete) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCaptureLead, "lead_capture_failed", err)
		return
	}
	h.closePopup(c, "lead_id", lead.ID)
	c.JSON(http.StatusCreated, lead)
}
