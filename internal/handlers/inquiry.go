package handlers

import (
	"net/http"

	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// InquiryRequest is the payload of the inquiry API.
type InquiryRequest struct {
	Brand   string `json:"brand" example:"Apple"`
	Model   string `json:"model" example:"iPhone 12"`
	Service string `json:"service" example:"Battery"`
	Price   string `json:"price" example:"49"`
}

// @Summary      Compose a WhatsApp inquiry
// @Description  Fields are not validated; empty values yield empty message lines.
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        body  body      InquiryRequest  true  "Selected item"
// @Success      200   {object}  models.Inquiry
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/inquiry [post]
func (h *Handler) composeInquiry(c *gin.Context) {
	var req InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.services.Inquiry.Compose(service.InquiryRequest{
		Brand:   req.Brand,
		Model:   req.Model,
		Service: req.Service,
		Price:   req.Price,
	}))
}
