package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *WhatsAppWebhook) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "running",
		"phone_number_id": h.PhoneNumberID,
	})
}
