package api

import (
	"errors"
	"net/http"

	"splitpay/internal/domain/claim"
	reqdto "splitpay/internal/handler/dto/request"
	"splitpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WebhookHandler struct {
	claimCommands commands.ClaimCommands
}

func NewWebhookHandler(claimCommands commands.ClaimCommands) *WebhookHandler {
	return &WebhookHandler{claimCommands: claimCommands}
}

// @Summary Payment outcome webhook
// @Description Asynchronous payment result from the processor; redeliveries are absorbed
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.PaymentWebhookRequest true "Payment outcome"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) PaymentOutcome(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	claimID, err := uuid.Parse(req.ClaimID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim ID format",
		})
		return
	}

	err = h.claimCommands.ApplyPaymentOutcome(c.Request.Context(), claimID, claim.Outcome(req.Outcome), req.ProcessorRef)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrClaimNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Claim not found",
			})
		case errors.Is(err, commands.ErrInvalidOutcome):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment outcome",
			})
		default:
			// 5xx makes the processor redeliver; the dedup insert absorbs it.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "accepted",
	})
}
