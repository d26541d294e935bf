package api

import (
	"errors"
	"net/http"

	reqdto "splitpay/internal/handler/dto/request"
	resdto "splitpay/internal/handler/dto/response"
	"splitpay/internal/handler/middleware"
	"splitpay/internal/usecase/commands"
	"splitpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClaimHandler struct {
	claimCommands       commands.ClaimCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewClaimHandler(claimCommands commands.ClaimCommands, availabilityQueries queries.AvailabilityQueries) *ClaimHandler {
	return &ClaimHandler{
		claimCommands:       claimCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Create claim
// @Description Reserve a slice of the order's remaining amount for this session
// @Tags claims
// @Accept json
// @Produce json
// @Param X-Session-Token header string false "Session token (minted when absent)"
// @Param id path string true "Order ID"
// @Param request body reqdto.CreateClaimRequest true "Claim request"
// @Success 201 {object} resdto.CreateClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/claims [post]
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	var req reqdto.CreateClaimRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var sessionToken *string
	if token, ok := middleware.GetSessionToken(c); ok {
		sessionToken = &token
	} else if raw := c.GetHeader(middleware.HeaderSessionToken); raw != "" {
		// Present but failed the optional validation: reject instead of
		// silently minting a second session for the same device.
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired session token",
		})
		return
	}

	result, err := h.claimCommands.CreateClaim(c.Request.Context(), orderID, req.AmountCents, sessionToken)
	if err != nil {
		var insufficient *commands.InsufficientAmountError
		switch {
		case errors.As(err, &insufficient):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Insufficient amount available",
				"detail": gin.H{
					"available_amount_cents": insufficient.AvailableAmountCents,
					"total_amount_cents":     insufficient.TotalAmountCents,
					"total_claimed_cents":    insufficient.TotalClaimedCents,
				},
			})
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrOrderClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order is already paid or cancelled",
			})
		case errors.Is(err, commands.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Claimed amount must be positive",
			})
		case errors.Is(err, commands.ErrInvalidSessionToken):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session token",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateClaimResult(result))
}

// @Summary Start payment
// @Description Move a reserved claim into processing before redirecting to the processor
// @Tags claims
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /claims/{id}/start [post]
func (h *ClaimHandler) StartPayment(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim ID format",
		})
		return
	}

	token, ok := middleware.GetSessionToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.claimCommands.StartPayment(c.Request.Context(), claimID, token)
	if err != nil {
		h.respondClaimMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimView(view))
}

// @Summary Cancel claim
// @Description Release an active claim back to the order's available amount
// @Tags claims
// @Produce json
// @Param X-Session-Token header string true "Session token"
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /claims/{id}/cancel [post]
func (h *ClaimHandler) CancelClaim(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim ID format",
		})
		return
	}

	token, ok := middleware.GetSessionToken(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.claimCommands.CancelClaim(c.Request.Context(), claimID, token)
	if err != nil {
		h.respondClaimMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimView(view))
}

// @Summary Get claim
// @Description Get claim by ID
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid claim ID format",
		})
		return
	}

	view, err := h.availabilityQueries.GetClaim(c.Request.Context(), claimID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrClaimNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Claim not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimView(view))
}

func (h *ClaimHandler) respondClaimMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrClaimNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Claim not found",
		})
	case errors.Is(err, commands.ErrClaimExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "Claim has expired",
		})
	case errors.Is(err, commands.ErrClaimNotCancellable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Claim is not cancellable",
		})
	case errors.Is(err, commands.ErrClaimNotProcessable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Claim cannot start processing",
		})
	case errors.Is(err, commands.ErrInvalidSessionToken):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired session token",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
