package api

import (
	"errors"
	"net/http"

	resdto "splitpay/internal/handler/dto/response"
	"splitpay/internal/usecase/commands"
	"splitpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands       commands.OrderCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, availabilityQueries queries.AvailabilityQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands:       orderCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Get order availability
// @Description Current availability and claim breakdown for an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/availability [get]
func (h *OrderHandler) GetAvailability(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.availabilityQueries.GetAvailability(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Cancel order
// @Description Withdraw an order before any payment has started
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	if err := h.orderCommands.CancelOrder(c.Request.Context(), orderID); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrOrderNotCancellable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order can only be cancelled before payment starts",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "cancelled",
	})
}
