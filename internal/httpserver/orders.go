package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite/internal/domain"
)

func getOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ord, err := svc.GetByReference(c.Request.Context(), c.Param("reference"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ord)
	}
}

func myOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListForCustomer(c.Request.Context(), c.GetString(ctxUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// restaurantOrdersHandler lists incoming orders for the restaurant the
// logged-in owner manages.
func restaurantOrdersHandler(svc orderService, auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := auth.GetUser(c.Request.Context(), c.GetString(ctxUserID))
		if err != nil {
			respondError(c, err)
			return
		}
		if user.RestaurantID == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "no restaurant linked to this account"})
			return
		}
		orders, err := svc.ListForRestaurant(c.Request.Context(), *user.RestaurantID)
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

func deliveryOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListDeliverable(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func updateOrderStatusHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ord, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ord)
	}
}

func adminStatsHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
