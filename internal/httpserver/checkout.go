package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite/internal/cart"
	"quickbite/internal/checkout"
)

// checkoutHandler submits the session's cart. Anonymous checkout is
// allowed; a valid bearer token only attaches the customer to the order.
func checkoutHandler(carts *cart.Store, svc checkoutService, auth authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details checkout.DeliveryDetails
		if err := c.ShouldBindJSON(&details); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if claims, err := bearerClaims(c, auth); err == nil {
			details.CustomerID = claims.UserID
		}

		sessionCart := carts.Get(c.GetString(ctxSessionID))
		placement, err := svc.Submit(c.Request.Context(), sessionCart, details)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"orderId":   placement.OrderID,
			"reference": placement.Reference,
		})
	}
}
