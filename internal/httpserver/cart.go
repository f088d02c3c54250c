package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite/internal/cart"
	"quickbite/internal/pricing"
)

// cartView is the cart plus the display totals the client renders at the
// bottom of the cart page. The engine total stays untouched; the quote is
// derived per response.
type cartView struct {
	*cart.Cart
	Quote pricing.Quote `json:"quote"`
}

func viewOf(c *cart.Cart) cartView {
	return cartView{Cart: c, Quote: pricing.QuoteFor(c.TotalCents)}
}

func getCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart := carts.Get(c.GetString(ctxSessionID))
		c.JSON(http.StatusOK, viewOf(sessionCart))
	}
}

type addItemRequest struct {
	MenuItemID      string            `json:"menuItemId" binding:"required"`
	SelectedOptions map[string]string `json:"selectedOptions"`
	Quantity        int               `json:"quantity"`
}

func addCartItemHandler(carts *cart.Store, catalog catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}

		item, err := catalog.GetMenuItem(c.Request.Context(), req.MenuItemID)
		if err != nil {
			respondError(c, err)
			return
		}
		if !item.IsAvailable {
			c.JSON(http.StatusConflict, gin.H{"error": "menu item unavailable"})
			return
		}
		restaurant, err := catalog.GetRestaurant(c.Request.Context(), item.RestaurantID)
		if err != nil {
			respondError(c, err)
			return
		}

		sessionCart := carts.Get(c.GetString(ctxSessionID))
		line := sessionCart.AddItem(*item, req.SelectedOptions, req.Quantity, cart.RestaurantRef{
			ID:      restaurant.ID,
			Name:    restaurant.Name,
			Address: restaurant.Address,
		})
		c.JSON(http.StatusCreated, gin.H{"line": line, "cart": viewOf(sessionCart)})
	}
}

type updateItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func updateCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		sessionCart := carts.Get(c.GetString(ctxSessionID))
		sessionCart.UpdateQuantity(c.Param("lineId"), req.Quantity)
		c.JSON(http.StatusOK, viewOf(sessionCart))
	}
}

func removeCartItemHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart := carts.Get(c.GetString(ctxSessionID))
		sessionCart.RemoveItem(c.Param("lineId"))
		c.JSON(http.StatusOK, viewOf(sessionCart))
	}
}

func clearCartHandler(carts *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart := carts.Get(c.GetString(ctxSessionID))
		sessionCart.Clear()
		c.JSON(http.StatusOK, viewOf(sessionCart))
	}
}
