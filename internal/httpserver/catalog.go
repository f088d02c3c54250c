package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickbite/internal/domain"
)

func listRestaurantsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurants, err := svc.ListRestaurants(c.Request.Context(), c.Query("search"), c.Query("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		if restaurants == nil {
			restaurants = []domain.Restaurant{}
		}
		c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
	}
}

func getRestaurantHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurant, err := svc.GetRestaurant(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

func getMenuHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.GetMenu(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if items == nil {
			items = []domain.MenuItem{}
		}
		c.JSON(http.StatusOK, gin.H{"menu": items})
	}
}
