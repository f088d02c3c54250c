package httpserver

import (
	"context"
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickbite/internal/cart"
	"quickbite/internal/checkout"
	"quickbite/internal/domain"
	orderrepo "quickbite/internal/repository/order"
	authsvc "quickbite/internal/service/auth"
)

type catalogService interface {
	ListRestaurants(ctx context.Context, search, category string) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error)
}

type authService interface {
	Login(ctx context.Context, email, password string) (*authsvc.LoginResult, error)
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, error)
	ParseToken(token string) (*authsvc.Claims, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

type orderService interface {
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	ListForCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListForRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error)
	ListDeliverable(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error)
	Stats(ctx context.Context) (*orderrepo.Stats, error)
}

type checkoutService interface {
	Submit(ctx context.Context, c *cart.Cart, details checkout.DeliveryDetails) (*checkout.Placement, error)
}

// Deps carries everything the router wires into handlers.
type Deps struct {
	CatalogSvc  catalogService
	AuthSvc     authService
	OrderSvc    orderService
	CheckoutSvc checkoutService
	Carts       *cart.Store
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(corsMiddleware(corsOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/login", loginHandler(deps.AuthSvc))
	router.POST("/auth/register", registerHandler(deps.AuthSvc))

	router.GET("/restaurants", listRestaurantsHandler(deps.CatalogSvc))
	router.GET("/restaurants/:id", getRestaurantHandler(deps.CatalogSvc))
	router.GET("/restaurants/:id/menu", getMenuHandler(deps.CatalogSvc))

	withCart := router.Group("/", sessionMiddleware())
	withCart.GET("/cart", getCartHandler(deps.Carts))
	withCart.POST("/cart/items", addCartItemHandler(deps.Carts, deps.CatalogSvc))
	withCart.PATCH("/cart/items/:lineId", updateCartItemHandler(deps.Carts))
	withCart.DELETE("/cart/items/:lineId", removeCartItemHandler(deps.Carts))
	withCart.DELETE("/cart", clearCartHandler(deps.Carts))
	withCart.POST("/checkout", checkoutHandler(deps.Carts, deps.CheckoutSvc, deps.AuthSvc))

	router.GET("/orders/:reference", getOrderHandler(deps.OrderSvc))

	authed := router.Group("/", authMiddleware(deps.AuthSvc))
	authed.GET("/me/orders", myOrdersHandler(deps.OrderSvc))

	restaurant := authed.Group("/restaurant", requireRole(domain.RoleRestaurant))
	restaurant.GET("/orders", restaurantOrdersHandler(deps.OrderSvc, deps.AuthSvc))
	restaurant.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))

	delivery := authed.Group("/delivery", requireRole(domain.RoleDelivery))
	delivery.GET("/orders", deliveryOrdersHandler(deps.OrderSvc))
	delivery.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))

	admin := authed.Group("/admin", requireRole(domain.RoleAdmin))
	admin.GET("/stats", adminStatsHandler(deps.OrderSvc))

	return router, nil
}

func corsMiddleware(origins string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"}
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	return cors.New(cfg)
}
