package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"quickbite/internal/cart"
	"quickbite/internal/checkout"
	"quickbite/internal/config"
	"quickbite/internal/db"
	"quickbite/internal/httpserver"
	menurepo "quickbite/internal/repository/menu"
	orderrepo "quickbite/internal/repository/order"
	restaurantrepo "quickbite/internal/repository/restaurant"
	userrepo "quickbite/internal/repository/user"
	authsvc "quickbite/internal/service/auth"
	catalogsvc "quickbite/internal/service/catalog"
	ordersvc "quickbite/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	restaurantRepo := restaurantrepo.NewPostgres(dbpool)
	menuRepo := menurepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	userRepo := userrepo.NewPostgres(dbpool)

	catalogService := catalogsvc.New(restaurantRepo, menuRepo)
	authService := authsvc.New(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	orderService := ordersvc.New(orderRepo)
	checkoutService := checkout.New(orderService)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		AuthSvc:     authService,
		OrderSvc:    orderService,
		CheckoutSvc: checkoutService,
		Carts:       cart.NewStore(),
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
