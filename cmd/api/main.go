package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"campusbites/backend/internal/config"
	"campusbites/backend/internal/domain/ads"
	"campusbites/backend/internal/domain/campus"
	"campusbites/backend/internal/domain/menu"
	"campusbites/backend/internal/domain/order"
	"campusbites/backend/internal/domain/restaurant"
	"campusbites/backend/internal/domain/stats"
	"campusbites/backend/internal/domain/university"
	"campusbites/backend/internal/domain/user"
	"campusbites/backend/internal/firebase"
	"campusbites/backend/internal/handlers"
	apihttp "campusbites/backend/internal/http"
	"campusbites/backend/internal/logging"
	"campusbites/backend/internal/scheduler"
	"campusbites/backend/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	logger, err := logging.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	clients, err := firebase.NewClients(ctx, cfg)
	if err != nil {
		logger.Fatal("firebase init failed", zap.Error(err))
	}
	defer clients.Close()

	// Repositories
	restaurantRepo := restaurant.NewRepo(clients.Firestore)
	universityRepo := university.NewRepo(clients.Firestore)
	menuRepo := menu.NewRepo(clients.Firestore)
	orderRepo := order.NewRepo(clients.Firestore)
	adsRepo := ads.NewRepo(clients.Firestore)
	userRepo := user.NewRepo(clients.Firestore)
	fields := store.NewFields(clients.Firestore)

	// Services
	restaurantSvc := restaurant.NewService(restaurantRepo, fields, logger)
	universitySvc := university.NewService(universityRepo, restaurantRepo, logger)
	campusSvc := campus.NewService(restaurantRepo, universityRepo, logger)
	menuSvc := menu.NewService(menuRepo)
	orderSvc := order.NewService(orderRepo)
	adsSvc := ads.NewService(adsRepo, fields)
	userSvc := user.NewService(userRepo, fields)
	statsSvc := stats.NewService(clients.Firestore)

	autoCloser, err := scheduler.New(
		scheduler.NewFileStore(cfg.AutoCloseConfigPath),
		restaurantSvc,
		logger,
	)
	if err != nil {
		logger.Fatal("autoclose init failed", zap.Error(err))
	}

	schedCtx, stopSched := context.WithCancel(ctx)
	go autoCloser.Run(schedCtx)

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:           cfg,
		AuthClient:    clients.Auth,
		RestaurantSvc: restaurantSvc,
		UniversitySvc: universitySvc,
		CampusSvc:     campusSvc,
		MenuSvc:       menuSvc,
		OrderSvc:      orderSvc,
		AdsSvc:        adsSvc,
		UserSvc:       userSvc,
		StatsSvc:      statsSvc,
		AutoCloser:    autoCloser,
		Uploads:       handlers.NewUploads(cfg, clients),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		logger.Info("API listening",
			zap.String("port", cfg.Port),
			zap.String("project", cfg.ProjectID))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	stopSched()

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down")
	_ = srv.Shutdown(ctxShutdown)
}
