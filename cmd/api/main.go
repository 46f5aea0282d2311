package main

import (
	"context"

	"go.uber.org/zap"

	"workboard/config"
	"workboard/internal/db"
	"workboard/internal/handler"
	"workboard/internal/httpserver"
	"workboard/internal/model"
	"workboard/internal/repository"
)

func main() {
	// Load config
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Init DB
	dbConn, err := db.NewConnection(cfg.DB, logger)
	if err != nil {
		logger.Fatal("DB initialization failed", zap.Error(err))
	}
	defer dbConn.Close()

	// Rebuild the schema and load the seed dataset. The store is
	// process-lifetime only, every start begins from the same fixture.
	if err := db.Reset(context.Background(), dbConn, logger); err != nil {
		logger.Fatal("Schema reset failed", zap.Error(err))
	}

	// Init Repositories
	userRepo := repository.NewUserRepository(dbConn, logger)
	orderRepo := repository.NewOrderRepository(dbConn, logger)
	offerRepo := repository.NewOfferRepository(dbConn, logger)

	// Init generic CRUD resources
	users := handler.NewResource[*model.User]("user", userRepo, func() *model.User { return &model.User{} }, logger)
	orders := handler.NewResource[*model.Order]("order", orderRepo, func() *model.Order { return &model.Order{} }, logger)
	offers := handler.NewResource[*model.Offer]("offer", offerRepo, func() *model.Offer { return &model.Offer{} }, logger)

	// Router
	router := httpserver.NewRouter(users, orders, offers, dbConn, logger)

	// Start API server
	if err := router.Run(cfg.Server.Port); err != nil {
		logger.Fatal("server start failed", zap.Error(err))
	}
}
