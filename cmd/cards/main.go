package main

import (
	_ "natrix-bank/docs"
	"natrix-bank/internal/api"
	"natrix-bank/internal/app"
	"natrix-bank/internal/domain/card"
	"natrix-bank/internal/infrastructure/database/postgres"
)

// @title Cards Service API
// @version 1.0
// @description Issues and manages credit cards keyed by mobile number.

// @contact.name API Support
// @contact.email support@natrix-bank.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
func main() {
	cfg, logger := app.Initialize("cards")

	dbPool := app.InitializeDatabase(cfg, "cards", logger)
	defer app.CloseDatabase(dbPool, logger)

	publisher, amqpConn := app.InitializePublisher(cfg, logger)
	if amqpConn != nil {
		defer amqpConn.Close()
	}

	redisClient := app.InitializeRedis(cfg, logger)
	defer app.CloseRedis(redisClient, logger)

	cardRepo := postgres.NewCardRepository(dbPool, logger)
	cardService := card.NewCardService(cardRepo, publisher, logger)

	router := api.SetupCardsRouter(cardService, redisClient, cfg, logger)

	srv, serverErrors, shutdownChan := app.StartServer(cfg, router, logger)
	app.HandleShutdown(srv, shutdownChan, serverErrors, logger)
}
