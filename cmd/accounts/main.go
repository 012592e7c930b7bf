package main

import (
	_ "natrix-bank/docs"
	"natrix-bank/internal/api"
	"natrix-bank/internal/app"
	"natrix-bank/internal/domain/account"
	"natrix-bank/internal/infrastructure/database/postgres"
)

// @title Accounts Service API
// @version 1.0
// @description Provisions and manages customers with their bank accounts.

// @contact.name API Support
// @contact.email support@natrix-bank.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
func main() {
	cfg, logger := app.Initialize("accounts")

	dbPool := app.InitializeDatabase(cfg, "accounts", logger)
	defer app.CloseDatabase(dbPool, logger)

	publisher, amqpConn := app.InitializePublisher(cfg, logger)
	if amqpConn != nil {
		defer amqpConn.Close()
	}

	redisClient := app.InitializeRedis(cfg, logger)
	defer app.CloseRedis(redisClient, logger)

	accountRepo := postgres.NewAccountRepository(dbPool, logger)
	accountService := account.NewAccountService(accountRepo, publisher, logger)

	router := api.SetupAccountsRouter(accountService, redisClient, cfg, logger)

	srv, serverErrors, shutdownChan := app.StartServer(cfg, router, logger)
	app.HandleShutdown(srv, shutdownChan, serverErrors, logger)
}
