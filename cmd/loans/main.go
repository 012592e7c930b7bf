package main

import (
	_ "natrix-bank/docs"
	"natrix-bank/internal/api"
	"natrix-bank/internal/app"
	"natrix-bank/internal/domain/loan"
	"natrix-bank/internal/infrastructure/database/postgres"
)

// @title Loans Service API
// @version 1.0
// @description Opens and manages home loans keyed by mobile number.

// @contact.name API Support
// @contact.email support@natrix-bank.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
func main() {
	cfg, logger := app.Initialize("loans")

	dbPool := app.InitializeDatabase(cfg, "loans", logger)
	defer app.CloseDatabase(dbPool, logger)

	publisher, amqpConn := app.InitializePublisher(cfg, logger)
	if amqpConn != nil {
		defer amqpConn.Close()
	}

	redisClient := app.InitializeRedis(cfg, logger)
	defer app.CloseRedis(redisClient, logger)

	loanRepo := postgres.NewLoanRepository(dbPool, logger)
	loanService := loan.NewLoanService(loanRepo, publisher, logger)

	router := api.SetupLoansRouter(loanService, redisClient, cfg, logger)

	srv, serverErrors, shutdownChan := app.StartServer(cfg, router, logger)
	app.HandleShutdown(srv, shutdownChan, serverErrors, logger)
}
