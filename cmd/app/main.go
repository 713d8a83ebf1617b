package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"train-reservation/config"
	"train-reservation/internal/handler"
	"train-reservation/internal/repository"
	"train-reservation/internal/service"
	"train-reservation/internal/storage"
	"train-reservation/pkg/logger"
)

func main() {
	ctx := context.Background()
	log := logger.WithComponent("main")

	cfg := config.LoadConfig()
	store := storage.NewFileStore(cfg.Storage)

	users, err := store.LoadUsers(ctx)
	if err != nil {
		log.Fatal("failed to load users", zap.Error(err))
	}
	trains, err := store.LoadTrains(ctx)
	if err != nil {
		log.Fatal("failed to load trains", zap.Error(err))
	}
	tickets, err := store.LoadTickets(ctx)
	if err != nil {
		log.Fatal("failed to load tickets", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(users)
	trainRepo := repository.NewTrainRepository(trains)
	ticketRepo := repository.NewTicketRepository(tickets)

	authService := service.NewAuthService(userRepo)
	trainService := service.NewTrainService(trainRepo, ticketRepo)
	bookingService := service.NewBookingService(trainRepo, ticketRepo)
	reportService := service.NewReportService(userRepo, trainRepo, ticketRepo)

	prompter := handler.NewPrompter(os.Stdin, os.Stdout)
	persister := handler.NewPersister(store, userRepo, trainRepo, ticketRepo)

	// first run: no accounts at all, create the configured admin
	if authService.EnsureSeedAdmin(cfg.Seed.AdminLogin, cfg.Seed.AdminPassword) {
		prompter.Printf("First run. Creating the %s account.\n", cfg.Seed.AdminLogin)
		persister.Users(ctx)
	}

	adminHandler := handler.NewAdminHandler(prompter, trainService, reportService, persister)
	passengerHandler := handler.NewPassengerHandler(prompter, trainService, bookingService, persister)

	session := handler.NewSession(prompter, authService, adminHandler, passengerHandler, persister)
	session.Run(ctx)
}
