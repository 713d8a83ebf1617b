package handler

import (
	"context"
	"errors"

	"train-reservation/internal/model"
	"train-reservation/internal/service"
	apperrors "train-reservation/pkg/app_errors"
)

type AdminHandler struct {
	prompter *Prompter
	trains   service.TrainService
	reports  service.ReportService
	persist  *Persister
}

func NewAdminHandler(prompter *Prompter, trains service.TrainService, reports service.ReportService, persist *Persister) *AdminHandler {
	return &AdminHandler{
		prompter: prompter,
		trains:   trains,
		reports:  reports,
		persist:  persist,
	}
}

// Run drives the admin panel until logout.
func (h *AdminHandler) Run(ctx context.Context, user *model.User) {
	for {
		h.prompter.Printf("\n=== ADMIN PANEL: %s ===\n", user.Login)
		h.prompter.Printf("1. Add a new train\n")
		h.prompter.Printf("2. Remove a train\n")
		h.prompter.Printf("3. Generate system report\n")
		h.prompter.Printf("4. Log out\n")
		h.prompter.Printf("-----------------------------------\n")

		switch h.prompter.ReadInt("Choose an option: ") {
		case 1:
			h.addTrain(ctx)
		case 2:
			h.removeTrain(ctx)
		case 3:
			h.generateReport()
		case 4:
			h.prompter.Printf("Logged out.\n")
			return
		default:
			h.prompter.Printf("Invalid option.\n")
		}
	}
}

func (h *AdminHandler) addTrain(ctx context.Context) {
	h.prompter.Printf("\n--- TRAIN CREATOR ---\n")

	// uniqueness is enforced here, by retrying, not inside the service
	var id int
	for {
		id = h.prompter.ReadInt("Enter a unique train ID: ")
		if !h.trains.IDExists(id) {
			break
		}
		h.prompter.Printf("Error: a train with ID %d already exists!\n", id)
	}

	origin := h.prompter.ReadLine("Origin station: ")
	destination := h.prompter.ReadLine("Destination station: ")
	date := h.prompter.ReadLine("Date (RRRR-MM-DD): ")
	capacity := h.prompter.ReadInt("Number of seats (max 100): ")

	train, err := h.trains.CreateTrain(id, origin, destination, date, capacity)
	if err != nil {
		h.prompter.Printf("[ERROR] Could not create the train.\n")
		return
	}

	h.prompter.Printf("SUCCESS: Train %s -> %s has been added.\n", train.Origin, train.Destination)
	h.persist.Trains(ctx)
}

func (h *AdminHandler) removeTrain(ctx context.Context) {
	h.prompter.Printf("\n--- TRAIN REMOVAL ---\n")
	if len(h.trains.List()) == 0 {
		h.prompter.Printf("The train database is empty.\n")
		return
	}

	id := h.prompter.ReadInt("Enter the ID of the train to remove: ")

	cancelled, err := h.trains.RemoveTrain(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTrainNotFound) {
			h.prompter.Printf("ERROR: No train with that ID.\n")
		} else {
			h.prompter.Printf("[ERROR] Could not remove the train.\n")
		}
		return
	}

	h.prompter.Printf("SUCCESS: Removed train ID %d.\n", id)
	if cancelled > 0 {
		h.prompter.Printf("NOTE: %d tickets were cancelled as well.\n", cancelled)
	}
	h.persist.Trains(ctx)
	h.persist.Tickets(ctx)
}

func (h *AdminHandler) generateReport() {
	report := h.reports.SystemReport()

	h.prompter.Printf("\n================ SYSTEM REPORT ================\n")
	h.prompter.Printf("Users:        %d\n", report.Users)
	h.prompter.Printf("Trains:       %d\n", report.Trains)
	h.prompter.Printf("Tickets sold: %d\n", report.TicketsSold)
	h.prompter.Printf("Revenue:      %.2f\n", report.Revenue)
	h.prompter.Printf("===============================================\n")
}
