package handler

import (
	"context"
	"errors"

	"train-reservation/internal/model"
	"train-reservation/internal/service"
	apperrors "train-reservation/pkg/app_errors"
)

type PassengerHandler struct {
	prompter *Prompter
	trains   service.TrainService
	booking  service.BookingService
	persist  *Persister
}

func NewPassengerHandler(prompter *Prompter, trains service.TrainService, booking service.BookingService, persist *Persister) *PassengerHandler {
	return &PassengerHandler{
		prompter: prompter,
		trains:   trains,
		booking:  booking,
		persist:  persist,
	}
}

// Run drives the passenger panel until logout.
func (h *PassengerHandler) Run(ctx context.Context, user *model.User) {
	for {
		h.prompter.Printf("\n=== PASSENGER PANEL: %s ===\n", user.Login)
		h.prompter.Printf("1. Search and book a ticket\n")
		h.prompter.Printf("2. My reservations\n")
		h.prompter.Printf("3. Cancel a reservation\n")
		h.prompter.Printf("4. Modify a reservation\n")
		h.prompter.Printf("5. Log out\n")

		switch h.prompter.ReadInt("Choose an option: ") {
		case 1:
			if h.bookTicket(user.Login) {
				h.persist.Trains(ctx)
				h.persist.Tickets(ctx)
			}
		case 2:
			h.listMyTickets(user.Login)
		case 3:
			if h.cancelBooking(user.Login) {
				h.persist.Trains(ctx)
				h.persist.Tickets(ctx)
			}
		case 4:
			if h.modifyBooking(user.Login) {
				h.persist.Trains(ctx)
				h.persist.Tickets(ctx)
			}
		case 5:
			h.prompter.Printf("Logged out.\n")
			return
		default:
			h.prompter.Printf("Invalid option.\n")
		}
	}
}

// bookTicket walks the whole booking dialogue: search, pick a train, pick a
// seat, pick a class, confirm. Every abort leaves no trace; only the final
// reserve-and-issue changes state. Reports whether anything changed.
func (h *PassengerHandler) bookTicket(login string) bool {
	if len(h.trains.List()) == 0 {
		h.prompter.Printf("\n[INFO] There are no trains in the database right now.\n")
		return false
	}

	criteria, ok := h.readSearchCriteria()
	if !ok {
		return false
	}

	results := h.trains.Search(criteria)
	if len(results) == 0 {
		h.prompter.Printf("\n[INFO] No connections match the criteria.\n")
		return false
	}

	h.prompter.Printf("\nFound %d matching connections:\n", len(results))
	h.prompter.Printf("%s", renderTrainTable(results))

	trainID := h.prompter.ReadInt("\nEnter a train ID to book (0 to cancel): ")
	if trainID == 0 {
		return false
	}

	train, err := h.trains.GetByID(trainID)
	if err != nil {
		h.prompter.Printf("\n[ERROR] Train with ID %d does not exist.\n", trainID)
		return false
	}

	h.prompter.Printf("%s", renderSeatMap(train))

	seat := h.prompter.ReadInt("Choose a seat number: ")
	if !train.IsSeatFree(seat) {
		h.prompter.Printf("\n[ERROR] Seat %d is already taken.\n", seat)
		return false
	}

	quote, err := h.booking.Quote(trainID)
	if err != nil {
		h.prompter.Printf("\n[ERROR] Train with ID %d does not exist.\n", trainID)
		return false
	}

	h.prompter.Printf("\n--- TRAVEL CLASS SELECTION ---\n")
	h.prompter.Printf("1. Second class (Standard) - Price: %.2f\n", quote.Standard)
	h.prompter.Printf("2. First class (Premium)   - Price: %.2f (+50%%)\n", quote.Premium)

	class := model.FareClassStandard
	price := quote.Standard
	if h.prompter.ReadInt("Choose a class (1/2): ") == 2 {
		class = model.FareClassPremium
		price = quote.Premium
	}

	h.prompter.Printf("\n--- BOOKING SUMMARY ---\n")
	h.prompter.Printf("Train:   %s -> %s\n", train.Origin, train.Destination)
	h.prompter.Printf("Date:    %s\n", train.Date)
	h.prompter.Printf("Seat:    %d\n", seat)
	h.prompter.Printf("Class:   %s\n", class.Label())
	h.prompter.Printf("TO PAY:  %.2f\n", price)
	h.prompter.Printf("-------------------------------\n")

	if !h.prompter.Confirm("Confirm the purchase? (t/n): ") {
		h.prompter.Printf("\nBooking cancelled.\n")
		return false
	}

	// Book re-checks the seat; a re-entrant booking from the modify flow
	// could have taken it since the check above.
	if _, err := h.booking.Book(trainID, login, seat, class); err != nil {
		h.prompter.Printf("\n[ERROR] Someone just took that seat. Try again.\n")
		return false
	}

	h.prompter.Printf("\n[SUCCESS] Payment accepted. Your ticket has been issued!\n")
	return true
}

// readSearchCriteria maps the four search modes onto one criteria value.
func (h *PassengerHandler) readSearchCriteria() (model.SearchCriteria, bool) {
	h.prompter.Printf("\n--- CONNECTION SEARCH ---\n")
	h.prompter.Printf("1. Show all trains\n")
	h.prompter.Printf("2. Search by origin station\n")
	h.prompter.Printf("3. Search by destination station\n")
	h.prompter.Printf("4. Advanced search (filter any field)\n")

	switch h.prompter.ReadInt("Choose a search option: ") {
	case 1:
		return model.SearchCriteria{}, true
	case 2:
		term := h.prompter.ReadLine("Enter a station name: ")
		return model.SearchCriteria{Origin: term}, true
	case 3:
		term := h.prompter.ReadLine("Enter a station name: ")
		return model.SearchCriteria{Destination: term}, true
	case 4:
		h.prompter.Printf("\n--- Trip planner ---\n")
		h.prompter.Printf("(Press ENTER to skip a filter)\n")
		return model.SearchCriteria{
			Origin:      h.prompter.ReadLine("From: "),
			Destination: h.prompter.ReadLine("To: "),
			Date:        h.prompter.ReadLine("Date (RRRR-MM-DD): "),
		}, true
	default:
		h.prompter.Printf("Invalid search option.\n")
		return model.SearchCriteria{}, false
	}
}

func (h *PassengerHandler) listMyTickets(login string) {
	h.prompter.Printf("\n--- YOUR ACTIVE RESERVATIONS ---\n")
	tickets := h.booking.MyTickets(login)
	if len(tickets) == 0 {
		h.prompter.Printf("You have no tickets.\n")
		return
	}
	for _, ticket := range tickets {
		h.prompter.Printf("%s\n", ticket)
	}
}

func (h *PassengerHandler) cancelBooking(login string) bool {
	h.prompter.Printf("\n--- RESERVATION CANCELLATION ---\n")
	h.listMyTickets(login)

	ticketID := h.prompter.ReadInt("\nEnter the ticket ID to cancel (0 to go back): ")
	if ticketID == 0 {
		return false
	}

	ticket, err := h.booking.FindOwned(ticketID, login)
	if err != nil {
		h.prompter.Printf("[ERROR] No ticket with that ID is assigned to you.\n")
		return false
	}

	if err := h.booking.Cancel(ticketID, login); err != nil {
		h.prompter.Printf("[ERROR] No ticket with that ID is assigned to you.\n")
		return false
	}

	h.prompter.Printf("[INFO] Seat %d on train ID %d has been released.\n", ticket.SeatNumber, ticket.TrainID)
	h.prompter.Printf("[SUCCESS] The reservation has been cancelled.\n")
	return true
}

func (h *PassengerHandler) modifyBooking(login string) bool {
	h.prompter.Printf("\n--- RESERVATION MODIFICATION ---\n")
	h.listMyTickets(login)

	ticketID := h.prompter.ReadInt("\nEnter the ticket ID to change (0 to go back): ")
	if ticketID == 0 {
		return false
	}

	ticket, err := h.booking.FindOwned(ticketID, login)
	if err != nil {
		h.prompter.Printf("[ERROR] Invalid ticket ID.\n")
		return false
	}

	train, err := h.trains.GetByID(ticket.TrainID)
	if err != nil {
		h.prompter.Printf("[ERROR] The train from this reservation no longer exists.\n")
		return false
	}

	h.prompter.Printf("\nWhat do you want to change?\n")
	h.prompter.Printf("1. Change only the seat (same train)\n")
	h.prompter.Printf("2. Change the date/train (requires re-booking)\n")

	switch h.prompter.ReadInt("Choose: ") {
	case 1:
		return h.changeSeat(login, ticket.ID, ticket.SeatNumber, train)
	case 2:
		return h.rebook(login, ticket.ID)
	default:
		h.prompter.Printf("Invalid option.\n")
		return false
	}
}

func (h *PassengerHandler) changeSeat(login string, ticketID, currentSeat int, train *model.Train) bool {
	h.prompter.Printf("Current seat: %d\n", currentSeat)
	h.prompter.Printf("%s", renderSeatMap(train))

	newSeat := h.prompter.ReadInt("Choose a new seat: ")

	err := h.booking.ChangeSeat(ticketID, login, newSeat)
	switch {
	case err == nil:
		h.prompter.Printf("[SUCCESS] Seat changed to %d.\n", newSeat)
		return true
	case errors.Is(err, apperrors.ErrSameSeat):
		h.prompter.Printf("That is the same seat. Change cancelled.\n")
	case errors.Is(err, apperrors.ErrSeatUnavailable):
		h.prompter.Printf("[ERROR] The chosen seat is taken.\n")
	default:
		h.prompter.Printf("[ERROR] Could not change the seat.\n")
	}
	return false
}

// rebook cancels the old ticket and runs the booking dialogue from scratch.
// The new ticket, if any, has a fresh id and a freshly computed price.
func (h *PassengerHandler) rebook(login string, ticketID int) bool {
	h.prompter.Printf("To change the train we have to cancel the current ticket and create a new one.\n")
	if !h.prompter.Confirm("Continue? (t/n): ") {
		h.prompter.Printf("Operation cancelled.\n")
		return false
	}

	if err := h.booking.Cancel(ticketID, login); err != nil {
		h.prompter.Printf("[ERROR] Invalid ticket ID.\n")
		return false
	}

	h.prompter.Printf("The old reservation is gone. Over to the search...\n")
	h.bookTicket(login)
	// the old ticket is gone even when the new booking was aborted
	return true
}
