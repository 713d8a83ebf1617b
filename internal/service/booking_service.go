package service

import (
	"go.uber.org/zap"

	"train-reservation/internal/model"
	"train-reservation/internal/repository"
	apperrors "train-reservation/pkg/app_errors"
	"train-reservation/pkg/logger"
)

// Fare rule: flat base plus a per-character surcharge on the destination
// name, premium at 1.5x. The rule is odd but it is the one the system has
// always charged, so it stays.
const (
	baseFare          = 40.0
	farePerDestLetter = 5.0
)

// FareQuote is the pair of prices offered at the class-selection step.
type FareQuote struct {
	Standard float64
	Premium  float64
}

type BookingService interface {
	Quote(trainID int) (FareQuote, error)
	// Book reserves the seat and issues the ticket as one transaction: a
	// failed reservation issues nothing, a successful one always issues.
	Book(trainID int, passengerLogin string, seat int, class model.FareClass) (*model.Ticket, error)
	MyTickets(passengerLogin string) []*model.Ticket
	FindOwned(ticketID int, passengerLogin string) (*model.Ticket, error)
	Cancel(ticketID int, passengerLogin string) error
	ChangeSeat(ticketID int, passengerLogin string, newSeat int) error
}

type BookingServiceImpl struct {
	trains  repository.TrainRepository
	tickets repository.TicketRepository
	log     *zap.Logger
}

func NewBookingService(trains repository.TrainRepository, tickets repository.TicketRepository) BookingService {
	return &BookingServiceImpl{
		trains:  trains,
		tickets: tickets,
		log:     logger.WithComponent("booking_service"),
	}
}

func basePrice(destination string) float64 {
	return baseFare + float64(len(destination))*farePerDestLetter
}

func (s *BookingServiceImpl) Quote(trainID int) (FareQuote, error) {
	train, err := s.trains.FindByID(trainID)
	if err != nil {
		return FareQuote{}, err
	}
	base := basePrice(train.Destination)
	return FareQuote{
		Standard: model.FareClassStandard.Apply(base),
		Premium:  model.FareClassPremium.Apply(base),
	}, nil
}

func (s *BookingServiceImpl) Book(trainID int, passengerLogin string, seat int, class model.FareClass) (*model.Ticket, error) {
	train, err := s.trains.FindByID(trainID)
	if err != nil {
		return nil, err
	}

	// The seat may have been checked earlier in the dialogue; only this
	// reserve decides. On failure no ticket exists, on success the issue
	// below always happens.
	if !train.ReserveSeat(seat) {
		return nil, apperrors.ErrSeatUnavailable
	}

	price := class.Apply(basePrice(train.Destination))
	ticket := s.tickets.Create(trainID, passengerLogin, seat, price)

	s.log.Info("ticket issued",
		zap.Int("ticket_id", ticket.ID),
		zap.Int("train_id", trainID),
		zap.Int("seat", seat),
		zap.Float64("price", price))
	return ticket, nil
}

func (s *BookingServiceImpl) MyTickets(passengerLogin string) []*model.Ticket {
	return s.tickets.ListByPassenger(passengerLogin)
}

func (s *BookingServiceImpl) FindOwned(ticketID int, passengerLogin string) (*model.Ticket, error) {
	return s.tickets.FindByIDAndOwner(ticketID, passengerLogin)
}

// Cancel releases the seat and removes the ticket together. If the train was
// deleted meanwhile the release is skipped silently; the ticket still goes.
func (s *BookingServiceImpl) Cancel(ticketID int, passengerLogin string) error {
	ticket, err := s.tickets.FindByIDAndOwner(ticketID, passengerLogin)
	if err != nil {
		return err
	}

	if train, err := s.trains.FindByID(ticket.TrainID); err == nil {
		train.ReleaseSeat(ticket.SeatNumber)
	}

	if err := s.tickets.Delete(ticket.ID); err != nil {
		return err
	}

	s.log.Info("ticket cancelled", zap.Int("ticket_id", ticketID), zap.Int("train_id", ticket.TrainID))
	return nil
}

// ChangeSeat moves the reservation to another seat on the same train. The
// ticket keeps its identity and price.
func (s *BookingServiceImpl) ChangeSeat(ticketID int, passengerLogin string, newSeat int) error {
	ticket, err := s.tickets.FindByIDAndOwner(ticketID, passengerLogin)
	if err != nil {
		return err
	}

	train, err := s.trains.FindByID(ticket.TrainID)
	if err != nil {
		return err
	}

	if newSeat == ticket.SeatNumber {
		return apperrors.ErrSameSeat
	}
	if !train.IsSeatFree(newSeat) {
		return apperrors.ErrSeatUnavailable
	}

	oldSeat := ticket.SeatNumber
	train.ReleaseSeat(oldSeat)
	if !train.ReserveSeat(newSeat) {
		// cannot happen single-threaded, but never leave the old seat lost
		train.ReserveSeat(oldSeat)
		return apperrors.ErrSeatUnavailable
	}

	if err := s.tickets.UpdateSeat(ticket.ID, newSeat); err != nil {
		return err
	}

	s.log.Info("seat changed",
		zap.Int("ticket_id", ticketID),
		zap.Int("old_seat", oldSeat),
		zap.Int("new_seat", newSeat))
	return nil
}
