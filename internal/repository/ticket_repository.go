package repository

import (
	"train-reservation/internal/model"
	apperrors "train-reservation/pkg/app_errors"
)

type TicketRepository interface {
	List() []*model.Ticket
	Create(trainID int, passengerLogin string, seat int, price float64) *model.Ticket
	FindByIDAndOwner(id int, passengerLogin string) (*model.Ticket, error)
	Delete(id int) error
	DeleteByTrain(trainID int) int
	ListByPassenger(passengerLogin string) []*model.Ticket
	ListByTrain(trainID int) []*model.Ticket
	UpdateSeat(id int, seat int) error
}

type TicketRepositoryImpl struct {
	tickets []*model.Ticket
}

func NewTicketRepository(initial []*model.Ticket) TicketRepository {
	return &TicketRepositoryImpl{
		tickets: initial,
	}
}

func (r *TicketRepositoryImpl) List() []*model.Ticket {
	return r.tickets
}

// Create appends a ticket with id = highest existing id + 1, starting at 1
// on an empty ledger. The caller must already hold the seat in the train's
// seat map.
func (r *TicketRepositoryImpl) Create(trainID int, passengerLogin string, seat int, price float64) *model.Ticket {
	maxID := 0
	for _, ticket := range r.tickets {
		if ticket.ID > maxID {
			maxID = ticket.ID
		}
	}

	ticket := &model.Ticket{
		ID:             maxID + 1,
		TrainID:        trainID,
		PassengerLogin: passengerLogin,
		SeatNumber:     seat,
		Price:          price,
	}
	r.tickets = append(r.tickets, ticket)
	return ticket
}

// FindByIDAndOwner requires both id and owner to match. A ticket owned by
// someone else is reported as not found, so ticket ids leak nothing about
// other passengers' bookings.
func (r *TicketRepositoryImpl) FindByIDAndOwner(id int, passengerLogin string) (*model.Ticket, error) {
	for _, ticket := range r.tickets {
		if ticket.ID == id && ticket.PassengerLogin == passengerLogin {
			return ticket, nil
		}
	}
	return nil, apperrors.ErrTicketNotFound
}

func (r *TicketRepositoryImpl) Delete(id int) error {
	for i, ticket := range r.tickets {
		if ticket.ID == id {
			r.tickets = append(r.tickets[:i], r.tickets[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrTicketNotFound
}

// DeleteByTrain removes every ticket referencing the train and returns how
// many were removed. Used by the cascading train delete.
func (r *TicketRepositoryImpl) DeleteByTrain(trainID int) int {
	kept := r.tickets[:0]
	deleted := 0
	for _, ticket := range r.tickets {
		if ticket.TrainID == trainID {
			deleted++
			continue
		}
		kept = append(kept, ticket)
	}
	r.tickets = kept
	return deleted
}

func (r *TicketRepositoryImpl) ListByPassenger(passengerLogin string) []*model.Ticket {
	result := make([]*model.Ticket, 0)
	for _, ticket := range r.tickets {
		if ticket.PassengerLogin == passengerLogin {
			result = append(result, ticket)
		}
	}
	return result
}

func (r *TicketRepositoryImpl) ListByTrain(trainID int) []*model.Ticket {
	result := make([]*model.Ticket, 0)
	for _, ticket := range r.tickets {
		if ticket.TrainID == trainID {
			result = append(result, ticket)
		}
	}
	return result
}

func (r *TicketRepositoryImpl) UpdateSeat(id int, seat int) error {
	for _, ticket := range r.tickets {
		if ticket.ID == id {
			ticket.SeatNumber = seat
			return nil
		}
	}
	return apperrors.ErrTicketNotFound
}
