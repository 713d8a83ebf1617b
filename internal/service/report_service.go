package service

import (
	"train-reservation/internal/repository"
)

// SystemReport is the admin's aggregate view. Pure read, no side effects.
type SystemReport struct {
	Users       int
	Trains      int
	TicketsSold int
	Revenue     float64
}

type ReportService interface {
	SystemReport() SystemReport
}

type ReportServiceImpl struct {
	users   repository.UserRepository
	trains  repository.TrainRepository
	tickets repository.TicketRepository
}

func NewReportService(users repository.UserRepository, trains repository.TrainRepository, tickets repository.TicketRepository) ReportService {
	return &ReportServiceImpl{
		users:   users,
		trains:  trains,
		tickets: tickets,
	}
}

func (s *ReportServiceImpl) SystemReport() SystemReport {
	report := SystemReport{
		Users:       s.users.Count(),
		Trains:      len(s.trains.List()),
		TicketsSold: len(s.tickets.List()),
	}
	for _, ticket := range s.tickets.List() {
		report.Revenue += ticket.Price
	}
	return report
}
