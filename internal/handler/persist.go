package handler

import (
	"context"

	"go.uber.org/zap"

	"train-reservation/internal/repository"
	"train-reservation/internal/storage"
	"train-reservation/pkg/logger"
)

// Persister flushes the in-memory collections to disk after each
// state-changing operation. Saves are best-effort: a failure is logged and
// the session keeps running on its in-memory state.
type Persister struct {
	store   *storage.FileStore
	users   repository.UserRepository
	trains  repository.TrainRepository
	tickets repository.TicketRepository
	log     *zap.Logger
}

func NewPersister(
	store *storage.FileStore,
	users repository.UserRepository,
	trains repository.TrainRepository,
	tickets repository.TicketRepository,
) *Persister {
	return &Persister{
		store:   store,
		users:   users,
		trains:  trains,
		tickets: tickets,
		log:     logger.WithComponent("persister"),
	}
}

func (p *Persister) Users(ctx context.Context) {
	if err := p.store.SaveUsers(ctx, p.users.List()); err != nil {
		p.log.Error("failed to save users", zap.Error(err))
	}
}

func (p *Persister) Trains(ctx context.Context) {
	if err := p.store.SaveTrains(ctx, p.trains.List()); err != nil {
		p.log.Error("failed to save trains", zap.Error(err))
	}
}

func (p *Persister) Tickets(ctx context.Context) {
	if err := p.store.SaveTickets(ctx, p.tickets.List()); err != nil {
		p.log.Error("failed to save tickets", zap.Error(err))
	}
}

func (p *Persister) All(ctx context.Context) {
	p.Users(ctx)
	p.Trains(ctx)
	p.Tickets(ctx)
}
