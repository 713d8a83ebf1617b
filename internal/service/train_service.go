package service

import (
	"strings"
	"unicode"

	"go.uber.org/zap"

	"train-reservation/internal/model"
	"train-reservation/internal/repository"
	apperrors "train-reservation/pkg/app_errors"
	"train-reservation/pkg/logger"
)

type TrainService interface {
	List() []*model.Train
	Search(criteria model.SearchCriteria) []*model.Train
	GetByID(id int) (*model.Train, error)
	IDExists(id int) bool
	CreateTrain(id int, origin, destination, date string, capacity int) (*model.Train, error)
	// RemoveTrain cascades: every ticket referencing the train goes with it.
	// Returns how many tickets were cancelled that way.
	RemoveTrain(id int) (int, error)
}

type TrainServiceImpl struct {
	trains  repository.TrainRepository
	tickets repository.TicketRepository
	log     *zap.Logger
}

func NewTrainService(trains repository.TrainRepository, tickets repository.TicketRepository) TrainService {
	return &TrainServiceImpl{
		trains:  trains,
		tickets: tickets,
		log:     logger.WithComponent("train_service"),
	}
}

func (s *TrainServiceImpl) List() []*model.Train {
	return s.trains.List()
}

// Search keeps registry order. The zero criteria matches everything.
func (s *TrainServiceImpl) Search(criteria model.SearchCriteria) []*model.Train {
	result := make([]*model.Train, 0)
	for _, train := range s.trains.List() {
		if criteria.Matches(train) {
			result = append(result, train)
		}
	}
	return result
}

func (s *TrainServiceImpl) GetByID(id int) (*model.Train, error) {
	return s.trains.FindByID(id)
}

func (s *TrainServiceImpl) IDExists(id int) bool {
	_, err := s.trains.FindByID(id)
	return err == nil
}

func (s *TrainServiceImpl) CreateTrain(id int, origin, destination, date string, capacity int) (*model.Train, error) {
	if capacity < model.MinCapacity {
		capacity = model.MinCapacity
	}
	if capacity > model.MaxCapacity {
		capacity = model.MaxCapacity
	}

	train := model.NewTrain(id, normalizeStation(origin), normalizeStation(destination), date, capacity)
	created, err := s.trains.Create(train)
	if err != nil {
		return nil, err
	}

	s.log.Info("train created",
		zap.Int("id", created.ID),
		zap.String("origin", created.Origin),
		zap.String("destination", created.Destination),
		zap.Int("capacity", created.Capacity))
	return created, nil
}

func (s *TrainServiceImpl) RemoveTrain(id int) (int, error) {
	if _, err := s.trains.FindByID(id); err != nil {
		return 0, apperrors.ErrTrainNotFound
	}

	cancelled := s.tickets.DeleteByTrain(id)
	if err := s.trains.Delete(id); err != nil {
		return cancelled, err
	}

	s.log.Info("train removed", zap.Int("id", id), zap.Int("cancelled_tickets", cancelled))
	return cancelled, nil
}

// normalizeStation uppercases the first rune and lowercases the rest.
// Rune-wise on purpose so non-ASCII station names survive intact.
func normalizeStation(name string) string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) == 0 {
		return name
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
