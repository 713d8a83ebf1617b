package repository

import (
	"train-reservation/internal/model"
	apperrors "train-reservation/pkg/app_errors"
)

type TrainRepository interface {
	List() []*model.Train
	FindByID(id int) (*model.Train, error)
	Create(train *model.Train) (*model.Train, error)
	Delete(id int) error
}

// TrainRepositoryImpl keeps the registry as an ordered slice; search results
// preserve insertion order, so that order is part of the contract.
type TrainRepositoryImpl struct {
	trains []*model.Train
}

func NewTrainRepository(initial []*model.Train) TrainRepository {
	return &TrainRepositoryImpl{
		trains: initial,
	}
}

func (r *TrainRepositoryImpl) List() []*model.Train {
	return r.trains
}

func (r *TrainRepositoryImpl) FindByID(id int) (*model.Train, error) {
	for _, train := range r.trains {
		if train.ID == id {
			return train, nil
		}
	}
	return nil, apperrors.ErrTrainNotFound
}

func (r *TrainRepositoryImpl) Create(train *model.Train) (*model.Train, error) {
	if _, err := r.FindByID(train.ID); err == nil {
		return nil, apperrors.ErrDuplicateTrainID
	}
	r.trains = append(r.trains, train)
	return train, nil
}

func (r *TrainRepositoryImpl) Delete(id int) error {
	for i, train := range r.trains {
		if train.ID == id {
			r.trains = append(r.trains[:i], r.trains[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrTrainNotFound
}
