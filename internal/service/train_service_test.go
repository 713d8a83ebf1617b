package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-reservation/internal/model"
	"train-reservation/internal/repository"
	apperrors "train-reservation/pkg/app_errors"
)

func setupTrains(t *testing.T, trains ...*model.Train) (TrainService, repository.TicketRepository) {
	t.Helper()
	trainRepo := repository.NewTrainRepository(trains)
	ticketRepo := repository.NewTicketRepository(nil)
	return NewTrainService(trainRepo, ticketRepo), ticketRepo
}

func TestTrainService_CreateTrain(t *testing.T) {
	t.Run("Success - station names are normalized", func(t *testing.T) {
		svc, _ := setupTrains(t)

		train, err := svc.CreateTrain(1, "kRAKOW", "gdansk", "2026-09-01", 20)

		require.NoError(t, err)
		assert.Equal(t, "Krakow", train.Origin)
		assert.Equal(t, "Gdansk", train.Destination)
	})

	t.Run("Success - non-ASCII names survive normalization", func(t *testing.T) {
		svc, _ := setupTrains(t)

		train, err := svc.CreateTrain(1, "łódź", "WROCŁAW", "2026-09-01", 20)

		require.NoError(t, err)
		assert.Equal(t, "Łódź", train.Origin)
		assert.Equal(t, "Wrocław", train.Destination)
	})

	t.Run("Success - capacity clamped into [1,100]", func(t *testing.T) {
		svc, _ := setupTrains(t)

		low, err := svc.CreateTrain(1, "A", "B", "2026-09-01", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, low.Capacity)

		high, err := svc.CreateTrain(2, "A", "B", "2026-09-01", 500)
		require.NoError(t, err)
		assert.Equal(t, 100, high.Capacity)
	})

	t.Run("Failed - duplicate id", func(t *testing.T) {
		svc, _ := setupTrains(t, model.NewTrain(1, "Krakow", "Gdansk", "2026-09-01", 20))

		_, err := svc.CreateTrain(1, "Lodz", "Poznan", "2026-09-02", 20)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateTrainID)
	})
}

func TestTrainService_RemoveTrain(t *testing.T) {
	t.Run("Success - cascades to exactly the train's tickets", func(t *testing.T) {
		trainRepo := repository.NewTrainRepository([]*model.Train{
			model.NewTrain(1, "Krakow", "Gdansk", "2026-09-01", 20),
			model.NewTrain(2, "Lodz", "Poznan", "2026-09-02", 20),
		})
		ticketRepo := repository.NewTicketRepository(nil)
		ticketRepo.Create(1, "anna", 1, 70.0)
		ticketRepo.Create(1, "bob", 2, 70.0)
		ticketRepo.Create(2, "anna", 1, 75.0)
		svc := NewTrainService(trainRepo, ticketRepo)

		cancelled, err := svc.RemoveTrain(1)

		require.NoError(t, err)
		assert.Equal(t, 2, cancelled)
		require.Len(t, ticketRepo.List(), 1)
		assert.Equal(t, 2, ticketRepo.List()[0].TrainID)
		assert.False(t, svc.IDExists(1))
		assert.True(t, svc.IDExists(2))
	})

	t.Run("Failed - not found, no mutation", func(t *testing.T) {
		svc, tickets := setupTrains(t, model.NewTrain(1, "Krakow", "Gdansk", "2026-09-01", 20))
		tickets.Create(1, "anna", 1, 70.0)

		_, err := svc.RemoveTrain(99)

		assert.ErrorIs(t, err, apperrors.ErrTrainNotFound)
		assert.Len(t, tickets.List(), 1)
	})
}

func TestTrainService_Search(t *testing.T) {
	svc, _ := setupTrains(t,
		model.NewTrain(1, "Krakow", "Gdansk", "2026-09-01", 20),
		model.NewTrain(2, "Krakow", "Poznan", "2026-10-01", 20),
		model.NewTrain(3, "Lodz", "Gdansk", "2026-09-15", 20),
	)

	t.Run("empty criteria list everything in registry order", func(t *testing.T) {
		results := svc.Search(model.SearchCriteria{})
		require.Len(t, results, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{results[0].ID, results[1].ID, results[2].ID})
	})

	t.Run("filter by origin", func(t *testing.T) {
		results := svc.Search(model.SearchCriteria{Origin: "krak"})
		require.Len(t, results, 2)
	})

	t.Run("combined filters", func(t *testing.T) {
		results := svc.Search(model.SearchCriteria{Origin: "krak", Date: "2026-09"})
		require.Len(t, results, 1)
		assert.Equal(t, 1, results[0].ID)
	})
}
