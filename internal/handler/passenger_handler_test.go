package handler

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-reservation/config"
	"train-reservation/internal/model"
	"train-reservation/internal/repository"
	"train-reservation/internal/service"
	"train-reservation/internal/storage"
)

type fixture struct {
	out       *bytes.Buffer
	users     repository.UserRepository
	trains    repository.TrainRepository
	tickets   repository.TicketRepository
	passenger *PassengerHandler
	admin     *AdminHandler
	session   *Session
}

// newFixture wires the real stack over scripted console input and a
// throwaway data directory.
func newFixture(t *testing.T, script string, trains ...*model.Train) *fixture {
	t.Helper()

	dir := t.TempDir()
	store := storage.NewFileStore(config.StorageConfig{
		DataDir:     dir,
		UsersFile:   filepath.Join(dir, "users.txt"),
		TrainsFile:  filepath.Join(dir, "trains.txt"),
		TicketsFile: filepath.Join(dir, "tickets.txt"),
	})

	userRepo := repository.NewUserRepository(nil)
	trainRepo := repository.NewTrainRepository(trains)
	ticketRepo := repository.NewTicketRepository(nil)

	authService := service.NewAuthService(userRepo)
	trainService := service.NewTrainService(trainRepo, ticketRepo)
	bookingService := service.NewBookingService(trainRepo, ticketRepo)
	reportService := service.NewReportService(userRepo, trainRepo, ticketRepo)

	out := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader(script), out)
	persister := NewPersister(store, userRepo, trainRepo, ticketRepo)

	passenger := NewPassengerHandler(prompter, trainService, bookingService, persister)
	admin := NewAdminHandler(prompter, trainService, reportService, persister)

	return &fixture{
		out:       out,
		users:     userRepo,
		trains:    trainRepo,
		tickets:   ticketRepo,
		passenger: passenger,
		admin:     admin,
		session:   NewSession(prompter, authService, admin, passenger, persister),
	}
}

func anna() *model.User {
	return &model.User{ID: 2, Login: "anna", Password: "secret", Role: model.RolePassenger}
}

func TestPassengerHandler_Booking(t *testing.T) {
	t.Run("Success - search, pick seat, premium class, confirm", func(t *testing.T) {
		script := strings.Join([]string{
			"1",  // book a ticket
			"1",  // show all trains
			"10", // train id
			"3",  // seat
			"2",  // premium
			"t",  // confirm
			"5",  // log out
		}, "\n") + "\n"
		f := newFixture(t, script, model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5))

		f.passenger.Run(context.Background(), anna())

		require.Len(t, f.tickets.List(), 1)
		ticket := f.tickets.List()[0]
		assert.Equal(t, "anna", ticket.PassengerLogin)
		assert.Equal(t, 3, ticket.SeatNumber)
		assert.InDelta(t, 105.0, ticket.Price, 1e-9)

		assert.Contains(t, f.out.String(), "[SUCCESS] Payment accepted")
	})

	t.Run("declined confirmation leaves no trace", func(t *testing.T) {
		script := "1\n1\n10\n3\n1\nn\n5\n"
		f := newFixture(t, script, model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5))

		f.passenger.Run(context.Background(), anna())

		assert.Empty(t, f.tickets.List())
		train, err := f.trains.FindByID(10)
		require.NoError(t, err)
		assert.True(t, train.IsSeatFree(3))
		assert.Contains(t, f.out.String(), "Booking cancelled")
	})

	t.Run("unknown train id aborts without retry", func(t *testing.T) {
		script := "1\n1\n99\n5\n"
		f := newFixture(t, script, model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5))

		f.passenger.Run(context.Background(), anna())

		assert.Empty(t, f.tickets.List())
		assert.Contains(t, f.out.String(), "does not exist")
	})

	t.Run("occupied seat aborts without retry", func(t *testing.T) {
		train := model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5)
		require.True(t, train.ReserveSeat(3))
		script := "1\n1\n10\n3\n5\n"
		f := newFixture(t, script, train)

		f.passenger.Run(context.Background(), anna())

		assert.Empty(t, f.tickets.List())
		assert.Contains(t, f.out.String(), "already taken")
	})

	t.Run("no matching connections", func(t *testing.T) {
		script := "1\n2\nSopot\n5\n"
		f := newFixture(t, script, model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5))

		f.passenger.Run(context.Background(), anna())

		assert.Contains(t, f.out.String(), "No connections match")
	})
}

func TestPassengerHandler_Cancel(t *testing.T) {
	t.Run("Success - seat released and ticket gone", func(t *testing.T) {
		train := model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5)
		script := "1\n1\n10\n3\n1\nt\n" + // book seat 3
			"3\n1\n" + // cancel ticket 1
			"5\n"
		f := newFixture(t, script, train)

		f.passenger.Run(context.Background(), anna())

		assert.Empty(t, f.tickets.List())
		assert.True(t, train.IsSeatFree(3))
		assert.Contains(t, f.out.String(), "has been cancelled")
	})

	t.Run("Failed - other passenger's ticket reads as not found", func(t *testing.T) {
		train := model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5)
		require.True(t, train.ReserveSeat(1))
		script := "3\n1\n5\n"
		f := newFixture(t, script, train)
		f.tickets.Create(10, "bob", 1, 70.0)

		f.passenger.Run(context.Background(), anna())

		assert.Len(t, f.tickets.List(), 1)
		assert.False(t, train.IsSeatFree(1))
		assert.Contains(t, f.out.String(), "No ticket with that ID")
	})
}

func TestPassengerHandler_Modify(t *testing.T) {
	t.Run("Success - seat change on the same train", func(t *testing.T) {
		train := model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5)
		script := "1\n1\n10\n2\n1\nt\n" + // book seat 2
			"4\n1\n1\n4\n" + // modify ticket 1, mode 1, new seat 4
			"5\n"
		f := newFixture(t, script, train)

		f.passenger.Run(context.Background(), anna())

		require.Len(t, f.tickets.List(), 1)
		assert.Equal(t, 4, f.tickets.List()[0].SeatNumber)
		assert.True(t, train.IsSeatFree(2))
		assert.False(t, train.IsSeatFree(4))
	})

	t.Run("re-booking cancels the old ticket and issues a fresh one", func(t *testing.T) {
		first := model.NewTrain(10, "Krakow", "Gdansk", "2026-09-01", 5)
		second := model.NewTrain(11, "Krakow", "Poznan", "2026-10-01", 5)
		script := "1\n1\n10\n2\n1\nt\n" + // book train 10 seat 2
			"4\n1\n2\nt\n" + // modify ticket 1, mode 2, confirm
			"1\n11\n1\n1\nt\n" + // re-book: show all, train 11, seat 1, standard, confirm
			"5\n"
		f := newFixture(t, script, first, second)

		f.passenger.Run(context.Background(), anna())

		require.Len(t, f.tickets.List(), 1)
		ticket := f.tickets.List()[0]
		assert.Equal(t, 2, ticket.ID)
		assert.Equal(t, 11, ticket.TrainID)
		assert.True(t, first.IsSeatFree(2))
		assert.False(t, second.IsSeatFree(1))
	})
}
