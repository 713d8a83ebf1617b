// Package storage persists the registry, ledger and user list as flat text
// files so state survives between runs. Saves are best-effort: a failure is
// logged and the session carries on with its in-memory state.
package storage

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"train-reservation/config"
	"train-reservation/internal/model"
	"train-reservation/pkg/logger"
)

type FileStore struct {
	usersPath   string
	trainsPath  string
	ticketsPath string
	log         *zap.Logger
}

func NewFileStore(cfg config.StorageConfig) *FileStore {
	return &FileStore{
		usersPath:   cfg.UsersFile,
		trainsPath:  cfg.TrainsFile,
		ticketsPath: cfg.TicketsFile,
		log:         logger.WithComponent("storage"),
	}
}

func (s *FileStore) LoadUsers(_ context.Context) ([]*model.User, error) {
	records, err := s.loadRecords(s.usersPath)
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(records))
	for _, rec := range records {
		login := rec["login"]
		if login == "" {
			continue
		}
		role := model.Role(rec["type"])
		if !role.IsValid() {
			continue
		}
		users = append(users, &model.User{
			ID:       rec.intField("id"),
			Login:    login,
			Password: rec["password"],
			Role:     role,
		})
	}

	s.log.Info("users loaded", zap.String("path", s.usersPath), zap.Int("count", len(users)))
	return users, nil
}

func (s *FileStore) SaveUsers(_ context.Context, users []*model.User) error {
	return s.save(s.usersPath, "users", len(users), func(f *os.File) error {
		for _, user := range users {
			err := writeRecord(f,
				[2]string{"type", string(user.Role)},
				[2]string{"id", strconv.Itoa(user.ID)},
				[2]string{"login", user.Login},
				[2]string{"password", user.Password},
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *FileStore) LoadTrains(_ context.Context) ([]*model.Train, error) {
	records, err := s.loadRecords(s.trainsPath)
	if err != nil {
		return nil, err
	}

	trains := make([]*model.Train, 0, len(records))
	for _, rec := range records {
		capacity := rec.intField("capacity")
		if capacity <= 0 {
			continue
		}
		train := model.NewTrain(
			rec.intField("id"),
			rec["origin"],
			rec["destination"],
			rec["date"],
			capacity,
		)
		// out-of-range numbers are absorbed by ReserveSeat
		for _, seat := range parseSeatList(rec["occupied"]) {
			train.ReserveSeat(seat)
		}
		trains = append(trains, train)
	}

	s.log.Info("trains loaded", zap.String("path", s.trainsPath), zap.Int("count", len(trains)))
	return trains, nil
}

func (s *FileStore) SaveTrains(_ context.Context, trains []*model.Train) error {
	return s.save(s.trainsPath, "trains", len(trains), func(f *os.File) error {
		for _, train := range trains {
			err := writeRecord(f,
				[2]string{"id", strconv.Itoa(train.ID)},
				[2]string{"origin", train.Origin},
				[2]string{"destination", train.Destination},
				[2]string{"date", train.Date},
				[2]string{"capacity", strconv.Itoa(train.Capacity)},
				[2]string{"occupied", formatSeatList(train.OccupiedSeats())},
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *FileStore) LoadTickets(_ context.Context) ([]*model.Ticket, error) {
	records, err := s.loadRecords(s.ticketsPath)
	if err != nil {
		return nil, err
	}

	tickets := make([]*model.Ticket, 0, len(records))
	for _, rec := range records {
		id := rec.intField("id")
		passenger := rec["passenger"]
		if id <= 0 || passenger == "" {
			continue
		}
		tickets = append(tickets, &model.Ticket{
			ID:             id,
			TrainID:        rec.intField("trainId"),
			PassengerLogin: passenger,
			SeatNumber:     rec.intField("seat"),
			Price:          rec.floatField("price"),
		})
	}

	s.log.Info("tickets loaded", zap.String("path", s.ticketsPath), zap.Int("count", len(tickets)))
	return tickets, nil
}

func (s *FileStore) SaveTickets(_ context.Context, tickets []*model.Ticket) error {
	return s.save(s.ticketsPath, "tickets", len(tickets), func(f *os.File) error {
		for _, ticket := range tickets {
			err := writeRecord(f,
				[2]string{"id", strconv.Itoa(ticket.ID)},
				[2]string{"trainId", strconv.Itoa(ticket.TrainID)},
				[2]string{"passenger", ticket.PassengerLogin},
				[2]string{"seat", strconv.Itoa(ticket.SeatNumber)},
				[2]string{"price", strconv.FormatFloat(ticket.Price, 'f', 2, 64)},
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// loadRecords treats a missing file as an empty collection; first run starts
// from nothing.
func (s *FileStore) loadRecords(path string) ([]record, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		s.log.Info("file does not exist yet, starting empty", zap.String("path", path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := scanRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

func (s *FileStore) save(path, entity string, count int, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	s.log.Info(entity+" saved", zap.String("path", path), zap.Int("count", count))
	return nil
}
