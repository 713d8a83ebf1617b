package model

// Capacity bounds enforced when an admin creates a train.
const (
	MinCapacity = 1
	MaxCapacity = 100
)

// Train is one scheduled connection together with its seat map. Seat numbers
// are 1-based and the seat map never changes size after construction.
type Train struct {
	ID          int
	Origin      string
	Destination string
	Date        string // RRRR-MM-DD, not strictly validated
	Capacity    int

	seats []bool // true = occupied, index seat-1
}

func NewTrain(id int, origin, destination, date string, capacity int) *Train {
	if capacity < 0 {
		capacity = 0
	}
	return &Train{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Date:        date,
		Capacity:    capacity,
		seats:       make([]bool, capacity),
	}
}

// IsSeatFree reports whether the seat can be reserved. Seat numbers outside
// [1, Capacity] are never free.
func (t *Train) IsSeatFree(seat int) bool {
	if seat < 1 || seat > t.Capacity {
		return false
	}
	return !t.seats[seat-1]
}

// ReserveSeat marks the seat occupied. It mutates nothing and returns false
// when the seat is taken or out of range; this check-then-set is the single
// guard against double booking.
func (t *Train) ReserveSeat(seat int) bool {
	if !t.IsSeatFree(seat) {
		return false
	}
	t.seats[seat-1] = true
	return true
}

// ReleaseSeat frees the seat. Out-of-range numbers are a silent no-op.
func (t *Train) ReleaseSeat(seat int) {
	if seat >= 1 && seat <= t.Capacity {
		t.seats[seat-1] = false
	}
}

func (t *Train) OccupiedSeatsCount() int {
	count := 0
	for _, occupied := range t.seats {
		if occupied {
			count++
		}
	}
	return count
}

func (t *Train) AvailableSeats() int {
	return t.Capacity - t.OccupiedSeatsCount()
}

// OccupiedSeats returns the occupied seat numbers in ascending order, the
// form the trains file stores them in.
func (t *Train) OccupiedSeats() []int {
	seats := make([]int, 0)
	for i, occupied := range t.seats {
		if occupied {
			seats = append(seats, i+1)
		}
	}
	return seats
}
