package model

import "fmt"

// FareClass is the travel class chosen at booking time.
type FareClass int

const (
	FareClassStandard FareClass = 1
	FareClassPremium  FareClass = 2
)

func (c FareClass) IsValid() bool {
	return c == FareClassStandard || c == FareClassPremium
}

func (c FareClass) Label() string {
	if c == FareClassPremium {
		return "Premium"
	}
	return "Standard"
}

// Apply computes the final fare for this class. Premium costs half again the
// base fare.
func (c FareClass) Apply(base float64) float64 {
	if c == FareClassPremium {
		return base * 1.5
	}
	return base
}

// Ticket is one issued reservation. While the ticket is alive, SeatNumber is
// occupied in the seat map of the referenced train; the two are only ever
// changed together.
type Ticket struct {
	ID             int
	TrainID        int
	PassengerLogin string
	SeatNumber     int
	Price          float64
}

func (t *Ticket) String() string {
	return fmt.Sprintf("Ticket #%d | Train ID: %d | Seat %d | Passenger: %s | %.2f",
		t.ID, t.TrainID, t.SeatNumber, t.PassengerLogin, t.Price)
}
