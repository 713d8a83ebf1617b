package handler

import (
	"fmt"
	"strings"

	"train-reservation/internal/model"
)

const seatsPerRow = 4

// renderSeatMap draws the occupancy table: free seats show their number,
// occupied seats an X, four to a row.
func renderSeatMap(t *model.Train) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== SEAT MAP (Train ID: %d, Route: %s --> %s) ===\n", t.ID, t.Origin, t.Destination)
	b.WriteString("Legend: [ NR ] = Free, [ X ] = Occupied\n\n")

	for seat := 1; seat <= t.Capacity; seat++ {
		if t.IsSeatFree(seat) {
			fmt.Fprintf(&b, "[ %2d ] ", seat)
		} else {
			b.WriteString("[  X ] ")
		}
		if seat%seatsPerRow == 0 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n=============================================================\n")

	return b.String()
}

func renderTrainTable(trains []*model.Train) string {
	var b strings.Builder

	line := strings.Repeat("-", 71) + "\n"
	b.WriteString(line)
	fmt.Fprintf(&b, "%-6s%-20s%-20s%-12s%s\n", "ID", "From", "To", "Date", "Free")
	b.WriteString(line)
	for _, t := range trains {
		fmt.Fprintf(&b, "%-6d%-20s%-20s%-12s%d\n", t.ID, t.Origin, t.Destination, t.Date, t.AvailableSeats())
	}
	b.WriteString(line)

	return b.String()
}
