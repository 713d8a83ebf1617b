package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The files are sequences of records: a `---` line opens each record and
// the fields follow as trimmed `key: value` lines. Unknown keys are
// ignored; a pending record materializes at the next separator or at EOF,
// and only if its required fields are present (checked by the caller).

const recordSeparator = "---"

type record map[string]string

// scanRecords splits the stream into field maps. Blank records (for example
// the one before a leading separator) are dropped.
func scanRecords(r io.Reader) ([]record, error) {
	records := make([]record, 0)
	pending := record{}

	flush := func() {
		if len(pending) > 0 {
			records = append(records, pending)
			pending = record{}
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == recordSeparator {
			flush()
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		pending[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()
	return records, nil
}

// intField returns 0 for missing or malformed values; loads never abort on
// a single bad field.
func (r record) intField(key string) int {
	value, err := strconv.Atoi(r[key])
	if err != nil {
		return 0
	}
	return value
}

func (r record) floatField(key string) float64 {
	value, err := strconv.ParseFloat(r[key], 64)
	if err != nil {
		return 0
	}
	return value
}

func writeRecord(w io.Writer, fields ...[2]string) error {
	if _, err := fmt.Fprintln(w, recordSeparator); err != nil {
		return err
	}
	for _, field := range fields {
		if _, err := fmt.Fprintf(w, "%s: %s\n", field[0], field[1]); err != nil {
			return err
		}
	}
	return nil
}

// parseSeatList reads a comma-separated seat list, skipping malformed
// entries.
func parseSeatList(value string) []int {
	seats := make([]int, 0)
	if value == "" {
		return seats
	}
	for _, segment := range strings.Split(value, ",") {
		seat, err := strconv.Atoi(strings.TrimSpace(segment))
		if err != nil {
			continue
		}
		seats = append(seats, seat)
	}
	return seats
}

func formatSeatList(seats []int) string {
	parts := make([]string, len(seats))
	for i, seat := range seats {
		parts[i] = strconv.Itoa(seat)
	}
	return strings.Join(parts, ",")
}
