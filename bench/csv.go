package bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
)

// ErrBadCSV signals a results file that does not match the header or whose
// fields do not parse.
var ErrBadCSV = errors.New("bench: malformed results csv")

// Header is the column layout of results files.
var Header = []string{"Instance", "Algorithm", "Status", "Time", "Cost", "Error"}

// WriteCSV writes recs with Header. Time is in seconds with four decimals;
// Cost is empty for records without a tour.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range recs {
		cost := ""
		if r.HasCost() {
			cost = strconv.FormatFloat(r.Cost, 'f', -1, 64)
		}
		row := []string{
			r.Instance,
			r.Algorithm,
			r.Status.String(),
			strconv.FormatFloat(r.Time.Seconds(), 'f', 4, 64),
			cost,
			r.Error,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a file written by WriteCSV. RunID is left zero.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrBadCSV)
		}
		return nil, fmt.Errorf("%w: %w", ErrBadCSV, err)
	}
	for i, col := range Header {
		if head[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadCSV, i+1, head[i], col)
		}
	}

	var recs []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadCSV, err)
		}
		line, _ := cr.FieldPos(0)

		rec := Record{Instance: row[0], Algorithm: row[1], Cost: math.NaN(), Error: row[5]}
		if rec.Status, err = ParseStatus(row[2]); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadCSV, line, err)
		}
		secs, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: time %q", ErrBadCSV, line, row[3])
		}
		rec.Time = time.Duration(secs * float64(time.Second))
		if row[4] != "" {
			if rec.Cost, err = strconv.ParseFloat(row[4], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: cost %q", ErrBadCSV, line, row[4])
			}
		}
		recs = append(recs, rec)
	}

	return recs, nil
}
