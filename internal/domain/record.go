package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// RecordDateLayout renders record dates in the "Thu Feb 20 2025" style.
const RecordDateLayout = "Mon Jan 02 2006"

// ErrEmptyRecordDate is returned when a record has no date.
var ErrEmptyRecordDate = errors.New("record date cannot be empty")

// Record holds the fields shared by every kind of journal record.
// ID is assigned by the caller and is not checked for uniqueness.
type Record struct {
	ID   int       `json:"record_id" yaml:"record_id"`
	Date time.Time `json:"date"      yaml:"date"`
}

// BasicInfo returns the record ID and date on two lines.
func (r Record) BasicInfo() string {
	return fmt.Sprintf("Record ID: %d\nDate: %s", r.ID, r.Date.Format(RecordDateLayout))
}

func (r Record) validate() error {
	if r.Date.IsZero() {
		return ErrEmptyRecordDate
	}
	return nil
}

// FormatNumber renders f in its shortest exact decimal form: 60 → "60",
// 62.5 → "62.5".
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
