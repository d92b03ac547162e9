package core

import (
	"time"
)

// Timestamp represents a point in time
type Timestamp time.Time

// NewTimestamp creates a new timestamp from time.Time
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Time returns the underlying time.Time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// IsZero checks if the timestamp is zero
func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

// Date formats like "Tue, 17 Jun 2025", the form used in model summaries
func (t Timestamp) Date() string {
	return time.Time(t).Format("Mon, 02 Jan 2006")
}

// Clock formats like "14:03:22"
func (t Timestamp) Clock() string {
	return time.Time(t).Format("15:04:05")
}

// String renders RFC 3339
func (t Timestamp) String() string {
	return time.Time(t).Format(time.RFC3339)
}
