package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString is returned when a string cannot be parsed as HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString represents a time of day in HH:MM format
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only hours and minutes
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses a time string and normalizes it to HH:MM.
// Single-digit components are zero-padded, so "9:5" becomes "09:05".
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// String returns the underlying HH:MM string
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true if the time string is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the time string is a well-formed HH:MM value
func (t TimeString) Validate() error {
	_, _, err := t.parse()
	return err
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	hours, mins, err := t.parse()
	if err != nil {
		return "", err
	}

	total := (hours*60 + mins + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore returns true if t is strictly earlier than other.
// HH:MM strings compare correctly lexicographically.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

func (t TimeString) parse() (int, int, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), parsed.Minute(), nil
}
