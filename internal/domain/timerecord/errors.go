package timerecord

import "errors"

// Time record domain errors
var (
	ErrRecordNotFound = errors.New("time record not found")
	ErrNotClockedIn   = errors.New("no clock-in record found for today")
	ErrInvalidAction  = errors.New("invalid correction action")
)
