package model

import "fmt"

// Status is the availability state of a product. The set is closed: every
// product is in exactly one of the three states at all times.
type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
)

// Statuses lists every valid status, in display order.
var Statuses = []Status{StatusAvailable, StatusReserved, StatusSold}

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// ParseStatus converts an inbound string into a Status.
// Any value outside the closed set is an error — there is no fallback state.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q (must be available, reserved or sold)", v)
	}
	return s, nil
}

// CanTransition reports whether a product may move from s to target.
// All six directed transitions between distinct states are allowed: status is
// advisory (the actual negotiation happens over WhatsApp), so sold products can
// be put back on sale as a manual correction.
func (s Status) CanTransition(target Status) bool {
	return s.Valid() && target.Valid()
}
