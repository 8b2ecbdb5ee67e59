package shipment

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a shipment.
//
//	Preparing ──> Shipped ──> Delivered
//	    │            │
//	    └──> Cancelled <─┘
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized values; it is never persisted.
	Unknown Status = iota
	Preparing
	Shipped
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Preparing: "preparing",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions is the transition table. Statuses absent from the map, and
// terminal statuses, allow no moves.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
	return map[Status][]Status{
		Preparing: {Shipped, Cancelled},
		Shipped:   {Delivered, Cancelled},
	}
}

// ParseStatus maps a wire label ("preparing", "shipped", "delivered",
// "cancelled") to a Status. Labels are matched exactly.
func ParseStatus(label string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == label {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not one of %s", ErrInvalidStatusValue, label, strings.Join(Labels(), ", "))
}

// Labels lists the valid wire labels in lifecycle order.
func Labels() []string {
	return []string{Preparing.String(), Shipped.String(), Delivered.String(), Cancelled.String()}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidStatusValue, int(s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowedTransitions returns the statuses reachable from s in one move.
func (s Status) AllowedTransitions() []Status {
	next := getTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether s -> next is in the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, candidate := range getTransitions()[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// TransitionTo validates s -> next and returns next.
//
// Returns ErrInvalidStatusValue when next is not a known status and
// ErrIllegalTransition when the move is not in the table, including a move to
// the current status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, next)
	}
	return next, nil
}

// MarshalText renders the wire label.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a wire label.
func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
