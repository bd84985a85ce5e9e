package order

import (
	"errors"
	"fmt"
	"strings"

	"lunchbox/internal/pkg/errs"
)

// ErrInvalidTransition is wrapped by every rejected status change.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	CRIADO ──> PAGO ──> PREPARO ──> ENTREGUE
//	   │         │         │
//	   └─────────┴─────────┴──────> CANCELADO
//
// ENTREGUE and CANCELADO are terminal. Self transitions are rejected.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status; the order awaits payment.
	Created

	// Paid is reached through payment confirmation.
	Paid

	// Preparing means the kitchen is assembling the lunchbox.
	Preparing

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal and carries the cancel reason.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CRIADO",
		Paid:      "PAGO",
		Preparing: "PREPARO",
		Delivered: "ENTREGUE",
		Cancelled: "CANCELADO",
	}
}

// getTransitions is the adjacency table of the lifecycle.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no outgoing edges
	return map[Status][]Status{
		Created:   {Paid, Cancelled},
		Paid:      {Preparing, Cancelled},
		Preparing: {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// ParseStatus accepts the wire names case-insensitively.
//
// Example:
//
//	target, err := order.ParseStatus("preparo")
//	// target == order.Preparing
func ParseStatus(s string) (Status, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for st, name := range getStatusStrings() {
		if st != Unknown && name == want {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and values outside the enum.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the edge s -> target exists.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target),
		)
	}
	return target, nil
}
