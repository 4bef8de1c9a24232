package order

import "laundry/internal/pkg/errs"

// Status represents the fulfillment state of an order. It implements a state
// machine with defined transitions so orders follow the workflow:
//
//	Pending ──> InProgress ──> Ready ──> Delivered
//	   │             │            │
//	   └─────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Reapplying the current status is
// always permitted as a no-op.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the only initial status, set at order creation.
	// Pending orders may still be edited and cancelled by the customer.
	Pending

	// InProgress indicates staff started processing the order.
	InProgress

	// Ready indicates processing finished and the order awaits delivery.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was withdrawn. Terminal.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Ready:      "READY",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses a wire/storage status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("order status " + s)
}

// Validate checks that the status is one of the defined workflow states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidError("order status")
	}
	return nil
}

// String returns the storage/display name of the status.
func (s Status) String() string {
	if name, ok := statusStrings()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the workflow permits moving to next.
// A self-transition is always permitted as a no-op.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}

	switch s {
	case Pending:
		return next == InProgress || next == Cancelled
	case InProgress:
		return next == Ready || next == Cancelled
	case Ready:
		return next == Delivered || next == Cancelled
	default:
		return false
	}
}

// TransitionTo validates the move to next and returns the resulting status.
// Disallowed moves fail with an invalid-transition error carrying the
// attempted from/to pair.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}
