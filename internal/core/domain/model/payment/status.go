package payment

import "laundry/internal/pkg/errs"

// Status represents the lifecycle state of a payment.
//
// State transitions:
//
//	Pending ──┬──> Paid (terminal)
//	          └──> Failed ──> Paid | Pending
//
// Paid is the only terminal state: once reached, the only permitted
// "transition" is the idempotent re-application of Paid itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every payment.
	Pending

	// Paid indicates the payment completed. Terminal.
	Paid

	// Failed indicates the payment attempt failed. A failed payment may be
	// retried, so Failed is not terminal.
	Failed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Pending: "PENDING",
		Paid:    "PAID",
		Failed:  "FAILED",
	}
}

// StatusFromString parses a wire/storage status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("payment status " + s)
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s != Pending && s != Paid && s != Failed {
		return errs.NewValueIsInvalidError("payment status")
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

// IsTerminal reports whether the status permits no further changes.
func (s Status) IsTerminal() bool {
	return s == Paid
}

// TransitionTo validates the move to next and returns the resulting status.
// Reapplying the current status is an idempotent no-op. Any change away from
// Paid fails.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s == next {
		return s, nil
	}
	if s == Paid {
		return Unknown, errs.NewInvalidTransitionError("payment", s.String(), next.String())
	}
	return next, nil
}
