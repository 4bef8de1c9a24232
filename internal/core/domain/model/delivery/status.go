package delivery

import "laundry/internal/pkg/errs"

// Status tracks a delivery job through dispatch. Unlike the order workflow
// there is no enforced transition table: staff may set any valid status, and
// lateness is evaluated on every touch instead.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Scheduled is the initial status of a freshly generated job.
	Scheduled

	// PickedUp indicates the laundry was collected from the customer.
	PickedUp

	// InTransit indicates the job is on its way back to the customer.
	InTransit

	// Delivered indicates the job finished. Terminal.
	Delivered

	// Late is a reportable status; independent of it, the monotonic late
	// flag marks deadline overruns.
	Late

	// Cancelled indicates the job was withdrawn. Terminal.
	Cancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Scheduled: "SCHEDULED",
		PickedUp:  "PICKED_UP",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Late:      "LATE",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses a wire/storage status name.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("delivery status " + s)
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s < Scheduled || s > Cancelled {
		return errs.NewValueIsInvalidError("delivery status")
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

// IsTerminal reports whether the job is finished (Delivered or Cancelled).
// Terminal jobs are never flagged late.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the job still counts for the lateness sweep.
func (s Status) IsActive() bool {
	return s == Scheduled || s == PickedUp || s == InTransit
}
