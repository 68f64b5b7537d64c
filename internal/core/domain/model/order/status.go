package order

import (
	"fmt"

	"verduleria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InPreparation ──> Shipped ──> Delivered
//	   │              │              │
//	   └──────────────┴──────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Writing the current status again is
// accepted as a no-op so idempotent callers do not have to pre-read the order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// InPreparation indicates the order is being picked and packed.
	InPreparation

	// Shipped indicates the order has left with logistics.
	// A delivery note can only be issued while the order is InPreparation or Shipped.
	Shipped

	// Delivered indicates the customer confirmed receipt. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	// Reachable from any non-terminal status.
	Cancelled
)

// statusStrings maps Status values to their wire-visible encodings.
func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// validStatuses holds only the statuses an order may actually carry.
func validStatuses() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// transitions is the single transition table the whole system consults.
// Cancellation is allowed from every non-terminal status; the forward chain
// advances one step at a time.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:       {InPreparation, Cancelled},
		InPreparation: {Shipped, Cancelled},
		Shipped:       {Delivered, Cancelled},
		Delivered:     {},
		Cancelled:     {},
	}
}

// StatusFromString parses a wire-visible status encoding.
// Returns an error for unknown encodings, including "UNKNOWN" itself.
func StatusFromString(s string) (Status, error) {
	for status, str := range validStatuses() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire-visible name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks if the Status value is one an order may carry.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(transitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether the transition table permits moving to target.
// Writing the current status again is always permitted.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates target against the transition table and returns it.
// Returns an InvalidStateError when the transition is not permitted.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStateError(
			fmt.Sprintf("cannot transition order from %s to %s", s, target),
		)
	}
	return target, nil
}

// AllowsDeliveryNote reports whether a delivery note may be issued while the
// order is in this status. Only InPreparation and Shipped qualify: earlier the
// order has not started preparation, later it is already delivered or cancelled.
func (s Status) AllowsDeliveryNote() bool {
	return s == InPreparation || s == Shipped
}
