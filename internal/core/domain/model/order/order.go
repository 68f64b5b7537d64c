package order

import (
	"errors"
	"fmt"
	"time"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer's requested set of product lines.
// It owns its lines exclusively: lines are held by value, never outlive the
// order, and expose no identity of their own.
//
// Order invariants:
//   - Must have a valid unique identifier and a valid owning customer
//   - Status transitions follow the table in status.go
//   - Whenever lines are replaced, the total equals the half-up-rounded sum
//     of the line subtotals; a caller-supplied total survives only while the
//     order carries no lines
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.UUID
	createdAt  time.Time
	customerID kernel.UUID
	status     Status

	// noteIssued records that a delivery note has been generated for this
	// order. It is flipped on note generation and, independently, whenever
	// the order transitions to Delivered.
	noteIssued bool

	lines []Line
	total decimal.Decimal

	isConstructed bool
}

// NewOrder creates a new Order in Pending status for the given customer.
// The creation timestamp comes from the caller so tests can supply a
// deterministic clock. The total starts at the caller-supplied amount and is
// overwritten as soon as lines are attached via ReplaceLines.
func NewOrder(id, customerID kernel.UUID, createdAt time.Time, total decimal.Decimal) (*Order, error) {
	o := &Order{
		status:        Pending,
		total:         total,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// All invariants are re-validated so corrupted rows surface as errors here
// rather than deeper in the workflow.
func RestoreOrder(
	id, customerID kernel.UUID,
	createdAt time.Time,
	status Status,
	noteIssued bool,
	lines []Line,
	total decimal.Decimal,
) (*Order, error) {
	o := &Order{
		noteIssued:    noteIssued,
		total:         total,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	o.lines = lines

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// NoteIssued reports whether a delivery note has been generated for this order.
func (o *Order) NoteIssued() bool {
	return o.noteIssued
}

// Lines returns the order's lines in their stored order.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the order's total amount.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// ReplaceLines swaps the order's lines for the supplied collection and
// recomputes the total as the half-up-rounded sum of the line subtotals,
// overwriting any caller-supplied total.
func (o *Order) ReplaceLines(lines []Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.total = o.LinesTotal()
	return nil
}

// LinesTotal computes the half-up-rounded sum of the current line subtotals.
// A delivery note issued against this order captures exactly this value.
func (o *Order) LinesTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range o.lines {
		sum = sum.Add(line.Subtotal())
	}
	return kernel.RoundMoney(sum)
}

// ChangeStatus moves the order to target, consulting the transition table.
// Writing the current status again is a no-op. Transitioning to Delivered
// also marks the delivery note as issued.
func (o *Order) ChangeStatus(target Status) error {
	if target == o.status {
		return nil
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		o.noteIssued = true
	}
	return nil
}

// MarkNoteIssued records that a delivery note has been generated.
func (o *Order) MarkNoteIssued() {
	o.noteIssued = true
}

// ClearNoteIssued records that the order's delivery note has been removed,
// making the order eligible for note generation again.
func (o *Order) ClearNoteIssued() {
	o.noteIssued = false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("createdAt", fmt.Errorf("timestamp is zero"))
	}
	o.createdAt = createdAt
	return nil
}
