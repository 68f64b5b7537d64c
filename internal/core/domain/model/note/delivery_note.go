// Package note implements the DeliveryNote aggregate: the waybill issued once
// per order, evidencing handover to logistics.
//
// A delivery note is created exclusively by the delivery-note workflow, never
// directly: the at-most-one-note-per-order rule and the status preconditions
// live in the workflow, while the storage layer backs the one-to-one relation
// with a uniqueness constraint on the order reference.
package note

import (
	"errors"
	"fmt"
	"time"

	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDeliveryNoteIsNotConstructed is returned when a DeliveryNote instance was
// not created through the NewDeliveryNote or RestoreDeliveryNote factory methods.
var ErrDeliveryNoteIsNotConstructed = errors.New("DeliveryNote must be created via NewDeliveryNote constructor")

// DeliveryNote is the document issued against a single order.
//
// Invariants:
//   - Issued against exactly one order; an order has at most one note
//   - The note number is a positive caller-supplied identifier
//   - The total value is non-negative and equals the order's half-up-rounded
//     lines total at issuance time
//   - The issuance timestamp is supplied by the workflow's clock
type DeliveryNote struct {
	id       kernel.UUID
	number   int64
	orderID  kernel.UUID
	total    decimal.Decimal
	issuedAt time.Time

	// Receipt audit trail, captured on delivery confirmation.
	receivedBy  string
	receivedDoc string
	remarks     string

	isConstructed bool
}

// NewDeliveryNote creates a validated DeliveryNote for the given order.
func NewDeliveryNote(id kernel.UUID, number int64, orderID kernel.UUID, total decimal.Decimal, issuedAt time.Time) (*DeliveryNote, error) {
	n := &DeliveryNote{isConstructed: true}

	if err := errors.Join(
		n.setID(id),
		n.setNumber(number),
		n.setOrderID(orderID),
		n.setTotal(total),
		n.setIssuedAt(issuedAt),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreDeliveryNote reconstructs a DeliveryNote from persistence, including
// any receipt audit data captured on confirmation.
func RestoreDeliveryNote(
	id kernel.UUID,
	number int64,
	orderID kernel.UUID,
	total decimal.Decimal,
	issuedAt time.Time,
	receivedBy, receivedDoc, remarks string,
) (*DeliveryNote, error) {
	n, err := NewDeliveryNote(id, number, orderID, total, issuedAt)
	if err != nil {
		return nil, err
	}

	n.receivedBy = receivedBy
	n.receivedDoc = receivedDoc
	n.remarks = remarks
	return n, nil
}

// Validate ensures the DeliveryNote instance was properly constructed.
func (n *DeliveryNote) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrDeliveryNoteIsNotConstructed
	}
	return nil
}

// ConfirmReceipt records who received the goods. All three fields are
// optional free text; confirmation without them is still valid.
func (n *DeliveryNote) ConfirmReceipt(receivedBy, receivedDoc, remarks string) {
	n.receivedBy = receivedBy
	n.receivedDoc = receivedDoc
	n.remarks = remarks
}

// ID returns the note's unique identifier.
func (n *DeliveryNote) ID() kernel.UUID {
	return n.id
}

// Number returns the caller-supplied delivery-note number.
func (n *DeliveryNote) Number() int64 {
	return n.number
}

// OrderID returns the identifier of the order the note was issued against.
func (n *DeliveryNote) OrderID() kernel.UUID {
	return n.orderID
}

// Total returns the note's total value, frozen at issuance time.
func (n *DeliveryNote) Total() decimal.Decimal {
	return n.total
}

// IssuedAt returns the issuance timestamp.
func (n *DeliveryNote) IssuedAt() time.Time {
	return n.issuedAt
}

// ReceivedBy returns the name of the person who received the goods, if confirmed.
func (n *DeliveryNote) ReceivedBy() string {
	return n.receivedBy
}

// ReceivedDoc returns the receiver's identity document, if confirmed.
func (n *DeliveryNote) ReceivedDoc() string {
	return n.receivedDoc
}

// Remarks returns free-text remarks captured on confirmation.
func (n *DeliveryNote) Remarks() string {
	return n.remarks
}

func (n *DeliveryNote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *DeliveryNote) setNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%d is not greater than 0", number))
	}
	n.number = number
	return nil
}

func (n *DeliveryNote) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	n.orderID = orderID
	return nil
}

func (n *DeliveryNote) setTotal(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s is negative", total))
	}
	n.total = total
	return nil
}

func (n *DeliveryNote) setIssuedAt(issuedAt time.Time) error {
	if issuedAt.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("issuedAt", fmt.Errorf("timestamp is zero"))
	}
	n.issuedAt = issuedAt
	return nil
}
