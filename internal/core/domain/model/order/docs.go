// Package order implements the Order aggregate: a customer's requested set of
// product lines with a computed total and a lifecycle status.
//
// The aggregate enforces three rules the rest of the system relies on:
//
//   - Status transitions follow a single transition table (status.go), with
//     Cancelled reachable from any non-terminal status and Delivered/Cancelled
//     terminal.
//   - The order owns its lines exclusively. Lines are value objects held by
//     the aggregate; no line identity leaks outside the order.
//   - Whenever lines are attached, the total amount equals the sum of the
//     line subtotals rounded half-up to two decimal places.
package order
