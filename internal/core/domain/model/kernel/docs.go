// Package kernel provides core domain primitives shared by every aggregate in
// the verduleria system.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - RoundMoney: the single rounding rule every monetary total in the system follows
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
