// Package criteria implements the compact textual filter language consumed by
// every list operation. A filter is a comma-terminated sequence of clauses of
// the form field<op>value, where <op> is one of:
//
//	:  match (substring for text fields, equality otherwise)
//	>  lower bound (greater than or equal)
//	<  upper bound (less than or equal)
//
// Clauses are combined with logical AND. Field and value tokens consist of
// word characters only; there is no quoting or escaping. An empty filter
// string matches every record.
//
// Field names are resolved against an explicit per-entity Schema rather than
// runtime reflection, so an unknown field or a value that cannot be coerced to
// the field's type fails fast with a ParseError.
package criteria

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParse is the sentinel all filter parsing and resolution failures unwrap to.
var ErrParse = errors.New("criteria parse error")

// ParseError describes a malformed filter string, an unknown field, or a value
// token that cannot be coerced to the field's declared type.
type ParseError struct {
	Details string
}

// NewParseError creates a ParseError with the given details.
func NewParseError(details string) *ParseError {
	return &ParseError{Details: details}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrParse, e.Details)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Op identifies a clause operator.
type Op string

const (
	// OpMatch is ':' — substring match on text fields, equality elsewhere.
	OpMatch Op = ":"
	// OpAtMost is '<' — field value must be less than or equal to the token.
	OpAtMost Op = "<"
	// OpAtLeast is '>' — field value must be greater than or equal to the token.
	OpAtLeast Op = ">"
)

// Clause is one field<op>value condition of a filter.
type Clause struct {
	Field string
	Op    Op
	Value string
}

// Filter is a parsed sequence of AND-combined clauses.
// The zero value matches every record.
type Filter struct {
	clauses []Clause
}

// clausePattern mirrors the original grammar: word-character field and value
// tokens around a single-character operator, each clause comma-terminated.
var clausePattern = regexp.MustCompile(`(\w+)([:<>])(\w+),`)

// Parse turns a filter string into a Filter. A trailing comma is implicitly
// assumed, so both "nombre:lechuga" and "nombre:lechuga," are accepted.
// Parse returns a ParseError when any part of the input is not covered by a
// well-formed clause.
func Parse(search string) (Filter, error) {
	if search == "" {
		return Filter{}, nil
	}

	terminated := search
	if !strings.HasSuffix(terminated, ",") {
		terminated += ","
	}

	matches := clausePattern.FindAllStringSubmatchIndex(terminated, -1)

	clauses := make([]Clause, 0, len(matches))
	next := 0
	for _, m := range matches {
		if m[0] != next {
			return Filter{}, NewParseError(fmt.Sprintf("malformed clause near %q", terminated[next:m[0]]))
		}
		clauses = append(clauses, Clause{
			Field: terminated[m[2]:m[3]],
			Op:    Op(terminated[m[4]:m[5]]),
			Value: terminated[m[6]:m[7]],
		})
		next = m[1]
	}

	if next != len(terminated) {
		return Filter{}, NewParseError(fmt.Sprintf("malformed clause near %q", terminated[next:]))
	}

	return Filter{clauses: clauses}, nil
}

// IsEmpty reports whether the filter has no clauses and therefore matches everything.
func (f Filter) IsEmpty() bool {
	return len(f.clauses) == 0
}

// Clauses returns the parsed clauses in input order.
func (f Filter) Clauses() []Clause {
	return f.clauses
}
