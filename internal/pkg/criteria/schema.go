package criteria

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind declares how a field's values are compared.
type Kind int

const (
	// Text fields use case-insensitive substring matching for ':'.
	Text Kind = iota
	// Keyword fields are short enumerated strings compared by exact equality.
	Keyword
	// Integer fields coerce the value token with strconv.ParseInt.
	Integer
	// Numeric fields coerce the value token to an arbitrary-precision decimal.
	Numeric
	// Bool fields coerce the value token with strconv.ParseBool.
	Bool
)

// Field maps a filter field name onto a storage column and a comparison kind.
type Field struct {
	Column string
	Kind   Kind
}

// Schema is the per-entity whitelist of filterable fields. Field names not
// present in the schema are rejected with a ParseError instead of being
// silently ignored.
type Schema map[string]Field

// Where translates the filter into a SQL condition and its bind arguments
// using the given schema. An empty filter yields an empty condition, meaning
// no WHERE clause should be applied at all.
func (f Filter) Where(schema Schema) (string, []any, error) {
	if f.IsEmpty() {
		return "", nil, nil
	}

	conditions := make([]string, 0, len(f.clauses))
	args := make([]any, 0, len(f.clauses))

	for _, clause := range f.clauses {
		field, ok := schema[clause.Field]
		if !ok {
			return "", nil, NewParseError(fmt.Sprintf("unknown field %q", clause.Field))
		}

		value, err := coerce(field.Kind, clause)
		if err != nil {
			return "", nil, err
		}

		switch clause.Op {
		case OpAtLeast:
			conditions = append(conditions, field.Column+" >= ?")
			args = append(args, value)
		case OpAtMost:
			conditions = append(conditions, field.Column+" <= ?")
			args = append(args, value)
		case OpMatch:
			if field.Kind == Text {
				conditions = append(conditions, "LOWER("+field.Column+") LIKE ?")
				args = append(args, "%"+strings.ToLower(clause.Value)+"%")
				continue
			}
			conditions = append(conditions, field.Column+" = ?")
			args = append(args, value)
		}
	}

	return strings.Join(conditions, " AND "), args, nil
}

// coerce converts a clause's raw value token into the typed argument the
// comparison needs. Text and Keyword comparisons keep the raw token.
func coerce(kind Kind, clause Clause) (any, error) {
	switch kind {
	case Integer:
		n, err := strconv.ParseInt(clause.Value, 10, 64)
		if err != nil {
			return nil, NewParseError(fmt.Sprintf("field %q expects an integer, got %q", clause.Field, clause.Value))
		}
		return n, nil
	case Numeric:
		d, err := decimal.NewFromString(clause.Value)
		if err != nil {
			return nil, NewParseError(fmt.Sprintf("field %q expects a number, got %q", clause.Field, clause.Value))
		}
		return d, nil
	case Bool:
		b, err := strconv.ParseBool(clause.Value)
		if err != nil {
			return nil, NewParseError(fmt.Sprintf("field %q expects a boolean, got %q", clause.Field, clause.Value))
		}
		return b, nil
	default:
		return clause.Value, nil
	}
}
