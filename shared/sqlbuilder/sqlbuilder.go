// Package sqlbuilder builds positional-parameter SQL fragments for PostgreSQL.
//
// Values never reach the SQL text. Only column names do, and those come from a
// Columns table: either a mapped storage name or an allow-listed field name.
package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrNoDataSupplied is returned when a partial update has no fields
	ErrNoDataSupplied = errors.New("no data supplied")

	// ErrUnknownField is returned when an update names a field outside the allow-list
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateField is returned when an update assigns the same field twice
	ErrDuplicateField = errors.New("duplicate field")
)

// ColumnMap maps external field names (camelCase) to storage column names (snake_case)
type ColumnMap map[string]string

// Translate returns the storage column for field. Fields without an entry are
// returned unchanged.
func (m ColumnMap) Translate(field string) string {
	if column, ok := m[field]; ok {
		return column
	}
	return field
}

// Columns is an immutable translation table plus an optional allow-list of
// fields that may be written.
type Columns struct {
	mapping ColumnMap
	allowed map[string]struct{}
}

// NewColumns copies mapping and builds the allow-list. With no allowed fields
// every field passes through.
func NewColumns(mapping ColumnMap, allowed ...string) *Columns {
	c := &Columns{mapping: make(ColumnMap, len(mapping))}
	for field, column := range mapping {
		c.mapping[field] = column
	}

	if len(allowed) > 0 {
		c.allowed = make(map[string]struct{}, len(allowed))
		for _, field := range allowed {
			c.allowed[field] = struct{}{}
		}
	}

	return c
}

// Translate returns the storage column for field
func (c *Columns) Translate(field string) string {
	return c.mapping.Translate(field)
}

// Allowed reports whether field may appear in a SET clause
func (c *Columns) Allowed(field string) bool {
	if c.allowed == nil {
		return true
	}
	_, ok := c.allowed[field]
	return ok
}

// Args collects positional parameter values. The n-th value added is bound to $n.
type Args struct {
	values []any
}

// NewArgs returns an empty argument list
func NewArgs() *Args {
	return &Args{}
}

// Add appends v and returns its placeholder
func (a *Args) Add(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

// Values returns the collected values in placeholder order
func (a *Args) Values() []any {
	out := make([]any, len(a.values))
	copy(out, a.values)
	return out
}

// Assignment is one field of a partial update
type Assignment struct {
	Field string
	Value any
}

// SetClause is the body of an UPDATE ... SET statement and its bound values
type SetClause struct {
	SQL  string
	Args *Args
}

// BuildSetClause renders data as `"column"=$i` fragments joined with ", ".
// Placeholders follow the order of data. Further parameters, such as the row id
// of the WHERE clause, must be added through the returned Args.
func BuildSetClause(data []Assignment, columns *Columns) (*SetClause, error) {
	if len(data) == 0 {
		return nil, ErrNoDataSupplied
	}

	args := NewArgs()
	seen := make(map[string]struct{}, len(data))
	fragments := make([]string, 0, len(data))

	for _, a := range data {
		if !columns.Allowed(a.Field) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, a.Field)
		}
		if _, dup := seen[a.Field]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, a.Field)
		}
		seen[a.Field] = struct{}{}

		column := pq.QuoteIdentifier(columns.Translate(a.Field))
		fragments = append(fragments, column+"="+args.Add(a.Value))
	}

	return &SetClause{
		SQL:  strings.Join(fragments, ", "),
		Args: args,
	}, nil
}

// Conditions accumulates WHERE predicates combined with AND
type Conditions struct {
	predicates []string
	args       *Args
}

// NewConditions returns an empty predicate list bound to args
func NewConditions(args *Args) *Conditions {
	return &Conditions{args: args}
}

// AddValue appends a predicate with one bound value. format must contain a
// single %s verb which receives the placeholder.
func (c *Conditions) AddValue(format string, v any) {
	c.predicates = append(c.predicates, fmt.Sprintf(format, c.args.Add(v)))
}

// Add appends a predicate that binds no value
func (c *Conditions) Add(predicate string) {
	c.predicates = append(c.predicates, predicate)
}

// SQL returns the predicates joined with AND, or "" when there are none
func (c *Conditions) SQL() string {
	return strings.Join(c.predicates, " AND ")
}
