package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildFilterClause(t *testing.T) {
	tests := []struct {
		name           string
		filter         JobFilter
		expectedSQL    string
		expectedValues []any
	}{
		{
			name:           "no filters",
			filter:         JobFilter{},
			expectedSQL:    "",
			expectedValues: []any{},
		},
		{
			name:           "title only",
			filter:         JobFilter{Title: ptr("UX")},
			expectedSQL:    "title ILIKE $1",
			expectedValues: []any{"%UX%"},
		},
		{
			name:           "empty title is skipped",
			filter:         JobFilter{Title: ptr("")},
			expectedSQL:    "",
			expectedValues: []any{},
		},
		{
			name:           "min salary only",
			filter:         JobFilter{MinSalary: ptr(100000)},
			expectedSQL:    "salary >= $1",
			expectedValues: []any{100000},
		},
		{
			name:           "zero min salary is a valid floor",
			filter:         JobFilter{MinSalary: ptr(0)},
			expectedSQL:    "salary >= $1",
			expectedValues: []any{0},
		},
		{
			name:           "has equity only binds nothing",
			filter:         JobFilter{HasEquity: ptr(true)},
			expectedSQL:    "equity IS NOT NULL",
			expectedValues: []any{},
		},
		{
			name:           "has equity false adds nothing",
			filter:         JobFilter{HasEquity: ptr(false)},
			expectedSQL:    "",
			expectedValues: []any{},
		},
		{
			name:           "min salary and equity",
			filter:         JobFilter{MinSalary: ptr(100000), HasEquity: ptr(true)},
			expectedSQL:    "salary >= $1 AND equity IS NOT NULL",
			expectedValues: []any{100000},
		},
		{
			name:           "title and equity",
			filter:         JobFilter{Title: ptr("eng"), HasEquity: ptr(true)},
			expectedSQL:    "title ILIKE $1 AND equity IS NOT NULL",
			expectedValues: []any{"%eng%"},
		},
		{
			name:           "all filters in fixed order",
			filter:         JobFilter{HasEquity: ptr(true), MinSalary: ptr(5), Title: ptr("dev")},
			expectedSQL:    "title ILIKE $1 AND salary >= $2 AND equity IS NOT NULL",
			expectedValues: []any{"%dev%", 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause := BuildFilterClause(tt.filter)
			assert.Equal(t, tt.expectedSQL, clause.SQL)
			assert.Equal(t, tt.expectedValues, clause.Args.Values())
			assert.Equal(t, strings.Count(clause.SQL, "$"), len(clause.Args.Values()))
		})
	}
}

func TestBuildFilterClause_Idempotent(t *testing.T) {
	filter := JobFilter{Title: ptr("dev"), MinSalary: ptr(10), HasEquity: ptr(true)}

	first := BuildFilterClause(filter)
	second := BuildFilterClause(filter)

	assert.Equal(t, first.SQL, second.SQL)
	assert.Equal(t, first.Args.Values(), second.Args.Values())
}
