// Package engine evaluates a parsed query against a loaded table: it
// translates the WHERE clause into candidate row-index sets, combines them
// with left-to-right set algebra, and projects the selected fields of the
// matching rows in file order.
package engine

import (
	"fmt"

	"github.com/tqtools/tq/query"
	"github.com/tqtools/tq/table"
)

// Options tunes query execution.
type Options struct {
	// InternalFS separates set members in diagnostic renderings of the
	// set-expression token stream. It never affects results.
	InternalFS string
}

// Result is the outcome of executing one query: the matching row indices in
// ascending order, together with the query and table needed to project
// them. An empty Rows slice is the distinct no-rows outcome, not an error.
type Result struct {
	Query *query.Query
	Table *table.Table
	// Rows holds the selected row indices, ascending.
	Rows []int
}

// Empty reports whether no rows matched.
func (r *Result) Empty() bool {
	return len(r.Rows) == 0
}

// Execute runs the query against the table. A query without a WHERE clause
// selects every row.
func Execute(q *query.Query, t *table.Table, opts Options) (*Result, error) {
	if len(q.WhereTokens) == 0 {
		return &Result{Query: q, Table: t, Rows: t.AllRows()}, nil
	}

	tokens, err := Translate(q.WhereTokens, t)
	if err != nil {
		return nil, err
	}

	set, err := Evaluate(tokens)
	if err != nil {
		return nil, fmt.Errorf("evaluating %s: %w", renderTokens(tokens, opts.InternalFS), err)
	}

	return &Result{Query: q, Table: t, Rows: set.Sorted()}, nil
}
