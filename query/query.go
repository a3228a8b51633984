package query

import (
	"fmt"
	"strings"
)

// Query is one parsed invocation: the fields to project, the file backing
// the table, and the raw WHERE tokens. Immutable after parsing.
type Query struct {
	// SelectedFields preserves order and duplicates as given.
	SelectedFields []string
	// Table is the path of the file to load.
	Table string
	// WhereTokens is the WHERE clause verbatim, one argv token per entry.
	// Empty means all rows are selected.
	WhereTokens []string
}

// Operator is the closed set of comparison operators a predicate may use.
type Operator int

const (
	// OpEq and OpNe compare cell and literal as strings, case-sensitively.
	OpEq Operator = iota // =
	OpNe                 // !=

	// The remaining operators compare numerically. Bare > and < are
	// accepted as spellings of -gt and -lt.
	OpNumEq // -eq
	OpNumNe // -ne
	OpNumGt // -gt, >
	OpNumGe // -ge
	OpNumLt // -lt, <
	OpNumLe // -le
)

var opNames = map[Operator]string{
	OpEq: "=", OpNe: "!=",
	OpNumEq: "-eq", OpNumNe: "-ne",
	OpNumGt: "-gt", OpNumGe: "-ge",
	OpNumLt: "-lt", OpNumLe: "-le",
}

func (op Operator) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// Numeric reports whether the operator compares values as numbers.
func (op Operator) Numeric() bool {
	return op >= OpNumEq
}

// ParseOperator maps an operator token to its kind. The -xx spellings are
// case-insensitive; = and != are exact.
func ParseOperator(tok string) (Operator, error) {
	switch tok {
	case "=":
		return OpEq, nil
	case "!=":
		return OpNe, nil
	case ">":
		return OpNumGt, nil
	case "<":
		return OpNumLt, nil
	}
	switch strings.ToLower(tok) {
	case "-eq":
		return OpNumEq, nil
	case "-ne":
		return OpNumNe, nil
	case "-gt":
		return OpNumGt, nil
	case "-ge":
		return OpNumGe, nil
	case "-lt":
		return OpNumLt, nil
	case "-le":
		return OpNumLe, nil
	}
	return 0, fmt.Errorf("unknown operator %q", tok)
}

// Predicate is one (field, operator, literal) comparison from a WHERE
// clause. Built and consumed during translation, never retained.
type Predicate struct {
	Field   string
	Op      Operator
	Literal string
}
