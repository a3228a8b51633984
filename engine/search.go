package engine

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tqtools/tq/query"
	"github.com/tqtools/tq/table"
)

// ErrUnknownColumn reports a predicate referencing a field the table does
// not have. Callers must be able to tell this apart from a search that
// simply matched nothing.
var ErrUnknownColumn = errors.New("unknown column")

// Search returns the set of row indices in column where the comparison
// against literal holds. The column carries its header in slot 0, so data
// rows start at index 1. A nil column means the field was unknown.
func Search(op query.Operator, column []string, literal string) (table.RowSet, error) {
	if column == nil {
		return nil, ErrUnknownColumn
	}

	matches := table.NewRowSet()
	if op.Numeric() {
		lit, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			// A non-numeric literal under a numeric operator matches
			// nothing.
			return matches, nil
		}
		for i := 1; i < len(column); i++ {
			cell, err := strconv.ParseFloat(column[i], 64)
			if err != nil {
				continue
			}
			if numericMatch(op, cell, lit) {
				matches.Add(i)
			}
		}
		return matches, nil
	}

	for i := 1; i < len(column); i++ {
		cmp := strings.Compare(column[i], literal)
		if (op == query.OpEq && cmp == 0) || (op == query.OpNe && cmp != 0) {
			matches.Add(i)
		}
	}
	return matches, nil
}

func numericMatch(op query.Operator, cell, lit float64) bool {
	switch op {
	case query.OpNumEq:
		return cell == lit
	case query.OpNumNe:
		return cell != lit
	case query.OpNumGt:
		return cell > lit
	case query.OpNumGe:
		return cell >= lit
	case query.OpNumLt:
		return cell < lit
	case query.OpNumLe:
		return cell <= lit
	}
	return false
}
