package parser

import (
	"fmt"
	"strings"

	"github.com/tqtools/tq/query"
)

// clause tracks which clause accumulator the parser is currently filling.
type clause int

const (
	clauseNone clause = iota
	clauseSelect
	clauseFrom
	clauseWhere
)

// ParseArgs splits a flat argument list into the SELECT field list, FROM
// table path, and WHERE token sequence. The clause keywords select, from,
// and where are matched case-insensitively; every other token belongs to
// the clause most recently opened.
func ParseArgs(args []string) (*query.Query, error) {
	q := &query.Query{}
	cur := clauseNone

	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "select":
			cur = clauseSelect
			continue
		case "from":
			cur = clauseFrom
			continue
		case "where":
			cur = clauseWhere
			continue
		}

		switch cur {
		case clauseSelect:
			q.SelectedFields = append(q.SelectedFields, splitFields(arg)...)
		case clauseFrom:
			// Last FROM token wins.
			q.Table = arg
		case clauseWhere:
			q.WhereTokens = append(q.WhereTokens, arg)
		default:
			return nil, fmt.Errorf("unexpected token %q before any clause keyword", arg)
		}
	}

	if len(q.SelectedFields) == 0 {
		return nil, fmt.Errorf("no fields selected")
	}
	if q.Table == "" {
		return nil, fmt.Errorf("no table given")
	}
	return q, nil
}

// splitFields breaks one SELECT argument into field names. A single token
// may carry several fields separated by commas, whitespace, or both, as in
// "a,b" or "a, b".
func splitFields(arg string) []string {
	return strings.FieldsFunc(arg, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
