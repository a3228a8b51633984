package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tqtools/tq/query"
	"github.com/tqtools/tq/table"
)

// translateState names the slot of a predicate group the translator is
// waiting to fill.
type translateState int

const (
	stateField translateState = iota
	stateOperator
	stateLiteral
	stateConnector
)

// Translate walks the WHERE token sequence and produces the set-expression
// token sequence for Evaluate. Grouping tokens ( and ) pass through
// unchanged; all other tokens fill repeating (field, operator, literal,
// connector) groups. Completing a literal runs the row search for the
// predicate; a predicate naming an unknown field contributes the empty set.
// Connectors other than and/or are dropped, and a trailing partial group is
// dropped too.
func Translate(whereTokens []string, t *table.Table) ([]Token, error) {
	var tokens []Token
	var pred query.Predicate
	state := stateField

	for _, tok := range whereTokens {
		if tok == "(" {
			tokens = append(tokens, Token{Kind: TokenLParen})
			continue
		}
		if tok == ")" {
			tokens = append(tokens, Token{Kind: TokenRParen})
			continue
		}

		switch state {
		case stateField:
			pred.Field = tok
			state = stateOperator
		case stateOperator:
			op, err := query.ParseOperator(tok)
			if err != nil {
				return nil, fmt.Errorf("in where clause: %w", err)
			}
			pred.Op = op
			state = stateLiteral
		case stateLiteral:
			pred.Literal = tok
			set, err := searchPredicate(pred, t)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, SetToken(set))
			state = stateConnector
		case stateConnector:
			switch strings.ToLower(tok) {
			case "and":
				tokens = append(tokens, Token{Kind: TokenAnd})
			case "or":
				tokens = append(tokens, Token{Kind: TokenOr})
			default:
				// Unknown connectors contribute nothing.
			}
			state = stateField
		}
	}

	return tokens, nil
}

// searchPredicate runs the row search for one predicate. An unknown field
// degrades to the empty set instead of failing the query.
func searchPredicate(pred query.Predicate, t *table.Table) (table.RowSet, error) {
	col, _ := t.Column(pred.Field)
	set, err := Search(pred.Op, col, pred.Literal)
	if err != nil {
		if errors.Is(err, ErrUnknownColumn) {
			return table.NewRowSet(), nil
		}
		return nil, fmt.Errorf("searching %s %s %s: %w", pred.Field, pred.Op, pred.Literal, err)
	}
	return set, nil
}
