package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tqtools/tq/table"
)

// TokenKind discriminates the entries of a set-expression token sequence.
type TokenKind int

const (
	TokenSet    TokenKind = iota // a candidate row-index set
	TokenAnd                     // & (intersection)
	TokenOr                      // | (union)
	TokenLParen                  // (
	TokenRParen                  // )
)

// Token is one entry of a set expression: either a row-index set or one of
// the operators & | ( ).
type Token struct {
	Kind TokenKind
	Set  table.RowSet
}

// SetToken wraps a candidate set as an expression token.
func SetToken(s table.RowSet) Token {
	return Token{Kind: TokenSet, Set: s}
}

// render writes the token in its diagnostic form: operators verbatim, sets
// as their sorted indices joined by fs.
func (t Token) render(fs string) string {
	switch t.Kind {
	case TokenAnd:
		return "&"
	case TokenOr:
		return "|"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}
	rows := t.Set.Sorted()
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strconv.Itoa(r)
	}
	return "[" + strings.Join(parts, fs) + "]"
}

// Evaluate reduces a set-expression token sequence to a single row-index
// set. Operators apply strictly left-to-right; parentheses are the only
// form of grouping. An empty sequence yields the empty set.
func Evaluate(tokens []Token) (table.RowSet, error) {
	result, rest, err := evalSeq(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unbalanced %q in set expression", ")")
	}
	return result, nil
}

// evalSeq consumes tokens until the sequence ends or an unmatched ")" is
// reached, returning the accumulated set and the unconsumed remainder
// (including the ")" that stopped it).
func evalSeq(tokens []Token) (table.RowSet, []Token, error) {
	acc := table.NewRowSet()
	pending := TokenSet // TokenSet marks "no operator pending"

	combine := func(s table.RowSet) {
		switch pending {
		case TokenAnd:
			acc = acc.Intersect(s)
		case TokenOr:
			acc = acc.Union(s)
		default:
			// No connector: the operand stands alone (last one wins).
			acc = s
		}
		pending = TokenSet
	}

	for len(tokens) > 0 {
		tok := tokens[0]
		tokens = tokens[1:]

		switch tok.Kind {
		case TokenSet:
			combine(tok.Set)
		case TokenAnd, TokenOr:
			pending = tok.Kind
		case TokenLParen:
			inner, rest, err := evalSeq(tokens)
			if err != nil {
				return nil, nil, err
			}
			if len(rest) == 0 || rest[0].Kind != TokenRParen {
				return nil, nil, fmt.Errorf("unbalanced %q in set expression", "(")
			}
			combine(inner)
			tokens = rest[1:]
		case TokenRParen:
			// Caller owns this token.
			return acc, append([]Token{tok}, tokens...), nil
		}
	}
	return acc, nil, nil
}

// renderTokens joins the diagnostic forms of a token sequence, separating
// set members with the configured internal FS. Used in traces and error
// text only.
func renderTokens(tokens []Token, internalFS string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.render(internalFS)
	}
	return strings.Join(parts, " ")
}
