package engine

import (
	"reflect"
	"testing"

	"github.com/tqtools/tq/table"
)

func fixtureTable() *table.Table {
	t := table.New([]string{"a", "b", "c"})
	t.AddRow([]string{"1", "4", "7"})
	t.AddRow([]string{"2", "5", "8"})
	t.AddRow([]string{"3", "6", "9"})
	return t
}

func TestTranslateSinglePredicate(t *testing.T) {
	tokens, err := Translate([]string{"a", "=", "2"}, fixtureTable())
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != TokenSet {
		t.Fatalf("expected one set token, got %v", tokens)
	}
	if got := tokens[0].Set.Sorted(); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("got %v", got)
	}
}

func TestTranslateConnectors(t *testing.T) {
	tokens, err := Translate([]string{"a", "=", "1", "or", "b", "=", "5"}, fixtureTable())
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	if !reflect.DeepEqual(kinds, []TokenKind{TokenSet, TokenOr, TokenSet}) {
		t.Errorf("got kinds %v", kinds)
	}
}

func TestTranslateConnectorCaseInsensitive(t *testing.T) {
	tokens, err := Translate([]string{"a", "=", "1", "AND", "b", "=", "4"}, fixtureTable())
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}
	if len(tokens) != 3 || tokens[1].Kind != TokenAnd {
		t.Errorf("expected AND token, got %v", tokens)
	}
}

func TestTranslateParensPassThrough(t *testing.T) {
	where := []string{"(", "a", "=", "1", "or", "b", "=", "5", ")"}
	tokens, err := Translate(where, fixtureTable())
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	want := []TokenKind{TokenLParen, TokenSet, TokenOr, TokenSet, TokenRParen}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("got kinds %v", kinds)
	}
}

func TestTranslateUnknownFieldIsEmptySet(t *testing.T) {
	tokens, err := Translate([]string{"nope", "=", "1"}, fixtureTable())
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Set.Len() != 0 {
		t.Errorf("expected single empty set token, got %v", tokens)
	}
}

func TestTranslateUnknownConnectorDropped(t *testing.T) {
	tokens, err := Translate([]string{"a", "=", "1", "xor", "b", "=", "5"}, fixtureTable())
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}
	// The bogus connector emits nothing; both predicate sets remain.
	if len(tokens) != 2 {
		t.Fatalf("expected two tokens, got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Kind != TokenSet {
			t.Errorf("expected only set tokens, got %v", tok.Kind)
		}
	}
}

func TestTranslateTrailingPartialGroupDropped(t *testing.T) {
	// Trailing "c" never completes a group, so it contributes nothing.
	tokens, err := Translate([]string{"a", "=", "1", "and", "c"}, fixtureTable())
	if err != nil {
		t.Fatalf("translate error: %v", err)
	}
	if len(tokens) != 2 || tokens[1].Kind != TokenAnd {
		t.Errorf("got %v", tokens)
	}
}

func TestTranslateUnknownOperatorFails(t *testing.T) {
	if _, err := Translate([]string{"a", "~=", "1"}, fixtureTable()); err == nil {
		t.Error("expected error for unknown operator")
	}
}
