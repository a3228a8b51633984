package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tqtools/tq/parser"
)

func execute(t *testing.T, args ...string) *Result {
	t.Helper()
	q, err := parser.ParseArgs(args)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	result, err := Execute(q, fixtureTable(), Options{})
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	return result
}

func project(t *testing.T, result *Result, opts ProjectOptions) string {
	t.Helper()
	var sb strings.Builder
	if _, err := result.Project(&sb, opts); err != nil {
		t.Fatalf("project error: %v", err)
	}
	return sb.String()
}

func TestExecuteNoWhereSelectsAllRows(t *testing.T) {
	result := execute(t, "select", "a", "from", "fixture")
	if !reflect.DeepEqual(result.Rows, []int{1, 2, 3}) {
		t.Errorf("got %v", result.Rows)
	}
}

func TestExecuteOrUnion(t *testing.T) {
	result := execute(t, "select", "a,b,c", "from", "fixture",
		"where", "a", "=", "1", "or", "b", "=", "5")
	if !reflect.DeepEqual(result.Rows, []int{1, 2}) {
		t.Fatalf("got rows %v", result.Rows)
	}
	out := project(t, result, ProjectOptions{OutputFS: "\t"})
	if out != "1\t4\t7\n2\t5\t8\n" {
		t.Errorf("got %q", out)
	}
}

func TestExecuteNumericGreater(t *testing.T) {
	result := execute(t, "select", "a", "from", "fixture", "where", "a", "-gt", "2")
	out := project(t, result, ProjectOptions{OutputFS: "\t"})
	if out != "3\n" {
		t.Errorf("got %q", out)
	}
}

func TestExecuteAndIntersection(t *testing.T) {
	result := execute(t, "select", "a", "from", "fixture",
		"where", "a", "-gt", "1", "and", "b", "-lt", "6")
	if !reflect.DeepEqual(result.Rows, []int{2}) {
		t.Errorf("got %v", result.Rows)
	}
}

func TestExecuteParenthesesChangeGrouping(t *testing.T) {
	// Left-to-right: (a=1 | a=2) & a=2 -> {2}
	flat := execute(t, "select", "a", "from", "fixture",
		"where", "a", "=", "1", "or", "a", "=", "2", "and", "a", "=", "2")
	if !reflect.DeepEqual(flat.Rows, []int{2}) {
		t.Errorf("flat: got %v", flat.Rows)
	}
	// a=1 | (a=2 & a=2) -> {1,2}
	grouped := execute(t, "select", "a", "from", "fixture",
		"where", "a", "=", "1", "or", "(", "a", "=", "2", "and", "a", "=", "2", ")")
	if !reflect.DeepEqual(grouped.Rows, []int{1, 2}) {
		t.Errorf("grouped: got %v", grouped.Rows)
	}
}

func TestExecuteUnknownFieldOr(t *testing.T) {
	// An unknown field behaves like an omitted predicate under "or"...
	result := execute(t, "select", "a", "from", "fixture",
		"where", "ghost", "=", "1", "or", "b", "=", "5")
	if !reflect.DeepEqual(result.Rows, []int{2}) {
		t.Errorf("or: got %v", result.Rows)
	}
	// ...and excludes everything under "and".
	result = execute(t, "select", "a", "from", "fixture",
		"where", "ghost", "=", "1", "and", "b", "=", "5")
	if !result.Empty() {
		t.Errorf("and: got %v", result.Rows)
	}
}

func TestExecuteZeroMatches(t *testing.T) {
	result := execute(t, "select", "a", "from", "fixture", "where", "a", "=", "99")
	if !result.Empty() {
		t.Fatalf("expected no rows, got %v", result.Rows)
	}
	// No output at all, never a header-only line.
	out := project(t, result, ProjectOptions{OutputFS: "\t", Header: true})
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestProjectHeader(t *testing.T) {
	result := execute(t, "select", "b,a", "from", "fixture", "where", "a", "=", "2")
	out := project(t, result, ProjectOptions{OutputFS: ",", Header: true})
	if out != "b,a\n5,2\n" {
		t.Errorf("got %q", out)
	}
}

func TestProjectFieldOrderAndDuplicates(t *testing.T) {
	result := execute(t, "select", "c,a,c", "from", "fixture", "where", "a", "=", "1")
	out := project(t, result, ProjectOptions{OutputFS: " "})
	if out != "7 1 7\n" {
		t.Errorf("got %q", out)
	}
}

func TestProjectUnknownSelectedField(t *testing.T) {
	result := execute(t, "select", "a,ghost", "from", "fixture", "where", "a", "=", "1")
	out := project(t, result, ProjectOptions{OutputFS: "\t"})
	if out != "1\t\n" {
		t.Errorf("got %q", out)
	}
}

func TestProjectRowsAscending(t *testing.T) {
	// The evaluator returns unordered sets; projection must follow file order.
	result := execute(t, "select", "a", "from", "fixture",
		"where", "a", "=", "3", "or", "a", "=", "1")
	out := project(t, result, ProjectOptions{OutputFS: "\t"})
	if out != "1\n3\n" {
		t.Errorf("got %q", out)
	}
}
