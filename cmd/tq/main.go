package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/tqtools/tq/engine"
	"github.com/tqtools/tq/loader"
	"github.com/tqtools/tq/parser"
)

// Exit codes are part of the tool's contract: callers branch on exitNoRows
// to tell an empty result from a failure.
const (
	exitOK     = 0
	exitNoRows = 100
	exitError  = 255
)

var (
	inputFS    = flag.String("I", loader.DefaultInputFS, "input field separator for the table file")
	outputFS   = flag.String("O", "\t", "output field separator")
	internalFS = flag.String("F", "", "internal separator used in diagnostics")
	header     = flag.Bool("H", false, "prepend the table's header row to output")
	pretty     = flag.Bool("pretty", false, "render the result as an aligned table")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] SELECT f1[,f2,...] FROM <path> [WHERE <predicates>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Query a flat delimited text file as a table.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s select a,b from data.txt\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -H select name from users.csv where age -gt 30 and city = NY\n", os.Args[0])
	}
	flag.Parse()
	os.Exit(run(flag.Args()))
}

func run(args []string) int {
	q, err := parser.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return exitError
	}

	tbl, err := loader.Load(q.Table, loader.Options{InputFS: *inputFS})
	if err != nil {
		fmt.Fprintf(os.Stderr, "load error: %v\n", err)
		return exitError
	}

	result, err := engine.Execute(q, tbl, engine.Options{InternalFS: *internalFS})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	if result.Empty() {
		return exitNoRows
	}

	if *pretty {
		printPretty(result)
		return exitOK
	}

	if _, err := result.Project(os.Stdout, engine.ProjectOptions{OutputFS: *outputFS, Header: *header}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}
	return exitOK
}

func printPretty(result *engine.Result) {
	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader(result.Query.SelectedFields)
	for _, row := range result.Rows {
		cells := make([]string, len(result.Query.SelectedFields))
		for i, f := range result.Query.SelectedFields {
			cells[i] = result.Table.Value(f, row)
		}
		w.Append(cells)
	}
	w.Render()
}
