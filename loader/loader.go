package loader

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	goavro "github.com/linkedin/goavro/v2"
	"github.com/parquet-go/parquet-go"
	"github.com/tqtools/tq/table"
)

// Options configures how files are read into tables.
type Options struct {
	// InputFS is the field separator for delimited text files. A single
	// space splits on any run of whitespace; any other value is a literal
	// separator.
	InputFS string
}

// DefaultInputFS is the delimited-text separator used when none is given.
const DefaultInputFS = " "

// Load reads a file and returns its Table. The format is chosen by
// extension; anything unrecognized is treated as delimited text with the
// configured input FS. The first record always supplies the field names.
func Load(filename string, opts Options) (*table.Table, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read table %s: %w", filename, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("cannot read table %s: not a regular file", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return loadCSV(filename)
	case ".jsonl":
		return loadJSONL(filename)
	case ".avro":
		return loadAvro(filename)
	case ".parquet":
		return loadParquet(filename)
	default:
		return loadText(filename, opts.InputFS)
	}
}

func loadText(filename, inputFS string) (*table.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", filename, err)
	}
	defer f.Close()

	if inputFS == "" {
		inputFS = DefaultInputFS
	}
	split := func(line string) []string {
		if inputFS == " " {
			return strings.Fields(line)
		}
		return strings.Split(line, inputFS)
	}

	scanner := bufio.NewScanner(f)
	var t *table.Table
	for scanner.Scan() {
		cells := split(scanner.Text())
		if t == nil {
			t = table.New(cells)
			continue
		}
		t.AddRow(cells)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	if t == nil {
		return nil, fmt.Errorf("%s is empty: no header row", filename)
	}
	return t, nil
}

func loadCSV(filename string) (*table.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", filename, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header from %s: %w", filename, err)
	}
	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = strings.TrimSpace(h)
	}

	t := table.New(fields)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV row: %w", err)
		}
		t.AddRow(record)
	}
	return t, nil
}

func loadJSONL(filename string) (*table.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", filename, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var records []map[string]interface{}
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec map[string]interface{}
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("invalid JSON on line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	return tableFromRecords(records), nil
}

// tableFromRecords builds a table from map records, taking the field order
// of first appearance.
func tableFromRecords(records []map[string]interface{}) *table.Table {
	seen := make(map[string]bool)
	var fields []string
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				seen[k] = true
				fields = append(fields, k)
			}
		}
	}

	t := table.New(fields)
	for _, rec := range records {
		cells := make([]string, len(fields))
		for i, f := range fields {
			cells[i] = cellString(rec[f])
		}
		t.AddRow(cells)
	}
	return t
}

// cellString renders a decoded scalar as the table's cell text. Absent and
// null values become empty cells.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []byte:
		return string(val)
	case map[string]interface{}:
		// Avro unions decode as {"type": value}; unwrap the value.
		for _, inner := range val {
			return cellString(inner)
		}
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

func loadAvro(filename string) (*table.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", filename, err)
	}
	defer f.Close()

	ocfr, err := goavro.NewOCFReader(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read Avro OCF from %s: %w", filename, err)
	}

	// Field order comes from the writer schema.
	var schemaDef struct {
		Fields []struct {
			Name string `json:"name"`
		} `json:"fields"`
	}
	if err := json.Unmarshal([]byte(ocfr.Codec().Schema()), &schemaDef); err != nil {
		return nil, fmt.Errorf("cannot parse Avro schema: %w", err)
	}
	fields := make([]string, len(schemaDef.Fields))
	for i, field := range schemaDef.Fields {
		fields[i] = field.Name
	}

	t := table.New(fields)
	for ocfr.Scan() {
		datum, err := ocfr.Read()
		if err != nil {
			return nil, fmt.Errorf("error reading Avro record: %w", err)
		}
		rec, ok := datum.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected Avro record type %T", datum)
		}
		cells := make([]string, len(fields))
		for i, f := range fields {
			cells[i] = cellString(rec[f])
		}
		t.AddRow(cells)
	}
	if err := ocfr.Err(); err != nil {
		return nil, fmt.Errorf("error reading Avro file: %w", err)
	}
	return t, nil
}

func loadParquet(filename string) (*table.Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", filename, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("cannot stat %s: %w", filename, err)
	}
	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("cannot open parquet file %s: %w", filename, err)
	}

	var fields []string
	for _, field := range pqFile.Schema().Fields() {
		fields = append(fields, field.Name())
	}

	t := table.New(fields)
	reader := parquet.NewReader(pqFile)
	defer reader.Close()
	for {
		row := make(map[string]interface{})
		if err := reader.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading parquet row: %w", err)
		}
		cells := make([]string, len(fields))
		for i, f := range fields {
			cells[i] = cellString(row[f])
		}
		t.AddRow(cells)
	}
	return t, nil
}
