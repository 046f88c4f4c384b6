package ingestion

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// MaxRows caps accepted upload size; larger files are rejected outright
const MaxRows = 1000

// utf8BOM is stripped from the start of CSV payloads when present
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// RowSet is the decoded form of one uploaded file: the header row plus each
// data row keyed by raw header text. Rows where every cell is blank are
// filtered out during decoding.
type RowSet struct {
	Headers []string
	Rows    []map[string]string
}

// TooManyRowsError reports an upload above the row cap
type TooManyRowsError struct {
	Count int
}

func (e *TooManyRowsError) Error() string {
	return fmt.Sprintf("file has %d data rows, the limit is %d; split the upload into smaller files", e.Count, MaxRows)
}

// ParseCSV decodes a CSV payload: strips a leading byte-order-mark, sniffs
// the delimiter (comma vs semicolon) from the first lines, filters blank
// rows and enforces the row cap.
func ParseCSV(data []byte) (*RowSet, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		blank := true
		for i, header := range headers {
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			row[header] = value
			if value != "" {
				blank = false
			}
		}
		if !blank {
			rows = append(rows, row)
		}
	}

	if len(rows) > MaxRows {
		return nil, &TooManyRowsError{Count: len(rows)}
	}

	return &RowSet{Headers: headers, Rows: rows}, nil
}

// sniffDelimiter samples the first few lines and picks semicolon when it
// outnumbers commas, the common pattern for European spreadsheet exports.
func sniffDelimiter(data []byte) rune {
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	lines := strings.SplitN(string(sample), "\n", 4)

	commas, semicolons := 0, 0
	for _, line := range lines {
		commas += strings.Count(line, ",")
		semicolons += strings.Count(line, ";")
	}
	if semicolons > commas {
		return ';'
	}
	return ','
}
