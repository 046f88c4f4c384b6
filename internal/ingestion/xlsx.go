package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// XLSX worksheets are OOXML: a zip archive with the first sheet at a fixed
// path and cell text interned in a shared-strings table. Only the first sheet
// is read; additional sheets are ignored.
const (
	firstSheetPath    = "xl/worksheets/sheet1.xml"
	sharedStringsPath = "xl/sharedStrings.xml"
)

type xlsxWorksheet struct {
	Rows []xlsxRow `xml:"sheetData>row"`
}

type xlsxRow struct {
	Cells []xlsxCell `xml:"c"`
}

type xlsxCell struct {
	Ref       string `xml:"r,attr"`
	Type      string `xml:"t,attr"`
	Value     string `xml:"v"`
	InlineStr struct {
		Text string `xml:"t"`
	} `xml:"is"`
}

type xlsxSharedStrings struct {
	Items []struct {
		Text string `xml:"t"`
	} `xml:"si"`
}

// ParseXLSX decodes the first worksheet of an XLSX payload into the same
// RowSet shape as ParseCSV: blank rows filtered, row cap enforced.
func ParseXLSX(data []byte) (*RowSet, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("could not open spreadsheet: %w", err)
	}

	shared, err := readSharedStrings(zr)
	if err != nil {
		return nil, err
	}

	sheetData, err := readZipFile(zr, firstSheetPath)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet has no first sheet: %w", err)
	}

	var sheet xlsxWorksheet
	if err := xml.Unmarshal(sheetData, &sheet); err != nil {
		return nil, fmt.Errorf("could not read sheet XML: %w", err)
	}

	grid := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		grid = append(grid, resolveRow(row, shared))
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(grid)-1)
	for _, record := range grid[1:] {
		row := make(map[string]string, len(headers))
		blank := true
		for i, header := range headers {
			if header == "" {
				continue
			}
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

// resolveRow places each cell at its column position (from the A1-style ref)
// and resolves shared-string references.
func resolveRow(row xlsxRow, shared []string) []string {
	var out []string
	for _, cell := range row.Cells {
		col := columnIndex(cell.Ref)
		for len(out) <= col {
			out = append(out, "")
		}

		value := cell.Value
		switch cell.Type {
		case "s":
			if idx, err := strconv.Atoi(cell.Value); err == nil && idx >= 0 && idx < len(shared) {
				value = shared[idx]
			}
		case "inlineStr":
			value = cell.InlineStr.Text
		}
		out[col] = value
	}
	return out
}

// columnIndex converts the letter prefix of an A1-style cell reference to a
// zero-based column number.
func columnIndex(ref string) int {
	idx := 0
	for _, r := range ref {
		if r < 'A' || r > 'Z' {
			break
		}
		idx = idx*26 + int(r-'A') + 1
	}
	if idx == 0 {
		return 0
	}
	return idx - 1
}

func readSharedStrings(zr *zip.Reader) ([]string, error) {
	data, err := readZipFile(zr, sharedStringsPath)
	if err != nil {
		// Sheets with only numeric or inline cells have no shared strings.
		return nil, nil
	}
	var sst xlsxSharedStrings
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, fmt.Errorf("could not read shared strings: %w", err)
	}
	out := make([]string, len(sst.Items))
	for i, item := range sst.Items {
		out[i] = item.Text
	}
	return out, nil
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			var buf bytes.Buffer
			if _, err := buf.ReadFrom(rc); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		}
	}
	return nil, fmt.Errorf("%s not found in archive", name)
}
