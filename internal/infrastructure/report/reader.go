package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/brandaudit/backend/internal/domain"
)

// Reader decodes uploaded report files into RawTables. The three upstream
// exports arrive in different shapes: ad and business reports as CSV or
// Excel workbooks, the inventory report as a tab-separated .txt. The
// inventory file is sometimes UTF-16 with a BOM, so decoding runs through
// a BOM-aware transform before any parsing.
type Reader struct{}

// NewReader creates a report reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read senses the file format from the filename and content, then decodes
// the full table. Headers are trimmed of surrounding whitespace on read;
// every later column lookup assumes that. The read is atomic: the stream
// is consumed fully or the whole report fails.
func (rd *Reader) Read(r io.Reader, filename string) (*domain.RawTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyReport, filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx", ".xlsm", ".xls", ".xlsb":
		return rd.readWorkbook(data, filename)
	case ".txt", ".tsv":
		return rd.readDelimited(data, filename, '\t')
	case ".csv":
		return rd.readDelimited(data, filename, ',')
	default:
		// No usable extension. Sense the delimiter from the header line.
		return rd.readDelimited(data, filename, senseDelimiter(data))
	}
}

// readDelimited parses CSV/TSV bytes. LazyQuotes and free field counts
// keep ragged seller exports from aborting the read.
func (rd *Reader) readDelimited(data []byte, filename string, delimiter rune) (*domain.RawTable, error) {
	decoded, err := decodeBOM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnsupportedFormat, filename, err)
	}

	cr := csv.NewReader(bytes.NewReader(decoded))
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnsupportedFormat, filename, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyReport, filename)
	}

	table := buildTable(rows)
	log.Printf("[READER] %s: %d rows, %d columns (delimiter %q)", filename, len(table.Rows), len(table.Headers), string(delimiter))
	return table, nil
}

// readWorkbook parses the first sheet of an Excel workbook.
func (rd *Reader) readWorkbook(data []byte, filename string) (*domain.RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnsupportedFormat, filename, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyReport, filename)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUnsupportedFormat, filename, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyReport, filename)
	}

	table := buildTable(rows)
	log.Printf("[READER] %s: %d rows, %d columns (sheet %q)", filename, len(table.Rows), len(table.Headers), sheets[0])
	return table, nil
}

// buildTable converts a header row plus data rows into a RawTable,
// preserving column order. Short rows are padded with empty cells; fully
// empty rows are skipped.
func buildTable(rows [][]string) *domain.RawTable {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	table := &domain.RawTable{Headers: headers}
	for _, raw := range rows[1:] {
		if isEmptyRow(raw) {
			continue
		}
		row := make(domain.Row, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = raw[i]
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// decodeBOM strips a UTF-8 BOM and transcodes UTF-16 content to UTF-8,
// leaving plain UTF-8 untouched.
func decodeBOM(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// senseDelimiter inspects the first line: tabs win over commas, matching
// how the inventory export differs from the other two.
func senseDelimiter(data []byte) rune {
	line := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		line = data[:idx]
	}
	if bytes.Count(line, []byte{'\t'}) > bytes.Count(line, []byte{','}) {
		return '\t'
	}
	return ','
}

// isEmptyRow reports whether every cell is blank.
func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
