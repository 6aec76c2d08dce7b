// Package tabular maps the five entity collections to and from their CSV
// blob representations. The row codec is the wire contract with the remote
// store: a header line naming the columns, one line per record in collection
// order, RFC 4180 quoting for fields containing commas, quotes, or line
// breaks. Encoding is stable (same input, byte-identical output) so version
// conflicts diff cleanly.
package tabular

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// Row is one decoded CSV record, keyed by header column name.
type Row map[string]string

// EncodeRows emits a CSV blob with a header line from columns and one line
// per row. Missing fields encode as empty strings. An empty row set still
// emits the header line alone.
func EncodeRows(rows []Row, columns []string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	// The writer only fails on underlying I/O errors, which a
	// strings.Builder cannot produce.
	_ = w.Write(columns)
	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = row[col]
		}
		_ = w.Write(record)
	}
	w.Flush()
	return b.String()
}

// DecodeRows parses a CSV blob, tolerant of LF and CRLF line endings and of
// quoted fields spanning commas, quotes, and newlines. The first row is
// always the header and names the fields of every subsequent row; short rows
// pad with empty strings and surplus fields beyond the header are dropped.
// Blank trailing lines are ignored.
func DecodeRows(text string) ([]Row, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 1 && record[0] == "" {
			continue
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
