package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// utf8BOM prefixes CSV payloads so spreadsheet tools detect the encoding.
const utf8BOM = "\uFEFF"

// Column binds a header name to a cell extractor for rows of type T.
type Column[T any] struct {
	Name  string
	Value func(T) any
}

// CSV renders rows as a UTF-8 CSV table with a BOM prefix and a header line.
// An empty row set still yields the header.
func CSV[T any](rows []T, cols []Column[T]) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)

	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	record := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			record[i] = formatCell(col.Value(row))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// formatCell renders one cell value. Nil pointers become empty cells; times
// are normalized to the export zone.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case time.Time:
		return Normalize(val)
	case *time.Time:
		if val == nil {
			return ""
		}
		return Normalize(*val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case *float64:
		if val == nil {
			return ""
		}
		return strconv.FormatFloat(*val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprint(val)
	}
}
