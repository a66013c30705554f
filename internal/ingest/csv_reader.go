package ingest

import "strings"

// Row is one parsed record, always exactly as wide as the layout asks for.
type Row []string

const utf8BOM = "\ufeff"

// ParseCSV splits raw CSV text into fixed-width rows.
//
// Quoted fields may span lines and use "" for a literal quote. Blank records
// are dropped. An unterminated quote swallows the rest of the input into the
// open field; it is not reported.
func ParseCSV(raw string, columns int) []Row {
	raw = strings.TrimPrefix(raw, utf8BOM)
	raw = normalizeNewlines(raw)

	records := splitRecords(raw)
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, splitFields(rec, columns))
	}
	return rows
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitRecords cuts the input on newlines that sit outside quotes. Quote
// characters stay in the record text for splitFields.
func splitRecords(s string) []string {
	var (
		records  []string
		cur      strings.Builder
		inQuotes bool
	)
	flush := func() {
		if strings.TrimSpace(cur.String()) != "" {
			records = append(records, cur.String())
		}
		cur.Reset()
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			cur.WriteByte(c)
		case c == '\n' && !inQuotes:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return records
}

// splitFields splits one record on unquoted commas, decodes "" inside quoted
// fields, then pads or truncates to columns.
func splitFields(rec string, columns int) Row {
	var (
		row      Row
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(rec); i++ {
		c := rec[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(rec) && rec[i+1] == '"':
			field.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	// A trailing empty field only counts while the row is still short.
	if field.Len() > 0 || len(row) < columns {
		row = append(row, field.String())
	}
	return row.fit(columns)
}

// fit pads r with empty fields or truncates it to exactly columns.
func (r Row) fit(columns int) Row {
	if len(r) >= columns {
		return r[:columns]
	}
	out := make(Row, columns)
	copy(out, r)
	return out
}
