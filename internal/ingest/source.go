package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"implantsite/internal/domain/content"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadTable parses a header-first CSV sheet into records keyed by column name.
// Rows shorter than the header leave the missing columns unset; rows longer
// than the header have their extra cells ignored.
func ReadTable(r io.Reader) ([]content.RawRecord, error) {
	recs, _, err := ReadTableLines(r)
	return recs, err
}

// ReadTableLines is ReadTable that also reports the sheet line each record
// starts on, counting the header as line 1.
func ReadTableLines(r io.Reader) ([]content.RawRecord, []int, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	header = normalizeHeader(header)

	var (
		out   []content.RawRecord
		lines []int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read record %d: %w", len(out)+1, err)
		}
		if isBlankRow(row) {
			continue
		}
		rec := make(content.RawRecord, len(header))
		for i, name := range header {
			if name == "" || i >= len(row) {
				continue
			}
			rec[name] = row[i]
		}
		line, _ := cr.FieldPos(0)
		out = append(out, rec)
		lines = append(lines, line)
	}
	return out, lines, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func isBlankRow(row []string) bool {
	return len(row) == 0 || (len(row) == 1 && row[0] == "")
}
