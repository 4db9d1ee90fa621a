package jedec

import (
	"strings"
	"testing"
)

func buildFuseFile(rows, rowBits int) string {
	var b strings.Builder
	b.WriteString("some header line\n")
	b.WriteString(marker + " comment\n")
	bit := "01"
	for r := 0; r < rows; r++ {
		written := 0
		for written < rowBits {
			chunk := rowBits - written
			if chunk > 8 {
				chunk = 8
			}
			line := strings.Repeat(bit, 4)[:chunk]
			b.WriteString(line)
			b.WriteString(";\n")
			written += chunk
		}
	}
	return b.String()
}

func TestParseHS(t *testing.T) {
	data := buildFuseFile(GeometryHS.Rows, GeometryHS.RowBits)
	fm, err := Parse(strings.NewReader(data), GeometryHS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fm.Rows) != GeometryHS.Rows {
		t.Fatalf("rows = %d, want %d", len(fm.Rows), GeometryHS.Rows)
	}
	for i, row := range fm.Rows {
		if len(row) != GeometryHS.RowBits {
			t.Fatalf("row %d length = %d, want %d", i, len(row), GeometryHS.RowBits)
		}
	}
}

func TestParseMissingMarker(t *testing.T) {
	_, err := Parse(strings.NewReader("no marker here\n0101\n"), GeometryHS)
	if err == nil {
		t.Fatal("expected error for missing marker")
	}
}

func TestParseShortRowFails(t *testing.T) {
	var b strings.Builder
	b.WriteString(marker + "\n")
	// First row complete, second row truncated early by EOF.
	b.WriteString(strings.Repeat("01", GeometryHS.RowBits/2) + ";\n")
	b.WriteString(strings.Repeat("10", GeometryHS.RowBits/4) + ";\n")
	_, err := Parse(strings.NewReader(b.String()), GeometryHS)
	if err == nil {
		t.Fatal("expected error for incomplete fuse map")
	}
}
