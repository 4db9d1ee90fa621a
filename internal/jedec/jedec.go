// Package jedec parses JEDEC fuse-map text files into rectangular
// bit matrices (spec.md §4.6).
package jedec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Geometry is a device family's fuse-map shape.
type Geometry struct {
	Rows    int
	RowBits int
	UESBits int
}

var (
	GeometryHS   = Geometry{Rows: 102, RowBits: 80, UESBits: 40}
	Geometry10   = Geometry{Rows: 118, RowBits: 160, UESBits: 80}
	Geometry2021 = Geometry{Rows: 134, RowBits: 240, UESBits: 120}
)

const marker = "*L00000"

// FuseMap is a rows x RowBits matrix of ASCII '0'/'1' cells.
type FuseMap struct {
	Geometry Geometry
	Rows     []string
}

// Parse scans r for the "*L00000" marker line, then reads
// geom.Rows groups of bit-runs (each a line containing a run of
// '0'/'1' characters terminated by any non-binary character),
// concatenating them into rows of exactly geom.RowBits bits. A row
// whose assembled length differs from geom.RowBits is a fatal parse
// error.
func Parse(r io.Reader, geom Geometry) (*FuseMap, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	found := false
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), marker) {
			found = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("jedec: scanning for marker: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("jedec: marker %q not found", marker)
	}

	fm := &FuseMap{Geometry: geom, Rows: make([]string, 0, geom.Rows)}
	var current strings.Builder
	for scanner.Scan() && len(fm.Rows) < geom.Rows {
		line := scanner.Text()
		run := bitRun(line)
		if run == "" {
			continue
		}
		current.WriteString(run)
		if current.Len() >= geom.RowBits {
			row := current.String()
			if len(row) != geom.RowBits {
				return nil, fmt.Errorf("jedec: row %d length %d, want %d", len(fm.Rows), len(row), geom.RowBits)
			}
			fm.Rows = append(fm.Rows, row)
			current.Reset()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("jedec: reading rows: %w", err)
	}
	if len(fm.Rows) != geom.Rows {
		return nil, fmt.Errorf("jedec: found %d rows, want %d", len(fm.Rows), geom.Rows)
	}
	return fm, nil
}

// bitRun returns the leading run of '0'/'1' characters in line.
func bitRun(line string) string {
	end := 0
	for end < len(line) && (line[end] == '0' || line[end] == '1') {
		end++
	}
	return line[:end]
}
