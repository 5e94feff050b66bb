package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a grid with one row per line and one decimal digit per cell.
// Leading and trailing whitespace on each line is ignored, as are blank
// lines at the end of the input. Any other character is rejected with a
// wrapped ErrInvalidCell carrying the 1-based line and column.
// Construction rules are those of NewGrid.
func Parse(r io.Reader, opts GridOptions) (*Grid, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		row := make([]int, 0, len(text))
		for i := 0; i < len(text); i++ {
			ch := text[i]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrInvalidCell, line, i+1, ch)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading grid: %w", err)
	}

	// Drop trailing blank lines.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	return NewGrid(rows, opts)
}

// LoadFile opens path and parses it with Parse.
func LoadFile(path string, opts GridOptions) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
