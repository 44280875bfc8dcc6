package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-seedexpand/pkg/graph"
)

// Community lines can list many thousands of members
const maxLineBytes = 64 << 20

// Stats summarises one parsed input
type Stats struct {
	Lines   int // Lines read, including skipped ones
	Parsed  int // Lines that contributed data
	Skipped int // Comments, blank lines, self-loops and duplicate edges
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return sc
}

// ReadEdgeList parses one undirected edge "u v" per line. Lines starting
// with '#' and blank lines are skipped, self-loops and repeated edges are
// dropped, and any other line that is not exactly two integers aborts the
// parse with ErrMalformedLine. name is only used in error messages.
func ReadEdgeList(r io.Reader, name string) (*graph.Graph, Stats, error) {
	g := graph.New()
	var stats Stats

	sc := newScanner(r)
	for sc.Scan() {
		stats.Lines++
		line := sc.Text()

		if strings.HasPrefix(line, "#") {
			stats.Skipped++
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			stats.Skipped++
			continue
		}
		if len(fields) != 2 {
			return nil, stats, malformed(name, stats.Lines, line,
				fmt.Errorf("expected 2 vertex IDs, got %d fields", len(fields)))
		}

		u, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, stats, malformed(name, stats.Lines, line, err)
		}
		v, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, stats, malformed(name, stats.Lines, line, err)
		}

		if g.AddEdge(u, v) {
			stats.Parsed++
		} else {
			stats.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("read %s: %w", name, err)
	}

	return g, stats, nil
}
