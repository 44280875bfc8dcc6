package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-seedexpand/pkg/groundtruth"
)

// ReadCommunities parses one community per line as whitespace-separated
// vertex IDs. The community ID is the 0-based line number; blank lines
// consume an ID without creating a community. A vertex listed on several
// lines keeps its last community in the vertex map.
func ReadCommunities(r io.Reader, name string) (*groundtruth.Labels, Stats, error) {
	labels := groundtruth.New()
	var stats Stats

	sc := newScanner(r)
	for sc.Scan() {
		cid := stats.Lines
		stats.Lines++
		line := sc.Text()

		fields := strings.Fields(line)
		if len(fields) == 0 {
			stats.Skipped++
			continue
		}

		for _, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, stats, malformed(name, stats.Lines, line, err)
			}
			labels.Assign(v, cid)
		}
		stats.Parsed++
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("read %s: %w", name, err)
	}

	return labels, stats, nil
}
