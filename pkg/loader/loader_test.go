package loader

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-seedexpand/pkg/graph"
	"github.com/dd0wney/cluso-seedexpand/pkg/metrics"
)

const scenarioEdges = `# scenario graph
# FromNodeId	ToNodeId
1	2
2 3
1 3
3	4
4 5
5 5
2 1
`

const scenarioCommunities = "1 2 3\n4 5\n"

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func snappyBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	sw := snappy.NewBufferedWriter(&buf)
	_, err := sw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, sw.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func edgeSet(g *graph.Graph) map[[2]int64]bool {
	out := make(map[[2]int64]bool)
	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if u < v {
				out[[2]int64{u, v}] = true
			}
		}
	}
	return out
}

func TestReadEdgeList(t *testing.T) {
	g, stats, err := ReadEdgeList(strings.NewReader(scenarioEdges), "scenario")
	require.NoError(t, err)

	assert.Equal(t, 5, g.NodeCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 9, stats.Lines)
	assert.Equal(t, 5, stats.Parsed)
	// Two comments, one self-loop, one reversed duplicate
	assert.Equal(t, 4, stats.Skipped)
	assert.False(t, g.HasEdge(5, 5))
	assert.Equal(t, 3, g.Degree(3))
}

func TestReadEdgeList_BlankLinesSkipped(t *testing.T) {
	g, _, err := ReadEdgeList(strings.NewReader("1 2\n\n   \n2 3\n"), "blank")
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestReadEdgeList_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
	}{
		{"too few fields", "1 2\n3\n", 2},
		{"too many fields", "1 2 3\n", 1},
		{"non integer", "1 2\n2 x\n", 2},
		{"float", "1.5 2\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadEdgeList(strings.NewReader(tt.data), "bad.txt")
			require.Error(t, err)
			assert.True(t, IsMalformed(err))

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			assert.Equal(t, "bad.txt", perr.Path)
		})
	}
}

func TestReadCommunities(t *testing.T) {
	labels, stats, err := ReadCommunities(strings.NewReader("1 2 3\n\n4\t5\n3 9\n"), "cmty")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Lines)
	assert.Equal(t, 3, stats.Parsed)
	assert.Equal(t, []int{0, 2, 3}, labels.Communities())

	cid, ok := labels.CommunityOf(4)
	require.True(t, ok)
	assert.Equal(t, 2, cid)

	// Vertex 3 is listed twice; the later line wins
	cid, _ = labels.CommunityOf(3)
	assert.Equal(t, 3, cid)
	assert.Contains(t, labels.Members(0), int64(3))
}

func TestReadCommunities_Malformed(t *testing.T) {
	_, _, err := ReadCommunities(strings.NewReader("1 2\n3 four\n"), "cmty")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestParseCompression(t *testing.T) {
	for name, want := range map[string]Compression{
		"":       CompressionNone,
		"none":   CompressionNone,
		"gzip":   CompressionGzip,
		"snappy": CompressionSnappy,
	} {
		got, err := ParseCompression(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseCompression("zstd")
	assert.ErrorIs(t, err, ErrUnsupportedCompression)
}

// TestLoader_CompressedMatchesPlain tests that every encoding of the same
// edge list loads to an identical graph
func TestLoader_CompressedMatchesPlain(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	source := NewFileSource(S3Config{})

	plain, err := New(source, CompressionNone).LoadGraph(ctx,
		writeFile(t, dir, "edges.txt", []byte(scenarioEdges)))
	require.NoError(t, err)

	gz, err := New(source, CompressionGzip).LoadGraph(ctx,
		writeFile(t, dir, "edges.txt.gz", gzipBytes(t, scenarioEdges)))
	require.NoError(t, err)

	sz, err := New(source, CompressionSnappy).LoadGraph(ctx,
		writeFile(t, dir, "edges.txt.sz", snappyBytes(t, scenarioEdges)))
	require.NoError(t, err)

	for _, g := range []*graph.Graph{gz, sz} {
		assert.Equal(t, plain.Vertices(), g.Vertices())
		assert.Equal(t, plain.EdgeCount(), g.EdgeCount())
		assert.Equal(t, edgeSet(plain), edgeSet(g))
	}
}

func TestLoader_LoadCommunitiesGzip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cmty.txt.gz", gzipBytes(t, scenarioCommunities))

	labels, err := New(NewFileSource(S3Config{}), CompressionGzip).LoadCommunities(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, labels.CommunityCount())
	assert.Len(t, labels.Members(1), 2)
}

func TestLoader_RecordsMetrics(t *testing.T) {
	dir := t.TempDir()
	reg := metrics.NewRegistry()
	l := New(NewFileSource(S3Config{}), CompressionNone, WithMetrics(reg))

	_, err := l.LoadGraph(context.Background(), writeFile(t, dir, "edges.txt", []byte(scenarioEdges)))
	require.NoError(t, err)

	_, err = l.LoadGraph(context.Background(), writeFile(t, dir, "bad.txt", []byte("1 2\nnope\n")))
	require.Error(t, err)

	families, err := reg.GetPrometheusRegistry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "seedexpand_load_lines_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var outcome string
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "outcome" {
					outcome = lp.GetValue()
				}
			}
			values[outcome] += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 5.0, values["parsed"])
	assert.Equal(t, 4.0, values["skipped"])
	assert.Equal(t, 1.0, values["malformed"])
}

func TestLoader_WrongCompression(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "edges.txt", []byte(scenarioEdges))

	_, err := New(NewFileSource(S3Config{}), CompressionGzip).LoadGraph(context.Background(), path)
	assert.Error(t, err)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := New(NewFileSource(S3Config{}), CompressionNone).
		LoadGraph(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseS3URI(t *testing.T) {
	bucket, key, err := ParseS3URI("s3://snap-datasets/com-amazon/ungraph.txt.gz")
	require.NoError(t, err)
	assert.Equal(t, "snap-datasets", bucket)
	assert.Equal(t, "com-amazon/ungraph.txt.gz", key)

	for _, bad := range []string{"s3://bucket", "s3:///key", "/local/path", "s3://bucket/"} {
		_, _, err := ParseS3URI(bad)
		assert.ErrorIs(t, err, ErrInvalidSource, bad)
	}
}
