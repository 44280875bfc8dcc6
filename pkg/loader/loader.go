// Package loader reads edge lists and ground-truth community files from
// local disk or S3, optionally gzip- or snappy-compressed.
package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/dd0wney/cluso-seedexpand/pkg/graph"
	"github.com/dd0wney/cluso-seedexpand/pkg/groundtruth"
	"github.com/dd0wney/cluso-seedexpand/pkg/logging"
	"github.com/dd0wney/cluso-seedexpand/pkg/metrics"
)

const (
	kindEdges       = "edges"
	kindCommunities = "communities"
)

// Loader opens, decompresses and parses input files
type Loader struct {
	source      Source
	compression Compression
	logger      logging.Logger
	metrics     *metrics.Registry
}

// Option configures a Loader
type Option func(*Loader)

// WithLogger sets the logger used for load summaries
func WithLogger(logger logging.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithMetrics sets the registry load metrics are recorded in
func WithMetrics(reg *metrics.Registry) Option {
	return func(l *Loader) { l.metrics = reg }
}

// New creates a loader applying the same compression to every file
func New(source Source, compression Compression, opts ...Option) *Loader {
	l := &Loader{
		source:      source,
		compression: compression,
		logger:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(logging.Component("loader"))
	return l
}

// LoadGraph reads the edge list at uri
func (l *Loader) LoadGraph(ctx context.Context, uri string) (*graph.Graph, error) {
	var g *graph.Graph
	stats, err := l.load(ctx, kindEdges, uri, func(r io.Reader) (Stats, error) {
		var (
			s   Stats
			err error
		)
		g, s, err = ReadEdgeList(r, uri)
		return s, err
	})
	if err != nil {
		return nil, err
	}

	l.logger.Debug("edge list parsed",
		logging.Path(uri),
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("skipped_lines", stats.Skipped),
	)
	return g, nil
}

// LoadCommunities reads the ground-truth community file at uri
func (l *Loader) LoadCommunities(ctx context.Context, uri string) (*groundtruth.Labels, error) {
	var labels *groundtruth.Labels
	_, err := l.load(ctx, kindCommunities, uri, func(r io.Reader) (Stats, error) {
		var (
			s   Stats
			err error
		)
		labels, s, err = ReadCommunities(r, uri)
		return s, err
	})
	if err != nil {
		return nil, err
	}

	l.logger.Debug("communities parsed",
		logging.Path(uri),
		logging.Int("communities", labels.CommunityCount()),
		logging.Int("labeled_vertices", labels.LabeledCount()),
	)
	return labels, nil
}

func (l *Loader) load(ctx context.Context, kind, uri string, parse func(io.Reader) (Stats, error)) (Stats, error) {
	op := logging.StartTimer(l.logger, "input loaded", logging.String("kind", kind), logging.Path(uri))

	raw, err := l.source.Open(ctx, uri)
	if err != nil {
		op.EndError(err)
		return Stats{}, err
	}
	defer raw.Close()

	r, closer, err := decompress(raw, l.compression)
	if err != nil {
		op.EndError(err)
		return Stats{}, fmt.Errorf("%s: %w", uri, err)
	}
	defer closer.Close()

	stats, err := parse(r)
	if err != nil {
		op.EndError(err)
		if l.metrics != nil && IsMalformed(err) {
			l.metrics.RecordLoadFailure(kind)
		}
		return stats, err
	}

	elapsed := op.End(logging.Int("lines", stats.Lines), logging.Int("parsed", stats.Parsed))
	if l.metrics != nil {
		l.metrics.RecordLoad(kind, stats.Parsed, stats.Skipped, elapsed)
	}
	return stats, nil
}
