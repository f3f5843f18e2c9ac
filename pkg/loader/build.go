package loader

import (
	"context"
	"time"

	"github.com/citymesh/citygraph/pkg/multigraph"
	"github.com/citymesh/citygraph/pkg/observability"
)

// Report summarizes a Build.
type Report struct {
	Regions  int           // region records applied
	Streets  int           // street records applied
	Skipped  int           // records dropped for blank names
	Vertices int           // vertices in the finished graph
	Edges    int           // logical edges in the finished graph
	Duration time.Duration // wall time of the whole build
}

type buildOptions struct {
	regionSource string
	streetSource string
	hooks        observability.BuildHooks
}

// Option configures Build.
type Option func(*buildOptions)

// WithSources names the feeds in hook events, usually their file paths.
func WithSources(regions, streets string) Option {
	return func(o *buildOptions) {
		o.regionSource = regions
		o.streetSource = streets
	}
}

// WithHooks overrides the globally registered build hooks.
func WithHooks(h observability.BuildHooks) Option {
	return func(o *buildOptions) {
		if h != nil {
			o.hooks = h
		}
	}
}

// Build creates a graph from region and street records.
//
// Regions are applied first so that declared neighborhoods keep their
// declaration order; streets then add edges and create any neighborhood the
// region feed did not mention. Records whose neighborhood name is blank are
// skipped and reported through OnRecordSkipped. Build checks ctx between
// records and returns ctx.Err() if it is cancelled; the partial graph is
// discarded.
func Build(ctx context.Context, regions []RegionRecord, streets []StreetRecord, opts ...Option) (*multigraph.Graph, Report, error) {
	o := buildOptions{regionSource: observability.FeedRegions, streetSource: observability.FeedStreets}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hooks == nil {
		o.hooks = observability.Build()
	}

	start := time.Now()
	g := multigraph.New()
	var report Report

	finish := func(err error) (*multigraph.Graph, Report, error) {
		report.Duration = time.Since(start)
		report.Vertices = g.VertexCount()
		report.Edges = g.EdgeCount()
		o.hooks.OnBuildComplete(ctx, report.Vertices, report.Edges, report.Duration, err)
		if err != nil {
			return nil, report, err
		}
		return g, report, nil
	}

	feedStart := time.Now()
	o.hooks.OnFeedStart(ctx, observability.FeedRegions, o.regionSource)
	for _, rec := range regions {
		if err := ctx.Err(); err != nil {
			o.hooks.OnFeedComplete(ctx, observability.FeedRegions, o.regionSource, report.Regions, time.Since(feedStart), err)
			return finish(err)
		}
		if isBlank(rec.Name) {
			report.Skipped++
			o.hooks.OnRecordSkipped(ctx, observability.FeedRegions, rec.Row, "blank neighborhood name")
			continue
		}
		g.AddVertex(rec.Name, trim(rec.Region))
		report.Regions++
	}
	o.hooks.OnFeedComplete(ctx, observability.FeedRegions, o.regionSource, report.Regions, time.Since(feedStart), nil)

	feedStart = time.Now()
	o.hooks.OnFeedStart(ctx, observability.FeedStreets, o.streetSource)
	for _, rec := range streets {
		if err := ctx.Err(); err != nil {
			o.hooks.OnFeedComplete(ctx, observability.FeedStreets, o.streetSource, report.Streets, time.Since(feedStart), err)
			return finish(err)
		}
		switch {
		case isBlank(rec.Origin):
			report.Skipped++
			o.hooks.OnRecordSkipped(ctx, observability.FeedStreets, rec.Row, "blank origin")
			continue
		case isBlank(rec.Destination):
			report.Skipped++
			o.hooks.OnRecordSkipped(ctx, observability.FeedStreets, rec.Row, "blank destination")
			continue
		}
		g.AddEdge(rec.Origin, rec.Destination, rec.Street, rec.Distance)
		report.Streets++
	}
	o.hooks.OnFeedComplete(ctx, observability.FeedStreets, o.streetSource, report.Streets, time.Since(feedStart), nil)

	return finish(nil)
}

// LoadFiles reads both feeds from disk and builds the graph.
func LoadFiles(ctx context.Context, regionPath, streetPath string, cols Columns, opts ...Option) (*multigraph.Graph, Report, error) {
	var regions []RegionRecord
	if regionPath != "" {
		var err error
		if regions, err = ReadRegionsFile(regionPath); err != nil {
			return nil, Report{}, err
		}
	}
	streets, err := ReadStreetsFile(streetPath, cols)
	if err != nil {
		return nil, Report{}, err
	}

	opts = append([]Option{WithSources(regionPath, streetPath)}, opts...)
	return Build(ctx, regions, streets, opts...)
}
