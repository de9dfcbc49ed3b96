package media

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lguimbarda/songflow/flow"
	"github.com/lguimbarda/songflow/flow/core"
	"github.com/lguimbarda/songflow/flow/flowerrors"
	"github.com/lguimbarda/songflow/flow/observe"
	"github.com/lguimbarda/songflow/internal/logger"
)

// Outcome is what a pipeline run produces: the liked survivors in input
// order and the sum of their durations.
type Outcome struct {
	Items         []MediaItem
	TotalDuration float64
}

// Pipeline parses records, drops one artist, likes the rest and totals
// their duration.
type Pipeline struct {
	name           string
	excludedArtist string
	logger         *slog.Logger
	metrics        *observe.Metrics
	hooks          []core.Hooks[MediaItem]
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithExcludedArtist sets the artist whose items are dropped.
func WithExcludedArtist(artist string) Option {
	return func(p *Pipeline) {
		p.excludedArtist = artist
	}
}

// WithName names the pipeline in its log records.
func WithName(name string) Option {
	return func(p *Pipeline) {
		p.name = name
	}
}

// WithLogger replaces the package logger. Without it the pipeline logs to
// logger.Logger as it is at the time of each record, so later SetLevel or
// SetOutput calls apply.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithMetrics records Stream runs into m: surviving items, errors and each
// survivor's duration.
func WithMetrics(m *observe.Metrics) Option {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithHooks adds hooks that observe the items leaving Stream runs.
func WithHooks(h core.Hooks[MediaItem]) Option {
	return func(p *Pipeline) {
		p.hooks = append(p.hooks, h)
	}
}

// NewPipeline returns a Pipeline. With no options nothing is excluded.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{name: "media"}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) log() *slog.Logger {
	return logger.WithPipeline(p.logger, p.name)
}

// ExcludedArtist reports the artist this pipeline drops.
func (p *Pipeline) ExcludedArtist() string {
	return p.excludedArtist
}

// Sequential runs the pipeline as a single loop: build each item, skip the
// excluded artist, like and keep the rest.
func (p *Pipeline) Sequential(records []Record) (Outcome, error) {
	items := make([]MediaItem, 0, len(records))
	for i, rec := range records {
		item, err := decodeRecord(i, rec)
		if err != nil {
			p.logFailure(err)
			return Outcome{}, err
		}
		if item.Artist != p.excludedArtist {
			item.LikeCount++
			items = append(items, item)
		}
	}
	return p.finish("sequential", items), nil
}

// Declarative runs the pipeline as three passes: Parse, FilterExcluding,
// IncrementLikes.
func (p *Pipeline) Declarative(records []Record) (Outcome, error) {
	parsed, err := Parse(records)
	if err != nil {
		p.logFailure(err)
		return Outcome{}, err
	}
	items := IncrementLikes(FilterExcluding(parsed, p.excludedArtist))
	return p.finish("declarative", items), nil
}

// Stream runs the pipeline over a stream of records. It stops at the first
// error Result, whether a *ValidationError or an upstream source error.
// Hooks and metrics configured on p observe the surviving items.
func (p *Pipeline) Stream(ctx context.Context, source core.Stream[Record]) (Outcome, error) {
	for _, h := range p.hooks {
		ctx = core.WithHooks(ctx, h)
	}
	if p.metrics != nil {
		ctx = observe.WithMetrics(ctx, p.metrics, func(item MediaItem) float64 {
			return item.DurationSeconds
		})
	}

	metered := observe.Meter[Record](func(m observe.StreamMetrics) {
		p.log().Debug("source drained",
			slog.Int64("records", m.ValueCount),
			slog.Int64("source_errors", m.ErrorCount),
			slog.Duration("elapsed", m.Elapsed()),
		)
	}).Apply(source)

	liked := flow.Pipe(
		Decode().Apply(metered),
		ExcludeArtist(p.excludedArtist),
		AddLike(),
		flowerrors.OnError[MediaItem](p.logFailure),
	)
	items, err := flow.Slice(ctx, liked)
	if err != nil {
		return Outcome{}, err
	}
	if items == nil {
		items = []MediaItem{}
	}
	return p.finish("stream", items), nil
}

func (p *Pipeline) finish(mode string, items []MediaItem) Outcome {
	out := Outcome{Items: items, TotalDuration: TotalDuration(items)}
	p.log().Debug("pipeline finished",
		slog.String("mode", mode),
		slog.String("excluded_artist", p.excludedArtist),
		slog.Int("item_count", len(out.Items)),
		slog.Float64("total_duration", out.TotalDuration),
	)
	return out
}

func (p *Pipeline) logFailure(err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		p.log().Warn("invalid record",
			slog.Int("record_index", verr.Index),
			slog.String("field", verr.Field),
			slog.Any("error", verr.Err),
		)
		return
	}
	p.log().Warn("pipeline failed", slog.Any("error", err))
}
