package benchmarks

import (
	"io"
	"log/slog"
	"testing"

	"github.com/ahmetb/go-linq/v3"
	"github.com/destel/rill"
	"github.com/samber/lo"

	"github.com/lguimbarda/songflow/flow"
	"github.com/lguimbarda/songflow/media"
)

// Each benchmark runs the full record pipeline: validate, drop one artist,
// add a like, total the durations.

var sizes = []struct {
	name string
	n    int
}{
	{"Small", SmallSize},
	{"Medium", MediumSize},
	{"Large", LargeSize},
}

func quiet() *media.Pipeline {
	return media.NewPipeline(media.WithExcludedArtist(excluded), media.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func BenchmarkPipeline_Sequential(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			records := generateRecords(size.n)
			p := quiet()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := p.Sequential(records); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPipeline_Declarative(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			records := generateRecords(size.n)
			p := quiet()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := p.Declarative(records); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPipeline_Stream(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			records := generateRecords(size.n)
			p := quiet()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := p.Stream(ctx, flow.FromSlice(records)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPipeline_Lo(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			records := generateRecords(size.n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				items, err := media.Parse(records)
				if err != nil {
					b.Fatal(err)
				}
				liked := lo.FilterMap(items, func(item media.MediaItem, _ int) (media.MediaItem, bool) {
					item.LikeCount++
					return item, item.Artist != excluded
				})
				_ = lo.SumBy(liked, func(item media.MediaItem) float64 { return item.DurationSeconds })
			}
		})
	}
}

func BenchmarkPipeline_Linq(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			records := generateRecords(size.n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				items, err := media.Parse(records)
				if err != nil {
					b.Fatal(err)
				}
				var liked []media.MediaItem
				linq.From(items).
					WhereT(func(item media.MediaItem) bool { return item.Artist != excluded }).
					SelectT(func(item media.MediaItem) media.MediaItem {
						item.LikeCount++
						return item
					}).
					ToSlice(&liked)
				_ = linq.From(liked).SelectT(func(item media.MediaItem) float64 { return item.DurationSeconds }).SumFloats()
			}
		})
	}
}

func BenchmarkPipeline_Rill(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			records := generateRecords(size.n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				stream := rill.FromSlice(records, nil)
				items := rill.Map(stream, 1, media.FromRecord)
				kept := rill.Filter(items, 1, func(item media.MediaItem) (bool, error) {
					return item.Artist != excluded, nil
				})
				liked := rill.Map(kept, 1, func(item media.MediaItem) (media.MediaItem, error) {
					item.LikeCount++
					return item, nil
				})
				out, err := rill.ToSlice(liked)
				if err != nil {
					b.Fatal(err)
				}
				_ = media.TotalDuration(out)
			}
		})
	}
}

// Only the summing stage, over already-parsed items.

func BenchmarkTotal_SumDuration(b *testing.B) {
	items := generateItems(LargeSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flow.First(ctx, media.SumDuration().Apply(flow.FromSlice(items))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTotal_TotalDuration(b *testing.B) {
	items := generateItems(LargeSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = media.TotalDuration(items)
	}
}
