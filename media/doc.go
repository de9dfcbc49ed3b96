// Package media turns loosely-typed song records into validated MediaItems
// and runs the parse, filter, like and total-duration pipeline over them.
//
// The pipeline exists in three observably equivalent forms:
//
//   - Pipeline.Sequential walks the records once, building, filtering and
//     liking each item in the same loop.
//   - Pipeline.Declarative chains Parse, FilterExcluding and IncrementLikes
//     as independent passes over slices.
//   - Pipeline.Stream runs Decode, ExcludeArtist and AddLike over a flow
//     stream, so records can come from JSON readers or SQL queries.
//
// For the same records all three return the same Outcome, or the same
// *ValidationError naming the first bad record.
//
// IncrementLikes mutates the slice it is given; AddLike emits modified
// copies. Neither is safe to run concurrently on shared items.
package media
