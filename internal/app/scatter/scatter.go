// Package scatter implements the chunked fan-out/fan-in pattern used for
// batched foreign-key resolution: partition a slice into chunks no larger
// than a backend limit, run one task per chunk, wait for all of them.
package scatter

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Chunk partitions items into slices of at most size elements. A size below
// one is treated as one.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	var chunks [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// Run fans fn out over chunks of at most size items and joins before
// returning. Every chunk task runs to completion even when siblings fail;
// the first non-nil error is returned after the join.
func Run[T any](ctx context.Context, items []T, size int, fn func(ctx context.Context, chunk []T) error) error {
	var g errgroup.Group
	for _, chunk := range Chunk(items, size) {
		g.Go(func() error {
			return fn(ctx, chunk)
		})
	}
	return g.Wait()
}
