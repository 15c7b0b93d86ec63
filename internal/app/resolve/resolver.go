// Package resolve turns sets of foreign-key ids into cached entity summaries
// without N+1 point reads: missing ids are fetched in concurrent batches
// sized to the store's "id in set" query limit.
package resolve

import (
	"context"
	"log/slog"

	"chillstay/internal/app/scatter"
	"chillstay/internal/infra/cache"
)

// Store is the batched lookup contract a backing collection must offer.
// FindByIDs must never be called with more ids than BatchLimit allows.
type Store[V any] interface {
	FindByIDs(ctx context.Context, ids []string) ([]V, error)
	BatchLimit() int
}

// Resolver memoizes entity lookups through a shared cache. After Resolve
// returns, every requested id has a cache entry: the real entity when the
// store knows it, a synthesized placeholder otherwise. Lookup failures
// degrade to placeholders instead of propagating.
type Resolver[V any] struct {
	Store       Store[V]
	Cache       *cache.Map[string, V]
	Key         func(V) string
	Placeholder func(id string) V
	Logger      *slog.Logger
}

// Resolve returns a summary for each distinct requested id.
func (r *Resolver[V]) Resolve(ctx context.Context, ids []string) map[string]V {
	unique := dedupe(ids)
	missing := make([]string, 0, len(unique))
	for _, id := range unique {
		if _, ok := r.Cache.Get(id); !ok {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		limit := r.Store.BatchLimit()
		_ = scatter.Run(ctx, missing, limit, func(ctx context.Context, chunk []string) error {
			r.resolveChunk(ctx, chunk)
			return nil
		})
	}

	out := make(map[string]V, len(unique))
	for _, id := range unique {
		if v, ok := r.Cache.Get(id); ok {
			out[id] = v
			continue
		}
		// Entry raced out of the cache between resolution and snapshot.
		v := r.Placeholder(id)
		r.Cache.PutIfAbsent(id, v)
		out[id] = v
	}
	return out
}

func (r *Resolver[V]) resolveChunk(ctx context.Context, chunk []string) {
	found, err := r.Store.FindByIDs(ctx, chunk)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Warn("entity chunk lookup failed, degrading to placeholders", "ids", len(chunk), "error", err)
		}
		for _, id := range chunk {
			r.Cache.PutIfAbsent(id, r.Placeholder(id))
		}
		return
	}

	returned := make(map[string]struct{}, len(found))
	for _, v := range found {
		id := r.Key(v)
		r.Cache.Put(id, v)
		returned[id] = struct{}{}
	}
	for _, id := range chunk {
		if _, ok := returned[id]; !ok {
			r.Cache.PutIfAbsent(id, r.Placeholder(id))
		}
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
