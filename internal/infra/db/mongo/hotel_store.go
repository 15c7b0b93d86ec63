package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"chillstay/internal/domain/hotel"
)

// DefaultBatchLimit is the backend's maximum cardinality for an "_id in set"
// query. Callers must chunk larger sets; exceeding the limit is a caller bug.
const DefaultBatchLimit = 10

// HotelStore answers batched hotel lookups for the resolver.
type HotelStore struct {
	col    *mongo.Collection
	limit  int
	logger *slog.Logger
}

func NewHotelStore(db *mongo.Database, limit int, logger *slog.Logger) *HotelStore {
	if limit < 1 {
		limit = DefaultBatchLimit
	}
	return &HotelStore{col: db.Collection("hotels"), limit: limit, logger: logger}
}

// BatchLimit returns the maximum ids FindByIDs accepts per call.
func (s *HotelStore) BatchLimit() int { return s.limit }

// FindByIDs returns the hotels that exist among ids. Missing ids are simply
// absent from the result; a nameless document is treated as unusable and
// dropped.
func (s *HotelStore) FindByIDs(ctx context.Context, ids []string) ([]hotel.Summary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > s.limit {
		return nil, fmt.Errorf("mongo: %d ids exceed the batch limit of %d", len(ids), s.limit)
	}

	cur, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []hotel.Summary
	for cur.Next(ctx) {
		var doc hotelDocument
		if err := cur.Decode(&doc); err != nil {
			if s.logger != nil {
				s.logger.Warn("skipping undecodable hotel document", "error", err)
			}
			continue
		}
		if doc.Name == "" {
			continue
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return out, err
	}
	return out, nil
}

type hotelDocument struct {
	ID       string   `bson:"_id"`
	Name     string   `bson:"name"`
	City     string   `bson:"city"`
	Country  string   `bson:"country"`
	MinPrice *float64 `bson:"min_price,omitempty"`
}

func (d hotelDocument) toDomain() hotel.Summary {
	return hotel.Summary{
		ID:       d.ID,
		Name:     d.Name,
		City:     d.City,
		Country:  d.Country,
		MinPrice: d.MinPrice,
	}
}
