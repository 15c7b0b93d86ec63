package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"chillstay/internal/domain/user"
)

// UserStore answers batched customer lookups for the resolver.
type UserStore struct {
	col    *mongo.Collection
	limit  int
	logger *slog.Logger
}

func NewUserStore(db *mongo.Database, limit int, logger *slog.Logger) *UserStore {
	if limit < 1 {
		limit = DefaultBatchLimit
	}
	return &UserStore{col: db.Collection("users"), limit: limit, logger: logger}
}

func (s *UserStore) BatchLimit() int { return s.limit }

// FindByIDs returns the users that exist among ids.
func (s *UserStore) FindByIDs(ctx context.Context, ids []string) ([]user.Summary, error) {
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

	var out []user.Summary
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			if s.logger != nil {
				s.logger.Warn("skipping undecodable user document", "error", err)
			}
			continue
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return out, err
	}
	return out, nil
}

type userDocument struct {
	ID          string `bson:"_id"`
	FullName    string `bson:"full_name"`
	MemberSince int64  `bson:"member_since"`
}

func (d userDocument) toDomain() user.Summary {
	return user.Summary{
		ID:          d.ID,
		FullName:    d.FullName,
		MemberSince: timestampToTime(d.MemberSince),
	}
}
