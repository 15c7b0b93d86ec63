package mongo

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	domainbooking "chillstay/internal/domain/booking"
)

// BookingStore loads the raw booking collection. The engine filters
// client-side, so the only query shape is an unconditional find; that keeps
// the store free of composite-index requirements.
type BookingStore struct {
	col    *mongo.Collection
	logger *slog.Logger
}

func NewBookingStore(db *mongo.Database, logger *slog.Logger) *BookingStore {
	return &BookingStore{col: db.Collection("bookings"), logger: logger}
}

// All returns every booking it can decode. Documents that fail to decode are
// logged and dropped; a collection-level error is returned alongside whatever
// was read so the caller can mark the result degraded.
func (s *BookingStore) All(ctx context.Context) ([]domainbooking.Booking, error) {
	cur, err := s.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domainbooking.Booking
	for cur.Next(ctx) {
		var doc bookingDocument
		if err := cur.Decode(&doc); err != nil {
			if s.logger != nil {
				s.logger.Warn("skipping undecodable booking document", "error", err)
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

type bookingDocument struct {
	ID            string  `bson:"_id"`
	UserID        string  `bson:"user_id"`
	HotelID       string  `bson:"hotel_id"`
	RoomID        string  `bson:"room_id"`
	Guests        int     `bson:"guests"`
	Price         float64 `bson:"price"`
	TotalPrice    float64 `bson:"total_price"`
	Status        string  `bson:"status"`
	PaymentMethod string  `bson:"payment_method"`
	CreatedAt     int64   `bson:"created_at"`
	UpdatedAt     int64   `bson:"updated_at"`
}

func (d bookingDocument) toDomain() domainbooking.Booking {
	return domainbooking.Booking{
		ID:            d.ID,
		UserID:        d.UserID,
		HotelID:       d.HotelID,
		RoomID:        d.RoomID,
		Guests:        d.Guests,
		Price:         d.Price,
		TotalPrice:    d.TotalPrice,
		Status:        domainbooking.Status(d.Status),
		PaymentMethod: domainbooking.PaymentMethod(d.PaymentMethod),
		CreatedAt:     timestampToTime(d.CreatedAt),
		UpdatedAt:     timestampToTime(d.UpdatedAt),
	}
}

// timestampToTime converts epoch milliseconds; zero stays the zero time so
// the bucketer can recognize a missing timestamp.
func timestampToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
