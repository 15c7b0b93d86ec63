package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"chillstay/internal/domain/hotel"
	"chillstay/internal/infra/cache"
)

// HotelEventHandler drops cached hotel summaries when upstream publishes a
// change, so the next statistics request re-resolves fresh data. The cache is
// otherwise additive for the process lifetime.
type HotelEventHandler struct {
	Cache  *cache.Map[string, hotel.Summary]
	Logger *slog.Logger
}

type hotelEvent struct {
	HotelID string `json:"hotel_id"`
	Kind    string `json:"kind"`
}

func (h *HotelEventHandler) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var evt hotelEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("kafka: decode hotel event: %w", err)
	}
	if evt.HotelID == "" {
		return fmt.Errorf("kafka: hotel event without hotel_id")
	}
	h.Cache.Delete(evt.HotelID)
	if h.Logger != nil {
		h.Logger.Debug("hotel cache entry invalidated", "hotel_id", evt.HotelID, "kind", evt.Kind)
	}
	return nil
}
