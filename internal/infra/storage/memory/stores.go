// Package memory holds in-memory store implementations sharing the mongo
// store contracts; they back the dev mode and the test suites.
package memory

import (
	"context"
	"fmt"
	"sync"

	"chillstay/internal/domain/booking"
	"chillstay/internal/domain/hotel"
	"chillstay/internal/domain/user"
)

// BookingStore keeps bookings in insertion order.
type BookingStore struct {
	mu    sync.RWMutex
	items []booking.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{}
}

// Seed appends bookings; handy for fixtures and tests.
func (s *BookingStore) Seed(items ...booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
}

// All returns a copy of the stored bookings.
func (s *BookingStore) All(ctx context.Context) ([]booking.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]booking.Booking, len(s.items))
	copy(out, s.items)
	return out, nil
}

// HotelStore answers batched hotel lookups from a map.
type HotelStore struct {
	mu    sync.RWMutex
	items map[string]hotel.Summary
	limit int
}

func NewHotelStore(limit int) *HotelStore {
	if limit < 1 {
		limit = 10
	}
	return &HotelStore{items: make(map[string]hotel.Summary), limit: limit}
}

func (s *HotelStore) Seed(items ...hotel.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range items {
		s.items[h.ID] = h
	}
}

func (s *HotelStore) BatchLimit() int { return s.limit }

func (s *HotelStore) FindByIDs(ctx context.Context, ids []string) ([]hotel.Summary, error) {
	if len(ids) > s.limit {
		return nil, fmt.Errorf("memory: %d ids exceed the batch limit of %d", len(ids), s.limit)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]hotel.Summary, 0, len(ids))
	for _, id := range ids {
		if h, ok := s.items[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

// UserStore answers batched customer lookups from a map.
type UserStore struct {
	mu    sync.RWMutex
	items map[string]user.Summary
	limit int
}

func NewUserStore(limit int) *UserStore {
	if limit < 1 {
		limit = 10
	}
	return &UserStore{items: make(map[string]user.Summary), limit: limit}
}

func (s *UserStore) Seed(items ...user.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range items {
		s.items[u.ID] = u
	}
}

func (s *UserStore) BatchLimit() int { return s.limit }

func (s *UserStore) FindByIDs(ctx context.Context, ids []string) ([]user.Summary, error) {
	if len(ids) > s.limit {
		return nil, fmt.Errorf("memory: %d ids exceed the batch limit of %d", len(ids), s.limit)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]user.Summary, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.items[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}
