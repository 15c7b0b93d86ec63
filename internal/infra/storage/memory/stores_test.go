package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chillstay/internal/domain/hotel"
)

func TestHotelStoreEnforcesBatchLimit(t *testing.T) {
	store := NewHotelStore(3)

	ids := []string{"a", "b", "c", "d"}
	_, err := store.FindByIDs(context.Background(), ids)
	require.Error(t, err)

	_, err = store.FindByIDs(context.Background(), ids[:3])
	assert.NoError(t, err)
}

func TestHotelStoreReturnsOnlyKnownIDs(t *testing.T) {
	store := NewHotelStore(10)
	store.Seed(hotel.Summary{ID: "h1", Name: "Seaside"})

	got, err := store.FindByIDs(context.Background(), []string{"h1", "h2"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "h1", got[0].ID)
}

func TestBookingStoreAllCopies(t *testing.T) {
	store := NewBookingStore()

	got, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
