package automap_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enum-pitfall/automap"
	"enum-pitfall/store"
	"enum-pitfall/warehouse"
)

func TestCreateMapRegistersPair(t *testing.T) {
	cfg := automap.NewConfig()
	tm := cfg.CreateMap(store.Order{}, warehouse.Order{})

	require.NotNil(t, tm)
	assert.Same(t, tm, cfg.TypeMapFor(tm.Src, tm.Dst))
	assert.Equal(t, "store.Order->warehouse.Order", tm.Pair().String())
	assert.False(t, tm.IsEnumPair())
}

func TestCreateMapReplacesEarlierEntry(t *testing.T) {
	cfg := automap.NewConfig()
	first := cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0))
	second := cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0), automap.ByName())

	got := cfg.TypeMapFor(second.Src, second.Dst)
	assert.Same(t, second, got)
	assert.NotSame(t, first, got)
	assert.Equal(t, automap.ModeByName, got.Mode)
	assert.True(t, got.IsEnumPair())
}

func TestMapStructCopiesPlainFields(t *testing.T) {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.Order{}, warehouse.Order{})
	cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0), automap.ByName())
	require.NoError(t, cfg.Validate())

	placed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	src := store.Order{
		Number:   "A-1001",
		Status:   store.StatusPaid,
		History:  []store.OrderStatus{store.StatusPending, store.StatusPaid},
		PlacedAt: placed,
	}

	var got warehouse.Order
	require.NoError(t, cfg.Mapper().Map(&got, src))

	assert.Equal(t, "A-1001", got.Number)
	assert.Equal(t, placed, got.PlacedAt)
	assert.Equal(t, warehouse.StatusPaid, got.Status)
	assert.Equal(t, []warehouse.OrderStatus{warehouse.StatusPending, warehouse.StatusPaid}, got.History)
}

func TestMapToAllocatesDestination(t *testing.T) {
	cfg := automap.NewConfig()
	cfg.CreateMap(store.OrderStatus(0), warehouse.OrderStatus(0), automap.ByName())
	require.NoError(t, cfg.Validate())

	got, err := automap.MapTo[warehouse.OrderStatus](cfg.Mapper(), store.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, warehouse.StatusCancelled, got)
}
