package service

import (
	"testing"

	"github.com/demianRod/alexshop-tienda/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []model.Product {
	return []model.Product{
		{Name: "Vintage Lamp", Description: "Warm light for the living room", Category: "Home", Price: decimal.NewFromInt(45), Stock: 2, Status: model.StatusAvailable},
		{Name: "Desk Lamp", Description: "LED, adjustable arm", Category: "Home", Price: decimal.NewFromInt(30), Stock: 1, Status: model.StatusReserved},
		{Name: "Gaming Mouse", Description: "RGB, 6 buttons", Category: "Electronics", Price: decimal.NewFromInt(25), Stock: 3, Status: model.StatusSold},
		{Name: "Phone Case", Description: "Fits most models", Category: "Electronics", Price: decimal.NewFromInt(10), Stock: 5, Status: model.StatusAvailable},
	}
}

// ── Filter ───────────────────────────────────────────────────────────────────

func TestFilter_EmptySearchAndAllStatusIsIdentity(t *testing.T) {
	list := fixtureProducts()

	assert.Equal(t, list, Filter(list, "", "all"))
	assert.Equal(t, list, Filter(list, "", ""))
	assert.Equal(t, list, Filter(list, "   ", "all"))
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	list := fixtureProducts()

	got := Filter(list, "LAMP", "all")
	require.Len(t, got, 2)
	assert.Equal(t, "Vintage Lamp", got[0].Name)
	assert.Equal(t, "Desk Lamp", got[1].Name)

	// matches description and category too
	assert.Len(t, Filter(list, "adjustable", "all"), 1)
	assert.Len(t, Filter(list, "electronics", "all"), 2)
}

func TestFilter_StatusTabIntersectsWithSearch(t *testing.T) {
	list := fixtureProducts()

	got := Filter(list, "lamp", "reserved")
	require.Len(t, got, 1)
	assert.Equal(t, "Desk Lamp", got[0].Name)

	assert.Empty(t, Filter(list, "lamp", "sold"))
	assert.Len(t, Filter(list, "", "available"), 2)
}

func TestFilter_NoMatchReturnsEmptyNotNil(t *testing.T) {
	got := Filter(fixtureProducts(), "does-not-exist", "all")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_IsIdempotent(t *testing.T) {
	list := fixtureProducts()

	once := Filter(list, "lamp", "available")
	twice := Filter(once, "lamp", "available")
	assert.Equal(t, once, twice)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	list := fixtureProducts()
	Filter(list, "lamp", "sold")
	assert.Equal(t, fixtureProducts(), list)
}

// ── ComputeStats ─────────────────────────────────────────────────────────────

func TestComputeStats_CountsAndTotalValue(t *testing.T) {
	stats := ComputeStats(fixtureProducts())

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 1, stats.Reserved)
	assert.Equal(t, 1, stats.Sold)
	// 45×2 + 30×1 + 25×3 + 10×5 = 245, every status included
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(245)),
		"got %s", stats.TotalValue)
}

func TestComputeStats_EmptyList(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.True(t, stats.TotalValue.Equal(decimal.Zero))
}

func TestComputeStats_IgnoresActiveFilter(t *testing.T) {
	list := fixtureProducts()

	// stats over the full list and over a filtered view differ: callers must
	// always aggregate the full list
	full := ComputeStats(list)
	filtered := ComputeStats(Filter(list, "lamp", "all"))
	assert.NotEqual(t, full.Total, filtered.Total)
	assert.Equal(t, 4, full.Total)
}
