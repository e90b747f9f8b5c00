package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricing() Pricing {
	return Pricing{
		TaxRate:     decimal.RequireFromString("0.08"),
		DeliveryFee: decimal.RequireFromString("2.99"),
	}
}

func candidate(menuItemID, price, restaurantID string) Candidate {
	return Candidate{
		MenuItemID:     menuItemID,
		Name:           "Item " + menuItemID,
		Description:    "desc",
		Price:          decimal.RequireFromString(price),
		RestaurantID:   restaurantID,
		RestaurantName: "Restaurant " + restaurantID,
	}
}

func TestAddItemMergesSameMenuItem(t *testing.T) {
	e := NewEngine(testPricing())

	require.NoError(t, e.AddItem(candidate("m1", "12.99", "r7")))
	require.NoError(t, e.AddItem(candidate("m1", "12.99", "r7")))

	lines := e.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "25.98", e.Subtotal().StringFixed(2))
}

func TestAddItemCountsPerDistinctMenuItem(t *testing.T) {
	e := NewEngine(testPricing())

	adds := []string{"m1", "m2", "m1", "m3", "m2", "m1"}
	for _, id := range adds {
		require.NoError(t, e.AddItem(candidate(id, "4.50", "r1")))
	}

	lines := e.Lines()
	require.Len(t, lines, 3)
	byMenuItem := map[string]int{}
	for _, line := range lines {
		byMenuItem[line.MenuItemID] = line.Quantity
	}
	assert.Equal(t, map[string]int{"m1": 3, "m2": 2, "m3": 1}, byMenuItem)
}

func TestAddItemBindsRestaurantOnFirstLine(t *testing.T) {
	e := NewEngine(testPricing())
	assert.Equal(t, "", e.RestaurantID())

	require.NoError(t, e.AddItem(candidate("m1", "9.99", "r7")))
	assert.Equal(t, "r7", e.RestaurantID())
	assert.Equal(t, "Restaurant r7", e.RestaurantName())
	assert.True(t, e.IsOpen())
}

func TestAddItemFromDifferentRestaurantIsRefused(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "10.00", "r1")))
	require.NoError(t, e.AddItem(candidate("m2", "5.00", "r1")))
	before := e.Lines()

	err := e.AddItem(candidate("m9", "3.00", "r2"))
	assert.ErrorIs(t, err, ErrDifferentRestaurant)

	// existing lines must be untouched
	assert.Equal(t, before, e.Lines())
	assert.Equal(t, "r1", e.RestaurantID())
}

func TestReplaceWithRebindsRestaurant(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "10.00", "r1")))
	require.NoError(t, e.AddItem(candidate("m2", "5.00", "r1")))

	e.ReplaceWith(candidate("m9", "3.00", "r2"))

	lines := e.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "m9", lines[0].MenuItemID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "r2", e.RestaurantID())
}

func TestRemoveLastLineClearsRestaurant(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "10.00", "r1")))
	id := e.Lines()[0].ID

	e.RemoveLine(id)
	assert.True(t, e.IsEmpty())
	assert.Equal(t, "", e.RestaurantID())

	// removing again is a no-op
	e.RemoveLine(id)
	assert.True(t, e.IsEmpty())
}

func TestDecrementAtQuantityOneRemovesLine(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "10.00", "r1")))
	id := e.Lines()[0].ID

	e.DecrementQuantity(id)
	assert.True(t, e.IsEmpty())
	assert.Equal(t, "", e.RestaurantID())
}

func TestIncrementThenDecrementRoundTrips(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "10.00", "r1")))
	require.NoError(t, e.AddItem(candidate("m1", "10.00", "r1")))
	before := e.Lines()
	id := before[0].ID

	e.IncrementQuantity(id)
	e.DecrementQuantity(id)
	assert.Equal(t, before, e.Lines())

	// unknown line ids are no-ops
	e.IncrementQuantity(999)
	e.DecrementQuantity(999)
	assert.Equal(t, before, e.Lines())
}

func TestClearIsIdempotentAndZeroesComputations(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "10.00", "r1")))

	e.Clear()
	e.Clear()

	assert.True(t, e.IsEmpty())
	assert.Equal(t, "0.00", e.Subtotal().StringFixed(2))
	assert.Equal(t, "0.00", e.Tax().StringFixed(2))
	assert.Equal(t, "0.00", e.DeliveryFee().StringFixed(2))
	assert.Equal(t, "0.00", e.Total().StringFixed(2))
}

func TestPricingScenario(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "10.00", "r7")))
	require.NoError(t, e.AddItem(candidate("m2", "5.00", "r7")))

	assert.Equal(t, "15.00", e.Subtotal().StringFixed(2))
	assert.Equal(t, "2.99", e.DeliveryFee().StringFixed(2))
	assert.Equal(t, "1.20", e.Tax().StringFixed(2))
	assert.Equal(t, "19.19", e.Total().StringFixed(2))
}

func TestTotalEqualsSumOfParts(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "12.99", "r7")))
	require.NoError(t, e.AddItem(candidate("m2", "7.49", "r7")))
	e.IncrementQuantity(e.Lines()[1].ID)

	want := e.Subtotal().Add(e.DeliveryFee()).Add(e.Tax())
	assert.True(t, e.Total().Equal(want), "total %s != subtotal+fee+tax %s", e.Total(), want)
}

func TestLineIDsAreMaxPlusOne(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "1.00", "r1")))
	require.NoError(t, e.AddItem(candidate("m2", "1.00", "r1")))
	require.NoError(t, e.AddItem(candidate("m3", "1.00", "r1")))

	lines := e.Lines()
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, int64(2), lines[1].ID)
	assert.Equal(t, int64(3), lines[2].ID)

	// removing a middle line must not free its id for reuse
	e.RemoveLine(2)
	require.NoError(t, e.AddItem(candidate("m4", "1.00", "r1")))
	lines = e.Lines()
	assert.Equal(t, int64(4), lines[len(lines)-1].ID)

	// an emptied cart starts numbering from 1 again
	e.Clear()
	require.NoError(t, e.AddItem(candidate("m5", "1.00", "r1")))
	assert.Equal(t, int64(1), e.Lines()[0].ID)
}

func TestSetInstructions(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "1.00", "r1")))
	id := e.Lines()[0].ID

	e.SetInstructions(id, "no onions")
	assert.Equal(t, "no onions", e.Lines()[0].Instructions)

	e.SetInstructions(999, "ignored")
	assert.Equal(t, "no onions", e.Lines()[0].Instructions)
}

func TestSnapshotRestore(t *testing.T) {
	e := NewEngine(testPricing())
	require.NoError(t, e.AddItem(candidate("m1", "12.99", "r7")))
	require.NoError(t, e.AddItem(candidate("m2", "5.00", "r7")))
	snap := e.Snapshot()

	restored := NewEngine(testPricing())
	restored.Restore(snap)

	assert.Equal(t, e.Lines(), restored.Lines())
	assert.Equal(t, "r7", restored.RestaurantID())
	assert.True(t, e.Total().Equal(restored.Total()))

	restored.Restore(Snapshot{})
	assert.True(t, restored.IsEmpty())
	assert.Equal(t, "", restored.RestaurantID())
}

func TestSidebarVisibility(t *testing.T) {
	e := NewEngine(testPricing())
	assert.False(t, e.IsOpen())

	// the first add opens the sidebar
	require.NoError(t, e.AddItem(candidate("m1", "1.00", "r1")))
	assert.True(t, e.IsOpen())

	e.Toggle()
	assert.False(t, e.IsOpen())
	e.Toggle()
	assert.True(t, e.IsOpen())

	e.CloseSidebar()
	assert.False(t, e.IsOpen())
}

func TestRepeatedAdditionsKeepDecimalPrecision(t *testing.T) {
	e := NewEngine(testPricing())
	for i := 0; i < 100; i++ {
		require.NoError(t, e.AddItem(candidate("m1", "0.10", "r1")))
	}
	assert.Equal(t, "10.00", e.Subtotal().StringFixed(2))
}
