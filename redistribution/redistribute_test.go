package redistribution_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/redistribution"
)

// stock builds a warehouse with the given remaining capacity.
func stock(id, remaining int) *core.Warehouse {
	return &core.Warehouse{ID: id, Name: string(rune('A' + id - 1)), Capacity: 200, Remaining: remaining}
}

// TestRedistribute_SinglePair moves 30 units from 90 to 20.
func TestRedistribute_SinglePair(t *testing.T) {
	need, surplus := stock(1, 20), stock(2, 90)

	transfers, err := redistribution.Redistribute([]*core.Warehouse{need, surplus})
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, core.Transfer{FromID: 2, ToID: 1, FromName: "B", ToName: "A", Units: 30}, transfers[0])
	assert.Equal(t, 60, surplus.Remaining)
	assert.Equal(t, 50, need.Remaining)
}

// TestRedistribute_AtTargetIgnored never touches warehouses sitting at target.
func TestRedistribute_AtTargetIgnored(t *testing.T) {
	at := stock(1, 50)
	low := stock(2, 10)

	transfers, err := redistribution.Redistribute([]*core.Warehouse{at, low})
	require.NoError(t, err)
	assert.Empty(t, transfers)
	assert.Equal(t, 50, at.Remaining)
	assert.Equal(t, 10, low.Remaining)
}

// TestRedistribute_Order pairs largest surplus with deepest need first.
func TestRedistribute_Order(t *testing.T) {
	ws := []*core.Warehouse{stock(1, 60), stock(2, 100), stock(3, 45), stock(4, 0)}

	transfers, err := redistribution.Redistribute(ws)
	require.NoError(t, err)

	// 100 → 0 moves 50 (W2 back to 50, W4 to 50);
	// then 60 → 45 moves 5 (W1 to 55, W3 to 50).
	want := []core.Transfer{
		{FromID: 2, ToID: 4, FromName: "B", ToName: "D", Units: 50},
		{FromID: 1, ToID: 3, FromName: "A", ToName: "C", Units: 5},
	}
	assert.Equal(t, want, transfers)
	assert.Equal(t, []int{55, 50, 50, 50}, []int{ws[0].Remaining, ws[1].Remaining, ws[2].Remaining, ws[3].Remaining})
	assert.Equal(t, 5, redistribution.Imbalance(ws, redistribution.DefaultTargetLevel))
}

// TestRedistribute_Requeue keeps a large surplus in the heap across several needs.
func TestRedistribute_Requeue(t *testing.T) {
	ws := []*core.Warehouse{stock(1, 150), stock(2, 10), stock(3, 30)}

	transfers, err := redistribution.Redistribute(ws)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	assert.Equal(t, 40, transfers[0].Units) // to W2 (deepest need)
	assert.Equal(t, 2, transfers[0].ToID)
	assert.Equal(t, 20, transfers[1].Units) // to W3
	assert.Equal(t, 90, ws[0].Remaining)
}

// TestRedistribute_TargetLevel honours a custom target and rejects negatives.
func TestRedistribute_TargetLevel(t *testing.T) {
	ws := []*core.Warehouse{stock(1, 12), stock(2, 0)}
	transfers, err := redistribution.Redistribute(ws, redistribution.WithTargetLevel(6))
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	assert.Equal(t, 6, transfers[0].Units)

	_, err = redistribution.Redistribute(ws, redistribution.WithTargetLevel(-1))
	assert.ErrorIs(t, err, redistribution.ErrBadTargetLevel)
}

// TestRedistribute_Empty returns no transfers for empty input.
func TestRedistribute_Empty(t *testing.T) {
	transfers, err := redistribution.Redistribute(nil)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

// TestRedistribute_Properties checks conservation and positive transfers on
// random inputs.
func TestRedistribute_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 300; iter++ {
		ws := make([]*core.Warehouse, r.Intn(10))
		for i := range ws {
			ws[i] = stock(i+1, r.Intn(150))
		}
		before := core.TotalRemaining(ws)

		transfers, err := redistribution.Redistribute(ws)
		require.NoError(t, err)
		for _, tr := range transfers {
			require.Positive(t, tr.Units)
		}
		require.Equal(t, before, core.TotalRemaining(ws))

		// Afterwards at most one side of the target is populated.
		var above, below bool
		for _, w := range ws {
			above = above || w.Remaining > redistribution.DefaultTargetLevel
			below = below || w.Remaining < redistribution.DefaultTargetLevel
		}
		require.False(t, above && below)
	}
}
