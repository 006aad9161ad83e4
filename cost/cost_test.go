package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/cost"
)

// TestDistance checks the 3-4-5 triangle and symmetry.
func TestDistance(t *testing.T) {
	a, b := core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 4}
	assert.Equal(t, 5.0, cost.Distance(a, b))
	assert.Equal(t, cost.Distance(a, b), cost.Distance(b, a))
	assert.Zero(t, cost.Distance(a, a))
}

// TestTransportTier_Boundaries verifies that boundaries stay on the lower tier.
func TestTransportTier_Boundaries(t *testing.T) {
	cases := []struct {
		d    float64
		want cost.Tier
	}{
		{0, cost.TierDrone},
		{10, cost.TierDrone},
		{math.Nextafter(10, 11), cost.TierTruck},
		{20, cost.TierTruck},
		{20.0001, cost.TierRail},
		{500, cost.TierRail},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cost.TransportTier(tc.d), "distance %v", tc.d)
	}
	assert.Equal(t, "truck", cost.TierTruck.String())
}

// TestCost multiplies distance by tier.
func TestCost(t *testing.T) {
	w := core.NewWarehouse(1, "W", core.Point{X: 0, Y: 0}, 10)

	// Distances 10, 20 and 50 land on tiers 1, 2 and 3.
	near := &core.City{ID: 1, Location: core.Point{X: 6, Y: 8}}
	mid := &core.City{ID: 2, Location: core.Point{X: 12, Y: 16}}
	far := &core.City{ID: 3, Location: core.Point{X: 30, Y: 40}}
	assert.Equal(t, 10.0, cost.Cost(near, w))
	assert.Equal(t, 40.0, cost.Cost(mid, w))
	assert.Equal(t, 150.0, cost.Cost(far, w))
}

// TestBuildMatrix_ShapeAndValues checks rows=cities, cols=warehouses.
func TestBuildMatrix_ShapeAndValues(t *testing.T) {
	cities := []*core.City{
		{ID: 1, Location: core.Point{X: 0, Y: 0}},
		{ID: 2, Location: core.Point{X: 3, Y: 4}},
	}
	whs := []*core.Warehouse{
		core.NewWarehouse(1, "A", core.Point{X: 0, Y: 0}, 1),
		core.NewWarehouse(2, "B", core.Point{X: 0, Y: 15}, 1),
		core.NewWarehouse(3, "C", core.Point{X: 0, Y: 30}, 1),
	}
	m := cost.BuildMatrix(cities, whs)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	want := [][]float64{
		{0, 30, 90},
		{5, 2 * cost.Distance(core.Point{X: 3, Y: 4}, core.Point{X: 0, Y: 15}), 3 * cost.Distance(core.Point{X: 3, Y: 4}, core.Point{X: 0, Y: 30})},
	}
	assert.Equal(t, want, m.ToRows())
}

// TestBuildMatrix_Idempotent ensures recomputation yields an identical matrix.
func TestBuildMatrix_Idempotent(t *testing.T) {
	cities := []*core.City{{ID: 1, Location: core.Point{X: 7, Y: 2}}}
	whs := []*core.Warehouse{core.NewWarehouse(1, "A", core.Point{X: 19, Y: 33}, 1)}
	assert.True(t, cost.BuildMatrix(cities, whs).Equal(cost.BuildMatrix(cities, whs)))
}

// TestBuildMatrix_Empty covers zero cities and zero warehouses.
func TestBuildMatrix_Empty(t *testing.T) {
	cities := []*core.City{{ID: 1}, {ID: 2}}
	m := cost.BuildMatrix(cities, nil)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 0, m.Cols())

	m = cost.BuildMatrix(nil, nil)
	assert.Equal(t, 0, m.Rows())
}

// TestModel_LazyMatrix ensures the matrix is built once and reused.
func TestModel_LazyMatrix(t *testing.T) {
	cities := []*core.City{{ID: 1, Location: core.Point{X: 1, Y: 1}}}
	whs := []*core.Warehouse{core.NewWarehouse(1, "A", core.Point{X: 4, Y: 5}, 1)}
	model := cost.NewModel(cities, whs)

	first := model.Matrix()
	second := model.Matrix()
	assert.Same(t, first, second)
	assert.True(t, first.Equal(cost.BuildMatrix(cities, whs)))
	assert.Len(t, model.Cities(), 1)
	assert.Len(t, model.Warehouses(), 1)
}
