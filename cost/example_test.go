package cost_test

import (
	"fmt"

	"github.com/katalvlaran/supplynet/core"
	"github.com/katalvlaran/supplynet/cost"
)

// ExampleBuildMatrix shows the three transport tiers on a single row.
func ExampleBuildMatrix() {
	cities := []*core.City{{ID: 1, Name: "Origin"}}
	warehouses := []*core.Warehouse{
		core.NewWarehouse(1, "Near", core.Point{X: 6, Y: 8}, 100),  // d=10 → drone
		core.NewWarehouse(2, "Mid", core.Point{X: 12, Y: 16}, 100), // d=20 → truck
		core.NewWarehouse(3, "Far", core.Point{X: 30, Y: 40}, 100), // d=50 → rail
	}

	fmt.Print(cost.BuildMatrix(cities, warehouses))
	// Output: [10, 40, 150]
}
