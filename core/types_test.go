package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/supplynet/core"
)

// TestParsePriority verifies case-insensitive parsing and the unknown-name error.
func TestParsePriority(t *testing.T) {
	for name, want := range map[string]core.Priority{
		"LOW": core.Low, "medium": core.Medium, " High ": core.High,
	} {
		got, err := core.ParsePriority(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := core.ParsePriority("URGENT")
	assert.ErrorIs(t, err, core.ErrUnknownPriority)
}

// TestPriority_Ordering checks LOW < MEDIUM < HIGH and String rendering.
func TestPriority_Ordering(t *testing.T) {
	assert.Less(t, core.Low, core.Medium)
	assert.Less(t, core.Medium, core.High)
	assert.Equal(t, "HIGH", core.High.String())
	assert.Equal(t, "Priority(7)", core.Priority(7).String())
}

// TestPriority_YAML decodes priorities spelled by name.
func TestPriority_YAML(t *testing.T) {
	var doc struct {
		P core.Priority `yaml:"p"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("p: medium\n"), &doc))
	assert.Equal(t, core.Medium, doc.P)

	err := yaml.Unmarshal([]byte("p: soon\n"), &doc)
	assert.ErrorIs(t, err, core.ErrUnknownPriority)
}

// TestValidateInput covers the invalid-shape gate.
func TestValidateInput(t *testing.T) {
	ok := []*core.City{{ID: 1, Demand: 10}, {ID: 2}}
	wh := []*core.Warehouse{core.NewWarehouse(1, "W1", core.Point{}, 100)}
	require.NoError(t, core.ValidateInput(ok, wh))

	dupCities := []*core.City{{ID: 1}, {ID: 1}}
	assert.ErrorIs(t, core.ValidateInput(dupCities, nil), core.ErrDuplicateID)

	negative := []*core.City{{ID: 1, Demand: -3}}
	assert.ErrorIs(t, core.ValidateInput(negative, nil), core.ErrNegativeQuantity)

	over := []*core.Warehouse{{ID: 1, Capacity: 10, Remaining: 11}}
	assert.ErrorIs(t, core.ValidateInput(nil, over), core.ErrRemainingOverflow)

	dupWh := []*core.Warehouse{core.NewWarehouse(4, "A", core.Point{}, 1), core.NewWarehouse(4, "B", core.Point{}, 1)}
	assert.ErrorIs(t, core.ValidateInput(nil, dupWh), core.ErrDuplicateID)
}

// TestCloneAndSnapshot ensures clones are independent and snapshots keep input order.
func TestCloneAndSnapshot(t *testing.T) {
	ws := []*core.Warehouse{core.NewWarehouse(2, "B", core.Point{}, 30), core.NewWarehouse(1, "A", core.Point{}, 70)}
	cp := core.CloneWarehouses(ws)
	cp[0].Remaining = 0
	assert.Equal(t, 30, ws[0].Remaining)

	snap := core.Snapshot(ws)
	require.Len(t, snap, 2)
	assert.Equal(t, core.CapacitySnapshot{WarehouseID: 2, Name: "B", Remaining: 30}, snap[0])
	assert.Equal(t, 100, core.TotalRemaining(ws))

	cities := []*core.City{{ID: 1, Demand: 5}}
	cc := core.CloneCities(cities)
	cc[0].Demand = 0
	assert.Equal(t, 5, cities[0].Demand)
}

// TestTransfer_String matches the report line of the redistribution step.
func TestTransfer_String(t *testing.T) {
	tr := core.Transfer{FromID: 1, ToID: 2, FromName: "X", ToName: "Y", Units: 30}
	assert.Equal(t, "Transferred 30 units from Warehouse X to Warehouse Y.", tr.String())
}
