// Package core holds the records every supplynet engine works on.
//
// What & Why
//
//   - City: a demand site with integer coordinates, a remaining Demand and a
//     Priority (LOW < MEDIUM < HIGH).
//   - Warehouse: a supply site with a fixed Capacity and a Remaining capacity
//     that the allocation and redistribution engines mutate in turn.
//   - ResourceAllocation: one grant (warehouse id, units) made to a city.
//   - Transfer: one rebalancing move between two warehouses.
//
// Records are identified by value (integer ids), never by pointer identity,
// so every engine result is reproducible for the same input.
//
// Validation
//
//	ValidateInput rejects negative quantities, Remaining > Capacity and
//	duplicate identifiers. Engines assume validated input and do not repeat
//	these checks.
//
// Ownership
//
//	Engines mutate the records they are handed. Use CloneCities and
//	CloneWarehouses to keep the caller's copies intact.
package core
