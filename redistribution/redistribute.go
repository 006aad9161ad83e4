package redistribution

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/supplynet/core"
)

// Redistribute moves stock from warehouses above the target level to
// warehouses below it, always pairing the largest surplus with the deepest
// need.
//
// Error Conditions:
//   - ErrBadTargetLevel : the configured target level is negative.
//
// Steps:
//  1. Partition: Remaining > target → surplus max-heap; Remaining < target →
//     need min-heap; warehouses exactly at target join neither.
//  2. While both heaps are non-empty:
//     a. Pop the top of each.
//     b. Move min(surplus-target, target-need) units.
//     c. Record the Transfer.
//     d. Push each warehouse back only if it still qualifies.
//  3. Return transfers in the order performed.
//
// Residual imbalance (one heap empties first) is expected, not an error.
// Side effects: mutates Warehouse.Remaining in place; the sum of Remaining
// over all warehouses is unchanged.
// Complexity: O((S+N) log(S+N)) where S, N are the heap sizes.
func Redistribute(warehouses []*core.Warehouse, opts ...Option) ([]core.Transfer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.TargetLevel < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadTargetLevel, o.TargetLevel)
	}
	target := o.TargetLevel

	// 1. Partition into the two heaps.
	surplus := &stockPQ{desc: true}
	need := &stockPQ{}
	for i, w := range warehouses {
		switch {
		case w.Remaining > target:
			surplus.items = append(surplus.items, stockItem{pos: i, remaining: w.Remaining})
		case w.Remaining < target:
			need.items = append(need.items, stockItem{pos: i, remaining: w.Remaining})
		}
	}
	heap.Init(surplus)
	heap.Init(need)

	// 2. Pair tops until one side runs dry.
	var transfers []core.Transfer
	var moved int
	for surplus.Len() > 0 && need.Len() > 0 {
		// 2a. Largest surplus, deepest need.
		s := heap.Pop(surplus).(stockItem)
		n := heap.Pop(need).(stockItem)
		from, to := warehouses[s.pos], warehouses[n.pos]

		// 2b. Strict inequalities on both sides make this ≥ 1.
		units := min(s.remaining-target, target-n.remaining)
		if units <= 0 {
			panic(fmt.Sprintf("redistribution: non-positive transfer %d from warehouse %d to %d", units, from.ID, to.ID))
		}
		from.Remaining -= units
		to.Remaining += units
		moved += units

		// 2c. Transfers keep the order performed.
		transfers = append(transfers, core.Transfer{
			FromID: from.ID, ToID: to.ID,
			FromName: from.Name, ToName: to.Name,
			Units: units,
		})
		o.Logger.WithFields(logrus.Fields{"from": from.ID, "to": to.ID, "units": units}).Debug("transferred units")

		// 2d. Re-queue only warehouses that still qualify.
		if from.Remaining > target {
			heap.Push(surplus, stockItem{pos: s.pos, remaining: from.Remaining})
		}
		if to.Remaining < target {
			heap.Push(need, stockItem{pos: n.pos, remaining: to.Remaining})
		}
	}

	redistributionTransfersTotal.Add(float64(len(transfers)))
	redistributionUnitsTotal.Add(float64(moved))

	// 3. Performed order, not re-sorted.
	return transfers, nil
}

// Imbalance sums |Remaining - target| across warehouses. It is zero only
// when every warehouse sits exactly at target.
func Imbalance(warehouses []*core.Warehouse, target int) int {
	var total int
	for _, w := range warehouses {
		d := w.Remaining - target
		if d < 0 {
			d = -d
		}
		total += d
	}

	return total
}

// stockItem is a value record for one warehouse inside a heap: its input
// position and the Remaining it had when pushed.
type stockItem struct {
	pos       int
	remaining int
}

// stockPQ implements heap.Interface over stockItem ordered by remaining,
// descending when desc is set and ascending otherwise. Equal remaining
// values fall back to input position so pops are deterministic.
type stockPQ struct {
	items []stockItem
	desc  bool
}

// Len returns the number of queued warehouses.
func (pq *stockPQ) Len() int { return len(pq.items) }

// Less orders by remaining (direction per desc), then by input position.
func (pq *stockPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.remaining != b.remaining {
		if pq.desc {
			return a.remaining > b.remaining
		}
		return a.remaining < b.remaining
	}

	return a.pos < b.pos
}

// Swap swaps elements at indices i and j.
func (pq *stockPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a stockItem. Called by heap.Push.
func (pq *stockPQ) Push(x interface{}) { pq.items = append(pq.items, x.(stockItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *stockPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
