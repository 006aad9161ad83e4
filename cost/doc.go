// Package cost implements the transportation cost model of supplynet.
//
// What & Why
//
//	Every (city, warehouse) pair gets a cost equal to the Euclidean distance
//	between them multiplied by a tier coefficient that models the transport
//	mode used at that range:
//
//	  distance ≤ 10        → 1 (drone)
//	  10 < distance ≤ 20   → 2 (truck)
//	  distance > 20        → 3 (rail)
//
// Functions
//
//   - Distance(a, b)            Euclidean distance of two integer points.
//   - TransportTier(distance)   tier coefficient for a distance.
//   - Cost(city, warehouse)     distance × tier.
//   - BuildMatrix(cities, whs)  dense |cities|×|warehouses| table of Cost.
//
// Model keeps the ordered inputs next to a lazily built matrix, so callers
// that want the table "on first use" get exactly one computation. The
// allocation engine orders warehouses with this precomputed table and never
// recomputes costs, which keeps its decisions consistent with the reported
// matrix.
//
// Complexity: O(|cities|·|warehouses|) time and memory for the matrix.
package cost
