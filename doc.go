// Package supplynet plans the distribution of emergency supplies from a set
// of warehouses to a set of cities.
//
// A run goes through three engines, each in its own package:
//
//	cost/:           Euclidean distance × transport tier (drone, truck, rail)
//	allocation/:     priority-greedy grants, HIGH before MEDIUM before LOW
//	redistribution/: surplus/need heaps pulling warehouses towards a target level
//	cluster/:        union-find over cities that draw from identical warehouses
//
// and is wired together by network.Plan. Around the engines:
//
//	core/:            City, Warehouse, Transfer and shared validation
//	matrix/:          the dense cost table
//	parser/:          text and YAML input, read through afero
//	report/:          JSON document and console tables
//	mainboilerplate/: logging, flag/INI configuration, metrics dump
//	cmd/supplynet/:   the command-line program
//
// Quick example:
//
//	    W1 ── C1 (HIGH, 60)
//	     \
//	      C2 (LOW, 80) ── W2
//
//	out, err := network.Plan(cities, warehouses, network.WithQueries(network.Query{A: 1, B: 2}))
//
// C1 is served first from its cheapest warehouse; C2 takes what is left of
// W1, then W2. Redistribution then moves stock from W2 back towards W1.
//
//	go install github.com/katalvlaran/supplynet/cmd/supplynet@latest
package supplynet
