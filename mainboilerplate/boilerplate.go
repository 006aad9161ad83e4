// Package mainboilerplate contains shared boilerplate for supplynet
// programs: logging setup, layered flag/INI/environment configuration and
// metrics dumping. Each helper is narrowly scoped so callers pick only what
// they need.
package mainboilerplate

// Version and BuildDate are populated at build time via -ldflags -X.
var (
	Version   = "development"
	BuildDate = "unknown"
)
