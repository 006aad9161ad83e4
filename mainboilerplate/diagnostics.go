package mainboilerplate

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// DiagnosticsConfig configures how collected metrics leave the process.
// There is no listener: metrics are dumped once, when the program exits.
type DiagnosticsConfig struct {
	MetricsTextfile string `long:"metrics.textfile" env:"METRICS_TEXTFILE" description:"Write Prometheus metrics in text exposition format to this path on exit"`
}

// WriteMetrics dumps the default registry to cfg.MetricsTextfile, if set.
func WriteMetrics(cfg DiagnosticsConfig) error {
	if cfg.MetricsTextfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(cfg.MetricsTextfile, prometheus.DefaultGatherer)
}

// Must panics if |err| is non-nil, supplying |msg| and |extra| as
// formatter and fields of the generated panic.
func Must(err error, msg string, extra ...interface{}) {
	if err == nil {
		return
	}
	var f = log.Fields{"err": err}
	for i := 0; i+1 < len(extra); i += 2 {
		f[extra[i].(string)] = extra[i+1]
	}
	log.WithFields(f).Panic(msg)
}
