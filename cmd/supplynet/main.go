package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	mbp "github.com/katalvlaran/supplynet/mainboilerplate"
	"github.com/katalvlaran/supplynet/network"
	"github.com/katalvlaran/supplynet/parser"
	"github.com/katalvlaran/supplynet/report"
)

const iniFilename = "supplynet.ini"

// Config is the top-level configuration object of supplynet.
var Config = new(struct {
	Plan struct {
		Input       string   `long:"input" env:"INPUT" default:"TestCase.txt" description:"Network input file (.txt line format, or .yaml/.yml)"`
		Output      string   `long:"output" env:"OUTPUT" default:"Output.json" description:"Path of the JSON report"`
		TargetLevel int      `long:"target-level" env:"TARGET_LEVEL" default:"50" description:"Stock level redistribution pulls every warehouse towards"`
		Queries     []string `long:"query" description:"City pair A:B to test for cluster membership (repeatable)"`
		Text        bool     `long:"text" description:"Also print the report as tables on stdout"`
	} `group:"Plan" namespace:"plan" env-namespace:"PLAN"`

	Log         mbp.LogConfig         `group:"Logging" namespace:"log" env-namespace:"LOG"`
	Diagnostics mbp.DiagnosticsConfig `group:"Debug" namespace:"debug" env-namespace:"DEBUG"`
})

type cmdRun struct{}

func (cmdRun) Execute([]string) error {
	mbp.InitLog(Config.Log)
	log.WithField("config", Config).Debug("starting run")

	var queries, err = parseQueries(Config.Plan.Queries)
	mbp.Must(err, "parsing queries")

	var fs = afero.NewOsFs()
	in, err := parser.ParseFile(fs, Config.Plan.Input)
	mbp.Must(err, "reading network input", "path", Config.Plan.Input)

	out, err := network.Plan(in.Cities, in.Warehouses,
		network.WithTargetLevel(Config.Plan.TargetLevel),
		network.WithQueries(queries...),
		network.WithLogger(log.StandardLogger()))
	mbp.Must(err, "planning network")

	mbp.Must(report.WriteJSON(fs, Config.Plan.Output, report.NewDocument(out)),
		"writing report", "path", Config.Plan.Output)

	if Config.Plan.Text {
		mbp.Must(report.WriteText(os.Stdout, out), "printing report")
	}
	mbp.Must(mbp.WriteMetrics(Config.Diagnostics), "writing metrics",
		"path", Config.Diagnostics.MetricsTextfile)

	log.WithFields(log.Fields{
		"output":    Config.Plan.Output,
		"transfers": len(out.Transfers),
		"clusters":  len(out.ClustersAfter),
	}).Info("report written")
	return nil
}

// parseQueries converts "A:B" pairs into network queries.
func parseQueries(specs []string) ([]network.Query, error) {
	var out []network.Query
	for _, s := range specs {
		var parts = strings.Split(s, ":")
		if len(parts) != 2 {
			return nil, errors.Errorf("query %q: want A:B", s)
		}
		a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, errors.WithMessagef(err, "query %q", s)
		}
		b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.WithMessagef(err, "query %q", s)
		}
		out = append(out, network.Query{A: a, B: b})
	}
	return out, nil
}

func main() {
	var parser = flags.NewParser(Config, flags.Default)

	_, _ = parser.AddCommand("run", "Plan a supply network and write the report", fmt.Sprintf(`
Read cities and warehouses from --plan.input, allocate warehouse capacity by
priority and cost, rebalance warehouse stock around --plan.target-level, group
cities drawing from identical warehouse sets, and write the JSON report to
--plan.output. Settings may also come from %s or PLAN_* environment variables.
`, iniFilename), &cmdRun{})

	mbp.AddPrintConfigCmd(parser, iniFilename)
	mbp.MustParseConfig(parser, iniFilename)
}
