package mainboilerplate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mbp "github.com/katalvlaran/supplynet/mainboilerplate"
)

type testConfig struct {
	Plan struct {
		TargetLevel int    `long:"target-level" default:"50" description:"Target level"`
		Input       string `long:"input" default:"network.txt" description:"Input path"`
	} `group:"Plan" namespace:"plan"`
}

func TestInitLog(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	mbp.InitLog(mbp.LogConfig{Level: "debug", Format: "json"})
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	mbp.InitLog(mbp.LogConfig{Level: "warn", Format: "color"})
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	require.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
	assert.True(t, log.StandardLogger().Formatter.(*log.TextFormatter).ForceColors)
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { mbp.Must(nil, "never") })
	assert.Panics(t, func() { mbp.Must(os.ErrNotExist, "reading input", "path", "x.txt") })
}

func TestParseConfigFile(t *testing.T) {
	var dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "supplynet.ini"), []byte(`
[Plan]
plan.target-level = 42
unknown-key = ignored

[Elsewhere]
anything = goes
`), 0644))

	var cfg testConfig
	var parser = flags.NewParser(&cfg, flags.Default)
	var before = parser.Options

	require.NoError(t, mbp.ParseConfigFile(parser, "supplynet.ini", []string{filepath.Join(dir, "missing"), dir}))
	assert.Equal(t, before, parser.Options)

	_, err := parser.ParseArgs([]string{"--plan.input", "net.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Plan.TargetLevel)
	assert.Equal(t, "net.yaml", cfg.Plan.Input)
}

func TestParseConfigFile_Missing(t *testing.T) {
	var cfg testConfig
	var parser = flags.NewParser(&cfg, flags.Default)

	require.NoError(t, mbp.ParseConfigFile(parser, "supplynet.ini", []string{t.TempDir()}))
	_, err := parser.ParseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Plan.TargetLevel)
}

func TestWriteMetrics(t *testing.T) {
	require.NoError(t, mbp.WriteMetrics(mbp.DiagnosticsConfig{}))

	var path = filepath.Join(t.TempDir(), "supplynet.prom")
	require.NoError(t, mbp.WriteMetrics(mbp.DiagnosticsConfig{MetricsTextfile: path}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	// The default registry always carries the Go runtime collector.
	assert.Contains(t, string(b), "go_goroutines")
}
