package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))

	return dir
}

const sampleYaml = `
env:
  env: test
  serviceName: oltpgen
  log:
    pretty: true
    level: debug
generation:
  batches: 5
  customersPerBatch: 300
  ordersPerBatch: 500
  currency: EUR
  seed: 42
  cancellation:
    enabled: true
    afterPayment: true
storage:
  bucketUrl: mem://
  rootPrefix: data
  stateKey: state/generator_state.json
`

func TestLoadWithEnv_ReadsYaml(t *testing.T) {
	dir := writeConfigFile(t, "testcfg", sampleYaml)

	cfg, err := LoadWithEnv[Config]("testcfg", dir)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "oltpgen", cfg.Env.ServiceName)
	assert.True(t, cfg.Env.Log.Pretty)
	assert.Equal(t, "debug", cfg.Env.Log.Level)

	assert.Equal(t, 5, cfg.Generation.Batches)
	assert.Equal(t, 300, cfg.Generation.CustomersPerBatch)
	assert.Equal(t, 500, cfg.Generation.OrdersPerBatch)
	assert.Equal(t, "EUR", cfg.Generation.Currency)
	assert.Equal(t, uint64(42), cfg.Generation.Seed)
	assert.True(t, cfg.Generation.Cancellation.Enabled)
	assert.True(t, cfg.Generation.Cancellation.AfterPayment)

	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, "data", cfg.Storage.RootPrefix)
	assert.Equal(t, "state/generator_state.json", cfg.Storage.StateKey)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := writeConfigFile(t, "testcfg", sampleYaml)

	t.Setenv("GENERATION_ORDERSPERBATCH", "250")
	t.Setenv("STORAGE_BUCKETURL", "file:///tmp/override?create_dir=1")

	cfg, err := LoadWithEnv[Config]("testcfg", dir)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Generation.OrdersPerBatch)
	assert.Equal(t, "file:///tmp/override?create_dir=1", cfg.Storage.BucketURL)
	// Untouched values still come from the file.
	assert.Equal(t, 5, cfg.Generation.Batches)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "ordersperbatch", normalizeToken("orders_per_batch"))
	assert.Equal(t, "ordersperbatch", normalizeToken("OrdersPerBatch"))
	assert.Equal(t, "bucketurl", normalizeToken("bucket-url"))
	assert.Equal(t, "generationbatches", normalizeToken("generation.batches"))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "EUR", cfg.Generation.Currency)
	assert.Equal(t, "state/generator_state.json", cfg.Storage.StateKey)
	assert.Equal(t, "data", cfg.Storage.RootPrefix)

	// Explicit values survive.
	cfg = &Config{}
	cfg.Generation.Currency = "USD"
	applyDefaults(cfg)
	assert.Equal(t, "USD", cfg.Generation.Currency)
}
