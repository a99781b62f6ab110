// Package config loads the generator configuration from a yaml file with
// environment-variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Generation Generation `json:"generation" yaml:"generation"`

	Storage Storage `json:"storage" yaml:"storage"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Generation controls the shape and volume of a single run.
type Generation struct {
	Batches           int    `json:"batches" yaml:"batches" validate:"min=1"`
	CustomersPerBatch int    `json:"customersPerBatch" yaml:"customersPerBatch" validate:"min=1"`
	OrdersPerBatch    int    `json:"ordersPerBatch" yaml:"ordersPerBatch" validate:"min=1"`
	Currency          string `json:"currency" yaml:"currency" validate:"required,len=3"`

	// Seed makes a run reproducible when non-zero. Zero draws a fresh seed
	// per run.
	Seed uint64 `json:"seed" yaml:"seed"`

	Cancellation Cancellation `json:"cancellation" yaml:"cancellation"`
}

// Cancellation enables the CANCELLED terminal branch of the order lifecycle.
// AfterPayment additionally allows orders to be cancelled after PAID was
// recorded; otherwise cancellation happens straight from CREATED.
type Cancellation struct {
	Enabled      bool `json:"enabled" yaml:"enabled"`
	AfterPayment bool `json:"afterPayment" yaml:"afterPayment"`
}

// Storage points the generator at its object-storage bucket.
type Storage struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "azblob://raw-zone" or
	// "file:///tmp/oltp-raw?create_dir=1".
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl" validate:"required"`

	// RootPrefix is prepended to every table payload key.
	RootPrefix string `json:"rootPrefix" yaml:"rootPrefix"`

	// StateKey is the blob key of the persisted sequence state.
	StateKey string `json:"stateKey" yaml:"stateKey" validate:"required"`
}

// LoadWithEnv loads <name>.yaml through koanf from the given search paths and
// layers environment variables on top (GENERATION_BATCHES=10 overrides
// generation.batches).
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := append([]string{defaultPath}, configPath...)

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", name)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// GENERATION_ORDERSPERBATCH -> generation.ordersperbatch;
			// unmarshalling below matches field names with separators
			// stripped, case-insensitively.
			return strings.ReplaceAll(strings.ToLower(k), "_", "."), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			MatchName: func(mapKey, fieldName string) bool {
				return normalizeToken(mapKey) == normalizeToken(fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func normalizeToken(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '.' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Generation.Currency == "" {
		cfg.Generation.Currency = "EUR"
	}
	if cfg.Storage.StateKey == "" {
		cfg.Storage.StateKey = "state/generator_state.json"
	}
	if cfg.Storage.RootPrefix == "" {
		cfg.Storage.RootPrefix = "data"
	}
}
