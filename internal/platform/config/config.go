package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const EnvPrefix = "PETMGR_"

type StoreDriver string

const (
	DriverMemory   StoreDriver = "memory"
	DriverSQLite   StoreDriver = "sqlite"
	DriverPostgres StoreDriver = "postgres"
)

type Config struct {
	Addr string `koanf:"addr" yaml:"addr"`
	App  string `koanf:"app" yaml:"app"`

	Store StoreConfig `koanf:"store" yaml:"store"`
	Log   LogConfig   `koanf:"log" yaml:"log"`
	UI    UIConfig    `koanf:"ui" yaml:"ui"`

	// CORS abierto para /api (solo dev).
	CORSAllowAll bool `koanf:"cors_allow_all" yaml:"cors_allow_all"`
}

type StoreConfig struct {
	Driver StoreDriver `koanf:"driver" yaml:"driver"`
	DSN    string      `koanf:"dsn" yaml:"dsn"`
}

type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

type UIConfig struct {
	// Duración de la animación de salida antes de borrar de verdad.
	RemovalDelay time.Duration `koanf:"removal_delay" yaml:"removal_delay"`
	// Retardo antes de ocultar la página saliente.
	PageHideDelay time.Duration `koanf:"page_hide_delay" yaml:"page_hide_delay"`
}

func Default() *Config {
	return &Config{
		Addr: ":8080",
		App:  "pet-manager",
		Store: StoreConfig{
			Driver: DriverMemory,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		UI: UIConfig{
			RemovalDelay:  300 * time.Millisecond,
			PageHideDelay: 300 * time.Millisecond,
		},
	}
}

// Load: defaults -> YAML (si existe) -> env PETMGR_* -> env legacy (PORT, DB_DSN).
// path vacío = sin archivo.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PETMGR_STORE__DRIVER -> store.driver, PETMGR_ADDR -> addr
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	applyLegacyEnv(cfg)
	return cfg, nil
}

// Compatibilidad con el despliegue anterior.
func applyLegacyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Addr = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" && cfg.Store.DSN == "" {
		cfg.Store.Driver = DriverPostgres
		cfg.Store.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		cfg.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		cfg.Log.Format = v
	}
}

func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr is required")
	}

	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			return fmt.Errorf("store.dsn is required for driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("invalid store.driver %q: must be one of memory, sqlite, postgres", c.Store.Driver)
	}

	if c.UI.RemovalDelay < 0 || c.UI.PageHideDelay < 0 {
		return fmt.Errorf("ui delays must be non-negative")
	}
	return nil
}
