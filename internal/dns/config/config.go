package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// Host is the address the lab server binds to.
	Host string `koanf:"host" validate:"required,ip"`

	// Port is the UDP port the lab server binds to.
	Port int `koanf:"port" validate:"required,gte=1,lt=65535"`

	// ZoneDir points at a directory of zone files. When empty, the server
	// serves the built-in scenario catalog.
	ZoneDir string `koanf:"zone_dir"`

	// QueryLogSize caps the in-memory query log. Zero disables query
	// logging entirely.
	QueryLogSize int `koanf:"query_log_size" validate:"gte=0"`

	// QueryLogPath persists the query log to a Bolt database when set;
	// empty keeps the log in memory only.
	QueryLogPath string `koanf:"query_log_path"`
}

// DEFAULT_APP_CONFIG defines the default application configuration. The bind
// address stays on loopback because the lab serves staged, partly broken
// zones that should never leak onto a real network.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:          "prod",
	LogLevel:     "info",
	Host:         "127.0.0.1",
	Port:         5053,
	ZoneDir:      "",
	QueryLogSize: 1024,
	QueryLogPath: "",
}

// envLoader loads environment variables with the prefix "DNSLAB_".
// It transforms the keys to lowercase and removes the prefix,
// and can be mocked in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNSLAB_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "DNSLAB_"))
			value = strings.TrimSpace(value)

			if value == "" {
				return key, value
			}

			if strings.Contains(value, " ") || strings.Contains(value, ",") {
				parts := strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
				return key, parts
			}

			return key, value
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided Koanf
// instance using the structs provider. It can be mocked in tests.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
