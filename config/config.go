// Package config loads the service configuration from {env}.yaml with
// environment variable overrides, through koanf.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."
	envVar      = "APP_ENV"
	defaultEnv  = "local"
)

// Config is the full configuration surface of the service.
type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port           int           `json:"port" yaml:"port"`
		AllowedOrigins []string      `json:"allowedOrigins" yaml:"allowedOrigins"`
		ReadTimeout    time.Duration `json:"readTimeout" yaml:"readTimeout"`
		WriteTimeout   time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
		IdleTimeout    time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
	} `json:"http" yaml:"http"`

	Postgres *pgLib.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// JWT carries the token issuance parameters. Key, issuer and audience
	// must match between the issuing and validating side.
	JWT JWTConfig `json:"jwt" yaml:"jwt"`
}

// JWTConfig defines the signed-token configuration.
type JWTConfig struct {
	Key           string `json:"key" yaml:"key"`
	Issuer        string `json:"issuer" yaml:"issuer"`
	Audience      string `json:"audience" yaml:"audience"`
	ExpiryMinutes int    `json:"expiryMinutes" yaml:"expiryMinutes"`
}

// Log defines logger output options.
type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// New loads the configuration for the environment named in APP_ENV,
// defaulting to "local". Used as an fx provider.
func New() (*Config, error) {
	currEnv := os.Getenv(envVar)
	if currEnv == "" {
		currEnv = defaultEnv
	}

	return Load(currEnv, defaultPath)
}

// Load reads {env}.yaml from the given search paths and applies environment
// variable overrides on top (e.g. JWT_KEY overrides jwt.key).
func Load(currEnv string, searchPaths ...string) (*Config, error) {
	cfg := new(Config)
	k := koanf.New(".")

	configFile, err := findConfigFile(currEnv, searchPaths)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrap(err, "failed to load config file")
		}
	}

	// Environment variables win over the file. JWT_EXPIRY_MINUTES maps to
	// jwt.expiryMinutes, POSTGRES_HOST to postgres.host, and so on.
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return normalizeEnvKey(key), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment overrides")
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, error) {
	if len(searchPaths) == 0 {
		searchPaths = []string{defaultPath}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !os.IsNotExist(err) {
			return "", errors.Wrap(err, "failed to stat config file")
		}
	}

	// Missing file is not fatal: everything can come from the environment.
	return "", nil
}

// normalizeEnvKey turns JWT_EXPIRY_MINUTES into jwt.expiryMinutes: the first
// underscore separates the section, the remaining segments become one
// lowerCamel key.
func normalizeEnvKey(key string) string {
	segments := strings.Split(strings.ToLower(key), "_")
	if len(segments) == 1 {
		return segments[0]
	}

	var tail strings.Builder
	for i, seg := range segments[1:] {
		if seg == "" {
			continue
		}
		if i == 0 {
			tail.WriteString(seg)

			continue
		}
		tail.WriteString(strings.ToUpper(seg[:1]))
		tail.WriteString(seg[1:])
	}

	return segments[0] + "." + tail.String()
}
