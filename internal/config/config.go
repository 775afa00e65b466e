package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alfagnish/usuarios/internal/users"
	"gopkg.in/yaml.v3"
)

// EnvDevelopment is the environment name that turns on request logging.
const EnvDevelopment = "development"

// Config holds all service configuration loaded from environment variables
// and the optional config file.
type Config struct {
	Port       string // HTTP listen port
	Env        string // Environment name (development, production, ...)
	StaticDir  string // Directory served for unmatched paths
	ConfigFile string // Optional YAML file with app settings
	LogLevel   string // zerolog level name

	App File // Settings read from ConfigFile
}

// File is the shape of the YAML config file.
type File struct {
	Name     string       `yaml:"name"`
	ConfigDB DBConfig     `yaml:"configDB"`
	Usuarios []users.User `yaml:"usuarios"`
}

// DBConfig is only reported at startup; nothing connects to it.
type DBConfig struct {
	Host string `yaml:"host"`
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + c.Port
}

// Development reports whether the service runs in the development environment.
func (c *Config) Development() bool {
	return c.Env == EnvDevelopment
}

// Seed returns the records the store starts with.
func (c *Config) Seed() []users.User {
	if len(c.App.Usuarios) > 0 {
		return c.App.Usuarios
	}
	return users.DefaultSeed()
}

// Load reads configuration from environment variables, falling back to
// defaults, then merges the config file if it exists.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       envOrDefault("PORT", "3000"),
		Env:        envOrDefault("APP_ENV", envOrDefault("GO_ENV", EnvDevelopment)),
		StaticDir:  envOrDefault("STATIC_DIR", "public"),
		ConfigFile: envOrDefault("CONFIG_FILE", "config/default.yaml"),
		LogLevel:   envOrDefault("LOG_LEVEL", "info"),
		App: File{
			Name: "usuarios",
		},
	}

	if err := loadFile(cfg.ConfigFile, &cfg.App); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the YAML file at path into dst. A missing file leaves dst
// untouched.
func loadFile(path string, dst *File) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	seen := make(map[int]bool, len(dst.Usuarios))
	for i, u := range dst.Usuarios {
		if u.ID <= 0 {
			return fmt.Errorf("config file %s: seed user %q has invalid id %d", path, u.Nombre, u.ID)
		}
		if seen[u.ID] {
			return fmt.Errorf("config file %s: duplicate seed user id %d", path, u.ID)
		}
		seen[u.ID] = true

		name, err := users.Validate(u.Nombre)
		if err != nil {
			return fmt.Errorf("config file %s: seed user %d: %w", path, u.ID, err)
		}
		dst.Usuarios[i].Nombre = name
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
