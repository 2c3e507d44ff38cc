// File: config.go
// Title: Configuration Accessor
// Description: Loads configuration files through the include loader and
//              exposes dotted-key access with environment overrides and a
//              package-level default instance.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	hxerror "github.com/msto63/helperx/core/error"
	"github.com/msto63/helperx/core/include"
	hxlog "github.com/msto63/helperx/core/log"
	"github.com/msto63/helperx/utils/stringx"
)

// Options controls how a configuration file is loaded
type Options struct {
	EnvPrefix string         // Environment variable prefix (default: none)
	Defaults  map[string]any // Values used when the file does not set a key
	Logger    *hxlog.Logger  // Diagnostics (default: package default logger)
}

// Config holds decoded configuration data with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]any
	defaults  map[string]any
	filePath  string
	envPrefix string
	logger    *hxlog.Logger
}

// Load loads configuration from a TOML, YAML or JSON file
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, Options{})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options Options) (*Config, error) {
	if stringx.IsBlank(filePath) {
		return nil, hxerror.New("config file path cannot be empty").
			WithCode(hxerror.CodeMissingConfig).
			WithOperation("config.LoadWithOptions")
	}

	c := &Config{
		filePath:  filePath,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
		logger:    options.Logger,
	}
	data, err := c.read()
	if err != nil {
		return nil, err
	}
	c.data = data
	return c, nil
}

// FromMap creates a configuration backed by data instead of a file
func FromMap(data map[string]any, options Options) *Config {
	c := &Config{
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
		logger:    options.Logger,
	}
	c.data = mergeDefaults(deepCopyMap(data), c.defaults)
	return c
}

func (c *Config) log() *hxlog.Logger {
	if c.logger == nil {
		return hxlog.GetDefault()
	}
	return c.logger
}

// read decodes the backing file into a new map with defaults applied
func (c *Config) read() (map[string]any, error) {
	data, err := include.NewLoader(c.log()).InCleanScope(c.filePath)
	if err != nil {
		return nil, hxerror.Wrap(err, "failed to load config file").
			WithOperation("config.read").
			WithDetail("filePath", c.filePath)
	}
	return mergeDefaults(data, c.defaults), nil
}

// mergeDefaults fills keys missing from data, recursing into nested tables
func mergeDefaults(data, defaults map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}
	for k, dv := range defaults {
		v, ok := data[k]
		if !ok {
			if dm, isMap := dv.(map[string]any); isMap {
				dv = deepCopyMap(dm)
			}
			data[k] = dv
			continue
		}
		vm, vok := v.(map[string]any)
		dm, dok := dv.(map[string]any)
		if vok && dok {
			data[k] = mergeDefaults(vm, dm)
		}
	}
	return data
}

// Get returns the value at a dotted key such as "db.host". An environment
// variable derived from the key takes precedence. Missing keys yield nil.
func (c *Config) Get(key string) any {
	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.getValue(key)
}

// Has checks if a configuration key exists in the data or the environment
func (c *Config) Has(key string) bool {
	return c.Get(key) != nil
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	value := c.Get(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	switch v := c.Get(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default.
// Strings are interpreted with stringx.ToBool, so "yes", "on" and "oui"
// are true.
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	switch v := c.Get(key).(type) {
	case bool:
		return v
	case string:
		return stringx.ToBool(v)
	case int64:
		return v != 0
	case int:
		return v != 0
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// Set sets a configuration value (runtime only, not persisted)
func (c *Config) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = map[string]any{}
	}
	keys := strings.Split(key, ".")
	current := c.data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

// All returns a deep copy of the configuration data
func (c *Config) All() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// FilePath returns the backing file, or "" for FromMap configurations
func (c *Config) FilePath() string {
	return c.filePath
}

// Reload re-reads the backing file. On failure the current data is kept.
func (c *Config) Reload() error {
	if c.filePath == "" {
		return hxerror.New("configuration has no backing file").
			WithCode(hxerror.CodeMissingConfig).
			WithOperation("config.Reload")
	}
	data, err := c.read()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data = data
	c.mu.Unlock()
	return nil
}

func (c *Config) getValue(key string) any {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) getEnvValue(key string) string {
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey maps db.host to DB_HOST, or APP_DB_HOST with prefix "app"
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

func deepCopyMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			dst[k] = deepCopyMap(m)
		} else {
			dst[k] = v
		}
	}
	return dst
}

var (
	defaultMu     sync.RWMutex
	defaultConfig *Config
)

// SetDefault installs the configuration used by the package-level Get.
// Passing nil clears it.
func SetDefault(c *Config) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig = c
}

// Default returns the configuration installed by SetDefault, or nil
func Default() *Config {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultConfig
}

// Get reads key from the default configuration. Without a default
// configuration it returns nil.
func Get(key string) any {
	c := Default()
	if c == nil {
		return nil
	}
	return c.Get(key)
}
