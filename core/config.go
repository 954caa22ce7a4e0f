package core

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "site.config.yml"
	DefaultPort       = 8080
	DefaultOutputDir  = "./dist"
)

type Config struct {
	Host         string   `yaml:"host"`
	Port         int      `yaml:"port"`
	ContentDir   string   `yaml:"contentDir"`
	OutputDir    string   `yaml:"outputDir"`
	MinifyHTML   bool     `yaml:"minifyHTML"`
	DebugHeaders bool     `yaml:"debugHeaders"`
	DebugLogs    bool     `yaml:"debugLogs"`
	LogOutputs   []string `yaml:"logOutputs"`
}

func defaultConfig() *Config {
	return &Config{
		Port:       DefaultPort,
		OutputDir:  DefaultOutputDir,
		LogOutputs: []string{"stdout"},
	}
}

// LoadConfig reads a YAML config file. A missing or malformed file yields
// the defaults.
var LoadConfig = func(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig()
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return defaultConfig()
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if len(cfg.LogOutputs) == 0 {
		cfg.LogOutputs = []string{"stdout"}
	}

	return cfg
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values from XYZ_* environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("XYZ_HOST"); ok {
		c.Host = v
	}
	if v, ok := lookup("XYZ_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid XYZ_PORT %q", v)
		}
		c.Port = port
	}
	if v, ok := lookup("XYZ_CONTENT_DIR"); ok {
		c.ContentDir = v
	}
	if v, ok := lookup("XYZ_DEBUG_LOGS"); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid XYZ_DEBUG_LOGS %q: %w", v, err)
		}
		c.DebugLogs = debug
	}
	return nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
