package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ViewCounter/internal/title"
)

const (
	configPathEnv = "VIEWCOUNTER_CONFIG"
	inputEnv      = "VIEWCOUNTER_INPUT"
	outputEnv     = "VIEWCOUNTER_OUTPUT"
	userAgentEnv  = "VIEWCOUNTER_USER_AGENT"
	logLevelEnv   = "LOG_LEVEL"
	logFileEnv    = "LOG_FILE"

	// SeparatorSemicolon and SeparatorComma are the accepted csv.separator values.
	SeparatorSemicolon = "semicolon"
	SeparatorComma     = "comma"
)

// Config holds every setting of a run. It is built once and passed by value.
type Config struct {
	Input     string        `yaml:"input"`
	Output    string        `yaml:"output"`
	Extractor string        `yaml:"extractor"`
	CSV       CSVConfig     `yaml:"csv"`
	Titles    TitleConfig   `yaml:"titles"`
	Fetcher   FetcherConfig `yaml:"fetcher"`
	Logging   LoggingConfig `yaml:"logging"`
}

// CSVConfig selects the report layout.
type CSVConfig struct {
	Separator   string `yaml:"separator"`
	AddURL      bool   `yaml:"addUrl"`
	WithDate    bool   `yaml:"withDate"`
	SkipTotals  bool   `yaml:"skipTotals"`
	PrintTotals bool   `yaml:"printTotals"`
}

// Delimiter resolves the separator name to the field delimiter.
func (c CSVConfig) Delimiter() (string, error) {
	switch strings.ToLower(strings.TrimSpace(c.Separator)) {
	case "", SeparatorSemicolon, ";":
		return ";", nil
	case SeparatorComma, ",":
		return ",", nil
	default:
		return "", fmt.Errorf("unknown csv separator %q", c.Separator)
	}
}

// TitleConfig controls speaker/title decomposition.
type TitleConfig struct {
	Mode      string            `yaml:"mode"`
	NameFixes map[string]string `yaml:"nameFixes"`
}

// ParsedMode resolves the configured mode.
func (t TitleConfig) ParsedMode() (title.Mode, error) {
	return title.ParseMode(t.Mode)
}

// FetcherConfig tunes page downloads.
type FetcherConfig struct {
	UserAgent   string        `yaml:"userAgent"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxBodySize int           `yaml:"maxBodySize"`
}

// LoggingConfig selects log level and an optional rotated log file.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads the YAML file at path (or the one named by VIEWCOUNTER_CONFIG) over the
// defaults, then applies .env and environment overrides. A missing path is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Input) == "" {
		errs = append(errs, errors.New("input path is empty"))
	}
	if strings.TrimSpace(c.Output) == "" {
		errs = append(errs, errors.New("output path is empty"))
	}
	if strings.TrimSpace(c.Extractor) == "" {
		errs = append(errs, errors.New("extractor is empty"))
	}
	if _, err := c.CSV.Delimiter(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Titles.ParsedMode(); err != nil {
		errs = append(errs, err)
	}
	if c.Fetcher.Timeout < 0 {
		errs = append(errs, fmt.Errorf("negative fetcher timeout %s", c.Fetcher.Timeout))
	}
	return errors.Join(errs...)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(inputEnv); v != "" {
		c.Input = v
	}

	if v := os.Getenv(outputEnv); v != "" {
		c.Output = v
	}

	if v := os.Getenv(userAgentEnv); v != "" {
		c.Fetcher.UserAgent = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(logFileEnv); v != "" {
		c.Logging.File = v
	}
}

func defaultConfig() Config {
	return Config{
		Input:     "videos.txt",
		Output:    "viewcount.csv",
		Extractor: "youtube",
		CSV:       CSVConfig{Separator: SeparatorSemicolon},
		Titles: TitleConfig{
			Mode:      "off",
			NameFixes: title.DefaultNameFixes(),
		},
		Fetcher: FetcherConfig{
			Timeout:     30 * time.Second,
			MaxBodySize: 10 * 1024 * 1024,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
