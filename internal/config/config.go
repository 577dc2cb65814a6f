package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Parser      ParserConfig      `yaml:"parser"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model" env:"GEMINI_MODEL" env-upd:""`
	APIKeys []string `yaml:"api_keys" env:"GEMINI_API_KEYS" env-upd:"" env-separator:","`
}

type PathsConfig struct {
	Input    string `yaml:"input" env:"DIGEST_INPUT_DIR" env-upd:""`
	Output   string `yaml:"output" env:"DIGEST_OUTPUT_DIR" env-upd:""`
	Archived string `yaml:"archived"`
}

type ParserConfig struct {
	// AttributeContinuations assigns unlabelled cues to the previous speaker.
	AttributeContinuations bool `yaml:"attribute_continuations"`
}

type OutputConfig struct {
	Docx           bool `yaml:"docx"`
	TranscriptDocx bool `yaml:"transcript_docx"`
	ArchiveSource  bool `yaml:"archive_source"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"DIGEST_LOG_LEVEL" env-upd:""`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the YAML file at path, applies environment overrides, then
// validates and fills defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cleanenv.UpdateEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Default returns a validated configuration used when no file exists.
// Environment overrides still apply.
func Default() (*Config, error) {
	var cfg Config
	if err := cleanenv.UpdateEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}
	if c.Output.ArchiveSource && c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}
