// ABOUTME: Centralized configuration for the wordlink analysis
// ABOUTME: Loads an optional YAML base file, then environment overrides, with validation
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for one analysis run
type Config struct {
	// Input tables
	PostsPath        string `yaml:"posts_path"`
	AnswersPath      string `yaml:"answers_path"`
	LexiconPath      string `yaml:"lexicon_path"`
	PostsHasHeader   bool   `yaml:"posts_has_header"`
	AnswersHasHeader bool   `yaml:"answers_has_header"`
	LexiconHasHeader bool   `yaml:"lexicon_has_header"`

	// Policy knobs
	MalformedRows         string   `yaml:"malformed_rows"` // abort, skip
	Granularity           string   `yaml:"granularity"`    // row, cell
	HighContrast          bool     `yaml:"high_contrast"`
	MissingResponseTokens []string `yaml:"missing_response_tokens"`

	// Plot output
	PlotDir    string `yaml:"plot_dir"`
	PlotWidth  int    `yaml:"plot_width"`
	PlotHeight int    `yaml:"plot_height"`
}

// Default returns the built-in defaults
func Default() *Config {
	return &Config{
		PostsPath:        "wordle-tweets.csv",
		AnswersPath:      "wordle-answers.csv",
		LexiconPath:      "SWOW-EN-complete.csv",
		PostsHasHeader:   true,
		AnswersHasHeader: true,
		LexiconHasHeader: true,
		MalformedRows:    "abort",
		Granularity:      "row",
		PlotWidth:        60,
		PlotHeight:       20,
	}
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

// LoadFile reads a YAML file over the defaults, then applies environment overrides
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	c.PostsPath = getEnv("WORDLINK_POSTS", c.PostsPath)
	c.AnswersPath = getEnv("WORDLINK_ANSWERS", c.AnswersPath)
	c.LexiconPath = getEnv("WORDLINK_LEXICON", c.LexiconPath)
	c.PostsHasHeader = getEnvBool("WORDLINK_POSTS_HEADER", c.PostsHasHeader)
	c.AnswersHasHeader = getEnvBool("WORDLINK_ANSWERS_HEADER", c.AnswersHasHeader)
	c.LexiconHasHeader = getEnvBool("WORDLINK_LEXICON_HEADER", c.LexiconHasHeader)
	c.MalformedRows = getEnv("WORDLINK_MALFORMED_ROWS", c.MalformedRows)
	c.Granularity = getEnv("WORDLINK_GRANULARITY", c.Granularity)
	c.HighContrast = getEnvBool("WORDLINK_HIGH_CONTRAST", c.HighContrast)
	c.MissingResponseTokens = getEnvList("WORDLINK_MISSING_TOKENS", c.MissingResponseTokens)
	c.PlotDir = getEnv("WORDLINK_PLOT_DIR", c.PlotDir)
	c.PlotWidth = getEnvInt("WORDLINK_PLOT_WIDTH", c.PlotWidth)
	c.PlotHeight = getEnvInt("WORDLINK_PLOT_HEIGHT", c.PlotHeight)
}

func (c *Config) Validate() error {
	if c.MalformedRows != "abort" && c.MalformedRows != "skip" {
		return fmt.Errorf("WORDLINK_MALFORMED_ROWS must be abort or skip, got %q", c.MalformedRows)
	}
	if c.Granularity != "row" && c.Granularity != "cell" {
		return fmt.Errorf("WORDLINK_GRANULARITY must be row or cell, got %q", c.Granularity)
	}
	if c.PlotWidth < 10 || c.PlotWidth > 400 {
		return fmt.Errorf("WORDLINK_PLOT_WIDTH must be 10-400, got %d", c.PlotWidth)
	}
	if c.PlotHeight < 5 || c.PlotHeight > 200 {
		return fmt.Errorf("WORDLINK_PLOT_HEIGHT must be 5-200, got %d", c.PlotHeight)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
