package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/prospect/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 50
	MaxResultLimit     = 100
	TrendResultLimit   = 30
	MaxTreeDirectories = 2000
)

// DefaultWorkers is the default number of concurrent remote calls in flight.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for a prospect invocation.
// This struct remains the "final, validated" config.
type Config struct {
	Token       string
	ResultLimit int
	Workers     int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)
	UseEmojis   bool
	UseColors   bool

	// Discovery criteria
	Industry   string
	Technology string
	Location   string
	Company    string
	MinStars   int

	// Trending parameters
	Language string
	Window   schema.TrendWindow

	// Tree listing parameters
	TreePath   string
	Ref        string
	Extensions []string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Token      string `mapstructure:"token"`
	Limit      int    `mapstructure:"limit"`
	Workers    int    `mapstructure:"workers"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Emoji      string `mapstructure:"emoji"`
	Color      string `mapstructure:"color"`

	// --- Fields from discoverCmd.Flags() ---
	Industry   string `mapstructure:"industry"`
	Technology string `mapstructure:"technology"`
	Location   string `mapstructure:"location"`
	Company    string `mapstructure:"company"`
	MinStars   int    `mapstructure:"min-stars"`

	// --- Fields from trendingCmd.Flags() ---
	Language string `mapstructure:"language"`
	Window   string `mapstructure:"window"`

	// --- Fields from filesCmd.Flags() ---
	TreePath string `mapstructure:"path"`
	Ref      string `mapstructure:"ref"`
	Ext      string `mapstructure:"ext"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Extensions != nil {
		clone.Extensions = make([]string, len(c.Extensions))
		copy(clone.Extensions, c.Extensions)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Token = input.Token
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Industry = strings.TrimSpace(input.Industry)
	cfg.Technology = strings.TrimSpace(input.Technology)
	cfg.Location = strings.TrimSpace(input.Location)
	cfg.Company = strings.TrimSpace(input.Company)
	cfg.Language = strings.TrimSpace(input.Language)
	cfg.TreePath = strings.TrimSpace(input.TreePath)
	cfg.Ref = strings.TrimSpace(input.Ref)

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 4. MinStars Validation ---
	if input.MinStars < 0 {
		return fmt.Errorf("min-stars cannot be negative (received %d)", input.MinStars)
	}
	cfg.MinStars = input.MinStars

	// --- 5. Window Normalization ---
	// Unrecognized window keywords degrade to weekly at query time, so no
	// validation error here.
	cfg.Window = schema.TrendWindow(strings.ToLower(strings.TrimSpace(input.Window)))

	// --- 6. Extensions Processing ---
	cfg.Extensions = ParseExtensions(input.Ext)

	return nil
}

// ParseExtensions splits a comma-separated list of extensions, lower-cases
// each item and guarantees the leading dot.
func ParseExtensions(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var exts []string
	for part := range strings.SplitSeq(raw, ",") {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		exts = append(exts, trimmed)
	}
	return exts
}
