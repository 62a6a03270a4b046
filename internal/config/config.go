package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	Rules  RulesConfig  `mapstructure:"rules"`
	UI     UIConfig     `mapstructure:"ui"`
}

// InputConfig holds the two source documents
type InputConfig struct {
	FullList   string   `mapstructure:"full_list"`  // Full list (feeds the stowage map)
	Monitoring string   `mapstructure:"monitoring"` // Monitoring report (blocks are reordered)
	Encoding   []string `mapstructure:"encoding"`   // Charset hints for CSV/text exports (e.g., ["utf-8", "euc-kr"])
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir      string   `mapstructure:"dir"`       // Output directory
	FileName string   `mapstructure:"file_name"` // Output file name (without extension)
	Formats  []string `mapstructure:"formats"`   // excel, html, word, json
}

// RulesConfig tunes the structural heuristics
type RulesConfig struct {
	HeaderScanRows   int    `mapstructure:"header_scan_rows"`   // Rows searched for the full-list header
	FallbackScanRows int    `mapstructure:"fallback_scan_rows"` // Leading block rows searched for an empty cell
	PreviewSize      int    `mapstructure:"preview_size"`       // Sorted blocks listed in reports
	AnchorText       string `mapstructure:"anchor_text"`        // Label whose neighbour receives the stowage
}

// UIConfig holds console behaviour
type UIConfig struct {
	PauseOnExit bool `mapstructure:"pause_on_exit"` // Wait for Enter before closing (double-click usage)
	Progress    bool `mapstructure:"progress"`      // Show progress bars
}

var knownFormats = map[string]bool{
	"excel": true, "xlsx": true,
	"html": true,
	"word": true, "docx": true,
	"json": true,
}

// Load reads the configuration from a file or uses defaults
// If configPath is empty, it looks for "config.yaml" in the current directory
// If the file doesn't exist, it uses sensible defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	v.SetEnvPrefix("STOWSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			fmt.Println("==========================================")
			fmt.Println("Config file not found. Using defaults:")
			fmt.Println("  Full list:  ./input/full_list.xlsx")
			fmt.Println("  Monitoring: ./input/monitoring.xlsx")
			fmt.Println("  Output:     ./output")
			fmt.Println("==========================================")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Printf("Loaded config from: %s\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	// Input defaults - ./input next to the binary for double-click usability
	v.SetDefault("input.full_list", "./input/full_list.xlsx")
	v.SetDefault("input.monitoring", "./input/monitoring.xlsx")
	v.SetDefault("input.encoding", []string{"utf-8", "euc-kr", "windows-1252"})

	// Output defaults
	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.file_name", "monitoring-sorted")
	v.SetDefault("output.formats", []string{"excel", "json"})

	// Heuristic defaults
	v.SetDefault("rules.header_scan_rows", 15)
	v.SetDefault("rules.fallback_scan_rows", 8)
	v.SetDefault("rules.preview_size", 10)
	v.SetDefault("rules.anchor_text", "(5) PROBE 3")

	v.SetDefault("ui.pause_on_exit", true)
	v.SetDefault("ui.progress", true)
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	for _, p := range []*string{&c.Input.FullList, &c.Input.Monitoring, &c.Output.Dir} {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("failed to resolve path %q: %w", *p, err)
		}
		*p = abs
	}
	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// GetOutputPath returns the full path for the output Excel file
func (c *Config) GetOutputPath() string {
	return c.OutputPathFor(".xlsx")
}

// OutputPathFor returns the output path with the given extension (".html", ".json", ...)
func (c *Config) OutputPathFor(ext string) string {
	return filepath.Join(c.Output.Dir, c.Output.FileName+ext)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Input.FullList == "" {
		return fmt.Errorf("input.full_list is required")
	}
	if c.Input.Monitoring == "" {
		return fmt.Errorf("input.monitoring is required")
	}
	for _, p := range []string{c.Input.FullList, c.Input.Monitoring} {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", p)
		}
	}

	if c.Output.FileName == "" {
		return fmt.Errorf("output.file_name cannot be empty")
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("output.formats must contain at least one format")
	}
	for _, f := range c.Output.Formats {
		if !knownFormats[strings.ToLower(strings.TrimSpace(f))] {
			return fmt.Errorf("unknown output format: %s", f)
		}
	}

	if c.Rules.HeaderScanRows <= 0 {
		return fmt.Errorf("rules.header_scan_rows must be positive")
	}
	if c.Rules.FallbackScanRows <= 0 {
		return fmt.Errorf("rules.fallback_scan_rows must be positive")
	}
	if c.Rules.PreviewSize <= 0 {
		return fmt.Errorf("rules.preview_size must be positive")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Stowsort Configuration ===")
	fmt.Printf("Full List:        %s\n", c.Input.FullList)
	fmt.Printf("Monitoring:       %s\n", c.Input.Monitoring)
	fmt.Printf("Encoding Hints:   %v\n", c.Input.Encoding)
	fmt.Printf("Header Scan Rows: %d\n", c.Rules.HeaderScanRows)
	fmt.Printf("Fallback Rows:    %d\n", c.Rules.FallbackScanRows)
	fmt.Printf("Anchor Text:      %s\n", c.Rules.AnchorText)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Output File:      %s\n", c.GetOutputPath())
	fmt.Printf("Formats:          %v\n", c.Output.Formats)
	fmt.Println("==============================")
}
