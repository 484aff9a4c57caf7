package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB
)

// BottlerOverride is one configured bottler-name-to-code entry.
// Declaration order in the config file is match order.
type BottlerOverride struct {
	Name string `mapstructure:"name"`
	Code string `mapstructure:"code"`
}

// Config holds all configuration for the report extractor.
type Config struct {
	// Input configuration
	InputDir     string
	WorkbookPath string // derive reports from an existing workbook instead of PDFs

	// Output configuration
	OutputPath string // "" means stdout

	// Application configuration
	LogLevel    string
	MaxFileSize int64

	// Extraction overrides, loaded from the optional config file. Empty
	// means use the built-in defaults.
	FilenameKeywords []string
	BottlerCodes     []BottlerOverride
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		InputDir:    currentDir,
		LogLevel:    DefaultLogLevel,
		MaxFileSize: DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags, the environment and the
// optional config file, and returns a validated configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	if err := readConfigFile(); err != nil {
		return nil, err
	}
	if err := populateConfigFromViper(cfg); err != nil {
		return nil, err
	}

	if cfg.InputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.InputDir); err == nil {
			cfg.InputDir = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("REPORTX")
	viper.AutomaticEnv()

	viper.SetDefault("dir", cfg.InputDir)
	viper.SetDefault("out", cfg.OutputPath)
	viper.SetDefault("workbook", cfg.WorkbookPath)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("dir", cfg.InputDir, "Directory containing draft report PDF files")
	pflag.String("out", cfg.OutputPath, "Output path for the extracted tables (default: stdout)")
	pflag.String("workbook", cfg.WorkbookPath, "Derive report views from an existing extraction workbook instead of PDFs")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
	pflag.String("config", "", "Optional config file overriding filename keywords and bottler codes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("out", pflag.Lookup("out"))
	_ = viper.BindPFlag("workbook", pflag.Lookup("workbook"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("config", pflag.Lookup("config"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nReport Extractor - compiles draft report PDFs into tracker tables\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/reports                 # extract every PDF under a directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/reports --out=out.json  # write the tables to a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --workbook=extraction.xlsx             # derive reports from an existing workbook\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  REPORTX_DIR          Input directory\n")
		fmt.Fprintf(os.Stderr, "  REPORTX_OUT          Output path\n")
		fmt.Fprintf(os.Stderr, "  REPORTX_WORKBOOK     Existing workbook path\n")
		fmt.Fprintf(os.Stderr, "  REPORTX_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  REPORTX_MAXFILESIZE  Maximum file size\n")
	}
}

// readConfigFile loads the optional config file when one was named.
func readConfigFile() error {
	path := viper.GetString("config")
	if path == "" {
		return nil
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) error {
	cfg.InputDir = viper.GetString("dir")
	cfg.OutputPath = viper.GetString("out")
	cfg.WorkbookPath = viper.GetString("workbook")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.FilenameKeywords = viper.GetStringSlice("filename_keywords")
	if err := viper.UnmarshalKey("bottler_codes", &cfg.BottlerCodes); err != nil {
		return fmt.Errorf("parse bottler_codes: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	// workbook mode needs no input directory
	if c.WorkbookPath == "" {
		if c.InputDir == "" {
			return errors.New("input directory cannot be empty")
		}
		info, err := os.Stat(c.InputDir)
		if err != nil {
			return fmt.Errorf("cannot access input directory %s: %w", c.InputDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("input path is not a directory: %s", c.InputDir)
		}
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsWorkbookMode returns true when report views should be derived from
// an existing workbook instead of fresh PDF extraction.
func (c *Config) IsWorkbookMode() bool {
	return c.WorkbookPath != ""
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{InputDir: %s, OutputPath: %s, WorkbookPath: %s, LogLevel: %s, MaxFileSize: %d}",
		c.InputDir, c.OutputPath, c.WorkbookPath, c.LogLevel, c.MaxFileSize)
}
