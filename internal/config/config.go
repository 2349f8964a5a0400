package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"quotefetcher/internal/engine"
)

// Config holds all configuration for one fetch run.
type Config struct {
	// Screener endpoint the pages are fetched from
	BaseURL string `mapstructure:"base_url"`

	// Engine selects the concurrency strategy: shard, pool or task
	Engine string `mapstructure:"engine"`

	// PageSize is the number of records requested per page
	PageSize int `mapstructure:"page_size"`

	// OutputDir receives the timestamped CSV file
	OutputDir string `mapstructure:"output_dir"`

	// RequestTimeout bounds each page fetch under the task engine
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// RunTimeout bounds the whole run
	RunTimeout time.Duration `mapstructure:"run_timeout"`
}

// Flags returns the command-line flags recognized by Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("quotefetcher", pflag.ContinueOnError)
	fs.String("engine", "", "concurrency engine: shard, pool or task")
	fs.Int("page-size", 0, "records per page request")
	fs.String("out", "", "output directory for the CSV file")
	return fs
}

// Load reads configuration from flags, environment variables and an
// optional config file, in that order of precedence.
//
// Expected environment variables:
//   - SCREENER_BASE_URL (optional, defaults to production)
//   - FETCH_ENGINE (optional, defaults to pool)
//   - PAGE_SIZE (optional, defaults to 100)
//   - OUTPUT_DIR (optional, defaults to the working directory)
//   - REQUEST_TIMEOUT (optional, defaults to 10s)
//   - RUN_TIMEOUT (optional, defaults to 5m)
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("base_url", "https://query1.finance.yahoo.com/v1/finance/screener")
	v.SetDefault("engine", engine.StrategyPool)
	v.SetDefault("page_size", 100)
	v.SetDefault("output_dir", ".")
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("run_timeout", "5m")

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.quotefetcher")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("base_url", "SCREENER_BASE_URL")
	v.BindEnv("engine", "FETCH_ENGINE")
	v.BindEnv("page_size", "PAGE_SIZE")
	v.BindEnv("output_dir", "OUTPUT_DIR")
	v.BindEnv("request_timeout", "REQUEST_TIMEOUT")
	v.BindEnv("run_timeout", "RUN_TIMEOUT")

	// Bind command-line flags; a changed flag beats everything else
	if flags != nil {
		v.BindPFlag("engine", flags.Lookup("engine"))
		v.BindPFlag("page_size", flags.Lookup("page-size"))
		v.BindPFlag("output_dir", flags.Lookup("out"))
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate
	if config.BaseURL == "" {
		return nil, fmt.Errorf("base_url must not be empty")
	}
	if config.PageSize <= 0 {
		return nil, fmt.Errorf("page_size must be positive, got %d", config.PageSize)
	}
	if !slices.Contains(engine.Strategies(), config.Engine) {
		return nil, fmt.Errorf("unknown engine %q, expected one of %v", config.Engine, engine.Strategies())
	}

	return config, nil
}
