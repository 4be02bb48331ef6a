package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/stackrank/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 2
	DefaultInputPath   = "data/sales_pipeline.csv"
	DefaultSynthRows   = 100
)

// Config holds the runtime configuration for an analysis run.
// This struct is the "final, validated" config; all parsing of raw flag and
// config-file values happens in ProcessAndValidate.
type Config struct {
	InputPath string // Path to the opportunity CSV (set by positional arg)

	// Filters applied to the cleaned dataset before derivation. The whole
	// pipeline recomputes per filter change; nothing is updated incrementally.
	Regions   []string  // Region allowlist; empty means all regions
	StartDate time.Time // CreatedDate lower bound (inclusive); zero = unbounded
	EndDate   time.Time // CreatedDate upper bound (inclusive); zero = unbounded

	AsOf time.Time // Reference "now" for the QTD quarter window

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	NoCache        bool

	SynthRows int   // Row count for the synthetic generator
	SynthSeed int64 // Seed for the synthetic generator (0 = time-based)

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Region         string `mapstructure:"region"`
	Start          string `mapstructure:"start"`
	End            string `mapstructure:"end"`
	AsOf           string `mapstructure:"as-of"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	NoCache        bool   `mapstructure:"no-cache"`
	Color          string `mapstructure:"color"`

	// --- Fields from generateCmd.Flags() ---
	Rows int   `mapstructure:"rows"`
	Seed int64 `mapstructure:"seed"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be between 0 and 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	switch cfg.Output {
	case schema.TextOut, schema.CSVOut, schema.JSONOut, schema.ParquetOut:
	default:
		return fmt.Errorf("invalid output format %q. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	// --- 3. Date Parsing ---
	cfg.AsOf = time.Now()
	if input.AsOf != "" {
		t, err := time.Parse(schema.DateFormat, input.AsOf)
		if err != nil {
			return fmt.Errorf("invalid as-of date %q. must be YYYY-MM-DD: %w", input.AsOf, err)
		}
		cfg.AsOf = t
	}
	if input.Start != "" {
		t, err := time.Parse(schema.DateFormat, input.Start)
		if err != nil {
			return fmt.Errorf("invalid start date %q. must be YYYY-MM-DD: %w", input.Start, err)
		}
		cfg.StartDate = t
	}
	if input.End != "" {
		t, err := time.Parse(schema.DateFormat, input.End)
		if err != nil {
			return fmt.Errorf("invalid end date %q. must be YYYY-MM-DD: %w", input.End, err)
		}
		cfg.EndDate = t
	}
	if !cfg.StartDate.IsZero() && !cfg.EndDate.IsZero() && cfg.StartDate.After(cfg.EndDate) {
		return fmt.Errorf("start date (%s) cannot be after end date (%s)",
			cfg.StartDate.Format(schema.DateFormat), cfg.EndDate.Format(schema.DateFormat))
	}

	// --- 4. Region Filter Processing ---
	cfg.Regions = nil
	if input.Region != "" {
		for p := range strings.SplitSeq(input.Region, ",") {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Regions = append(cfg.Regions, trimmedP)
			}
		}
	}

	// --- 5. Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	switch cfg.CacheBackend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend, schema.NoneBackend:
	default:
		return fmt.Errorf("invalid cache backend %q. must be sqlite, mysql, postgres, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	cfg.NoCache = input.NoCache

	// --- 6. Synthetic Generator Inputs ---
	if input.Rows < 0 {
		return fmt.Errorf("rows cannot be negative (received %d)", input.Rows)
	}
	cfg.SynthRows = input.Rows
	if cfg.SynthRows == 0 {
		cfg.SynthRows = DefaultSynthRows
	}
	cfg.SynthSeed = input.Seed

	// --- 7. Color Handling ---
	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value %q: %w", input.Color, err)
	}
	cfg.UseColors = useColors

	// --- 8. Input Path Resolution ---
	cfg.InputPath = input.InputPathStr
	if cfg.InputPath == "" {
		cfg.InputPath = DefaultInputPath
	}

	return nil
}

// WantsRegion reports whether a record's region passes the region filter.
// Matching is case-insensitive like the rest of the cleaning layer.
func (c *Config) WantsRegion(region string) bool {
	if len(c.Regions) == 0 {
		return true
	}
	for _, r := range c.Regions {
		if strings.EqualFold(r, region) {
			return true
		}
	}
	return false
}

// WantsCreatedDate reports whether a record's CreatedDate passes the
// configured date-range filter.
func (c *Config) WantsCreatedDate(created time.Time) bool {
	if !c.StartDate.IsZero() && created.Before(c.StartDate) {
		return false
	}
	if !c.EndDate.IsZero() && created.After(c.EndDate) {
		return false
	}
	return true
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Regions != nil {
		clone.Regions = make([]string, len(c.Regions))
		copy(clone.Regions, c.Regions)
	}
	return &clone
}
