package hype

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/arloliu/hype/report"
	"github.com/arloliu/hype/strategy"
	"gopkg.in/yaml.v3"
)

// ReportConfig controls how results are rendered.
type ReportConfig struct {
	// Format is one of "text", "raw" or "json".
	Format string `yaml:"format"`

	// Raw forces the raw tab-separated format, whatever Format says.
	Raw bool `yaml:"raw"`
}

// NATSConfig controls report publishing to NATS.
//
// Publishing is enabled when URL and at least one of Subject or Bucket are set.
type NATSConfig struct {
	// URL is the NATS server URL (e.g. "nats://127.0.0.1:4222").
	URL string `yaml:"url"`

	// Subject receives every report as a JSON message.
	Subject string `yaml:"subject"`

	// Bucket is the JetStream KV bucket reports are stored in.
	Bucket string `yaml:"bucket"`

	// BucketHistory is the number of revisions kept per key in Bucket.
	BucketHistory int `yaml:"bucketHistory"`

	// Timeout bounds connecting and publishing.
	Timeout time.Duration `yaml:"timeout"`
}

// Enabled reports whether a report destination is configured.
func (n NATSConfig) Enabled() bool {
	return n.URL != "" && (n.Subject != "" || n.Bucket != "")
}

// Config is the configuration for a Partitioner.
//
// Durations accept standard Go duration strings like "5s" in YAML.
type Config struct {
	// Partitions is the number of partitions. Must be positive.
	Partitions int `yaml:"partitions"`

	// Balancing is the allowed relative slack of a partition's node count
	// above the smallest partition before it stops receiving nodes.
	// Must be >= 0; values in [0, 1] are typical. 0 is valid and means
	// strict balance, so SetDefaults leaves it alone.
	Balancing float64 `yaml:"balancing"`

	// Strategy selects the assignment strategy: "minmax", "roundrobin" or
	// "consistenthash".
	Strategy string `yaml:"strategy"`

	// VirtualNodes is the number of ring positions per partition for the
	// consistenthash strategy.
	VirtualNodes int `yaml:"virtualNodes"`

	// HashSeed seeds the consistenthash ring.
	HashSeed uint64 `yaml:"hashSeed"`

	// MetricsConcurrency bounds the per-partition metric tasks running at
	// once. 0 means GOMAXPROCS.
	MetricsConcurrency int `yaml:"metricsConcurrency"`

	// Report controls result rendering.
	Report ReportConfig `yaml:"report"`

	// NATS controls report publishing.
	NATS NATSConfig `yaml:"nats"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Partitions has no sensible default and is left at 0, which Validate rejects.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Balancing:          0.05,
		Strategy:           strategy.NameMinMax,
		VirtualNodes:       150,
		MetricsConcurrency: runtime.GOMAXPROCS(0),
		Report: ReportConfig{
			Format: string(report.FormatText),
		},
		NATS: NATSConfig{
			BucketHistory: 10,
			Timeout:       5 * time.Second,
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Balancing and HashSeed are never touched: 0 is a meaningful value for both.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.VirtualNodes == 0 {
		cfg.VirtualNodes = defaults.VirtualNodes
	}
	if cfg.MetricsConcurrency == 0 {
		cfg.MetricsConcurrency = defaults.MetricsConcurrency
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = defaults.Report.Format
	}
	if cfg.NATS.BucketHistory == 0 {
		cfg.NATS.BucketHistory = defaults.NATS.BucketHistory
	}
	if cfg.NATS.Timeout == 0 {
		cfg.NATS.Timeout = defaults.NATS.Timeout
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - Partitions > 0
//   - Balancing >= 0 and not NaN (a negative factor can leave no eligible partition)
//   - Strategy is a known strategy name
//   - VirtualNodes >= 0, MetricsConcurrency >= 0
//   - Report.Format is a known format
//   - NATS.Timeout >= 0, NATS.BucketHistory in [0, 64]
//   - NATS.URL is set when NATS.Subject or NATS.Bucket is set
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Partitions <= 0 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidConfig, ErrInvalidPartitionCount, cfg.Partitions)
	}

	if err := strategy.ValidateBalancing(cfg.Balancing); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if !strategy.IsKnown(cfg.Strategy) {
		return fmt.Errorf("%w: unknown strategy %q (must be one of: %s)",
			ErrInvalidConfig, cfg.Strategy, strings.Join(strategy.Names(), ", "))
	}

	if cfg.VirtualNodes < 0 {
		return fmt.Errorf("%w: virtualNodes must be >= 0, got %d", ErrInvalidConfig, cfg.VirtualNodes)
	}

	if cfg.MetricsConcurrency < 0 {
		return fmt.Errorf("%w: metricsConcurrency must be >= 0, got %d", ErrInvalidConfig, cfg.MetricsConcurrency)
	}

	if _, err := report.ParseFormat(cfg.Report.Format); err != nil {
		return err
	}

	if cfg.NATS.Timeout < 0 {
		return fmt.Errorf("%w: nats.timeout must be >= 0, got %v", ErrInvalidConfig, cfg.NATS.Timeout)
	}

	if cfg.NATS.BucketHistory < 0 || cfg.NATS.BucketHistory > 64 {
		return fmt.Errorf("%w: nats.bucketHistory must be in [0, 64], got %d", ErrInvalidConfig, cfg.NATS.BucketHistory)
	}

	if cfg.NATS.URL == "" && (cfg.NATS.Subject != "" || cfg.NATS.Bucket != "") {
		return fmt.Errorf("%w: nats.url is required when nats.subject or nats.bucket is set", ErrInvalidConfig)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in NewPartitioner() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Balancing > 1 {
		logger.Warn(
			"balancing factor above 1 allows heavy node imbalance",
			"balancing", cfg.Balancing,
			"recommended", "0.0 - 1.0",
		)
	}

	if cfg.Partitions > 4096 {
		logger.Warn(
			"very large partition count, every element scans all partitions",
			"partitions", cfg.Partitions,
		)
	}

	if !strings.EqualFold(cfg.Strategy, strategy.NameMinMax) && cfg.Balancing != DefaultConfig().Balancing {
		logger.Warn(
			"balancing factor is ignored by this strategy",
			"strategy", cfg.Strategy,
			"balancing", cfg.Balancing,
		)
	}
}

// ReportFormat returns the effective report format, honouring Report.Raw.
func (cfg *Config) ReportFormat() report.Format {
	if cfg.Report.Raw {
		return report.FormatRaw
	}

	f, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return report.FormatText
	}

	return f
}

// TestConfig returns a small configuration for tests.
//
// Returns:
//   - Config: Four partitions, default balancing, two metric workers
//
// Example:
//
//	cfg := hype.TestConfig()
//	cfg.Partitions = 2
//	p, err := hype.NewPartitioner(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Partitions = 4
	cfg.MetricsConcurrency = 2
	cfg.NATS.Timeout = 2 * time.Second

	return cfg
}

// LoadConfig reads a YAML configuration file.
//
// Keys absent from the file keep their DefaultConfig values. Unknown keys
// are rejected so typos do not go unnoticed.
//
// Parameters:
//   - path: YAML file path
//
// Returns:
//   - Config: Loaded configuration (not yet validated)
//   - error: File read error, or ErrInvalidConfig for malformed YAML
//
// Example:
//
//	cfg, err := hype.LoadConfig("hype.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := hype.ApplyEnv(&cfg); err != nil {
//	    return err
//	}
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: parse %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, nil
}

// Environment variables read by ApplyEnv.
const (
	EnvPartitions         = "HYPE_PARTITIONS"
	EnvBalancing          = "HYPE_BALANCING"
	EnvStrategy           = "HYPE_STRATEGY"
	EnvVirtualNodes       = "HYPE_VIRTUAL_NODES"
	EnvHashSeed           = "HYPE_HASH_SEED"
	EnvMetricsConcurrency = "HYPE_METRICS_CONCURRENCY"
	EnvReportFormat       = "HYPE_REPORT_FORMAT"
	EnvReportRaw          = "HYPE_REPORT_RAW"
	EnvNATSURL            = "HYPE_NATS_URL"
	EnvNATSSubject        = "HYPE_NATS_SUBJECT"
	EnvNATSBucket         = "HYPE_NATS_BUCKET"
	EnvNATSTimeout        = "HYPE_NATS_TIMEOUT"
)

// ApplyEnv overrides cfg with the HYPE_* environment variables that are set.
//
// Returns:
//   - error: ErrInvalidConfig naming the first variable that fails to parse
func ApplyEnv(cfg *Config) error {
	var err error

	envInt(EnvPartitions, &cfg.Partitions, &err)
	envFloat(EnvBalancing, &cfg.Balancing, &err)
	envString(EnvStrategy, &cfg.Strategy)
	envInt(EnvVirtualNodes, &cfg.VirtualNodes, &err)
	envUint(EnvHashSeed, &cfg.HashSeed, &err)
	envInt(EnvMetricsConcurrency, &cfg.MetricsConcurrency, &err)
	envString(EnvReportFormat, &cfg.Report.Format)
	envBool(EnvReportRaw, &cfg.Report.Raw, &err)
	envString(EnvNATSURL, &cfg.NATS.URL)
	envString(EnvNATSSubject, &cfg.NATS.Subject)
	envString(EnvNATSBucket, &cfg.NATS.Bucket)
	envDuration(EnvNATSTimeout, &cfg.NATS.Timeout, &err)

	return err
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envInt(key string, dst *int, errp *error) {
	envParse(key, errp, func(v string) error {
		n, err := strconv.Atoi(v)
		if err == nil {
			*dst = n
		}

		return err
	})
}

func envUint(key string, dst *uint64, errp *error) {
	envParse(key, errp, func(v string) error {
		n, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			*dst = n
		}

		return err
	})
}

func envFloat(key string, dst *float64, errp *error) {
	envParse(key, errp, func(v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
			err = errors.New("not a finite number")
		}
		if err == nil {
			*dst = f
		}

		return err
	})
}

func envBool(key string, dst *bool, errp *error) {
	envParse(key, errp, func(v string) error {
		b, err := strconv.ParseBool(v)
		if err == nil {
			*dst = b
		}

		return err
	})
}

func envDuration(key string, dst *time.Duration, errp *error) {
	envParse(key, errp, func(v string) error {
		d, err := time.ParseDuration(v)
		if err == nil {
			*dst = d
		}

		return err
	})
}

// envParse runs parse on the variable's value, keeping only the first error.
func envParse(key string, errp *error, parse func(string) error) {
	v, ok := os.LookupEnv(key)
	if !ok || *errp != nil {
		return
	}

	if err := parse(strings.TrimSpace(v)); err != nil {
		*errp = fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, key, v, err)
	}
}
