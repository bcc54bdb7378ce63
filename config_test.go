package hype

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/arloliu/hype/report"
	hypetest "github.com/arloliu/hype/testing"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 0, cfg.Partitions)
	require.Equal(t, 0.05, cfg.Balancing)
	require.Equal(t, "minmax", cfg.Strategy)
	require.Equal(t, 150, cfg.VirtualNodes)
	require.Equal(t, runtime.GOMAXPROCS(0), cfg.MetricsConcurrency)
	require.Equal(t, "text", cfg.Report.Format)
	require.False(t, cfg.Report.Raw)
	require.Equal(t, 10, cfg.NATS.BucketHistory)
	require.Equal(t, 5*time.Second, cfg.NATS.Timeout)
	require.False(t, cfg.NATS.Enabled())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, "minmax", cfg.Strategy)
		require.Equal(t, 150, cfg.VirtualNodes)
		require.Equal(t, "text", cfg.Report.Format)
		require.Equal(t, 5*time.Second, cfg.NATS.Timeout)
	})

	t.Run("keeps zero balancing", func(t *testing.T) {
		cfg := Config{Balancing: 0}
		SetDefaults(&cfg)

		require.Zero(t, cfg.Balancing)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Partitions:         16,
			Balancing:          0.3,
			Strategy:           "consistenthash",
			VirtualNodes:       300,
			HashSeed:           42,
			MetricsConcurrency: 3,
			Report:             ReportConfig{Format: "json"},
			NATS: NATSConfig{
				URL:           "nats://example:4222",
				Subject:       "reports",
				BucketHistory: 2,
				Timeout:       time.Second,
			},
		}
		want := cfg
		SetDefaults(&cfg)

		require.Equal(t, want, cfg)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr error
	}{
		{name: "test config is valid", mutate: func(*Config) {}},
		{name: "zero balancing is valid", mutate: func(c *Config) { c.Balancing = 0 }},
		{name: "zero partitions", mutate: func(c *Config) { c.Partitions = 0 }, wantErr: ErrInvalidPartitionCount},
		{name: "negative partitions", mutate: func(c *Config) { c.Partitions = -2 }, wantErr: ErrInvalidPartitionCount},
		{name: "negative balancing", mutate: func(c *Config) { c.Balancing = -0.01 }, wantErr: ErrInvalidBalancing},
		{name: "NaN balancing", mutate: func(c *Config) { c.Balancing = math.NaN() }, wantErr: ErrInvalidBalancing},
		{name: "unknown strategy", mutate: func(c *Config) { c.Strategy = "random" }, wantErr: ErrInvalidConfig},
		{name: "negative virtual nodes", mutate: func(c *Config) { c.VirtualNodes = -1 }, wantErr: ErrInvalidConfig},
		{name: "negative concurrency", mutate: func(c *Config) { c.MetricsConcurrency = -1 }, wantErr: ErrInvalidConfig},
		{name: "unknown format", mutate: func(c *Config) { c.Report.Format = "xml" }, wantErr: ErrInvalidConfig},
		{name: "negative timeout", mutate: func(c *Config) { c.NATS.Timeout = -time.Second }, wantErr: ErrInvalidConfig},
		{name: "history too large", mutate: func(c *Config) { c.NATS.BucketHistory = 65 }, wantErr: ErrInvalidConfig},
		{name: "subject without url", mutate: func(c *Config) { c.NATS.Subject = "reports" }, wantErr: ErrInvalidConfig},
		{name: "subject with url", mutate: func(c *Config) {
			c.NATS.URL = "nats://127.0.0.1:4222"
			c.NATS.Subject = "reports"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := TestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("no warnings for test config", func(t *testing.T) {
		logger := hypetest.NewRecordingLogger()
		cfg := TestConfig()
		cfg.ValidateWithWarnings(logger)

		require.Empty(t, logger.Entries())
	})

	t.Run("warns on large balancing and partition count", func(t *testing.T) {
		logger := hypetest.NewRecordingLogger()
		cfg := TestConfig()
		cfg.Balancing = 1.5
		cfg.Partitions = 10_000
		cfg.ValidateWithWarnings(logger)

		require.Len(t, logger.Entries(), 2)
	})

	t.Run("warns when balancing is ignored", func(t *testing.T) {
		logger := hypetest.NewRecordingLogger()
		cfg := TestConfig()
		cfg.Strategy = "roundrobin"
		cfg.Balancing = 0.5
		cfg.ValidateWithWarnings(logger)

		require.Equal(t, 1, logger.Count("WARN", "balancing factor is ignored by this strategy"))
	})
}

func TestConfig_ReportFormat(t *testing.T) {
	cfg := TestConfig()
	require.Equal(t, report.FormatText, cfg.ReportFormat())

	cfg.Report.Format = "json"
	require.Equal(t, report.FormatJSON, cfg.ReportFormat())

	cfg.Report.Raw = true
	require.Equal(t, report.FormatRaw, cfg.ReportFormat())
}

func TestConfig_YAML(t *testing.T) {
	yamlData := `
partitions: 8
balancing: 0.1
strategy: consistenthash
virtualNodes: 200
hashSeed: 7
metricsConcurrency: 4
report:
  format: raw
nats:
  url: nats://127.0.0.1:4222
  subject: hype.reports
  bucket: hype-reports
  timeout: 3s
`

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(yamlData), &cfg))

	require.Equal(t, 8, cfg.Partitions)
	require.Equal(t, 0.1, cfg.Balancing)
	require.Equal(t, "consistenthash", cfg.Strategy)
	require.Equal(t, 200, cfg.VirtualNodes)
	require.Equal(t, uint64(7), cfg.HashSeed)
	require.Equal(t, 4, cfg.MetricsConcurrency)
	require.Equal(t, "raw", cfg.Report.Format)
	require.Equal(t, "hype.reports", cfg.NATS.Subject)
	require.Equal(t, "hype-reports", cfg.NATS.Bucket)
	require.Equal(t, 3*time.Second, cfg.NATS.Timeout)
	require.True(t, cfg.NATS.Enabled())
}

func TestLoadConfig(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "hype.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("missing keys keep defaults", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, "partitions: 4\n"))
		require.NoError(t, err)

		require.Equal(t, 4, cfg.Partitions)
		require.Equal(t, 0.05, cfg.Balancing)
		require.Equal(t, "minmax", cfg.Strategy)
		require.NoError(t, cfg.Validate())
	})

	t.Run("explicit zero balancing", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, "partitions: 4\nbalancing: 0\n"))
		require.NoError(t, err)
		require.Zero(t, cfg.Balancing)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, ""))
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadConfig(write(t, "partitons: 4\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := LoadConfig(write(t, "partitions: many\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides set variables", func(t *testing.T) {
		t.Setenv(EnvPartitions, "12")
		t.Setenv(EnvBalancing, "0.25")
		t.Setenv(EnvStrategy, "roundrobin")
		t.Setenv(EnvVirtualNodes, "64")
		t.Setenv(EnvHashSeed, "99")
		t.Setenv(EnvMetricsConcurrency, "2")
		t.Setenv(EnvReportFormat, "json")
		t.Setenv(EnvReportRaw, "true")
		t.Setenv(EnvNATSURL, "nats://10.0.0.1:4222")
		t.Setenv(EnvNATSSubject, "results")
		t.Setenv(EnvNATSBucket, "results-kv")
		t.Setenv(EnvNATSTimeout, "750ms")

		cfg := DefaultConfig()
		require.NoError(t, ApplyEnv(&cfg))

		require.Equal(t, 12, cfg.Partitions)
		require.Equal(t, 0.25, cfg.Balancing)
		require.Equal(t, "roundrobin", cfg.Strategy)
		require.Equal(t, 64, cfg.VirtualNodes)
		require.Equal(t, uint64(99), cfg.HashSeed)
		require.Equal(t, 2, cfg.MetricsConcurrency)
		require.Equal(t, "json", cfg.Report.Format)
		require.True(t, cfg.Report.Raw)
		require.Equal(t, "nats://10.0.0.1:4222", cfg.NATS.URL)
		require.Equal(t, "results", cfg.NATS.Subject)
		require.Equal(t, "results-kv", cfg.NATS.Bucket)
		require.Equal(t, 750*time.Millisecond, cfg.NATS.Timeout)
	})

	t.Run("leaves unset fields alone", func(t *testing.T) {
		cfg := TestConfig()
		want := cfg
		require.NoError(t, ApplyEnv(&cfg))
		require.Equal(t, want, cfg)
	})

	t.Run("rejects unparsable values", func(t *testing.T) {
		for key, value := range map[string]string{
			EnvPartitions:  "four",
			EnvBalancing:   "NaN",
			EnvHashSeed:    "-1",
			EnvReportRaw:   "maybe",
			EnvNATSTimeout: "soon",
		} {
			t.Run(key, func(t *testing.T) {
				t.Setenv(key, value)

				cfg := DefaultConfig()
				err := ApplyEnv(&cfg)
				require.ErrorIs(t, err, ErrInvalidConfig)
				require.ErrorContains(t, err, key)
			})
		}
	})
}
