// Package main is the hype command line partitioner.
//
// It streams a hypergraph file into a fixed number of partitions and prints
// the partition quality scores.
//
// Usage:
//
//	hype -i graph.hgr -p 8 [-b 0.05] [-r]
//
// Settings are layered: defaults, then -config (YAML), then HYPE_*
// environment variables (a .env file is loaded first), then flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/arloliu/hype"
	"github.com/arloliu/hype/internal/logging"
	"github.com/arloliu/hype/internal/metrics"
	"github.com/arloliu/hype/report"
	"github.com/arloliu/hype/source"
	"github.com/arloliu/hype/strategy"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

// stdinPath reads the hypergraph from standard input.
const stdinPath = "-"

type options struct {
	input       string
	partitions  int
	balancing   float64
	raw         bool
	help        bool
	configPath  string
	envFile     string
	strategy    string
	format      string
	metricsFile string
	natsURL     string
	natsSubject string
	natsBucket  string
	logLevel    string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("hype", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&opts.input, "input", "", "input hypergraph file (\"-\" reads stdin)")
	flags.StringVar(&opts.input, "i", "", "shorthand for -input")
	flags.IntVar(&opts.partitions, "partitions", 0, "number of partitions")
	flags.IntVar(&opts.partitions, "p", 0, "shorthand for -partitions")
	flags.Float64Var(&opts.balancing, "balancing", hype.DefaultConfig().Balancing,
		"bound on node imbalance, the smallest partition times (1 + balancing)")
	flags.Float64Var(&opts.balancing, "b", hype.DefaultConfig().Balancing, "shorthand for -balancing")
	flags.BoolVar(&opts.raw, "raw", false, "print one tab-separated line, easy to redirect into files")
	flags.BoolVar(&opts.raw, "r", false, "shorthand for -raw")
	flags.BoolVar(&opts.help, "help", false, "display this help message")
	flags.BoolVar(&opts.help, "h", false, "shorthand for -help")

	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&opts.envFile, "env-file", ".env", "dotenv file with HYPE_* variables (ignored when missing)")
	flags.StringVar(&opts.strategy, "strategy", "", fmt.Sprintf("assignment strategy %v", strategy.Names()))
	flags.StringVar(&opts.format, "format", "", fmt.Sprintf("report format %v", report.Formats()))
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	flags.StringVar(&opts.natsURL, "nats-url", "", "NATS server URL for report publishing")
	flags.StringVar(&opts.natsSubject, "nats-subject", "", "NATS subject receiving the JSON report")
	flags.StringVar(&opts.natsBucket, "nats-bucket", "", "JetStream KV bucket storing the JSON report")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "HYPE - Hypergraph Partitioner using Neighbourhood Heuristics")
		fmt.Fprintln(flags.Output())
		fmt.Fprintln(flags.Output(), "Usage: hype -i <file> -p <partitions> [flags]")
		flags.PrintDefaults()
	}

	return flags
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(&opts, stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitConfig
	}

	cfg, err := loadConfig(flags, &opts)
	if err != nil {
		fmt.Fprintf(stderr, "hype: %v\n", err)
		return exitConfig
	}

	if opts.help || opts.input == "" || cfg.Partitions == 0 {
		flags.SetOutput(stdout)
		flags.Usage()

		return exitOK
	}

	logger := logging.NewSlogText(stderr, opts.logLevel)

	reg := prometheus.NewRegistry()
	p, err := hype.NewPartitioner(&cfg,
		hype.WithLogger(logger),
		hype.WithMetrics(metrics.NewPrometheus(reg, "hype")),
	)
	if err != nil {
		fmt.Fprintf(stderr, "hype: %v\n", err)
		return exitConfig
	}

	format := cfg.ReportFormat()
	if format == report.FormatText {
		if err := report.WriteBanner(stdout, opts.input, cfg.Partitions); err != nil {
			return exitFailure
		}
	}

	code := exitOK
	src, closeSrc, err := openInput(opts.input, stdin)
	if err != nil {
		// the run goes on with zero elements and P empty partitions
		logger.Error("input unavailable, partitioning an empty hypergraph", "input", opts.input, "error", err)
		code = exitFailure
	}
	defer closeSrc()

	res, err := p.Run(ctx, src)
	if err != nil {
		logger.Error("partitioning failed", "input", opts.input, "error", err)
		fmt.Fprintf(stderr, "hype: %v\n", err)

		return exitFailure
	}

	rep := res.Report(opts.input)
	if err := report.Render(stdout, format, rep); err != nil {
		logger.Error("write report failed", "error", err)
		return exitFailure
	}

	if opts.metricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.metricsFile, reg); err != nil {
			logger.Error("write metrics file failed", "path", opts.metricsFile, "error", err)
			code = exitFailure
		}
	}

	if natsCfg := p.Config().NATS; natsCfg.Enabled() {
		if err := publish(ctx, natsCfg, rep, logger); err != nil {
			logger.Error("publish report failed", "error", err)
			code = exitFailure
		}
	}

	return code
}

// loadConfig layers defaults, the config file, the environment and the flags
// that were set explicitly.
func loadConfig(flags *flag.FlagSet, opts *options) (hype.Config, error) {
	if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return hype.Config{}, fmt.Errorf("load %s: %w", opts.envFile, err)
	}

	cfg := hype.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := hype.LoadConfig(opts.configPath)
		if err != nil {
			return hype.Config{}, err
		}
		cfg = loaded
	}

	if err := hype.ApplyEnv(&cfg); err != nil {
		return hype.Config{}, err
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "partitions", "p":
			cfg.Partitions = opts.partitions
		case "balancing", "b":
			cfg.Balancing = opts.balancing
		case "raw", "r":
			cfg.Report.Raw = opts.raw
		case "strategy":
			cfg.Strategy = opts.strategy
		case "format":
			cfg.Report.Format = opts.format
		case "nats-url":
			cfg.NATS.URL = opts.natsURL
		case "nats-subject":
			cfg.NATS.Subject = opts.natsSubject
		case "nats-bucket":
			cfg.NATS.Bucket = opts.natsBucket
		}
	})

	return cfg, nil
}

// openInput returns the element source for path. When the file cannot be
// opened it returns an empty source together with the error.
func openInput(path string, stdin io.Reader) (hype.ElementSource, func(), error) {
	if path == stdinPath {
		return source.NewReader(stdin), func() {}, nil
	}

	rd, err := source.OpenFile(path)
	if err != nil {
		return source.NewStatic(nil), func() {}, err
	}

	return rd, func() { _ = rd.Close() }, nil
}

func publish(ctx context.Context, cfg hype.NATSConfig, rep *report.Report, logger hype.Logger) error {
	nc, err := nats.Connect(cfg.URL, nats.Name("hype"), nats.Timeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("%w: connect %s: %w", hype.ErrPublishFailed, cfg.URL, err)
	}
	defer nc.Close()

	opts := []report.PublisherOption{
		report.WithTimeout(cfg.Timeout),
		report.WithPublisherLogger(logger),
	}
	if cfg.Subject != "" {
		opts = append(opts, report.WithSubject(cfg.Subject))
	}
	if cfg.Bucket != "" {
		opts = append(opts, report.WithBucket(cfg.Bucket, cfg.BucketHistory))
	}

	pub, err := report.NewNATSPublisher(nc, opts...)
	if err != nil {
		return err
	}

	if err := pub.Publish(ctx, rep); err != nil {
		return err
	}
	logger.Info("report published", "subject", cfg.Subject, "bucket", cfg.Bucket)

	return nil
}
