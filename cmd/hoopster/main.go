package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"hoopster/internal/api"
	"hoopster/internal/config"
	"hoopster/internal/euroleague"
	"hoopster/internal/logging"
	"hoopster/internal/metrics"
)

const (
	appVersion = "dev"
	appName    = "hoopster"

	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	competition string
	offset      int
	limit       int
	format      string
	timeout     time.Duration
	metrics     bool
	v1URL       string
	v2URL       string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "%s: config: %v\n", appName, err)
		return exitError
	}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs) }

	var opts options
	fs.StringVar(&opts.competition, "competition", cfg.Euroleague.Competition, "competition code (E or U)")
	fs.IntVar(&opts.offset, "offset", 0, "list offset")
	fs.IntVar(&opts.limit, "limit", 0, "list limit (0 means 500)")
	fs.StringVar(&opts.format, "format", "json", "output format: json or yaml")
	fs.DurationVar(&opts.timeout, "timeout", cfg.Euroleague.HTTPTimeout, "HTTP timeout")
	fs.BoolVar(&opts.metrics, "metrics", cfg.Metrics.Enabled, "print Prometheus metrics to stderr after the command")
	fs.StringVar(&opts.v1URL, "v1-url", cfg.Euroleague.V1URL, "override the v1 API base URL")
	fs.StringVar(&opts.v2URL, "v2-url", cfg.Euroleague.V2URL, "override the v2 API base URL")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if opts.format != "json" && opts.format != "yaml" {
		fmt.Fprintf(stderr, "%s: unknown format %q\n", appName, opts.format)
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
		Output:  stderr,
	})

	tel, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      opts.metrics,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		return exitError
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	userAgent := cfg.Euroleague.UserAgent
	if userAgent == "" {
		userAgent = appName + "/" + appVersion
	}
	apiClient, err := api.NewClient(api.Config{
		BaseURLs:   api.BaseURLs{V1: opts.v1URL, V2: opts.v2URL},
		HTTPClient: &http.Client{Timeout: opts.timeout},
		UserAgent:  userAgent,
		Logger:     logger,
		Recorder:   tel.Recorder,
	})
	if err != nil {
		logging.Error(logger, "api client setup failed", err)
		return exitError
	}

	client := euroleague.New(apiClient, logger)
	result, err := dispatch(ctx, client, opts, fs.Arg(0), fs.Args()[1:])
	if errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		fs.Usage()
		return exitUsage
	}
	if err != nil {
		logging.Error(logger, "command failed", err, "command", fs.Arg(0), logging.FieldCompetition, opts.competition)
		return exitError
	}

	if err := encode(stdout, opts.format, result); err != nil {
		logging.Error(logger, "encode output failed", err)
		return exitError
	}

	if opts.metrics {
		if err := tel.WriteText(stderr); err != nil {
			logging.Warn(logger, "metrics dump failed", "error", err)
		}
	}
	return exitOK
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func encode(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := jsonAPI.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "usage: %s [flags] <command> [args]\n\ncommands:\n", appName)
	for _, c := range commands {
		fmt.Fprintf(out, "  %-32s %s\n", strings.TrimSpace(c.name+" "+strings.Join(c.args, " ")), c.help)
	}
	fmt.Fprintln(out, "\nflags:")
	fs.PrintDefaults()
}

func parseGameCode(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: game code must be a positive integer, got %q", errUsage, raw)
	}
	return n, nil
}
