package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/blockfile"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/export"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/pkg/fsio"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/service"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Coin          model.Coin    `long:"coin" env:"HEADERS_COIN" description:"coin name" choice:"DOGE" choice:"BTC" default:"DOGE"`
	Network       model.Network `long:"network" env:"HEADERS_NETWORK" description:"network name" default:"mainnet"`
	StartBlock    uint64        `long:"start-block" env:"HEADERS_START_BLOCK" description:"first height to output" default:"0"`
	EndBlock      int64         `long:"end-block" env:"HEADERS_END_BLOCK" description:"last height to output, inclusive; -1 for no limit" default:"-1"`
	Format        string        `long:"format" env:"HEADERS_FORMAT" description:"output format" choice:"hex" choice:"csv" default:"hex"`
	Output        string        `short:"o" long:"output" env:"HEADERS_OUTPUT" description:"output file, - for stdout" default:"-"`
	Workers       int           `long:"workers" env:"HEADERS_WORKERS" description:"number of block files scanned in parallel" default:"4"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"HEADERS_CLICKHOUSE_DSN" description:"also store the chain in ClickHouse"`
	BatchSize     int           `long:"batch-size" env:"HEADERS_BATCH_SIZE" description:"ClickHouse insert batch size" default:"2000"`
	MetricsAddr   string        `long:"metrics-addr" env:"HEADERS_METRICS_ADDR" description:"address for metrics server"`
	Args          struct {
		Files []string `positional-arg-name:"blk-file" description:"blk*.dat files, merged in the given order" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("header extraction failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (err error) {
	profile, err := network.Lookup(cfg.Coin, cfg.Network)
	if err != nil {
		return err
	}
	rng, err := chainRange(cfg.StartBlock, cfg.EndBlock)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	fileSink, err := newFileSink(cfg.Format, out)
	if err != nil {
		return err
	}
	sinks := []service.HeaderSink{fileSink}

	var repo *clickhouse.Repository
	if cfg.ClickhouseDSN != "" {
		repo, err = clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		sinks = append(sinks, export.NewClickhouseSink(repo, profile.Coin, profile.Network, cfg.BatchSize, 0, logger))
	}

	svc := service.NewExtractorService(
		profile,
		fsio.NewObservedReader(metrics.NewFileReader()),
		blockfile.NewScanner(profile, metrics.NewBlockScanner(profile.Coin, profile.Network), logger.Named("scanner")),
		chain.NewReconstructor(logger.Named("chain")),
		metrics.NewExtractor(profile.Coin, profile.Network),
		cfg.Workers,
		logger.Named("extractor"),
	)

	result, err := svc.Run(ctx, cfg.Args.Files, rng, sinks...)
	if err != nil {
		return err
	}
	logger.Info("written chain headers",
		zap.Int("headers", len(result.Headers)),
		zap.String("format", cfg.Format),
		zap.String("output", cfg.Output))

	if repo != nil {
		height, exists, err := repo.MaxHeaderHeight(ctx, profile.Coin, profile.Network)
		if err != nil {
			return fmt.Errorf("read stored chain tip: %w", err)
		}
		if exists {
			logger.Info("stored chain tip", zap.Uint64("height", height))
		}
	}
	return nil
}

// chainRange maps the command line bounds to a chain.Range; a negative end means unbounded.
func chainRange(start uint64, end int64) (chain.Range, error) {
	if end < 0 {
		return chain.From(start), nil
	}
	if uint64(end) < start {
		return chain.Range{}, fmt.Errorf("end block %d is below start block %d", end, start)
	}
	return chain.Between(start, uint64(end)), nil
}

func newFileSink(format string, w io.Writer) (service.HeaderSink, error) {
	switch format {
	case "hex":
		return export.NewHexWriter(w), nil
	case "csv":
		return export.NewCSVWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// openOutput returns the writer for path and a func that closes it. Closing stdout is a no-op.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, func() error {
		if err := f.Close(); err != nil {
			return fmt.Errorf("close output file: %w", err)
		}
		return nil
	}, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
