// Package service wires block file scanning, chain reconstruction and header output together.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/chain"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-headers/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultWorkerCount = 4

// ExtractorService turns a set of block files into the best chain of headers for one network.
type ExtractorService struct {
	reader        FileReader
	scanner       BlockScanner
	reconstructor ChainReconstructor
	metrics       ExtractorMetrics
	genesis       chainhash.Hash
	workerCount   int
	logger        *zap.Logger
}

// NewExtractorService builds the extractor for profile. A non-positive workerCount falls back to
// the default.
func NewExtractorService(
	profile network.Profile,
	reader FileReader,
	scanner BlockScanner,
	reconstructor ChainReconstructor,
	metrics ExtractorMetrics,
	workerCount int,
	logger *zap.Logger,
) *ExtractorService {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &ExtractorService{
		reader:        reader,
		scanner:       scanner,
		reconstructor: reconstructor,
		metrics:       metrics,
		genesis:       profile.Genesis,
		workerCount:   workerCount,
		logger: logger.With(
			zap.String("coin", string(profile.Coin)),
			zap.String("network", string(profile.Network)),
		),
	}
}

// Load reads and scans paths concurrently, then merges the per-file graphs in the order of
// paths so a later file overwrites an earlier one for the same block hash.
func (s *ExtractorService) Load(ctx context.Context, paths []string) (graph *chain.Graph, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveLoad(len(paths), err, started)
	}()

	graphs, err := workerpool.Map(ctx, s.workerCount, paths, s.scanFile)
	if err != nil {
		return nil, err
	}

	graph = chain.NewGraph()
	for _, g := range graphs {
		graph.Merge(g)
	}
	s.logger.Info("loaded block files",
		zap.Int("files", len(paths)),
		zap.Int("headers", graph.Len()),
		zap.Duration("took", time.Since(started)))
	return graph, nil
}

func (s *ExtractorService) scanFile(ctx context.Context, path string) (*chain.Graph, error) {
	data, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	g, stats, err := s.scanner.Scan(path, data)
	if err != nil {
		return nil, err
	}
	s.logger.Info("scanned block file",
		zap.String("path", path),
		zap.Int("blocks", stats.Blocks),
		zap.Int("auxpow_blocks", stats.AuxPowBlocks),
		zap.Bool("truncated", stats.Truncated))
	return g, nil
}

// Extract loads paths and walks the merged graph from the genesis block, keeping the heights in rng.
func (s *ExtractorService) Extract(ctx context.Context, paths []string, rng chain.Range) (chain.Result, error) {
	graph, err := s.Load(ctx, paths)
	if err != nil {
		return chain.Result{}, err
	}

	result, err := s.reconstructor.Reconstruct(graph, s.genesis, rng)
	s.metrics.ObserveChain(len(result.Headers), result.Gap != nil, err)
	if err != nil {
		return chain.Result{}, fmt.Errorf("reconstruct chain: %w", err)
	}

	fields := []zap.Field{zap.Int("headers", len(result.Headers))}
	if n := len(result.Headers); n > 0 {
		fields = append(fields,
			zap.Uint64("first_height", result.Headers[0].Height),
			zap.Uint64("last_height", result.Headers[n-1].Height))
	}
	s.logger.Info("reconstructed chain", fields...)
	return result, nil
}

// Run extracts the chain and hands the headers to every sink in turn. Nothing is written when
// loading or reconstruction fails.
func (s *ExtractorService) Run(ctx context.Context, paths []string, rng chain.Range, sinks ...HeaderSink) (chain.Result, error) {
	result, err := s.Extract(ctx, paths, rng)
	if err != nil {
		return chain.Result{}, err
	}

	for _, sink := range sinks {
		if err := sink.WriteHeaders(ctx, result.Headers); err != nil {
			return result, fmt.Errorf("write headers: %w", err)
		}
	}
	return result, nil
}
