package export

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headers/pkg/batcher"
	"go.uber.org/zap"
)

const (
	headerBatchSize     = 2000
	headerFlushInterval = 10 * time.Second
	headerFlushAttempts = 3
	headerRetryDelay    = time.Second
)

// ClickhouseSink stores a reconstructed chain through a HeaderRepository in batches.
type ClickhouseSink struct {
	repo    HeaderRepository
	coin    model.Coin
	network model.Network
	logger  *zap.Logger
	size    int
	rps     int
	opts    []batcher.Option
}

// NewClickhouseSink builds a sink flushing batchSize headers at a time, at most rps batches per
// second. A non-positive batchSize falls back to the default.
func NewClickhouseSink(
	repo HeaderRepository,
	coin model.Coin,
	network model.Network,
	batchSize int,
	rps int,
	logger *zap.Logger,
) *ClickhouseSink {
	if batchSize <= 0 {
		batchSize = headerBatchSize
	}
	return &ClickhouseSink{
		repo:    repo,
		coin:    coin,
		network: network,
		logger:  logger,
		size:    batchSize,
		rps:     rps,
		opts:    []batcher.Option{batcher.WithRetry(headerFlushAttempts, headerRetryDelay)},
	}
}

// WriteHeaders queues every header and returns once all batches are flushed.
func (s *ClickhouseSink) WriteHeaders(ctx context.Context, headers []model.ChainHeader) error {
	b := batcher.New[model.ChainHeader](
		s.logger.Named("headerBatcher"),
		func(ctx context.Context, batch []model.ChainHeader) error {
			return s.repo.InsertHeaders(ctx, s.coin, s.network, batch)
		},
		s.size,
		headerFlushInterval,
		s.rps,
		s.opts...,
	)
	b.Start(ctx)

	for _, h := range headers {
		if err := b.Add(ctx, h); err != nil {
			_ = b.Stop()
			return err
		}
	}
	if err := b.Stop(); err != nil {
		return err
	}
	s.logger.Info("stored chain headers", zap.Int("headers", len(headers)))
	return nil
}
