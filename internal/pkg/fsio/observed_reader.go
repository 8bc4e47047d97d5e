// Package fsio reads block files from disk and reports every read to a metrics collector.
package fsio

import (
	"context"
	"fmt"
	"os"
	"time"
)

type (
	ReaderMetrics interface {
		Observe(operation string, bytes int, err error, started time.Time)
	}
)

type ObservedReader struct {
	metrics ReaderMetrics
}

func NewObservedReader(metrics ReaderMetrics) *ObservedReader {
	return &ObservedReader{
		metrics: metrics,
	}
}

// ReadFile loads the whole file at path into memory.
func (r *ObservedReader) ReadFile(ctx context.Context, path string) (data []byte, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("read_file", len(data), err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read block file %s: %w", path, err)
	}
	return data, nil
}
