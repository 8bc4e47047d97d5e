// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/blockfile"
	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "files_total",
		Help:      "Count of scanned block files.",
	}, []string{"coin", "network", "status"})

	scannerScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of scanning a single block file.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	scannerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "blocks_total",
		Help:      "Count of block records decoded from block files.",
	}, []string{"coin", "network"})

	scannerAuxPowBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "auxpow_blocks_total",
		Help:      "Count of merge-mined block records carrying an auxpow.",
	}, []string{"coin", "network"})

	scannerBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "bytes_total",
		Help:      "Count of bytes scanned.",
	}, []string{"coin", "network"})

	scannerTruncatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "truncated_files_total",
		Help:      "Count of block files ending in a partial record.",
	}, []string{"coin", "network"})
)

// BlockScanner tracks metrics for block file scans.
type BlockScanner struct {
	coin    model.Coin
	network model.Network
}

// NewBlockScanner constructs a BlockScanner with sane defaults.
func NewBlockScanner(coin model.Coin, network model.Network) *BlockScanner {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &BlockScanner{coin: coin, network: network}
}

// ObserveScan records the outcome of scanning one file.
func (m BlockScanner) ObserveScan(stats blockfile.ScanStats, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scannerFilesTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	scannerScanDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())

	scannerBlocksTotal.WithLabelValues(string(m.coin), string(m.network)).Add(float64(stats.Blocks))
	scannerAuxPowBlocksTotal.WithLabelValues(string(m.coin), string(m.network)).Add(float64(stats.AuxPowBlocks))
	scannerBytesTotal.WithLabelValues(string(m.coin), string(m.network)).Add(float64(stats.Bytes))
	if stats.Truncated {
		scannerTruncatedTotal.WithLabelValues(string(m.coin), string(m.network)).Inc()
	}
}
