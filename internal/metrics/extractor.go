package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	extractorLoadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "extractor",
		Name:      "load_total",
		Help:      "Count of attempts to load and merge a set of block files.",
	}, []string{"coin", "network", "status"})

	extractorLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "extractor",
		Name:      "load_duration_seconds",
		Help:      "Duration of loading and merging block files.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"coin", "network", "status"})

	extractorLoadFiles = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "extractor",
		Name:      "load_files",
		Help:      "Number of block files per load.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"coin", "network"})

	extractorChainTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "extractor",
		Name:      "chain_total",
		Help:      "Count of chain reconstructions.",
	}, []string{"coin", "network", "status"})

	extractorChainLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "extractor",
		Name:      "chain_length",
		Help:      "Number of headers in the last reconstructed chain.",
	}, []string{"coin", "network"})

	extractorChainGapsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "extractor",
		Name:      "chain_gaps_total",
		Help:      "Count of reconstructions that ended before the requested range.",
	}, []string{"coin", "network"})
)

// Extractor tracks metrics for the header extraction pipeline.
type Extractor struct {
	coin    model.Coin
	network model.Network
}

// NewExtractor constructs an Extractor with sane defaults.
func NewExtractor(coin model.Coin, network model.Network) *Extractor {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Extractor{coin: coin, network: network}
}

// ObserveLoad records loading and merging of a set of block files.
func (m Extractor) ObserveLoad(files int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	extractorLoadTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	extractorLoadDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	extractorLoadFiles.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(files))
}

// ObserveChain records a chain reconstruction.
func (m Extractor) ObserveChain(length int, gap bool, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	extractorChainTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	if err != nil {
		return
	}
	extractorChainLength.WithLabelValues(string(m.coin), string(m.network)).Set(float64(length))
	if gap {
		extractorChainGapsTotal.WithLabelValues(string(m.coin), string(m.network)).Inc()
	}
}
