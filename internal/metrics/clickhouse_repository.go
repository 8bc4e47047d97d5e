package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headers/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headerStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "header_store",
		Name:      "operations_total",
		Help:      "Chain header store operations (batch inserts, tip lookups) by outcome.",
	}, []string{"operation", "coin", "network", "status"})
	headerStoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "header_store",
		Name:      "operation_duration_seconds",
		Help:      "Time spent in a chain header store operation, including sending a full insert batch.",
		// a 2000-header batch is a few hundred KiB
		Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2, 5, 10, 30},
	}, []string{"operation", "coin", "network", "status"})
)

// ClickhouseRepository records the outcome of chain header reads and writes against ClickHouse.
type ClickhouseRepository struct{}

func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records one store operation. Empty coin or network labels become "unknown".
func (m ClickhouseRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	coinLabel, networkLabel := string(coin), string(network)
	if coinLabel == "" {
		coinLabel = "unknown"
	}
	if networkLabel == "" {
		networkLabel = "unknown"
	}

	headerStoreOperationsTotal.WithLabelValues(operation, coinLabel, networkLabel, status).Inc()
	headerStoreOperationDuration.WithLabelValues(operation, coinLabel, networkLabel, status).Observe(time.Since(started).Seconds())
}
