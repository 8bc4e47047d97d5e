package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fileReaderOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "file_reader",
		Name:      "operations_total",
		Help:      "Count of block file read operations.",
	}, []string{"operation", "status"})
	fileReaderOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "file_reader",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block file read operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	fileReaderBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "file_reader",
		Name:      "bytes_total",
		Help:      "Count of bytes read from block files.",
	}, []string{"operation"})
)

// FileReader tracks metrics for block file reads.
type FileReader struct{}

// NewFileReader constructs a metrics collector for file reads.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// Observe records a single read outcome, its size and duration.
func (m FileReader) Observe(operation string, bytes int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	fileReaderOperationsTotal.WithLabelValues(operation, status).Inc()
	fileReaderOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
	fileReaderBytesTotal.WithLabelValues(operation).Add(float64(bytes))
}
