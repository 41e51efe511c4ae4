// Package metrics holds the Prometheus collectors of the minter and the metadata API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rainbow"

var (
	MintOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mint",
		Name:      "outcomes_total",
		Help:      "Number of mint attempts by outcome kind.",
	}, []string{"kind"})

	MintSubmitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mint",
		Name:      "submit_duration_seconds",
		Help:      "Time from sending a mint transaction until it settles.",
		Buckets:   []float64{1, 2.5, 5, 10, 15, 30, 60, 120, 300},
	})

	MetadataLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "metadata",
		Name:      "lookups_total",
		Help:      "Number of external metadata lookups by source and result.",
	}, []string{"source", "result"})
)

// Result label values.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// ResultLabel returns ResultOK for a nil error, ResultError otherwise.
func ResultLabel(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// NewServer returns an http server exposing `/metrics` on port.
func NewServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	return &http.Server{
		Addr:    ":" + strconv.Itoa(port),
		Handler: mux,
	}
}
