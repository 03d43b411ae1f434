package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StateLookupSeconds times device state lookups during window persistence.
var StateLookupSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "device_state_lookup_seconds",
	Help: "Time taken to look up device state for an assignment.",
}, []string{"group"})

// StateMergeSeconds times device state merges during window persistence.
var StateMergeSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "device_state_merge_seconds",
	Help: "Time taken to merge window events into device state.",
}, []string{"group"})

// WindowEventsProcessed counts envelopes folded into window accumulators.
var WindowEventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "window_events_processed_total",
	Help: "Number of telemetry events folded into window accumulators.",
}, []string{"group"})
