package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Signup attempts partitioned by outcome.",
	}, []string{"outcome"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "unregisters_total",
		Help:      "Unregister attempts partitioned by outcome.",
	}, []string{"outcome"})
	rosterGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "size",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests partitioned by method and status code.",
	}, []string{"method", "status"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rosterGauge, httpRequests)
}

// RecordSignup counts one signup attempt with the given outcome.
func RecordSignup(outcome string) {
	signupCounter.WithLabelValues(outcome).Inc()
}

// RecordUnregister counts one unregister attempt with the given outcome.
func RecordUnregister(outcome string) {
	unregisterCounter.WithLabelValues(outcome).Inc()
}

// RecordRosterSize updates the roster size gauge for an activity. Only
// activities that exist in the directory reach this, so the label set stays
// bounded by the seed catalog.
func RecordRosterSize(activity string, size int) {
	rosterGauge.WithLabelValues(activity).Set(float64(size))
}

// RecordHTTPRequest counts one served request.
func RecordHTTPRequest(method string, status int) {
	httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
