// Package metrics records backend call outcomes and authorization gate
// decisions. Prometheus collectors are always on; CloudWatch publishing is
// optional.
// file: metrics/metrics.go
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// outcomes of a backend call
const (
	OutcomeOK          = "ok"
	OutcomeRejected    = "rejected"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
)

var (
	// Registry holds every portal collector.
	Registry = prometheus.NewRegistry()

	backendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_portal",
		Name:      "backend_requests_total",
		Help:      "Backend API calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	backendLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "event_portal",
		Name:      "backend_request_duration_seconds",
		Help:      "Backend API call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	gateDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "event_portal",
		Name:      "gate_decisions_total",
		Help:      "Authorization gate verdicts.",
	}, []string{"gate", "verdict"})

	publishDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "event_portal",
		Name:      "publish_dropped_total",
		Help:      "Backend observations dropped because the publish queue was full.",
	})
)

// publishQueueSize bounds the observations waiting for the publisher.
const publishQueueSize = 64

type observation struct {
	operation string
	outcome   string
	elapsed   time.Duration
}

var (
	publisherMu sync.RWMutex
	queue       chan observation
	workerDone  chan struct{}
)

func init() {
	Registry.MustRegister(backendRequests, backendLatency, gateDecisions, publishDropped)
}

// Handler serves the Prometheus exposition of Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// SetPublisher installs (or with nil, removes) the external publisher.
// A single worker drains a bounded queue into p. Replacing the publisher
// waits for the previous worker to flush what it already queued.
func SetPublisher(p Publisher) {
	publisherMu.Lock()
	defer publisherMu.Unlock()

	if queue != nil {
		close(queue)
		<-workerDone
		queue, workerDone = nil, nil
	}
	if p == nil {
		return
	}

	queue = make(chan observation, publishQueueSize)
	workerDone = make(chan struct{})
	go publish(p, queue, workerDone)
}

func publish(p Publisher, in <-chan observation, done chan<- struct{}) {
	defer close(done)
	for o := range in {
		p.PublishBackendCall(o.operation, o.outcome, o.elapsed)
	}
}

// ObserveBackendCall records one backend API call.
func ObserveBackendCall(operation, outcome string, elapsed time.Duration) {
	backendRequests.WithLabelValues(operation, outcome).Inc()
	backendLatency.WithLabelValues(operation).Observe(elapsed.Seconds())

	publisherMu.RLock()
	defer publisherMu.RUnlock()
	if queue == nil {
		return
	}
	select {
	case queue <- observation{operation: operation, outcome: outcome, elapsed: elapsed}:
	default:
		publishDropped.Inc()
	}
}

// RecordGate records one authorization verdict.
func RecordGate(gate, verdict string) {
	gateDecisions.WithLabelValues(gate, verdict).Inc()
}
