package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Garik-/nibbler/pkg/midi"
)

// NewRegistry returns a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the metrics of reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Recorder turns decoder reports into metrics.
type Recorder struct {
	Messages  *prometheus.CounterVec // labels: kind
	Processed prometheus.Counter
	Rejected  prometheus.Counter
	Desync    prometheus.Counter
	Pending   prometheus.Gauge
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nibbler",
			Name:      "messages_total",
			Help:      "Decoded MIDI messages by kind.",
		}, []string{"kind"}),
		Processed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nibbler",
			Name:      "nibbles_processed_total",
			Help:      "Nibbles consumed into messages.",
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nibbler",
			Name:      "nibbles_rejected_total",
			Help:      "Nibbles skipped as noise.",
		}),
		Desync: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nibbler",
			Name:      "desync_total",
			Help:      "Times the pending buffer limit was exceeded.",
		}),
		Pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nibbler",
			Name:      "buffer_pending",
			Help:      "Nibbles waiting for more input.",
		}),
	}
	reg.MustRegister(r.Messages, r.Processed, r.Rejected, r.Desync, r.Pending)
	return r
}

// Observe records one report and the decoder's pending count after it.
func (r *Recorder) Observe(rep *midi.Report, pending int) {
	for _, k := range rep.Kinds {
		r.Messages.WithLabelValues(k.String()).Inc()
	}
	r.Processed.Add(float64(len(rep.Processed)))
	r.Rejected.Add(float64(len(rep.Rejected)))
	if rep.Desync {
		r.Desync.Inc()
	}
	r.Pending.Set(float64(pending))
}
