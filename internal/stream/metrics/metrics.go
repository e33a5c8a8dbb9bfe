package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the change stream.
type Metrics struct {
	ActiveSubscribers prometheus.Gauge
	EventsBroadcast   prometheus.Counter
	DroppedSubs       prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ActiveSubscribers: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ticketd_stream_subscribers",
			Help: "Number of currently attached change-stream subscribers",
		}),
		EventsBroadcast: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ticketd_stream_events_broadcast_total",
			Help: "Total change events fanned out to subscribers",
		}),
		DroppedSubs: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ticketd_stream_subscribers_dropped_total",
			Help: "Subscribers detached because a send failed",
		}),
	}
}

func (m *Metrics) SubscriberAttached() { m.ActiveSubscribers.Inc() }

func (m *Metrics) SubscriberDetached() { m.ActiveSubscribers.Dec() }

func (m *Metrics) EventBroadcast() { m.EventsBroadcast.Inc() }

func (m *Metrics) SubscriberDropped() { m.DroppedSubs.Inc() }
