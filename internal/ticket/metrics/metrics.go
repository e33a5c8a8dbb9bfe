package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the ticket domain.
type Metrics struct {
	TicketsCreated prometheus.Counter
	TicketsSold    prometheus.Counter
	PremiumClones  prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		TicketsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ticketd_tickets_created_total",
			Help: "Total number of tickets created",
		}),
		TicketsSold: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ticketd_tickets_sold_total",
			Help: "Total number of completed ticket sales",
		}),
		PremiumClones: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ticketd_premium_clones_total",
			Help: "Total number of premium clones created",
		}),
	}
}

func (m *Metrics) IncrementTicketsCreated() { m.TicketsCreated.Inc() }

func (m *Metrics) IncrementTicketsSold() { m.TicketsSold.Inc() }

func (m *Metrics) IncrementPremiumClones() { m.PremiumClones.Inc() }
