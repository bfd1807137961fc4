package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics counts order lifecycle operations and outbound notifications.
type OrderMetrics struct {
	ordersCreated  prometheus.Counter
	statusUpdates  *prometheus.CounterVec
	ordersReturned prometheus.Counter
	ordersDeleted  prometheus.Counter
	emailsSent     prometheus.Counter
}

// NewOrderMetrics registers the order counters on the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "akcart_orders_created_total",
			Help: "Total number of orders created",
		}),
		statusUpdates: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "akcart_order_status_updates_total",
			Help: "Total number of order status updates by target status",
		}, []string{"status"}),
		ordersReturned: registerCounter(registerer, prometheus.CounterOpts{
			Name: "akcart_orders_returned_total",
			Help: "Total number of orders returned",
		}),
		ordersDeleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "akcart_orders_deleted_total",
			Help: "Total number of orders deleted",
		}),
		emailsSent: registerCounter(registerer, prometheus.CounterOpts{
			Name: "akcart_notification_emails_sent_total",
			Help: "Total number of notification emails sent",
		}),
	}
}

// OrderCreated increments the created-orders counter.
func (m *OrderMetrics) OrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

// StatusUpdated increments the status-update counter for the target status.
func (m *OrderMetrics) StatusUpdated(status string) {
	if m == nil {
		return
	}
	m.statusUpdates.WithLabelValues(status).Inc()
}

// OrderReturned increments the returned-orders counter.
func (m *OrderMetrics) OrderReturned() {
	if m == nil {
		return
	}
	m.ordersReturned.Inc()
}

// OrderDeleted increments the deleted-orders counter.
func (m *OrderMetrics) OrderDeleted() {
	if m == nil {
		return
	}
	m.ordersDeleted.Inc()
}

// EmailSent increments the sent-emails counter.
func (m *OrderMetrics) EmailSent() {
	if m == nil {
		return
	}
	m.emailsSent.Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
	}
	return c
}
