package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestOrderMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newOrderMetricsWithRegisterer(registry)

	m.OrderCreated()
	m.OrderCreated()
	m.StatusUpdated("Shipped")
	m.StatusUpdated("Delivered")
	m.StatusUpdated("Delivered")
	m.OrderReturned()
	m.OrderDeleted()
	m.EmailSent()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordersCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.statusUpdates.WithLabelValues("Shipped")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.statusUpdates.WithLabelValues("Delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersReturned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emailsSent))
}

func TestOrderMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *OrderMetrics
	assert.NotPanics(t, func() {
		m.OrderCreated()
		m.StatusUpdated("Shipped")
		m.OrderReturned()
		m.OrderDeleted()
		m.EmailSent()
	})
}

func TestOrderMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := newOrderMetricsWithRegisterer(registry)
	second := newOrderMetricsWithRegisterer(registry)

	first.OrderCreated()
	second.OrderCreated()

	assert.Equal(t, 2.0, testutil.ToFloat64(first.ordersCreated))
}
