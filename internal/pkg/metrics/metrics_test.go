package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.OrderTransitions.WithLabelValues("pending").Inc()
	m.Orders.WithLabelValues("on-going").Set(3)
	m.HTTPRequestsTotal.WithLabelValues("GET", "/api/orders", "200").Inc()
	m.HTTPRequestDuration.WithLabelValues("GET", "/api/orders").Observe(0.01)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
		switch f.GetName() {
		case "ridehail_order_transitions_total":
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, float64(1), f.GetMetric()[0].GetCounter().GetValue())
		case "ridehail_orders":
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, float64(3), f.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.ElementsMatch(t, []string{
		"ridehail_http_requests_total",
		"ridehail_http_request_duration_seconds",
		"ridehail_order_transitions_total",
		"ridehail_orders",
	}, names)
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
