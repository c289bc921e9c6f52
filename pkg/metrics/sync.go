package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// SyncMetrics records remote persistence outcomes and low-stock alerts.
// A nil *SyncMetrics is valid and records nothing.
type SyncMetrics struct {
	writes   *prometheus.CounterVec
	alerts   prometheus.Counter
	unsynced prometheus.Gauge
}

// NewSyncMetrics registers the sync metrics on the provided registerer.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	if reg == nil {
		return &SyncMetrics{}
	}
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_sync_remote_writes_total",
		Help: "Remote store writes issued by the sync engine.",
	}, []string{"resource", "operation", "result"})
	// Part numbers are unbounded; the alert log carries them, the counter does not.
	alerts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shop_inventory_alerts_total",
		Help: "Low-stock alerts raised by the inventory ledger.",
	})
	unsynced := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "shop_sync_unsynced_changes",
		Help: "Local mutations whose remote write failed and were not reconciled.",
	})
	reg.MustRegister(writes, alerts, unsynced)
	return &SyncMetrics{
		writes:   writes,
		alerts:   alerts,
		unsynced: unsynced,
	}
}

// ObserveWrite counts one finished remote write.
func (m *SyncMetrics) ObserveWrite(resource, operation string, err error) {
	if m == nil || m.writes == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.writes.WithLabelValues(normalizeLabel(resource), normalizeLabel(operation), result).Inc()
}

func (m *SyncMetrics) IncAlert() {
	if m == nil || m.alerts == nil {
		return
	}
	m.alerts.Inc()
}

func (m *SyncMetrics) SetUnsynced(n int) {
	if m == nil || m.unsynced == nil {
		return
	}
	m.unsynced.Set(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
