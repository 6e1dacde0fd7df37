package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BillingMetrics tracks what the billing engine is asked to do per salon.
// A nil *BillingMetrics is valid and records nothing.
type BillingMetrics struct {
	BillsCalculated    *prometheus.CounterVec
	TaxCollected       *prometheus.CounterVec
	BillValue          *prometheus.HistogramVec
	CommissionReports  *prometheus.CounterVec
	CommissionComputed *prometheus.CounterVec
	ReportDuration     *prometheus.HistogramVec
	SettingsUpdates    *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewBillingMetrics registers every billing metric with reg under namespace.
func NewBillingMetrics(reg prometheus.Registerer, namespace string) *BillingMetrics {
	f := promauto.With(reg)
	return &BillingMetrics{
		BillsCalculated: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "billing",
				Name:      "bills_calculated_total",
				Help:      "Total number of bills run through tax calculation",
			},
			[]string{"tenant_id"},
		),
		TaxCollected: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "billing",
				Name:      "tax_calculated_total",
				Help:      "Sum of GST calculated on bills, split by component",
			},
			[]string{"tenant_id", "component"},
		),
		BillValue: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "billing",
				Name:      "bill_total",
				Help:      "Bill totals including tax",
				Buckets:   []float64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000},
			},
			[]string{"tenant_id"},
		),
		CommissionReports: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "commission",
				Name:      "reports_total",
				Help:      "Total number of commission reports generated",
			},
			[]string{"tenant_id", "status"},
		),
		CommissionComputed: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "commission",
				Name:      "computed_total",
				Help:      "Sum of commission computed by reports",
			},
			[]string{"tenant_id"},
		),
		ReportDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "commission",
				Name:      "report_duration_seconds",
				Help:      "Time spent building a commission report",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"tenant_id"},
		),
		SettingsUpdates: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "settings",
				Name:      "updates_total",
				Help:      "Total number of settings updates",
			},
			[]string{"tenant_id", "kind"},
		),
		ValidationFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "settings",
				Name:      "validation_failures_total",
				Help:      "Rejected settings or profile payloads",
			},
			[]string{"tenant_id", "kind"},
		),
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveBill records one tax calculation.
func (m *BillingMetrics) ObserveBill(tenantID string, tax, cgst, sgst, total float64) {
	if m == nil {
		return
	}
	m.BillsCalculated.WithLabelValues(tenantID).Inc()
	m.TaxCollected.WithLabelValues(tenantID, "cgst").Add(cgst)
	m.TaxCollected.WithLabelValues(tenantID, "sgst").Add(sgst)
	m.TaxCollected.WithLabelValues(tenantID, "total").Add(tax)
	m.BillValue.WithLabelValues(tenantID).Observe(total)
}

// ObserveReport records a finished commission report. status is "ok" or "error".
func (m *BillingMetrics) ObserveReport(tenantID, status string, commission, seconds float64) {
	if m == nil {
		return
	}
	m.CommissionReports.WithLabelValues(tenantID, status).Inc()
	if status == "ok" {
		m.CommissionComputed.WithLabelValues(tenantID).Add(commission)
	}
	m.ReportDuration.WithLabelValues(tenantID).Observe(seconds)
}

// SettingsUpdated counts a saved settings document of the given kind.
func (m *BillingMetrics) SettingsUpdated(tenantID, kind string) {
	if m == nil {
		return
	}
	m.SettingsUpdates.WithLabelValues(tenantID, kind).Inc()
}

// ValidationFailed counts a rejected payload of the given kind.
func (m *BillingMetrics) ValidationFailed(tenantID, kind string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(tenantID, kind).Inc()
}
