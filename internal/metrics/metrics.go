package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mt5term"

// Metrics 汇总终端客户端的运行指标，使用独立注册表。
type Metrics struct {
	registry *prometheus.Registry

	reconnects        *prometheus.CounterVec
	reconnectDuration prometheus.Histogram
	streamItems       *prometheus.CounterVec
	streamErrors      *prometheus.CounterVec
	journalEvents     *prometheus.CounterVec
	connected         prometheus.Gauge
	accountEquity     prometheus.Gauge
}

// New 创建并注册全部指标。
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		reconnects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "terminal",
				Name:      "reconnects_total",
				Help:      "Total number of terminal reconnect attempts",
			},
			[]string{"kind", "result"},
		),
		reconnectDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "terminal",
				Name:      "reconnect_duration_seconds",
				Help:      "Terminal reconnect handshake duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
		),
		streamItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "stream",
				Name:      "items_total",
				Help:      "Total number of items received per subscription",
			},
			[]string{"stream"},
		),
		streamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "stream",
				Name:      "errors_total",
				Help:      "Total number of subscriptions terminated by an error",
			},
			[]string{"stream"},
		),
		journalEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "journal",
				Name:      "events_total",
				Help:      "Total number of journal events by type",
			},
			[]string{"type"},
		),
		connected: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "terminal",
				Name:      "connected",
				Help:      "Whether the terminal session is established",
			},
		),
		accountEquity: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "account",
				Name:      "equity",
				Help:      "Last observed account equity",
			},
		),
	}
}

// ObserveReconnect 记录一次重连尝试。
func (m *Metrics) ObserveReconnect(kind string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reconnects.WithLabelValues(kind, result).Inc()
	m.reconnectDuration.Observe(d.Seconds())
	m.SetConnected(err == nil)
}

// IncStreamItem 记录一条订阅推送。
func (m *Metrics) IncStreamItem(stream string) {
	m.streamItems.WithLabelValues(stream).Inc()
}

// IncStreamError 记录订阅异常终止。
func (m *Metrics) IncStreamError(stream string) {
	m.streamErrors.WithLabelValues(stream).Inc()
}

// IncJournalEvent 记录日志事件写入。
func (m *Metrics) IncJournalEvent(eventType string) {
	m.journalEvents.WithLabelValues(eventType).Inc()
}

// SetConnected 更新会话状态。
func (m *Metrics) SetConnected(ok bool) {
	if ok {
		m.connected.Set(1)
		return
	}
	m.connected.Set(0)
}

// SetEquity 更新账户净值。
func (m *Metrics) SetEquity(v float64) {
	m.accountEquity.Set(v)
}

// Registry 返回底层注册表。
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler 暴露 /metrics。
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
