// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	votesAccepted  prometheus.Counter
	votesRejected  *prometheus.CounterVec
	logins         *prometheus.CounterVec
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		votesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "urna_votes_total",
			Help: "記録された投票の合計数",
		}),
		votesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "urna_vote_rejected_total",
			Help: "拒否された投票試行の理由別合計数",
		}, []string{"reason"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "urna_logins_total",
			Help: "ログイン試行の結果別合計数",
		}, []string{"result"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "urna_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "urna_request_latency_seconds",
			Help:    "HTTPリクエスト処理のレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.votesAccepted,
		c.votesRejected,
		c.logins,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

// RecordVoteAccepted は記録された投票を記録する。
func (c *Collector) RecordVoteAccepted() {
	c.votesAccepted.Inc()
}

// RecordVoteRejected は拒否された投票試行を理由付きで記録する。
// reason: duplicate, blocked, invalid_option
func (c *Collector) RecordVoteRejected(reason string) {
	c.votesRejected.WithLabelValues(reason).Inc()
}

// RecordLogin はログイン試行の結果を記録する。
// result: success, failure
func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はリクエスト処理のレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute は/metricsエンドポイントを提供するHTTPハンドラーを返す。
// Prometheusスクレイプに対応する。
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}
