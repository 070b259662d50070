// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型速记：
// - Counter（计数器）：只增不减，如HTTP请求总数、下单总数
// - Gauge（仪表盘）：可增可减的瞬时值，如处理中的请求数
// - Histogram（直方图）：观测值分布，自动计算P50/P90/P99，如请求耗时
//
// 命名规范：Counter以_total结尾，Histogram以单位（_seconds）结尾
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册panic）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method（GET/POST）、path、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// CheckoutTotal 下单总数
	// 标签：result（success/failure）
	CheckoutTotal *prometheus.CounterVec

	// CheckoutDuration 下单耗时
	CheckoutDuration prometheus.Histogram

	// ReviewCacheRequests 评论列表缓存访问总数
	// 标签：result（hit/miss/error）
	ReviewCacheRequests *prometheus.CounterVec

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec
)

// InitMetrics 初始化并注册所有指标
// 必须在使用任何指标前调用一次（main函数中）
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	CheckoutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_total",
			Help: "Total number of checkout attempts",
		},
		[]string{"result"},
	)

	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "Checkout latency in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	ReviewCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_cache_requests_total",
			Help: "Review listing cache lookups by result",
		},
		[]string{"result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"name"},
	)
}

// ObserveCheckout 记录一次下单结果与耗时
func ObserveCheckout(success bool, seconds float64) {
	if !initialized {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	CheckoutTotal.WithLabelValues(result).Inc()
	CheckoutDuration.Observe(seconds)
}

// ObserveReviewCache 记录一次评论缓存访问结果
func ObserveReviewCache(result string) {
	if !initialized {
		return
	}
	ReviewCacheRequests.WithLabelValues(result).Inc()
}

// SetCircuitBreakerState 更新熔断器状态指标
func SetCircuitBreakerState(name string, state int) {
	if !initialized {
		return
	}
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
