package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	AdviceDegraded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "app_advice_degraded_total",
			Help: "Advice requests answered with a degraded result",
		},
	)
)

func Register() {
	prometheus.MustRegister(ReqCount, ReqDuration, AdviceDegraded)
}

// Middleware records request counts and latencies per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		ReqCount.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		ReqDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
