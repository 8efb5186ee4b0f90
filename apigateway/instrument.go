package gateway

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Instrumentation exposes per-endpoint request counts and latency.
// Registration tolerates re-use so tests can build more than one engine.
func Instrumentation() gin.HandlerFunc {
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "entregas",
		Subsystem: "request",
		Name:      "requests_count",
		Help:      "Number of requests per each endpoint",
	}, []string{"code", "method", "handler", "url"})

	resTime := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "entregas",
		Subsystem: "response",
		Name:      "response_time_hist",
		Help:      "entregas response duration",
	})

	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "entregas",
		Subsystem: "tracking",
		Name:      "search_outcomes",
		Help:      "Tracking searches by outcome code",
	}, []string{"code"})

	counterVec = registerCounterVec(counterVec)
	resTime = registerHistogram(resTime)
	searchOutcomes = registerCounterVec(searches)

	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := float64(time.Since(start)) * 1e-6 // to millisecond

		status := strconv.Itoa(c.Writer.Status())
		counterVec.WithLabelValues(status, c.Request.Method, c.HandlerName(), c.Request.URL.Path).Inc()
		resTime.Observe(duration)
	}
}

var searchOutcomes *prometheus.CounterVec

// CountSearch bumps the per-outcome search counter. A no-op before
// Instrumentation has run, which only happens in unit tests.
func CountSearch(code string) {
	if searchOutcomes != nil {
		searchOutcomes.WithLabelValues(code).Inc()
	}
}

func registerCounterVec(c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerHistogram(h prometheus.Histogram) prometheus.Histogram {
	if err := prometheus.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Histogram)
		}
		panic(err)
	}
	return h
}
