package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ai4health/triage-api/schema"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	// Triage metrics
	scoredReports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_scored_reports_total",
			Help: "Total number of scored symptom reports",
		},
		[]string{"level"},
	)

	dispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_dispatches_total",
			Help: "Total number of dispatches",
		},
		[]string{"consult_type", "ambulance"},
	)

	escalations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_ambulance_escalations_total",
			Help: "Total number of ambulance reassignments",
		},
		[]string{"result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// GinMiddleware records request counts and durations by route
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordSeverity(r schema.SeverityResult) {
	scoredReports.WithLabelValues(string(r.Level)).Inc()
}

func RecordDispatch(r *schema.DispatchRecord) {
	dispatches.WithLabelValues(r.Doctor.ConsultType, r.Ambulance.Status).Inc()
}

// RecordEscalation counts a reassignment attempt, result is either
// "reassigned" or "failed"
func RecordEscalation(result string) {
	escalations.WithLabelValues(result).Inc()
}
