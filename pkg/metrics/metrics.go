package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Job/task counts

	JobsTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridworks_jobs_total",
			Help: "Total number of jobs by process state",
		},
		[]string{"state"},
	)

	GridTasksTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridworks_grid_tasks_total",
			Help: "Total number of grid tasks by process state",
		},
		[]string{"state"},
	)

	AgentsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridworks_agents_total",
			Help: "Total number of registered agents",
		},
	)

	ResourceAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridworks_resource_available",
			Help: "Currently available resource capacity by agent and resource name",
		},
		[]string{"agent_id", "resource"},
	)

	// Coordinator RPC metrics

	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridworks_api_requests_total",
			Help: "Total number of coordinator RPCs by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridworks_api_request_duration_seconds",
			Help:    "Coordinator RPC duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Scheduler metrics

	SchedulingLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridworks_scheduling_latency_seconds",
			Help:    "Time taken to run one scheduling pass, in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	JobsScheduled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gridworks_jobs_scheduled_total",
			Help: "Total number of job/agent assignments emitted by the scheduler",
		},
	)

	JobsResourcesNotAvailable = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gridworks_jobs_resources_not_available_total",
			Help: "Total number of jobs terminated with RESOURCES_NOT_AVAILABLE",
		},
	)

	// Agent lifecycle metrics

	AgentsLost = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gridworks_agents_lost_total",
			Help: "Total number of agents removed due to heartbeat timeout",
		},
	)

	// Deployment resolution metrics

	DeploymentResolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridworks_deployment_resolve_duration_seconds",
			Help:    "Time taken to resolve a branch/tag deployment to a commit/digest",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(JobsTotal)
	prometheus.MustRegister(GridTasksTotal)
	prometheus.MustRegister(AgentsTotal)
	prometheus.MustRegister(ResourceAvailable)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(SchedulingLatency)
	prometheus.MustRegister(JobsScheduled)
	prometheus.MustRegister(JobsResourcesNotAvailable)
	prometheus.MustRegister(AgentsLost)
	prometheus.MustRegister(DeploymentResolveDuration)
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the duration to a histogram vec with labels.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
