// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	MatchesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matching_matches_generated_total",
			Help: "Total matches generated per match type",
		},
		[]string{"match_type"},
	)

	MeetingsScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_meetings_scheduled_total",
			Help: "Total meetings placed by the scheduler",
		},
	)

	MatchesUnscheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matching_matches_unscheduled_total",
			Help: "Total matches the scheduler could not place",
		},
	)
)
