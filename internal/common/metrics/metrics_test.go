// internal/common/metrics/metrics_test.go
package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestWorkerJobDurationTracksPerTaskSeries(t *testing.T) {
	before := testutil.CollectAndCount(WorkerJobDuration)

	start := time.Now().Add(-25 * time.Millisecond)
	WorkerJobDuration.WithLabelValues("metrics-test-task").Observe(time.Since(start).Seconds())

	assert.Equal(t, before+1, testutil.CollectAndCount(WorkerJobDuration))
}

func TestWorkerJobCountersLabelledByTask(t *testing.T) {
	WorkerJobsCompleted.WithLabelValues("metrics-test-task").Inc()
	WorkerJobsFailed.WithLabelValues("metrics-test-task", "PARSE_ERROR").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(WorkerJobsCompleted.WithLabelValues("metrics-test-task")))
	assert.Equal(t, 1.0, testutil.ToFloat64(WorkerJobsFailed.WithLabelValues("metrics-test-task", "PARSE_ERROR")))
}
