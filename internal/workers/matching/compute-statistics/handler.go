// internal/workers/matching/compute-statistics/handler.go
package computestatistics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	errs "nexo-workers/internal/common/errors"
	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/common/metrics"
	"nexo-workers/internal/matching"
	"nexo-workers/internal/runstore"
	"nexo-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "compute-statistics"
)

type Handler struct {
	config   *Config
	runs     *runstore.Store
	activity *registry.Activity
	errors   *errs.ErrorHandler
	logger   logger.Logger
}

func NewHandler(config *Config, runs *runstore.Store, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		runs:   runs,
		errors: errs.NewErrorHandler(scoped),
		logger: scoped,
	}
}

// WithActivity attaches the registered activity so job variables are
// checked against its input schema before execution.
func (h *Handler) WithActivity(activity *registry.Activity) *Handler {
	h.activity = activity
	return h
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	defer func() {
		metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
	}()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, string(errs.ErrCodeParseFailed), fmt.Sprintf("parse input: %v", err))
		return
	}
	if h.activity != nil {
		if err := h.activity.ValidateRaw([]byte(job.Variables)); err != nil {
			h.failJob(client, job, string(errs.ErrCodeValidationFailed), err.Error())
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		stdErr, ok := err.(*errs.StandardError)
		if !ok {
			stdErr = &errs.StandardError{
				Code:    errs.ErrCodeStatsFailed,
				Message: "Statistics computation failed",
				Details: err.Error(),
			}
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
		h.errors.HandleJobError(ctx, client, job, stdErr)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	matches := input.Matches
	meetings := input.Meetings

	if input.RunID != "" && h.runs != nil {
		if len(matches) == 0 {
			var err error
			matches, err = h.runs.Matches(ctx, input.RunID)
			if err != nil {
				return nil, errs.NewRunNotFoundError(input.RunID)
			}
		}
		if len(meetings) == 0 {
			// Meetings may legitimately be absent when statistics are
			// requested before scheduling; treat a miss as empty.
			if stored, err := h.runs.Meetings(ctx, input.RunID); err == nil {
				meetings = stored
			}
		}
	}

	aggregator := matching.NewAggregator(h.config.MeetingQuota)
	stats := aggregator.Summarize(matches, meetings)

	h.logger.Info("statistics computed", map[string]interface{}{
		"runId":        input.RunID,
		"totalMatches": stats.TotalMatches,
		"scheduled":    stats.ScheduledMeetings,
		"efficiency":   stats.SchedulingEfficiency,
	})

	return &Output{RunID: input.RunID, Stats: stats}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
