// internal/workers/matching/create-schedule/handler.go
package createschedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nexo-workers/internal/common/database"
	errs "nexo-workers/internal/common/errors"
	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/common/metrics"
	"nexo-workers/internal/matching"
	"nexo-workers/internal/models"
	"nexo-workers/internal/roster"
	"nexo-workers/internal/runstore"
	"nexo-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "create-schedule"
)

type Handler struct {
	config   *Config
	roster   *roster.Store
	runs     *runstore.Store
	es       *database.ElasticsearchClient
	activity *registry.Activity
	errors   *errs.ErrorHandler
	logger   logger.Logger
}

func NewHandler(config *Config, rosterStore *roster.Store, runs *runstore.Store, es *database.ElasticsearchClient, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		roster: rosterStore,
		runs:   runs,
		es:     es,
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
			stdErr = errs.NewScheduleCreationError(err.Error())
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
		h.errors.HandleJobError(ctx, client, job, stdErr)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	matches := input.Matches
	if len(matches) == 0 && input.RunID != "" && h.runs != nil {
		var err error
		matches, err = h.runs.Matches(ctx, input.RunID)
		if err != nil {
			return nil, errs.NewRunNotFoundError(input.RunID)
		}
	}
	slots := input.TimeSlots
	if len(slots) == 0 && h.roster != nil {
		var err error
		slots, err = h.roster.TimeSlots(ctx)
		if err != nil {
			return nil, errs.NewTimeSlotLoadError(err.Error())
		}
	}

	meetings := matching.Schedule(matches, slots)

	output := &Output{
		RunID:              input.RunID,
		Meetings:           meetings,
		ScheduledMeetings:  len(meetings),
		UnscheduledMatches: len(matches) - len(meetings),
	}

	metrics.MeetingsScheduled.Add(float64(output.ScheduledMeetings))
	metrics.MatchesUnscheduled.Add(float64(output.UnscheduledMatches))

	if input.RunID != "" && h.runs != nil {
		if err := h.runs.SaveMeetings(ctx, input.RunID, meetings); err != nil {
			h.logger.Warn("failed to persist run meetings", map[string]interface{}{
				"runId": input.RunID,
				"error": err,
			})
		}
	}

	h.indexMeetings(ctx, input.RunID, meetings)

	h.logger.Info("schedule created", map[string]interface{}{
		"runId":       input.RunID,
		"scheduled":   output.ScheduledMeetings,
		"unscheduled": output.UnscheduledMatches,
	})

	return output, nil
}

// indexMeetings pushes each meeting into Elasticsearch for the analytics
// dashboard. Indexing is best effort: the schedule is already final, so
// failures are logged and never fail the job.
func (h *Handler) indexMeetings(ctx context.Context, runID string, meetings []*models.Meeting) {
	if h.es == nil {
		return
	}
	for _, m := range meetings {
		doc, err := json.Marshal(struct {
			*models.Meeting
			RunID string `json:"runId,omitempty"`
		}{m, runID})
		if err != nil {
			continue
		}
		docID := fmt.Sprintf("%s:%s:%s", m.TimeSlotID, m.BuyerID, m.SellerID)
		if err := h.es.Index(ctx, h.config.MeetingIndex, docID, doc); err != nil {
			h.logger.Warn("meeting indexing failed", map[string]interface{}{
				"docId": docID,
				"error": err,
			})
		}
	}
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
