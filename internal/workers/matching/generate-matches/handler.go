// internal/workers/matching/generate-matches/handler.go
package generatematches

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

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
	"github.com/google/uuid"
)

const (
	TaskType = "generate-matches"
)

type Handler struct {
	config   *Config
	roster   *roster.Store
	runs     *runstore.Store
	activity *registry.Activity
	errors   *errs.ErrorHandler
	logger   logger.Logger
}

func NewHandler(config *Config, rosterStore *roster.Store, runs *runstore.Store, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config: config,
		roster: rosterStore,
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
			stdErr = errs.NewMatchGenerationError(err.Error())
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
		h.errors.HandleJobError(ctx, client, job, stdErr)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	buyers := input.Buyers
	sellers := input.Sellers

	if len(buyers) == 0 && h.roster != nil {
		var err error
		buyers, err = h.roster.Buyers(ctx)
		if err != nil {
			return nil, errs.NewRosterLoadError(fmt.Sprintf("load buyers: %v", err))
		}
	}
	if len(sellers) == 0 && h.roster != nil {
		var err error
		sellers, err = h.roster.Sellers(ctx)
		if err != nil {
			return nil, errs.NewRosterLoadError(fmt.Sprintf("load sellers: %v", err))
		}
	}

	weights := h.config.Weights
	if input.Weights != nil {
		weights = *input.Weights
	}

	generator := matching.NewGenerator(matching.NewScorer(weights), h.config.MeetingQuota, h.logger)
	matches := generator.Generate(buyers, sellers)

	output := &Output{
		RunID:        uuid.NewString(),
		Matches:      matches,
		TotalMatches: len(matches),
	}
	for _, m := range matches {
		metrics.MatchesGenerated.WithLabelValues(string(m.Type)).Inc()
		switch m.Type {
		case models.MatchTypeDouble:
			output.DoubleMatches++
		case models.MatchTypeSellerChoice:
			output.SellerChoices++
		case models.MatchTypeAISuggestion:
			output.AISuggestions++
		}
	}

	if h.runs != nil {
		if err := h.runs.SaveMatches(ctx, output.RunID, matches); err != nil {
			// Downstream workers can still receive matches inline.
			h.logger.Warn("failed to persist run matches", map[string]interface{}{
				"runId": output.RunID,
				"error": err,
			})
		}
	}

	h.logger.Info("matches generated", map[string]interface{}{
		"runId":         output.RunID,
		"total":         output.TotalMatches,
		"doubleMatches": output.DoubleMatches,
		"sellerChoices": output.SellerChoices,
		"aiSuggestions": output.AISuggestions,
	})

	return output, nil
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
