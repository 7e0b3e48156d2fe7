// internal/workers/matching/calculate-compatibility/handler.go
package calculatecompatibility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	errs "nexo-workers/internal/common/errors"
	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/common/metrics"
	"nexo-workers/internal/matching"
	"nexo-workers/internal/models"
	"nexo-workers/internal/roster"
	"nexo-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "calculate-compatibility"
)

var (
	ErrBuyerMissing  = errors.New("buyer not provided and not found in roster")
	ErrSellerMissing = errors.New("seller not provided and not found in roster")
)

type Handler struct {
	config   *Config
	roster   *roster.Store
	redis    *redis.Client
	scorer   *matching.Scorer
	activity *registry.Activity
	logger   logger.Logger
}

func NewHandler(config *Config, rosterStore *roster.Store, rdb *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		roster: rosterStore,
		redis:  rdb,
		scorer: matching.NewScorer(config.Weights),
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, string(errorCode(err)), err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// errorCode maps execute failures onto the shared error taxonomy.
func errorCode(err error) errs.ErrorCode {
	switch {
	case errors.Is(err, ErrBuyerMissing):
		return errs.ErrCodeBuyerNotFound
	case errors.Is(err, ErrSellerMissing):
		return errs.ErrCodeSellerNotFound
	default:
		return errs.ErrCodeCompatibilityFailed
	}
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	buyer := input.Buyer
	if buyer == nil && input.BuyerID != "" && h.roster != nil {
		var err error
		buyer, err = h.roster.Buyer(ctx, input.BuyerID)
		if err != nil {
			h.logger.Warn("buyer lookup failed", map[string]interface{}{
				"buyerId": input.BuyerID,
				"error":   err,
			})
		}
	}
	if buyer == nil {
		return nil, ErrBuyerMissing
	}

	seller := input.Seller
	if seller == nil && input.SellerID != "" && h.roster != nil {
		var err error
		seller, err = h.roster.Seller(ctx, input.SellerID)
		if err != nil {
			h.logger.Warn("seller lookup failed", map[string]interface{}{
				"sellerId": input.SellerID,
				"error":    err,
			})
		}
	}
	if seller == nil {
		return nil, ErrSellerMissing
	}

	if cached, ok := h.cachedScore(ctx, buyer.ID, seller.ID); ok {
		return cached, nil
	}

	output := &Output{
		BuyerID:            buyer.ID,
		SellerID:           seller.ID,
		CompatibilityScore: h.scorer.Score(buyer, seller),
		Factors:            h.scorer.Factors(buyer, seller),
	}
	h.cacheScore(ctx, output)

	h.logger.Info("compatibility calculated", map[string]interface{}{
		"buyerId":  buyer.ID,
		"sellerId": seller.ID,
		"score":    output.CompatibilityScore,
	})

	return output, nil
}

func (h *Handler) cachedScore(ctx context.Context, buyerID, sellerID string) (*Output, bool) {
	if h.redis == nil {
		return nil, false
	}
	val, err := h.redis.Get(ctx, scoreCacheKey(buyerID, sellerID)).Result()
	if err != nil {
		return nil, false
	}
	var out Output
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (h *Handler) cacheScore(ctx context.Context, out *Output) {
	if h.redis == nil {
		return
	}
	data, _ := json.Marshal(out)
	h.redis.Set(ctx, scoreCacheKey(out.BuyerID, out.SellerID), data, h.config.CacheTTL)
}

func scoreCacheKey(buyerID, sellerID string) string {
	return "compat:score:" + buyerID + ":" + sellerID
}

// Score is a convenience for in-process callers that already hold both
// records; it bypasses the cache.
func (h *Handler) Score(buyer *models.Buyer, seller *models.Seller) float64 {
	return h.scorer.Score(buyer, seller)
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
