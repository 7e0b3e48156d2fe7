// internal/workers/notification/send-schedule/handler.go
package sendschedule

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
	"nexo-workers/internal/runstore"
	"nexo-workers/pkg/registry"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "send-schedule"
)

var ErrNoRecipients = errors.New("at least one recipient is required")

// EmailSender matches the SES wrapper in internal/common/aws.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// EventPublisher matches the SNS wrapper in internal/common/aws.
type EventPublisher interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config    *Config
	roster    *roster.Store
	runs      *runstore.Store
	email     EmailSender
	publisher EventPublisher
	activity  *registry.Activity
	errors    *errs.ErrorHandler
	logger    logger.Logger
}

func NewHandler(config *Config, rosterStore *roster.Store, runs *runstore.Store, email EmailSender, publisher EventPublisher, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:    config,
		roster:    rosterStore,
		runs:      runs,
		email:     email,
		publisher: publisher,
		errors:    errs.NewErrorHandler(scoped),
		logger:    scoped,
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
			stdErr = errs.NewNotificationError(err.Error())
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
		h.errors.HandleJobError(ctx, client, job, stdErr)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if len(input.Recipients) == 0 {
		return nil, ErrNoRecipients
	}

	csv := input.CSV
	if csv == "" && input.RunID != "" && h.runs != nil {
		meetings, err := h.runs.Meetings(ctx, input.RunID)
		if err != nil {
			return nil, errs.NewRunNotFoundError(input.RunID)
		}

		var buyers []*models.Buyer
		var sellers []*models.Seller
		if h.roster != nil {
			buyers, _ = h.roster.Buyers(ctx)
			sellers, _ = h.roster.Sellers(ctx)
		}
		csv = matching.ExportScheduleCSV(meetings, buyers, sellers)
	}
	if csv == "" {
		csv = "No meetings scheduled"
	}

	subject := input.Subject
	if subject == "" {
		subject = "Your NEXO meeting schedule"
	}

	output := &Output{RunID: input.RunID}

	if h.config.EmailEnabled && h.email != nil {
		for _, recipient := range input.Recipients {
			_, err := h.email.SendEmail(ctx, &ses.SendEmailInput{
				Source:      aws.String(h.config.SenderEmail),
				Destination: &sestypes.Destination{ToAddresses: []string{recipient}},
				Message: &sestypes.Message{
					Subject: &sestypes.Content{Data: aws.String(subject)},
					Body: &sestypes.Body{
						Text: &sestypes.Content{Data: aws.String(csv)},
					},
				},
			})
			if err != nil {
				return nil, fmt.Errorf("send email to %s: %w", recipient, err)
			}
			output.EmailsSent++
		}
	}

	if h.publisher != nil && h.config.SNSTopicARN != "" {
		payload, _ := json.Marshal(map[string]interface{}{
			"runId":      input.RunID,
			"recipients": len(input.Recipients),
		})
		_, err := h.publisher.Publish(ctx, &sns.PublishInput{
			TopicArn: aws.String(h.config.SNSTopicARN),
			Subject:  aws.String("schedule-delivered"),
			Message:  aws.String(string(payload)),
		})
		if err != nil {
			h.logger.Warn("schedule event publish failed", map[string]interface{}{
				"runId": input.RunID,
				"error": err,
			})
		} else {
			output.EventPublished = true
		}
	}

	h.logger.Info("schedule notification sent", map[string]interface{}{
		"runId":      input.RunID,
		"emailsSent": output.EmailsSent,
		"published":  output.EventPublished,
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
