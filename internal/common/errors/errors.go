// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeParseFailed      ErrorCode = "PARSE_ERROR"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_ERROR"

	ErrCodeRosterLoadFailed   ErrorCode = "ROSTER_LOAD_FAILED"
	ErrCodeBuyerNotFound      ErrorCode = "BUYER_NOT_FOUND"
	ErrCodeSellerNotFound     ErrorCode = "SELLER_NOT_FOUND"
	ErrCodeTimeSlotLoadFailed ErrorCode = "TIMESLOT_LOAD_FAILED"

	ErrCodeCompatibilityFailed    ErrorCode = "COMPATIBILITY_FAILED"
	ErrCodeMatchGenerationFailed  ErrorCode = "MATCH_GENERATION_FAILED"
	ErrCodeScheduleCreationFailed ErrorCode = "SCHEDULE_CREATION_FAILED"
	ErrCodeStatsFailed            ErrorCode = "STATS_FAILED"
	ErrCodeExportFailed           ErrorCode = "EXPORT_FAILED"
	ErrCodeRunNotFound            ErrorCode = "RUN_NOT_FOUND"

	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ConvertToBPMNError maps a StandardError onto the BPMN error shape.
func ConvertToBPMNError(err *StandardError) *BPMNError {
	return &BPMNError{
		Code:      string(err.Code),
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		Retries:   GetRetryCount(err.Code),
	}
}

// GetRetryCount returns how many retries a code deserves. Only transient
// infrastructure failures are retried; business outcomes are final.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeRosterLoadFailed, ErrCodeTimeSlotLoadFailed,
		ErrCodeNotificationSendFailed:
		return 3
	default:
		return 0
	}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewRosterLoadError wraps a participant roster read failure (retryable).
func NewRosterLoadError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRosterLoadFailed,
		Message:   "Failed to load participant roster",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRunNotFoundError reports a missing matching run key (non-retryable).
func NewRunNotFoundError(runID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRunNotFound,
		Message:   "Matching run not found",
		Details:   fmt.Sprintf("no stored state for run %q", runID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTimeSlotLoadError wraps an event agenda read failure (retryable).
func NewTimeSlotLoadError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTimeSlotLoadFailed,
		Message:   "Failed to load event time slots",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMatchGenerationError reports a failed generation pass (non-retryable).
func NewMatchGenerationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMatchGenerationFailed,
		Message:   "Match generation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewScheduleCreationError reports a failed scheduling pass (non-retryable).
func NewScheduleCreationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeScheduleCreationFailed,
		Message:   "Schedule creation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotificationError reports a failed SES/SNS delivery (retryable).
func NewNotificationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Schedule notification failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
