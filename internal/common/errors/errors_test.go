// internal/common/errors/errors_test.go
package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRetryCount(t *testing.T) {
	tests := []struct {
		name    string
		code    ErrorCode
		retries int
	}{
		{"roster load is transient", ErrCodeRosterLoadFailed, 3},
		{"time slot load is transient", ErrCodeTimeSlotLoadFailed, 3},
		{"notification send is transient", ErrCodeNotificationSendFailed, 3},
		{"parse failure is final", ErrCodeParseFailed, 0},
		{"validation failure is final", ErrCodeValidationFailed, 0},
		{"missing buyer is final", ErrCodeBuyerNotFound, 0},
		{"missing seller is final", ErrCodeSellerNotFound, 0},
		{"compatibility failure is final", ErrCodeCompatibilityFailed, 0},
		{"generation failure is final", ErrCodeMatchGenerationFailed, 0},
		{"missing run is final", ErrCodeRunNotFound, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retries, GetRetryCount(tt.code))
		})
	}
}

func TestConvertToBPMNError(t *testing.T) {
	bpmnErr := ConvertToBPMNError(NewRosterLoadError("connection refused"))

	assert.Equal(t, "ROSTER_LOAD_FAILED", bpmnErr.Code)
	assert.Equal(t, "connection refused", bpmnErr.Details)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)

	bpmnErr = ConvertToBPMNError(NewRunNotFoundError("run_42"))
	assert.Equal(t, "RUN_NOT_FOUND", bpmnErr.Code)
	assert.False(t, bpmnErr.Retryable)
	assert.Equal(t, 0, bpmnErr.Retries)
}

func TestConstructorCodes(t *testing.T) {
	assert.Equal(t, ErrCodeRosterLoadFailed, NewRosterLoadError("x").Code)
	assert.Equal(t, ErrCodeTimeSlotLoadFailed, NewTimeSlotLoadError("x").Code)
	assert.Equal(t, ErrCodeMatchGenerationFailed, NewMatchGenerationError("x").Code)
	assert.Equal(t, ErrCodeScheduleCreationFailed, NewScheduleCreationError("x").Code)
	assert.Equal(t, ErrCodeNotificationSendFailed, NewNotificationError("x").Code)
	assert.Equal(t, ErrCodeRunNotFound, NewRunNotFoundError("x").Code)
}

func TestToErrorVariables(t *testing.T) {
	bpmnErr := &BPMNError{
		Code:      "ROSTER_LOAD_FAILED",
		Message:   "Failed to load participant roster",
		Retryable: true,
		ErrorVariables: map[string]interface{}{
			"attempt": 2,
		},
	}

	vars := bpmnErr.ToErrorVariables()
	require.Equal(t, "ROSTER_LOAD_FAILED", vars["errorCode"])
	assert.Equal(t, true, vars["retryable"])
	assert.Equal(t, 2, vars["attempt"])
}
