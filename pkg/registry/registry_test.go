// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryFixture = `{
  "version": "1.0.0",
  "lastUpdated": "2023-05-10",
  "activities": [
    {
      "id": "send-schedule",
      "displayName": "Send Schedule",
      "category": "notification",
      "taskType": "send-schedule",
      "inputSchema": {
        "type": "object",
        "properties": {
          "recipients": { "type": "array", "items": { "type": "string" } },
          "subject": { "type": "string" }
        },
        "required": ["recipients"]
      },
      "errorCodes": ["PARSE_ERROR"],
      "timeout": "30s",
      "retries": 3
    }
  ]
}`

func writeFixture(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(registryFixture), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry(writeFixture(t))

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", reg.Version)
	require.Len(t, reg.Activities, 1)
	assert.Equal(t, "send-schedule", reg.Activities[0].TaskType)
	assert.Equal(t, 3, reg.Activities[0].Retries)
}

func TestLoadRegistryMissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	reg, err := LoadRegistry(writeFixture(t))
	require.NoError(t, err)

	activity, ok := reg.Find("send-schedule")
	require.True(t, ok)
	assert.Equal(t, "Send Schedule", activity.DisplayName)

	_, ok = reg.Find("unknown-task")
	assert.False(t, ok)
}

func TestValidateInput(t *testing.T) {
	reg, err := LoadRegistry(writeFixture(t))
	require.NoError(t, err)

	activity, ok := reg.Find("send-schedule")
	require.True(t, ok)

	assert.NoError(t, activity.ValidateInput(map[string]interface{}{
		"recipients": []interface{}{"a@example.com"},
		"subject":    "hello",
	}))

	err = activity.ValidateInput(map[string]interface{}{"subject": "hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipients")
}

func TestValidateInputNoSchema(t *testing.T) {
	activity := &Activity{TaskType: "anything"}
	assert.NoError(t, activity.ValidateInput(map[string]interface{}{"x": 1}))
}

func TestValidateRaw(t *testing.T) {
	reg, err := LoadRegistry(writeFixture(t))
	require.NoError(t, err)

	activity, ok := reg.Find("send-schedule")
	require.True(t, ok)

	assert.NoError(t, activity.ValidateRaw([]byte(`{"recipients":["a@example.com"]}`)))

	err = activity.ValidateRaw([]byte(`{"subject":"hello"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipients")

	assert.Error(t, activity.ValidateRaw([]byte(`not json`)))
}

func TestValidateRawNoSchema(t *testing.T) {
	activity := &Activity{TaskType: "anything"}
	assert.NoError(t, activity.ValidateRaw([]byte(`whatever`)))
}
