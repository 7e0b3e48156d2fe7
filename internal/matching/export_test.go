// internal/matching/export_test.go
package matching

import (
	"strings"
	"testing"

	"nexo-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportScheduleCSVEmpty(t *testing.T) {
	assert.Equal(t, "No meetings scheduled", ExportScheduleCSV(nil, nil, nil))
}

func TestExportScheduleCSVRows(t *testing.T) {
	meetings := []*models.Meeting{
		{
			BuyerID:            "b1",
			SellerID:           "s1",
			TimeSlotID:         "slot_001",
			Date:               "2023-05-18",
			Time:               "09:00",
			Duration:           15,
			MatchType:          models.MatchTypeDouble,
			CompatibilityScore: 72.1666,
			Priority:           1,
		},
		{
			BuyerID:            "b1",
			SellerID:           "s2",
			TimeSlotID:         "slot_002",
			Date:               "2023-05-18",
			Time:               "09:15",
			Duration:           15,
			MatchType:          models.MatchTypeAISuggestion,
			CompatibilityScore: 55,
			Priority:           3,
		},
	}
	buyers := []*models.Buyer{
		{ID: "b1", Name: "Marcos Aguade", Company: "AguadeFit"},
	}
	sellers := []*models.Seller{
		{ID: "s1", Name: "Charly Chagas", Company: "ChagasTech"},
		{ID: "s2", Name: "Elena Rodriguez", Company: "RodriWell"},
	}

	csv := ExportScheduleCSV(meetings, buyers, sellers)
	lines := strings.Split(csv, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Time,Buyer,Buyer Company,Seller,Seller Company,Match Type,Compatibility Score,Priority", lines[0])
	assert.Equal(t, "2023-05-18,09:00,Marcos Aguade,AguadeFit,Charly Chagas,ChagasTech,Double Match,72.2,1", lines[1])
	assert.Equal(t, "2023-05-18,09:15,Marcos Aguade,AguadeFit,Elena Rodriguez,RodriWell,Ai Suggestion,55.0,3", lines[2])
}

func TestExportScheduleCSVUnknownParticipants(t *testing.T) {
	meetings := []*models.Meeting{
		{
			BuyerID:            "ghost",
			SellerID:           "phantom",
			Date:               "2023-05-19",
			Time:               "14:00",
			MatchType:          models.MatchTypeSellerChoice,
			CompatibilityScore: 40,
			Priority:           2,
		},
	}

	csv := ExportScheduleCSV(meetings, nil, nil)
	lines := strings.Split(csv, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "2023-05-19,14:00,Unknown,Unknown,Unknown,Unknown,Seller Choice,40.0,2", lines[1])
}

func TestMatchTypeLabel(t *testing.T) {
	assert.Equal(t, "Double Match", matchTypeLabel(models.MatchTypeDouble))
	assert.Equal(t, "Seller Choice", matchTypeLabel(models.MatchTypeSellerChoice))
	assert.Equal(t, "Ai Suggestion", matchTypeLabel(models.MatchTypeAISuggestion))
}
