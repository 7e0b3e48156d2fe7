// internal/matching/scheduler.go
package matching

import (
	"sort"

	"nexo-workers/internal/models"
)

// Schedule packs the match list into a conflict-free set of meetings
// using greedy first-fit: matches are visited in (priority ascending,
// score descending) order and each takes the earliest slot where neither
// participant is already booked. A match with no free mutual slot is
// skipped outright; there is no backtracking or swapping, so adversarial
// slot layouts can leave schedulable matches unplaced. The greedy policy
// is deliberate and downstream counts depend on it.
//
// Each placed match is marked scheduled and gets its slot id recorded in
// place; this is the only mutation of the match list anywhere in the run.
func Schedule(matches []*models.Match, slots []models.TimeSlot) []*models.Meeting {
	ordered := make([]*models.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].CompatibilityScore > ordered[j].CompatibilityScore
	})

	buyerBusy := make(map[string]map[string]bool)
	sellerBusy := make(map[string]map[string]bool)
	var meetings []*models.Meeting

	for _, match := range ordered {
		for _, slot := range slots {
			if buyerBusy[match.BuyerID][slot.ID] || sellerBusy[match.SellerID][slot.ID] {
				continue
			}

			match.Scheduled = true
			match.TimeSlotID = slot.ID
			meetings = append(meetings, &models.Meeting{
				BuyerID:            match.BuyerID,
				SellerID:           match.SellerID,
				TimeSlotID:         slot.ID,
				Date:               slot.Date,
				Time:               slot.Time,
				Duration:           slot.Duration,
				MatchType:          match.Type,
				CompatibilityScore: match.CompatibilityScore,
				Priority:           match.Priority,
			})

			if buyerBusy[match.BuyerID] == nil {
				buyerBusy[match.BuyerID] = make(map[string]bool)
			}
			if sellerBusy[match.SellerID] == nil {
				sellerBusy[match.SellerID] = make(map[string]bool)
			}
			buyerBusy[match.BuyerID][slot.ID] = true
			sellerBusy[match.SellerID][slot.ID] = true
			break
		}
	}

	return meetings
}
