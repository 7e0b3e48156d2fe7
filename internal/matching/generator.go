// internal/matching/generator.go
package matching

import (
	"sort"

	"nexo-workers/internal/common/logger"
	"nexo-workers/internal/models"
)

// DefaultMeetingQuota is the number of meetings guaranteed to every buyer.
const DefaultMeetingQuota = 5

// Generator produces the tiered match list for one event run:
//  1. double matches: both sides selected each other
//  2. seller choices: seller selected the buyer, acceptance is obligatory
//  3. AI suggestions: compatibility-ranked fill up to the buyer quota
//
// Output is deterministic for a given input order; callers must pass
// buyers and sellers in a stable order because the AI tier breaks score
// ties by input position.
type Generator struct {
	scorer *Scorer
	quota  int
	logger logger.Logger
}

func NewGenerator(scorer *Scorer, quota int, log logger.Logger) *Generator {
	if quota <= 0 {
		quota = DefaultMeetingQuota
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Generator{scorer: scorer, quota: quota, logger: log}
}

// Generate runs the three passes over the rosters. Every buyer ends with
// exactly the quota of matches unless fewer distinct sellers exist; the
// shortfall is accepted silently and surfaced later by the aggregator.
func (g *Generator) Generate(buyers []*models.Buyer, sellers []*models.Seller) []*models.Match {
	var matches []*models.Match

	// Running per-buyer meeting count and pair dedup set, keyed by id.
	// Explicit maps rather than anything shared so that two concurrent
	// runs on separate roster copies never interfere.
	counts := make(map[string]int, len(buyers))
	paired := make(map[string]bool)

	buyersByID := make(map[string]*models.Buyer, len(buyers))
	for _, b := range buyers {
		buyersByID[b.ID] = b
		counts[b.ID] = 0
	}

	// Pass 1: double matches.
	for _, buyer := range buyers {
		selected := stringSet(buyer.SelectedSellers)
		for _, seller := range sellers {
			if !selected[seller.ID] || !containsID(seller.SelectedBuyers, buyer.ID) {
				continue
			}
			m := g.emit(buyer, seller, models.MatchTypeDouble)
			matches = append(matches, m)
			counts[buyer.ID]++
			paired[pairKey(buyer.ID, seller.ID)] = true
		}
	}

	// Pass 2: seller choices. Never capacity-limited from the seller
	// side, only by the buyer's quota.
	for _, seller := range sellers {
		for _, buyerID := range seller.SelectedBuyers {
			buyer, ok := buyersByID[buyerID]
			if !ok {
				g.logger.Warn("seller selected unknown buyer", map[string]interface{}{
					"sellerId": seller.ID,
					"buyerId":  buyerID,
				})
				continue
			}
			if paired[pairKey(buyerID, seller.ID)] || counts[buyerID] >= g.quota {
				continue
			}
			m := g.emit(buyer, seller, models.MatchTypeSellerChoice)
			matches = append(matches, m)
			counts[buyerID]++
			paired[pairKey(buyerID, seller.ID)] = true
		}
	}

	// Pass 3: AI suggestions fill the remaining quota, best score first,
	// ties kept in seller input order.
	for _, buyer := range buyers {
		needed := g.quota - counts[buyer.ID]
		if needed <= 0 {
			continue
		}

		type candidate struct {
			seller *models.Seller
			score  float64
		}
		var candidates []candidate
		for _, seller := range sellers {
			if paired[pairKey(buyer.ID, seller.ID)] {
				continue
			}
			candidates = append(candidates, candidate{seller, g.scorer.Score(buyer, seller)})
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})
		if needed > len(candidates) {
			needed = len(candidates)
		}

		for _, c := range candidates[:needed] {
			m := g.emit(buyer, c.seller, models.MatchTypeAISuggestion)
			matches = append(matches, m)
			counts[buyer.ID]++
			paired[pairKey(buyer.ID, c.seller.ID)] = true
		}

		if counts[buyer.ID] < g.quota {
			g.logger.Warn("buyer under meeting quota", map[string]interface{}{
				"buyerId": buyer.ID,
				"matches": counts[buyer.ID],
				"quota":   g.quota,
			})
		}
	}

	g.logger.Info("match generation completed", map[string]interface{}{
		"buyers":  len(buyers),
		"sellers": len(sellers),
		"matches": len(matches),
	})

	return matches
}

func (g *Generator) emit(buyer *models.Buyer, seller *models.Seller, t models.MatchType) *models.Match {
	return &models.Match{
		BuyerID:            buyer.ID,
		SellerID:           seller.ID,
		Type:               t,
		CompatibilityScore: g.scorer.Score(buyer, seller),
		Priority:           t.Priority(),
	}
}

func pairKey(buyerID, sellerID string) string {
	return buyerID + "|" + sellerID
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
