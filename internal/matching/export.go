// internal/matching/export.go
package matching

import (
	"fmt"
	"strings"

	"nexo-workers/internal/models"
)

const csvHeader = "Date,Time,Buyer,Buyer Company,Seller,Seller Company,Match Type,Compatibility Score,Priority"

// ExportScheduleCSV renders the schedule as flat CSV text for the
// dashboard download. Participants missing from the rosters render as
// "Unknown"; that substitution happens only here, at the presentation
// boundary. An empty schedule returns the literal "No meetings scheduled".
func ExportScheduleCSV(meetings []*models.Meeting, buyers []*models.Buyer, sellers []*models.Seller) string {
	if len(meetings) == 0 {
		return "No meetings scheduled"
	}

	buyersByID := make(map[string]*models.Buyer, len(buyers))
	for _, b := range buyers {
		buyersByID[b.ID] = b
	}
	sellersByID := make(map[string]*models.Seller, len(sellers))
	for _, s := range sellers {
		sellersByID[s.ID] = s
	}

	lines := make([]string, 0, len(meetings)+1)
	lines = append(lines, csvHeader)

	for _, m := range meetings {
		buyerName, buyerCompany := "Unknown", "Unknown"
		if b, ok := buyersByID[m.BuyerID]; ok {
			buyerName, buyerCompany = b.Name, b.Company
		}
		sellerName, sellerCompany := "Unknown", "Unknown"
		if s, ok := sellersByID[m.SellerID]; ok {
			sellerName, sellerCompany = s.Name, s.Company
		}

		lines = append(lines, strings.Join([]string{
			m.Date,
			m.Time,
			buyerName,
			buyerCompany,
			sellerName,
			sellerCompany,
			matchTypeLabel(m.MatchType),
			fmt.Sprintf("%.1f", m.CompatibilityScore),
			fmt.Sprintf("%d", m.Priority),
		}, ","))
	}

	return strings.Join(lines, "\n")
}

// matchTypeLabel renders "double_match" as "Double Match" and so on.
func matchTypeLabel(t models.MatchType) string {
	words := strings.Split(strings.ReplaceAll(string(t), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
