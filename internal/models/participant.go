// internal/models/participant.go
package models

// Buyer is a fitness operator attending the event to source suppliers.
// Records are loaded once per matching run and treated as read-only.
type Buyer struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Company          string   `json:"company"`
	InvestmentAmount int64    `json:"investmentAmount"`
	Locations        int      `json:"locations"`
	FacilityType     string   `json:"facilityType"`
	SponsorshipTier  string   `json:"sponsorshipTier"`
	Interests        []string `json:"interests"`
	SelectedSellers  []string `json:"selectedSellers"`
	Region           string   `json:"region"`
}

// Seller is a supplier exhibiting at the event.
type Seller struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Company        string   `json:"company"`
	Products       []string `json:"products"`
	SelectedBuyers []string `json:"selectedBuyers"`
	Region         string   `json:"region"`
}

// TimeSlot is one schedulable 15-minute window in the event agenda.
type TimeSlot struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"` // minutes
}
