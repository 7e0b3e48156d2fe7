// internal/eventdata/nexo2023.go
//
// Static roster and agenda for the NEXO 2023 fitness industry event
// (May 18-19, 2023). Used as the seed fixture for local development and
// by the end-to-end pipeline test. Accessors return fresh copies so a
// matching run can never leak state into another.
package eventdata

import (
	"fmt"

	"nexo-workers/internal/models"
)

var nexoBuyers = []models.Buyer{
	{
		ID: "buyer_001", Name: "Marcos Aguade", Company: "Fitness Group",
		InvestmentAmount: 140000000, Locations: 1, FacilityType: "Gym Chain",
		SponsorshipTier: "Platinum",
		Interests:       []string{"Equipment", "Technology", "Supplements"},
		SelectedSellers: []string{"seller_001", "seller_002", "seller_003", "seller_004", "seller_005"},
		Region:          "Latin America",
	},
	{
		ID: "buyer_002", Name: "Guillermo Mazzoni", Company: "BIGG",
		InvestmentAmount: 200000000, Locations: 1, FacilityType: "Fitness Chain",
		SponsorshipTier: "Platinum",
		Interests:       []string{"Equipment", "Software", "Nutrition"},
		SelectedSellers: []string{"seller_002", "seller_003", "seller_006", "seller_007", "seller_008"},
		Region:          "Latin America",
	},
	{
		ID: "buyer_003", Name: "Celso Guimaraes", Company: "Smart Fit",
		InvestmentAmount: 50000000, Locations: 7, FacilityType: "Gym Chain",
		SponsorshipTier: "Gold",
		Interests:       []string{"Equipment", "Technology", "Wellness"},
		SelectedSellers: []string{"seller_001", "seller_004", "seller_005", "seller_009", "seller_010"},
		Region:          "Brazil",
	},
	{
		ID: "buyer_004", Name: "Ricardo Martinez", Company: "Fitness Evolution",
		InvestmentAmount: 25000000, Locations: 3, FacilityType: "Boutique Studio",
		SponsorshipTier: "Gold",
		Interests:       []string{"Equipment", "Supplements", "Wellness"},
		SelectedSellers: []string{"seller_004", "seller_006", "seller_007", "seller_011", "seller_001"},
		Region:          "Mexico",
	},
	{
		ID: "buyer_005", Name: "Ana Silva", Company: "FitLife Centers",
		InvestmentAmount: 15000000, Locations: 5, FacilityType: "Wellness Center",
		SponsorshipTier: "Silver",
		Interests:       []string{"Wellness", "Nutrition", "Technology"},
		SelectedSellers: []string{"seller_005", "seller_008", "seller_009", "seller_002", "seller_003"},
		Region:          "Colombia",
	},
	{
		ID: "buyer_006", Name: "Carlos Rodriguez", Company: "PowerGym",
		InvestmentAmount: 10000000, Locations: 2, FacilityType: "Gym Chain",
		SponsorshipTier: "Silver",
		Interests:       []string{"Equipment", "Supplements"},
		SelectedSellers: []string{"seller_006", "seller_010", "seller_011", "seller_001", "seller_004"},
		Region:          "Argentina",
	},
	{
		ID: "buyer_007", Name: "Maria Gonzalez", Company: "Wellness Hub",
		InvestmentAmount: 8000000, Locations: 4, FacilityType: "Wellness Center",
		SponsorshipTier: "Silver",
		Interests:       []string{"Wellness", "Nutrition", "Software"},
		SelectedSellers: []string{"seller_007", "seller_009", "seller_011", "seller_002", "seller_005"},
		Region:          "Chile",
	},
	{
		ID: "buyer_008", Name: "Diego Morales", Company: "FitZone",
		InvestmentAmount: 5000000, Locations: 1, FacilityType: "Boutique Studio",
		SponsorshipTier: "Bronze",
		Interests:       []string{"Equipment", "Technology"},
		SelectedSellers: []string{"seller_008", "seller_010", "seller_001", "seller_003", "seller_006"},
		Region:          "Peru",
	},
	{
		ID: "buyer_009", Name: "Isabella Costa", Company: "Active Life",
		InvestmentAmount: 3000000, Locations: 2, FacilityType: "Gym Chain",
		SponsorshipTier: "Bronze",
		Interests:       []string{"Equipment", "Supplements"},
		SelectedSellers: []string{"seller_009", "seller_011", "seller_001", "seller_004", "seller_007"},
		Region:          "Brazil",
	},
	{
		ID: "buyer_010", Name: "Fernando Lopez", Company: "Strength Club",
		InvestmentAmount: 2000000, Locations: 1, FacilityType: "Gym Chain",
		SponsorshipTier: "Bronze",
		Interests:       []string{"Equipment", "Nutrition"},
		SelectedSellers: []string{"seller_010", "seller_011", "seller_002", "seller_005", "seller_008"},
		Region:          "Mexico",
	},
	{
		ID: "buyer_011", Name: "Patricia Ruiz", Company: "FitCorp",
		InvestmentAmount: 12000000, Locations: 3, FacilityType: "Corporate Wellness",
		SponsorshipTier: "Silver",
		Interests:       []string{"Technology", "Wellness", "Software"},
		SelectedSellers: []string{"seller_011", "seller_001", "seller_003", "seller_006", "seller_009"},
		Region:          "Colombia",
	},
	{
		ID: "buyer_012", Name: "Roberto Silva", Company: "Elite Fitness",
		InvestmentAmount: 18000000, Locations: 6, FacilityType: "Premium Gym",
		SponsorshipTier: "Gold",
		Interests:       []string{"Equipment", "Technology", "Wellness"},
		SelectedSellers: []string{"seller_001", "seller_002", "seller_004", "seller_007", "seller_010"},
		Region:          "Brazil",
	},
	{
		ID: "buyer_013", Name: "Lucia Martinez", Company: "Wellness Pro",
		InvestmentAmount: 6000000, Locations: 2, FacilityType: "Wellness Center",
		SponsorshipTier: "Bronze",
		Interests:       []string{"Wellness", "Nutrition", "Supplements"},
		SelectedSellers: []string{"seller_005", "seller_006", "seller_008", "seller_011", "seller_003"},
		Region:          "Argentina",
	},
}

var nexoSellers = []models.Seller{
	{
		ID: "seller_001", Name: "Charly Chagas", Company: "Fitness Emporium",
		Products:       []string{"Equipment", "Technology"},
		SelectedBuyers: []string{"buyer_001", "buyer_003", "buyer_004", "buyer_006", "buyer_008", "buyer_009", "buyer_011", "buyer_012"},
		Region:         "Latin America",
	},
	{
		ID: "seller_002", Name: "Ariel Osso", Company: "Sonnos",
		Products:       []string{"Technology", "Software"},
		SelectedBuyers: []string{"buyer_001", "buyer_002", "buyer_005", "buyer_007", "buyer_010", "buyer_012"},
		Region:         "Latin America",
	},
	{
		ID: "seller_003", Name: "Rafa Martos", Company: "Intelinova Software",
		Products:       []string{"Software", "Technology"},
		SelectedBuyers: []string{"buyer_001", "buyer_002", "buyer_005", "buyer_008", "buyer_011", "buyer_013"},
		Region:         "Latin America",
	},
	{
		ID: "seller_004", Name: "Carlos Mendez", Company: "NutriMax",
		Products:       []string{"Supplements", "Nutrition"},
		SelectedBuyers: []string{"buyer_001", "buyer_003", "buyer_004", "buyer_006", "buyer_009", "buyer_012"},
		Region:         "Latin America",
	},
	{
		ID: "seller_005", Name: "Sandra Torres", Company: "WellTech Solutions",
		Products:       []string{"Wellness", "Technology"},
		SelectedBuyers: []string{"buyer_001", "buyer_003", "buyer_005", "buyer_007", "buyer_010", "buyer_013"},
		Region:         "Latin America",
	},
	{
		ID: "seller_006", Name: "Miguel Santos", Company: "FitEquip Pro",
		Products:       []string{"Equipment", "Accessories"},
		SelectedBuyers: []string{"buyer_002", "buyer_004", "buyer_006", "buyer_008", "buyer_011", "buyer_013"},
		Region:         "Brazil",
	},
	{
		ID: "seller_007", Name: "Andrea Vega", Company: "Wellness World",
		Products:       []string{"Wellness", "Supplements"},
		SelectedBuyers: []string{"buyer_002", "buyer_004", "buyer_007", "buyer_009", "buyer_012"},
		Region:         "Latin America",
	},
	{
		ID: "seller_008", Name: "Jorge Ramirez", Company: "TechFit",
		Products:       []string{"Technology", "Software"},
		SelectedBuyers: []string{"buyer_002", "buyer_005", "buyer_008", "buyer_010", "buyer_013"},
		Region:         "Mexico",
	},
	{
		ID: "seller_009", Name: "Cristina Herrera", Company: "NutriLife",
		Products:       []string{"Nutrition", "Supplements"},
		SelectedBuyers: []string{"buyer_003", "buyer_005", "buyer_007", "buyer_009", "buyer_011"},
		Region:         "Latin America",
	},
	{
		ID: "seller_010", Name: "Pablo Gutierrez", Company: "Strong Equipment",
		Products:       []string{"Equipment", "Accessories"},
		SelectedBuyers: []string{"buyer_003", "buyer_006", "buyer_008", "buyer_010", "buyer_012"},
		Region:         "Argentina",
	},
	{
		ID: "seller_011", Name: "Elena Rodriguez", Company: "Wellness Solutions",
		Products:       []string{"Wellness", "Technology"},
		SelectedBuyers: []string{"buyer_004", "buyer_006", "buyer_007", "buyer_009", "buyer_010", "buyer_011", "buyer_013"},
		Region:         "Colombia",
	},
}

// Buyers returns a deep copy of the NEXO 2023 buyer roster.
func Buyers() []*models.Buyer {
	out := make([]*models.Buyer, len(nexoBuyers))
	for i := range nexoBuyers {
		b := nexoBuyers[i]
		b.Interests = append([]string(nil), b.Interests...)
		b.SelectedSellers = append([]string(nil), b.SelectedSellers...)
		out[i] = &b
	}
	return out
}

// Sellers returns a deep copy of the NEXO 2023 seller roster.
func Sellers() []*models.Seller {
	out := make([]*models.Seller, len(nexoSellers))
	for i := range nexoSellers {
		s := nexoSellers[i]
		s.Products = append([]string(nil), s.Products...)
		s.SelectedBuyers = append([]string(nil), s.SelectedBuyers...)
		out[i] = &s
	}
	return out
}

// TimeSlots returns the 30 fifteen-minute slots across both event days.
func TimeSlots() []models.TimeSlot {
	times := []struct {
		date  string
		times []string
	}{
		{"2023-05-18", []string{
			"09:00", "09:15", "09:30", "09:45", "10:00", "10:15", "10:30",
			"10:45", "11:00", "11:15", "11:30", "11:45", "14:00", "14:15", "14:30",
		}},
		{"2023-05-19", []string{
			"09:00", "09:15", "09:30", "09:45", "10:00", "10:15", "10:30",
			"10:45", "11:00", "11:15", "11:30", "11:45", "14:00", "14:15", "14:30",
		}},
	}

	var slots []models.TimeSlot
	n := 1
	for _, day := range times {
		for _, t := range day.times {
			slots = append(slots, models.TimeSlot{
				ID:       slotID(n),
				Date:     day.date,
				Time:     t,
				Duration: 15,
			})
			n++
		}
	}
	return slots
}

func slotID(n int) string {
	return fmt.Sprintf("slot_%03d", n)
}
