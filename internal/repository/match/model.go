package match

import "time"

type MatchDB struct {
	ID                     string
	ShipmentID             string
	CarrierID              string
	CarrierName            string
	MatchScore             int
	DistanceKm             *float64
	EstimatedCost          *float64
	EstimatedDurationHours *int
	CompatibilityFactors   CompatibilityFactorsDB
	AIInsights             AIInsightsDB
	Status                 string
	ExpiresAt              *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// jsonb columns

type CompatibilityFactorsDB struct {
	DistanceScore  int `json:"distance_score"`
	CapacityMatch  int `json:"capacity_match"`
	EquipmentMatch int `json:"equipment_match"`
	TimingScore    int `json:"timing_score"`
}

type AIInsightsDB struct {
	Profitability  int    `json:"profitability"`
	Efficiency     int    `json:"efficiency"`
	Reliability    int    `json:"reliability"`
	Recommendation string `json:"recommendation"`
}
