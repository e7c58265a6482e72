package entities

import "time"

type Match struct {
	ID                     string
	ShipmentID             string
	CarrierID              string
	CarrierName            string
	Score                  int
	RawScore               float64
	DistanceKm             float64
	EstimatedCost          float64
	EstimatedDurationHours int
	Compatibility          CompatibilityFactors
	Insights               AIInsights
	Status                 MatchStatusType
	ExpiresAt              *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

type CompatibilityFactors struct {
	DistanceScore  int `json:"distance_score"`
	CapacityMatch  int `json:"capacity_match"`
	EquipmentMatch int `json:"equipment_match"`
	TimingScore    int `json:"timing_score"`
}

type AIInsights struct {
	Profitability  int            `json:"profitability"`
	Efficiency     int            `json:"efficiency"`
	Reliability    int            `json:"reliability"`
	Recommendation Recommendation `json:"recommendation"`
}

type Recommendation string

const (
	HighlyRecommended Recommendation = "Highly Recommended"
	GoodMatch         Recommendation = "Good Match"
	Consider          Recommendation = "Consider"
	NotRecommended    Recommendation = "Not Recommended"
)

type MatchStatusType string

const (
	MatchPending   MatchStatusType = "pending"
	MatchViewed    MatchStatusType = "viewed"
	MatchContacted MatchStatusType = "contacted"
	MatchExpired   MatchStatusType = "expired"
)

func (s MatchStatusType) String() string {
	return string(s)
}

// CanTransitionTo reports whether a match may move from s to next.
// Staying in the same status is allowed.
func (s MatchStatusType) CanTransitionTo(next MatchStatusType) bool {
	if s == next {
		return true
	}
	switch s {
	case MatchPending:
		return next == MatchViewed || next == MatchContacted || next == MatchExpired
	case MatchViewed:
		return next == MatchContacted
	default:
		return false
	}
}
