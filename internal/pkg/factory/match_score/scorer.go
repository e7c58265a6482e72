package match_score

import (
	"math"
	"sort"
	"time"

	"loadhive/internal/entities"
	"loadhive/internal/pkg/geo"
)

const (
	minScore = 0
	maxScore = 100
)

type Scorer struct {
	policy Policy
}

func New(policy Policy) *Scorer {
	return &Scorer{policy: policy}
}

func (s *Scorer) Policy() Policy {
	return s.policy
}

// Score rates one carrier location against a shipment whose pickup point is origin.
// A carrier without available_from is treated as available at now.
// The returned match has no id, status or timestamps.
func (s *Scorer) Score(shipment entities.Shipment, origin entities.GeoPoint, location entities.CarrierLocation, now time.Time) entities.Match {
	p := s.policy

	// derived fields are computed from the stored (rounded) distance so they stay reproducible
	distance := roundTo(geo.DistanceKm(origin, location.Point), 2)

	raw := p.BaseScore

	equipmentMatch := location.Supports(shipment.Equipment)
	if equipmentMatch {
		raw += p.EquipmentBonus
	}

	ratio := capacityRatio(location.CapacityKg, shipment.WeightKg)
	switch {
	case ratio >= p.CapacityHeadroomRatio:
		raw += p.CapacityHeadroomBonus
	case ratio < 1:
		raw -= p.CapacityShortfallPenalty
	}

	distancePenalty := math.Min(distance/p.DistanceKmPerPoint, p.DistanceMaxPenalty)
	raw -= distancePenalty

	availableFrom := now
	if location.AvailableFrom != nil {
		availableFrom = *location.AvailableFrom
	}
	days := math.Abs(shipment.PickupDate.Sub(availableFrom).Hours()) / 24
	switch {
	case days <= p.TimingExactDays:
		raw += p.TimingExactBonus
	case days <= p.TimingCloseDays:
		raw += p.TimingCloseBonus
	case days > p.TimingLateDays:
		raw -= p.TimingLatePenalty
	}

	score := int(math.Round(clamp(raw, minScore, maxScore)))

	return entities.Match{
		ShipmentID:             shipment.ID,
		CarrierID:              location.CarrierID,
		CarrierName:            location.CarrierName,
		Score:                  score,
		RawScore:               raw,
		DistanceKm:             distance,
		EstimatedCost:          math.Round(shipment.Rate * (1 + distance/1000*p.CostFactorPer1000Km)),
		EstimatedDurationHours: int(math.Ceil(distance / p.AverageSpeedKmh)),
		Compatibility: entities.CompatibilityFactors{
			DistanceScore:  percent(maxScore - distancePenalty),
			CapacityMatch:  capacityMatch(ratio),
			EquipmentMatch: equipmentScore(equipmentMatch),
			TimingScore:    s.timingScore(days),
		},
		Insights: entities.AIInsights{
			Profitability:  percent(p.ProfitabilityBase + shipment.Rate/p.ProfitabilityRatePerUnit),
			Efficiency:     percent(p.EfficiencyBase - distance/p.EfficiencyKmPerPoint),
			Reliability:    s.reliability(location.History),
			Recommendation: s.recommend(score),
		},
	}
}

// Admit reports whether a scored match passes the admission threshold.
func (s *Scorer) Admit(match entities.Match) bool {
	return match.Score >= s.policy.MinScore
}

// Rank orders matches by score desc, distance asc, carrier id asc and keeps the top MaxResults.
// The input slice is reordered in place.
func (s *Scorer) Rank(matches []entities.Match) []entities.Match {
	sort.SliceStable(matches, func(i, j int) bool {
		return Less(matches[i], matches[j])
	})
	if len(matches) > s.policy.MaxResults {
		matches = matches[:s.policy.MaxResults]
	}
	return matches
}

// Less is the total order used for ranked match lists.
func Less(a, b entities.Match) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.DistanceKm != b.DistanceKm {
		return a.DistanceKm < b.DistanceKm
	}
	return a.CarrierID < b.CarrierID
}

func (s *Scorer) timingScore(days float64) int {
	if days <= s.policy.TimingExactDays {
		return maxScore
	}
	return percent(maxScore - days*s.policy.TimingScorePerDay)
}

func (s *Scorer) reliability(history entities.CarrierHistory) int {
	p := s.policy
	finished := history.Delivered + history.Cancelled
	if finished <= 0 {
		return percent(p.ReliabilityDefault)
	}
	ratio := float64(history.Delivered) / float64(finished)
	return percent(p.ReliabilityMin + (p.ReliabilityMax-p.ReliabilityMin)*ratio)
}

func (s *Scorer) recommend(score int) entities.Recommendation {
	switch {
	case score >= s.policy.HighlyRecommendedFrom:
		return entities.HighlyRecommended
	case score >= s.policy.GoodMatchFrom:
		return entities.GoodMatch
	case score >= s.policy.ConsiderFrom:
		return entities.Consider
	default:
		return entities.NotRecommended
	}
}

func capacityRatio(capacityKg, weightKg float64) float64 {
	if weightKg <= 0 {
		return math.Inf(1)
	}
	return capacityKg / weightKg
}

func capacityMatch(ratio float64) int {
	if ratio >= 1 {
		return maxScore
	}
	return percent(ratio * 100)
}

func equipmentScore(match bool) int {
	if match {
		return maxScore
	}
	return minScore
}

func percent(v float64) int {
	return int(math.Round(clamp(v, minScore, maxScore)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundTo(v float64, places int) float64 {
	pow := math.Pow10(places)
	return math.Round(v*pow) / pow
}
