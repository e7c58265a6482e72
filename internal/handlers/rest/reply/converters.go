package reply

import (
	"fmt"

	"loadhive/internal/entities"
	"loadhive/internal/generated/dto"

	"github.com/google/uuid"
)

func Match(m entities.Match) (dto.Match, error) {
	shipmentID, err := uuid.Parse(m.ShipmentID)
	if err != nil {
		return dto.Match{}, fmt.Errorf("match shipment id %q: %w", m.ShipmentID, err)
	}
	carrierID, err := uuid.Parse(m.CarrierID)
	if err != nil {
		return dto.Match{}, fmt.Errorf("match carrier id %q: %w", m.CarrierID, err)
	}

	res := dto.Match{
		ShipmentId:             shipmentID,
		CarrierId:              carrierID,
		CarrierName:            m.CarrierName,
		MatchScore:             m.Score,
		DistanceKm:             m.DistanceKm,
		EstimatedCost:          m.EstimatedCost,
		EstimatedDurationHours: m.EstimatedDurationHours,
		CompatibilityFactors: dto.CompatibilityFactors{
			DistanceScore:  m.Compatibility.DistanceScore,
			CapacityMatch:  m.Compatibility.CapacityMatch,
			EquipmentMatch: m.Compatibility.EquipmentMatch,
			TimingScore:    m.Compatibility.TimingScore,
		},
		AiInsights: dto.AiInsights{
			Profitability:  m.Insights.Profitability,
			Efficiency:     m.Insights.Efficiency,
			Reliability:    m.Insights.Reliability,
			Recommendation: dto.AiInsightsRecommendation(m.Insights.Recommendation),
		},
		Status:    dto.MatchStatus(m.Status),
		ExpiresAt: m.ExpiresAt,
	}

	// previews are never stored and carry no id
	if m.ID != "" {
		id, err := uuid.Parse(m.ID)
		if err != nil {
			return dto.Match{}, fmt.Errorf("match id %q: %w", m.ID, err)
		}
		res.Id = &id
	}
	if !m.CreatedAt.IsZero() {
		createdAt := m.CreatedAt
		res.CreatedAt = &createdAt
	}

	return res, nil
}

// Matches never returns nil so an empty result encodes as [].
func Matches(matches []entities.Match) ([]dto.Match, error) {
	res := make([]dto.Match, 0, len(matches))
	for _, m := range matches {
		d, err := Match(m)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}
