package match

import "loadhive/internal/entities"

func ToDomain(m *MatchDB) *entities.Match {
	if m == nil {
		return nil
	}

	match := &entities.Match{
		ID:          m.ID,
		ShipmentID:  m.ShipmentID,
		CarrierID:   m.CarrierID,
		CarrierName: m.CarrierName,
		Score:       m.MatchScore,
		RawScore:    float64(m.MatchScore),
		Compatibility: entities.CompatibilityFactors{
			DistanceScore:  m.CompatibilityFactors.DistanceScore,
			CapacityMatch:  m.CompatibilityFactors.CapacityMatch,
			EquipmentMatch: m.CompatibilityFactors.EquipmentMatch,
			TimingScore:    m.CompatibilityFactors.TimingScore,
		},
		Insights: entities.AIInsights{
			Profitability:  m.AIInsights.Profitability,
			Efficiency:     m.AIInsights.Efficiency,
			Reliability:    m.AIInsights.Reliability,
			Recommendation: entities.Recommendation(m.AIInsights.Recommendation),
		},
		Status:    entities.MatchStatusType(m.Status),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
	if m.DistanceKm != nil {
		match.DistanceKm = *m.DistanceKm
	}
	if m.EstimatedCost != nil {
		match.EstimatedCost = *m.EstimatedCost
	}
	if m.EstimatedDurationHours != nil {
		match.EstimatedDurationHours = *m.EstimatedDurationHours
	}
	if m.ExpiresAt != nil {
		expiresAt := m.ExpiresAt.UTC()
		match.ExpiresAt = &expiresAt
	}
	return match
}

func FromDomain(m *entities.Match) *MatchDB {
	if m == nil {
		return nil
	}

	distance := m.DistanceKm
	cost := m.EstimatedCost
	duration := m.EstimatedDurationHours

	return &MatchDB{
		ID:                     m.ID,
		ShipmentID:             m.ShipmentID,
		CarrierID:              m.CarrierID,
		CarrierName:            m.CarrierName,
		MatchScore:             m.Score,
		DistanceKm:             &distance,
		EstimatedCost:          &cost,
		EstimatedDurationHours: &duration,
		CompatibilityFactors: CompatibilityFactorsDB{
			DistanceScore:  m.Compatibility.DistanceScore,
			CapacityMatch:  m.Compatibility.CapacityMatch,
			EquipmentMatch: m.Compatibility.EquipmentMatch,
			TimingScore:    m.Compatibility.TimingScore,
		},
		AIInsights: AIInsightsDB{
			Profitability:  m.Insights.Profitability,
			Efficiency:     m.Insights.Efficiency,
			Reliability:    m.Insights.Reliability,
			Recommendation: string(m.Insights.Recommendation),
		},
		Status:    m.Status.String(),
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
