package match_score

import (
	"errors"
	"fmt"
)

// Policy holds every tunable of the scoring function.
type Policy struct {
	BaseScore float64

	EquipmentBonus float64

	CapacityHeadroomRatio    float64
	CapacityHeadroomBonus    float64
	CapacityShortfallPenalty float64

	DistanceKmPerPoint float64
	DistanceMaxPenalty float64

	TimingExactDays   float64
	TimingExactBonus  float64
	TimingCloseDays   float64
	TimingCloseBonus  float64
	TimingLateDays    float64
	TimingLatePenalty float64
	TimingScorePerDay float64

	MinScore   int
	MaxResults int

	CostFactorPer1000Km float64
	AverageSpeedKmh     float64

	ProfitabilityBase        float64
	ProfitabilityRatePerUnit float64
	EfficiencyBase           float64
	EfficiencyKmPerPoint     float64
	ReliabilityMin           float64
	ReliabilityMax           float64
	ReliabilityDefault       float64

	HighlyRecommendedFrom int
	GoodMatchFrom         int
	ConsiderFrom          int
}

func DefaultPolicy() Policy {
	return Policy{
		BaseScore: 100,

		EquipmentBonus: 15,

		CapacityHeadroomRatio:    1.2,
		CapacityHeadroomBonus:    10,
		CapacityShortfallPenalty: 30,

		DistanceKmPerPoint: 50,
		DistanceMaxPenalty: 50,

		TimingExactDays:   1,
		TimingExactBonus:  20,
		TimingCloseDays:   3,
		TimingCloseBonus:  10,
		TimingLateDays:    7,
		TimingLatePenalty: 15,
		TimingScorePerDay: 10,

		MinScore:   30,
		MaxResults: 10,

		CostFactorPer1000Km: 0.1,
		AverageSpeedKmh:     80,

		ProfitabilityBase:        60,
		ProfitabilityRatePerUnit: 100,
		EfficiencyBase:           80,
		EfficiencyKmPerPoint:     20,
		ReliabilityMin:           75,
		ReliabilityMax:           95,
		ReliabilityDefault:       85,

		HighlyRecommendedFrom: 80,
		GoodMatchFrom:         60,
		ConsiderFrom:          40,
	}
}

var ErrInvalidPolicy = errors.New("invalid scoring policy")

func (p Policy) Validate() error {
	switch {
	case p.MinScore < 0 || p.MinScore > maxScore:
		return fmt.Errorf("%w: min score %d out of [0,100]", ErrInvalidPolicy, p.MinScore)
	case p.MaxResults <= 0:
		return fmt.Errorf("%w: max results must be positive", ErrInvalidPolicy)
	case p.DistanceKmPerPoint <= 0:
		return fmt.Errorf("%w: distance km per point must be positive", ErrInvalidPolicy)
	case p.AverageSpeedKmh <= 0:
		return fmt.Errorf("%w: average speed must be positive", ErrInvalidPolicy)
	case p.ProfitabilityRatePerUnit <= 0 || p.EfficiencyKmPerPoint <= 0:
		return fmt.Errorf("%w: insight divisors must be positive", ErrInvalidPolicy)
	case p.ReliabilityMin > p.ReliabilityMax:
		return fmt.Errorf("%w: reliability range is inverted", ErrInvalidPolicy)
	case p.ReliabilityDefault < p.ReliabilityMin || p.ReliabilityDefault > p.ReliabilityMax:
		return fmt.Errorf("%w: reliability default outside range", ErrInvalidPolicy)
	}
	return nil
}
