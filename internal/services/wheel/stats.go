package wheel

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Stats summarizes the payout profile of a wheel
type Stats struct {
	Segments int `json:"segments"`

	// MeanPayout is the expected cash per spin, counting penalty wedges as zero
	MeanPayout float64 `json:"mean_payout"`

	// MeanCash is the average value of the cash wedges alone
	MeanCash float64 `json:"mean_cash"`
	MaxCash  float64 `json:"max_cash"`

	BankruptDensity float64 `json:"bankrupt_density"`
	LoseTurnDensity float64 `json:"lose_turn_density"`
}

// PenaltyDensity returns the chance that a spin ends the turn without pay
func (s Stats) PenaltyDensity() float64 {
	return s.BankruptDensity + s.LoseTurnDensity
}

// Stats computes the payout profile of the wheel
func (w *Wheel) Stats() Stats {
	return ComputeStats(w.segments)
}

// ComputeStats computes the payout profile of a segment list
func ComputeStats(segments []model.Segment) Stats {
	if len(segments) == 0 {
		return Stats{}
	}
	payouts := make([]float64, len(segments))
	cash := make([]float64, 0, len(segments))
	var bankrupt, loseTurn float64
	for i, s := range segments {
		switch s.Kind {
		case model.SegmentCash:
			payouts[i] = float64(s.Value)
			cash = append(cash, float64(s.Value))
		case model.SegmentBankrupt:
			bankrupt++
		case model.SegmentLoseTurn:
			loseTurn++
		}
	}

	n := float64(len(segments))
	stats := Stats{
		Segments:        len(segments),
		MeanPayout:      stat.Mean(payouts, nil),
		BankruptDensity: bankrupt / n,
		LoseTurnDensity: loseTurn / n,
	}
	if len(cash) > 0 {
		stats.MeanCash = stat.Mean(cash, nil)
		stats.MaxCash = floats.Max(cash)
	}
	return stats
}
