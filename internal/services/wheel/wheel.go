package wheel

import (
	"fmt"
	"slices"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/random"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Wheel is a fixed sequence of segments spun uniformly at random
type Wheel struct {
	segments []model.Segment
	random   random.Random
}

// DefaultSegments returns the standard 24-wedge wheel: two BANKRUPT, one
// LOSE A TURN and cash wedges from $500 to $900
func DefaultSegments() []model.Segment {
	cash := model.Cash
	return []model.Segment{
		model.LoseTurn, model.Bankrupt,
		cash(500), cash(550), cash(600), cash(650), cash(700), cash(750), cash(800), cash(850), cash(900),
		model.Bankrupt,
		cash(500), cash(550), cash(600), cash(650), cash(700), cash(750), cash(800), cash(850), cash(900),
		cash(500), cash(550), cash(600),
	}
}

// New creates a wheel. At least one segment is required and cash wedges
// must not be negative.
func New(segments []model.Segment, rnd random.Random) (*Wheel, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: wheel has no segments", model.ErrConfiguration)
	}
	for i, s := range segments {
		switch s.Kind {
		case model.SegmentCash:
			if s.Value < 0 {
				return nil, fmt.Errorf("%w: segment %d has negative value %d", model.ErrConfiguration, i, s.Value)
			}
		case model.SegmentBankrupt, model.SegmentLoseTurn:
		default:
			return nil, fmt.Errorf("%w: segment %d has unknown kind %q", model.ErrConfiguration, i, s.Kind)
		}
	}
	return &Wheel{
		segments: slices.Clone(segments),
		random:   rnd,
	}, nil
}

// NewDefault creates the standard wheel
func NewDefault(rnd random.Random) *Wheel {
	w, _ := New(DefaultSegments(), rnd)
	return w
}

// Spin returns a uniformly chosen segment
func (w *Wheel) Spin() model.Segment {
	idx := w.random.Intn(len(w.segments))
	if idx < 0 || idx >= len(w.segments) {
		idx = 0
	}
	return w.segments[idx]
}

// Segments returns a copy of the wheel's segments
func (w *Wheel) Segments() []model.Segment {
	return slices.Clone(w.segments)
}
