package model

import "fmt"

// SegmentKind distinguishes cash wedges from penalty wedges
type SegmentKind string

const (
	SegmentCash     SegmentKind = "cash"
	SegmentBankrupt SegmentKind = "bankrupt"
	SegmentLoseTurn SegmentKind = "lose_turn"
)

// Segment is a single wedge of the wheel
type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Value int         `json:"value,omitempty"` // Dollar value for cash wedges
}

// Penalty wedges
var (
	Bankrupt = Segment{Kind: SegmentBankrupt}
	LoseTurn = Segment{Kind: SegmentLoseTurn}
)

// Cash creates a cash wedge
func Cash(value int) Segment {
	return Segment{Kind: SegmentCash, Value: value}
}

// IsCash reports whether the wedge pays out
func (s Segment) IsCash() bool {
	return s.Kind == SegmentCash
}

func (s Segment) String() string {
	switch s.Kind {
	case SegmentBankrupt:
		return "BANKRUPT"
	case SegmentLoseTurn:
		return "LOSE A TURN"
	default:
		return fmt.Sprintf("$%d", s.Value)
	}
}
