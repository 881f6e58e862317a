package response

import (
	"time"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/bot"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
)

// Player represents a player in API responses
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	IsAI     bool   `json:"is_ai"`
	Score    int    `json:"score"`
	Active   bool   `json:"active"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:       string(p.ID),
		Name:     p.Name,
		Strategy: string(p.Strategy),
		IsAI:     p.Strategy.IsAI(),
		Score:    p.Score,
		Active:   p.ActiveInRound,
	}
}

// Round is the public view of a round. The solution is only included once
// the round is over.
type Round struct {
	ID             string            `json:"id"`
	Display        string            `json:"display"`
	Category       string            `json:"category"`
	Phase          string            `json:"phase"`
	Players        []Player          `json:"players"`
	CurrentPlayer  string            `json:"current_player,omitempty"`
	PendingValue   int               `json:"pending_value,omitempty"`
	Guessed        model.LetterSet   `json:"guessed"`
	Turn           int               `json:"turn"`
	HintsRemaining int               `json:"hints_remaining"`
	Config         model.RoundConfig `json:"config"`
	Winner         string            `json:"winner,omitempty"`
	Solution       string            `json:"solution,omitempty"`
	Standings      []Player          `json:"standings,omitempty"`
	History        []Event           `json:"history,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// RoundFromModel converts a model.Round. History is only included when
// withHistory is set.
func RoundFromModel(r *model.Round, withHistory bool) Round {
	resp := Round{
		ID:             string(r.ID),
		Display:        r.State.Render(),
		Category:       r.State.Puzzle.Category,
		Phase:          string(r.Phase),
		Players:        make([]Player, len(r.Players)),
		PendingValue:   r.PendingValue,
		Guessed:        r.State.Guessed,
		Turn:           r.Turn,
		HintsRemaining: r.HintsRemaining(),
		Config:         r.Config,
		Winner:         string(r.Winner),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	for i, p := range r.Players {
		resp.Players[i] = PlayerFromModel(p)
	}

	if r.IsOver() {
		resp.Solution = r.State.Puzzle.Solution
		for _, p := range r.Standings() {
			resp.Standings = append(resp.Standings, PlayerFromModel(p))
		}
	} else if p := r.CurrentPlayer(); p != nil {
		resp.CurrentPlayer = string(p.ID)
	}

	if withHistory {
		resp.History = make([]Event, len(r.History))
		for i, e := range r.History {
			resp.History[i] = EventFromModel(e)
		}
	}
	return resp
}

// Event is an entry in a round's history
type Event struct {
	Type      string    `json:"type"`
	PlayerID  string    `json:"player_id,omitempty"`
	Turn      int       `json:"turn"`
	Letter    string    `json:"letter,omitempty"`
	Count     int       `json:"count,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EventFromModel converts a model.RoundEvent
func EventFromModel(e model.RoundEvent) Event {
	return Event{
		Type:      string(e.Type),
		PlayerID:  string(e.PlayerID),
		Turn:      e.Turn,
		Letter:    e.Letter,
		Count:     e.Count,
		Amount:    e.Amount,
		Detail:    e.Detail,
		Timestamp: e.Timestamp,
	}
}

// Action is an applied action with its letter as a string
type Action struct {
	Kind       string `json:"kind"`
	Letter     string `json:"letter,omitempty"`
	Guess      string `json:"guess,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// ActionFromModel converts a model.Action
func ActionFromModel(a model.Action) Action {
	resp := Action{
		Kind:       string(a.Kind),
		Guess:      a.Guess,
		Difficulty: a.Difficulty,
	}
	if a.Letter != 0 {
		resp.Letter = string(a.Letter)
	}
	return resp
}

// Result describes the effect of an action
type Result struct {
	Action            Action `json:"action"`
	PlayerID          string `json:"player_id"`
	Outcome           string `json:"outcome,omitempty"`
	Occurrences       int    `json:"occurrences"`
	ScoreDelta        int    `json:"score_delta"`
	Correct           bool   `json:"correct,omitempty"`
	AwaitingConsonant bool   `json:"awaiting_consonant,omitempty"`
	TurnPassed        bool   `json:"turn_passed"`
	RoundOver         bool   `json:"round_over"`
	HintsRemaining    int    `json:"hints_remaining"`
	Winner            string `json:"winner,omitempty"`
}

// ResultFromModel converts a model.ActionResult
func ResultFromModel(r model.ActionResult) Result {
	resp := Result{
		Action:            ActionFromModel(r.Action),
		PlayerID:          string(r.PlayerID),
		Occurrences:       r.Occurrences,
		ScoreDelta:        r.ScoreDelta,
		Correct:           r.Correct,
		AwaitingConsonant: r.AwaitingConsonant,
		TurnPassed:        r.TurnPassed,
		RoundOver:         r.RoundOver,
		HintsRemaining:    r.HintsRemaining,
		Winner:            string(r.Winner),
	}
	if r.Outcome != nil {
		resp.Outcome = r.Outcome.String()
	}
	return resp
}

// ActionResponse is the response for applying an action
type ActionResponse struct {
	Result Result `json:"result"`
	Hint   string `json:"hint,omitempty"`
	Round  Round  `json:"round"`
}

// Move is one action taken by a computer player
type Move struct {
	PlayerID string `json:"player_id"`
	Strategy string `json:"strategy"`
	Result   Result `json:"result"`
	Hint     string `json:"hint,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// MoveFromBot converts a bot.Move
func MoveFromBot(m bot.Move) Move {
	return Move{
		PlayerID: string(m.PlayerID),
		Strategy: string(m.Strategy),
		Result:   ResultFromModel(m.Result),
		Hint:     m.Hint,
		Fallback: m.Fallback,
	}
}

// AITurnResponse is the response for running computer turns
type AITurnResponse struct {
	Moves []Move `json:"moves"`
	Round Round  `json:"round"`
}

// HintResponse is the response for a hint request
type HintResponse struct {
	Hint           string `json:"hint"`
	HintsRemaining int    `json:"hints_remaining"`
	Round          Round  `json:"round"`
}

// Strategy describes an available player strategy
type Strategy struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	IsAI bool   `json:"is_ai"`
}

// StrategiesResponse lists the strategies a round can seat
type StrategiesResponse struct {
	Strategies []Strategy `json:"strategies"`
}

// WheelResponse describes the wheel in use
type WheelResponse struct {
	Segments        []string `json:"segments"`
	MeanPayout      float64  `json:"mean_payout"`
	MeanCash        float64  `json:"mean_cash"`
	MaxCash         float64  `json:"max_cash"`
	BankruptDensity float64  `json:"bankrupt_density"`
	LoseTurnDensity float64  `json:"lose_turn_density"`
}

// WheelFromModel describes segments and their statistics
func WheelFromModel(segments []model.Segment, stats wheel.Stats) WheelResponse {
	resp := WheelResponse{
		Segments:        make([]string, len(segments)),
		MeanPayout:      stats.MeanPayout,
		MeanCash:        stats.MeanCash,
		MaxCash:         stats.MaxCash,
		BankruptDensity: stats.BankruptDensity,
		LoseTurnDensity: stats.LoseTurnDensity,
	}
	for i, s := range segments {
		resp.Segments[i] = s.String()
	}
	return resp
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status string `json:"status"`
}
