package round

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/clock"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
)

// Engine applies actions to a round. It owns no storage; callers load and
// save the round around each call. Every action is validated before any
// state is touched, so a rejected action leaves the round unchanged.
type Engine struct {
	round  *model.Round
	wheel  *wheel.Wheel
	clock  clock.Clock
	logger zerolog.Logger
}

// New starts a round for the given players. Scores are reset and the first
// player in the list takes the first turn.
func New(
	id model.RoundID,
	puzzle model.Puzzle,
	players []model.Player,
	w *wheel.Wheel,
	cfg model.RoundConfig,
	clk clock.Clock,
	logger zerolog.Logger,
) (*Engine, error) {
	if err := puzzle.Validate(); err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, model.ErrNotEnoughPlayers
	}
	if w == nil {
		return nil, fmt.Errorf("%w: no wheel", model.ErrConfiguration)
	}
	if cfg.VowelCost < 0 || cfg.MaxHints < 0 || cfg.MaxTurns < 0 {
		return nil, fmt.Errorf("%w: negative round limit", model.ErrConfiguration)
	}

	seen := make(map[model.PlayerID]bool, len(players))
	roster := make([]model.Player, len(players))
	for i, p := range players {
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %s", model.ErrDuplicatePlayerID, p.ID)
		}
		seen[p.ID] = true
		p.Score = 0
		p.ActiveInRound = true
		roster[i] = p
	}

	now := clk.Now()
	r := &model.Round{
		ID:        id,
		State:     model.NewPuzzleState(puzzle),
		Config:    cfg,
		Phase:     model.PhaseAwaitingAction,
		Players:   roster,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return Resume(r, w, clk, logger), nil
}

// Resume wraps an existing round, e.g. one loaded from storage
func Resume(r *model.Round, w *wheel.Wheel, clk clock.Clock, logger zerolog.Logger) *Engine {
	return &Engine{
		round:  r,
		wheel:  w,
		clock:  clk,
		logger: logger.With().Str("component", "round").Str("round_id", string(r.ID)).Logger(),
	}
}

// Round returns the underlying round
func (e *Engine) Round() *model.Round {
	return e.round
}

// State returns the puzzle state
func (e *Engine) State() *model.PuzzleState {
	return e.round.State
}

// Render returns the puzzle display
func (e *Engine) Render() string {
	return e.round.State.Render()
}

// IsOver reports whether the round has ended
func (e *Engine) IsOver() bool {
	return e.round.IsOver()
}

// Apply performs action for the current player
func (e *Engine) Apply(action model.Action) (model.ActionResult, error) {
	r := e.round
	if r.IsOver() {
		return model.ActionResult{}, model.ErrRoundOver
	}

	before := r.Clone()
	player := r.CurrentPlayer()
	action.Letter = model.NormalizeLetter(action.Letter)
	result := model.ActionResult{
		Action:   action,
		PlayerID: player.ID,
	}

	var err error
	switch action.Kind {
	case model.ActionSpin:
		err = e.spin(action, player, &result)
	case model.ActionGuessConsonant:
		err = e.guessConsonant(action, player, &result)
	case model.ActionBuyVowel:
		err = e.buyVowel(action, player, &result)
	case model.ActionSolve:
		err = e.solve(action, player, &result)
	case model.ActionHint:
		err = e.hint(action, player, &result)
	case model.ActionPass:
		err = e.pass(player, &result)
	default:
		err = fmt.Errorf("%w: unknown action %q", model.ErrIllegalAction, action.Kind)
	}
	if err != nil {
		*r = *before
		return model.ActionResult{}, err
	}

	e.checkEnd(player, &result)
	result.HintsRemaining = r.HintsRemaining()
	result.Winner = r.Winner
	r.UpdatedAt = e.clock.Now()

	e.logger.Debug().
		Str("player_id", string(player.ID)).
		Str("action", string(action.Kind)).
		Int("score_delta", result.ScoreDelta).
		Int("occurrences", result.Occurrences).
		Bool("turn_passed", result.TurnPassed).
		Bool("round_over", result.RoundOver).
		Msg("action applied")

	return result, nil
}

func (e *Engine) spin(action model.Action, player *model.Player, result *model.ActionResult) error {
	r := e.round
	if r.Phase != model.PhaseAwaitingAction {
		return fmt.Errorf("%w: spin while %s", model.ErrIllegalAction, r.Phase)
	}
	if action.Letter != 0 {
		if err := e.validateSpinLetter(action.Letter); err != nil {
			return err
		}
	} else if !e.hasSpinLetter() {
		return fmt.Errorf("%w: no consonants left to call", model.ErrNoCandidate)
	}

	segment := e.wheel.Spin()
	result.Outcome = &segment
	e.record(model.EventSpin, player.ID, "", 0, segment.Value, segment.String())

	switch segment.Kind {
	case model.SegmentBankrupt:
		result.ScoreDelta = -player.Score
		e.record(model.EventBankrupt, player.ID, "", 0, player.Score, "")
		player.Score = 0
		e.passTurn(result)
	case model.SegmentLoseTurn:
		e.record(model.EventLoseTurn, player.ID, "", 0, 0, "")
		e.passTurn(result)
	default:
		if action.Letter == 0 {
			r.Phase = model.PhaseAwaitingConsonant
			r.PendingValue = segment.Value
			result.AwaitingConsonant = true
			return nil
		}
		return e.callLetter(action.Letter, segment.Value, player, result)
	}
	return nil
}

func (e *Engine) guessConsonant(action model.Action, player *model.Player, result *model.ActionResult) error {
	r := e.round
	if r.Phase != model.PhaseAwaitingConsonant {
		return fmt.Errorf("%w: no spin awaiting a consonant", model.ErrIllegalAction)
	}
	if err := e.validateSpinLetter(action.Letter); err != nil {
		return err
	}

	value := r.PendingValue
	r.PendingValue = 0
	r.Phase = model.PhaseAwaitingAction
	result.Outcome = &model.Segment{Kind: model.SegmentCash, Value: value}
	return e.callLetter(action.Letter, value, player, result)
}

// callLetter reveals a letter worth value per occurrence. A miss passes the turn.
func (e *Engine) callLetter(letter rune, value int, player *model.Player, result *model.ActionResult) error {
	count, err := e.round.State.Reveal(letter)
	if err != nil {
		return err
	}
	result.Occurrences = count
	if count == 0 {
		e.record(model.EventLetterMissed, player.ID, string(letter), 0, 0, "")
		e.passTurn(result)
		return nil
	}
	result.ScoreDelta = value * count
	player.Score += result.ScoreDelta
	e.record(model.EventLetterRevealed, player.ID, string(letter), count, result.ScoreDelta, "")
	return nil
}

func (e *Engine) buyVowel(action model.Action, player *model.Player, result *model.ActionResult) error {
	r := e.round
	if r.Phase != model.PhaseAwaitingAction {
		return fmt.Errorf("%w: buy vowel while %s", model.ErrIllegalAction, r.Phase)
	}
	if !model.IsVowel(action.Letter) {
		return fmt.Errorf("%w: %q is not a vowel", model.ErrInvalidLetter, action.Letter)
	}
	if r.State.IsGuessed(action.Letter) {
		return fmt.Errorf("%w: %c", model.ErrAlreadyGuessed, action.Letter)
	}
	if player.Score < r.Config.VowelCost {
		return fmt.Errorf("%w: have $%d, vowel costs $%d", model.ErrInsufficientFunds, player.Score, r.Config.VowelCost)
	}

	count, err := r.State.Reveal(action.Letter)
	if err != nil {
		return err
	}
	player.Score -= r.Config.VowelCost
	result.ScoreDelta = -r.Config.VowelCost
	result.Occurrences = count
	e.record(model.EventVowelBought, player.ID, string(action.Letter), count, r.Config.VowelCost, "")
	if count == 0 {
		e.passTurn(result)
	}
	return nil
}

func (e *Engine) solve(action model.Action, player *model.Player, result *model.ActionResult) error {
	r := e.round
	if r.Phase != model.PhaseAwaitingAction {
		return fmt.Errorf("%w: solve while %s", model.ErrIllegalAction, r.Phase)
	}
	guess := NormalizeGuess(action.Guess)
	if guess == "" {
		return model.ErrEmptyGuess
	}

	if guess != NormalizeGuess(r.State.Puzzle.Solution) {
		e.record(model.EventSolveIncorrect, player.ID, "", 0, 0, guess)
		e.passTurn(result)
		return nil
	}

	r.State.MarkSolved()
	result.Correct = true
	e.record(model.EventSolveCorrect, player.ID, "", 0, player.Score, guess)
	return nil
}

func (e *Engine) hint(action model.Action, player *model.Player, result *model.ActionResult) error {
	r := e.round
	if r.Phase != model.PhaseAwaitingAction {
		return fmt.Errorf("%w: hint while %s", model.ErrIllegalAction, r.Phase)
	}
	if r.HintsUsed >= r.Config.MaxHints {
		return fmt.Errorf("%w: all %d hints used", model.ErrHintQuotaExhausted, r.Config.MaxHints)
	}
	r.HintsUsed++
	e.record(model.EventHintUsed, player.ID, "", 0, 0, action.Hint)
	return nil
}

func (e *Engine) pass(player *model.Player, result *model.ActionResult) error {
	r := e.round
	r.PendingValue = 0
	r.Phase = model.PhaseAwaitingAction
	e.record(model.EventPassed, player.ID, "", 0, 0, "")
	e.passTurn(result)
	return nil
}

// validateSpinLetter checks a letter called against a cash wedge
func (e *Engine) validateSpinLetter(letter rune) error {
	if !model.IsLetter(letter) {
		return fmt.Errorf("%w: %q", model.ErrInvalidLetter, letter)
	}
	if model.IsVowel(letter) && !e.round.Config.VowelsOnSpin {
		return fmt.Errorf("%w: vowels must be bought", model.ErrInvalidLetter)
	}
	if e.round.State.IsGuessed(letter) {
		return fmt.Errorf("%w: %c", model.ErrAlreadyGuessed, letter)
	}
	return nil
}

// hasSpinLetter reports whether any letter could still be called on a spin
func (e *Engine) hasSpinLetter() bool {
	state := e.round.State
	if state.HasUnguessed(false) {
		return true
	}
	return e.round.Config.VowelsOnSpin && state.HasUnguessed(true)
}

// canBuyVowel reports whether any player could still buy a vowel
func (e *Engine) canBuyVowel() bool {
	if !e.round.State.HasUnguessed(true) {
		return false
	}
	for _, p := range e.round.Players {
		if p.ActiveInRound && p.Score >= e.round.Config.VowelCost {
			return true
		}
	}
	return false
}

func (e *Engine) passTurn(result *model.ActionResult) {
	r := e.round
	r.PendingValue = 0
	r.Phase = model.PhaseAwaitingAction
	r.CurrentIdx = (r.CurrentIdx + 1) % len(r.Players)
	r.Turn++
	result.TurnPassed = true
}

// checkEnd ends the round when it is solved, when no letter can be called
// or bought, or when the turn cap is reached
func (e *Engine) checkEnd(player *model.Player, result *model.ActionResult) {
	r := e.round
	if r.IsOver() {
		return
	}

	reason := ""
	switch {
	case r.State.IsSolved():
		r.Winner = player.ID
		reason = "solved"
	case r.Phase == model.PhaseAwaitingAction && !e.hasSpinLetter() && !e.canBuyVowel():
		reason = "exhausted"
	case r.Config.MaxTurns > 0 && r.Turn >= r.Config.MaxTurns:
		reason = "turn_limit"
	default:
		return
	}

	r.Phase = model.PhaseRoundOver
	r.PendingValue = 0
	result.RoundOver = true
	e.record(model.EventRoundOver, r.Winner, "", 0, 0, reason)
	e.logger.Info().
		Str("winner", string(r.Winner)).
		Str("reason", reason).
		Int("turns", r.Turn).
		Msg("round over")
}

func (e *Engine) record(t model.EventType, playerID model.PlayerID, letter string, count, amount int, detail string) {
	e.round.History = append(e.round.History, model.RoundEvent{
		Type:      t,
		PlayerID:  playerID,
		Turn:      e.round.Turn,
		Letter:    letter,
		Count:     count,
		Amount:    amount,
		Detail:    detail,
		Timestamp: e.clock.Now(),
	})
}

// NormalizeGuess upper-cases a solve attempt and collapses whitespace
func NormalizeGuess(guess string) string {
	return strings.Join(strings.Fields(cases.Upper(language.Und).String(guess)), " ")
}
