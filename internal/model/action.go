package model

// ActionKind is the type of move a player makes on their turn
type ActionKind string

const (
	ActionSpin           ActionKind = "spin"
	ActionGuessConsonant ActionKind = "guess_consonant"
	ActionBuyVowel       ActionKind = "buy_vowel"
	ActionSolve          ActionKind = "solve"
	ActionHint           ActionKind = "hint"
	ActionPass           ActionKind = "pass"
)

// Action is a single move submitted to the engine
type Action struct {
	Kind ActionKind `json:"kind"`

	// Letter is the consonant called with a spin or the vowel being bought.
	// A Spin with no letter leaves the round awaiting a consonant.
	Letter rune `json:"letter,omitempty"`

	// Guess is the full phrase for a Solve
	Guess string `json:"guess,omitempty"`

	// Hint carries the text produced for a Hint action
	Hint string `json:"hint,omitempty"`

	// Difficulty is the requested hint difficulty: easy, medium or hard
	Difficulty string `json:"difficulty,omitempty"`
}

// Spin builds a spin action, optionally calling a consonant in the same move
func Spin(letter rune) Action {
	return Action{Kind: ActionSpin, Letter: letter}
}

// GuessConsonant builds the consonant call that follows a bare spin
func GuessConsonant(letter rune) Action {
	return Action{Kind: ActionGuessConsonant, Letter: letter}
}

// BuyVowel builds a vowel purchase
func BuyVowel(letter rune) Action {
	return Action{Kind: ActionBuyVowel, Letter: letter}
}

// Solve builds a solve attempt
func Solve(guess string) Action {
	return Action{Kind: ActionSolve, Guess: guess}
}

// Hint builds a hint request at the given difficulty
func Hint(difficulty string) Action {
	return Action{Kind: ActionHint, Difficulty: difficulty}
}

// Pass builds an action that hands the turn on without doing anything
func Pass() Action {
	return Action{Kind: ActionPass}
}

// ActionResult describes the effect of an applied action
type ActionResult struct {
	Action   Action   `json:"action"`
	PlayerID PlayerID `json:"player_id"`

	// Outcome is the wedge landed on, set only for spins
	Outcome *Segment `json:"outcome,omitempty"`

	Occurrences int  `json:"occurrences"`
	ScoreDelta  int  `json:"score_delta"`
	Correct     bool `json:"correct,omitempty"`

	AwaitingConsonant bool `json:"awaiting_consonant,omitempty"`
	TurnPassed        bool `json:"turn_passed"`
	RoundOver         bool `json:"round_over"`

	HintsRemaining int      `json:"hints_remaining"`
	Winner         PlayerID `json:"winner,omitempty"`
}
