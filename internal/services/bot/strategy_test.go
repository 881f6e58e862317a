package bot

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
)

type wordList []string

func (w wordList) Match(pattern string, excluded model.LetterSet) []string {
	var out []string
	p := []rune(pattern)
	for _, word := range w {
		r := []rune(word)
		if len(r) != len(p) {
			continue
		}
		ok := true
		for i := range p {
			if p[i] == model.Placeholder {
				if excluded.Has(r[i]) {
					ok = false
					break
				}
			} else if p[i] != r[i] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, word)
		}
	}
	return out
}

func newState(t *testing.T, solution, guessed string) *model.PuzzleState {
	t.Helper()
	p, err := model.NewPuzzle(solution, "Phrase")
	if err != nil {
		t.Fatal(err)
	}
	state := model.NewPuzzleState(p)
	for _, r := range guessed {
		if _, err := state.Reveal(r); err != nil {
			t.Fatal(err)
		}
	}
	return state
}

func defaultStats() wheel.Stats {
	return wheel.ComputeStats(wheel.DefaultSegments())
}

func TestFrequencyStrategySpinsWithoutFunds(t *testing.T) {
	is := is.New(t)
	st := NewMorseStrategy(250, nil)
	state := newState(t, "WHEEL OF FORTUNE", "")

	action, err := st.ChooseAction(state, 0, 3)
	is.NoErr(err)
	is.Equal(action.Kind, model.ActionSpin)
}

func TestFrequencyStrategyBuysWhenConsonantsGone(t *testing.T) {
	is := is.New(t)
	st := NewOxfordStrategy(250, nil)
	state := newState(t, "WHEEL OF FORTUNE", "BCDFGHJKLMNPQRSTVWXYZ")

	action, err := st.ChooseAction(state, 1000, 3)
	is.NoErr(err)
	is.Equal(action.Kind, model.ActionBuyVowel)
}

func TestMorseLetterOrder(t *testing.T) {
	is := is.New(t)
	st := NewMorseStrategy(250, nil)
	state := newState(t, "WHEEL OF FORTUNE", "")

	c, err := st.ChooseLetter(state, false)
	is.NoErr(err)
	is.Equal(c, 'T')

	v, err := st.ChooseLetter(state, true)
	is.NoErr(err)
	is.Equal(v, 'E')
}

func TestOxfordLetterOrder(t *testing.T) {
	is := is.New(t)
	st := NewOxfordStrategy(250, nil)
	state := newState(t, "WHEEL OF FORTUNE", "R")

	c, err := st.ChooseLetter(state, false)
	is.NoErr(err)
	is.Equal(c, 'T') // R already called
}

func TestChooseLetterNoCandidate(t *testing.T) {
	is := is.New(t)
	st := NewTrigramStrategy(250, nil)
	state := newState(t, "WHEEL OF FORTUNE", "AEIOU")

	_, err := st.ChooseLetter(state, true)
	is.True(errors.Is(err, model.ErrNoCandidate))
}

func TestSmartSolvesNearlyComplete(t *testing.T) {
	is := is.New(t)
	lexicon := wordList{"WHEEL", "OF", "FORTUNE", "WHALE"}
	st := NewSmartStrategy(defaultStats(), 250, lexicon)
	state := newState(t, "WHEEL OF FORTUNE", "HELOFRTUN")
	is.Equal(state.Render(), "_HEEL OF FORTUNE")

	action, err := st.ChooseAction(state, 0, 3)
	is.NoErr(err)
	is.Equal(action.Kind, model.ActionSolve)
	is.Equal(action.Guess, "WHEEL OF FORTUNE")
}

func TestConservativeHoldsWithoutDictionaryMatch(t *testing.T) {
	is := is.New(t)
	st := NewConservativeStrategy(defaultStats(), 250, wordList{})
	state := newState(t, "WHEEL OF FORTUNE", "HELOFRTUN")

	action, err := st.ChooseAction(state, 0, 3)
	is.NoErr(err)
	is.Equal(action.Kind, model.ActionSpin)
}

func TestSmartHoldsWithoutDictionaryMatch(t *testing.T) {
	is := is.New(t)
	st := NewSmartStrategy(defaultStats(), 250, wordList{})
	state := newState(t, "WHEEL OF FORTUNE", "HELOFRTUN")
	is.Equal(state.Render(), "_HEEL OF FORTUNE")

	_, ok := st.ChooseSolveGuess(state)
	is.True(!ok)

	action, err := st.ChooseAction(state, 0, 3)
	is.NoErr(err)
	is.Equal(action.Kind, model.ActionSpin)

	action, err = st.ChooseAction(state, 1000, 3)
	is.NoErr(err)
	is.True(action.Kind != model.ActionSolve)
}

func TestReconstructUnanchoredWordInconsistent(t *testing.T) {
	is := is.New(t)
	st := NewSmartStrategy(defaultStats(), 250, wordList{})
	state := newState(t, "QXZJ KVWB", "")

	rec := Reconstruct(state, st.ranker, st.lexicon)
	is.True(!rec.Complete)
	is.True(!rec.Consistent)
}

func TestReconstructAnchoredFillConsistent(t *testing.T) {
	is := is.New(t)
	st := NewSmartStrategy(defaultStats(), 250, wordList{})
	state := newState(t, "WHEEL OF FORTUNE", "HELOFRTUN")

	rec := Reconstruct(state, st.ranker, st.lexicon)
	is.True(!rec.Complete)
	is.True(rec.Consistent)
	is.Equal(rec.Guess[1:], "HEEL OF FORTUNE")
}

func TestAggressiveSolvesOnBestGuess(t *testing.T) {
	is := is.New(t)
	st := NewAggressiveStrategy(defaultStats(), 250, wordList{})
	state := newState(t, "WHEEL OF FORTUNE", "HELOFRTUN")

	guess, ok := st.ChooseSolveGuess(state)
	is.True(ok)
	is.Equal(len(guess), len("WHEEL OF FORTUNE"))
	is.Equal(guess[1:], "HEEL OF FORTUNE")
}

func TestConservativeValuesSpinBelowSmart(t *testing.T) {
	is := is.New(t)
	stats := defaultStats()
	smart := NewSmartStrategy(stats, 250, nil)
	conservative := NewConservativeStrategy(stats, 250, nil)
	state := newState(t, "WHEEL OF FORTUNE", "")

	is.True(conservative.SpinValue(state, 2000) < smart.SpinValue(state, 2000))
}

func TestEVStrategySolvesWhenStuck(t *testing.T) {
	is := is.New(t)
	st := NewSmartStrategy(defaultStats(), 250, nil)
	// Only A is left and it cannot be bought: the only move is a guess
	state := newState(t, "JAZZ", "BCDFGHJKLMNPQRSTVWXYZEIOU")

	action, err := st.ChooseAction(state, 0, 3)
	is.NoErr(err)
	is.Equal(action.Kind, model.ActionSolve)
	is.Equal(action.Guess, "JAZZ")
}

func TestReconstructFillsFromDictionary(t *testing.T) {
	is := is.New(t)
	st := NewOxfordStrategy(250, wordList{"CAT", "COT"})
	state := newState(t, "CAT", "CT")

	rec := Reconstruct(state, st.ranker, st.lexicon)
	is.True(rec.Complete)
	is.True(rec.Consistent)
	is.Equal(rec.Guess, "CAT") // A outranks O
}

func TestNewStrategies(t *testing.T) {
	is := is.New(t)
	strategies := NewStrategies(Params{VowelCost: 250, Wheel: defaultStats()})
	is.Equal(len(strategies), 6)
	for kind, st := range strategies {
		is.Equal(st.Kind(), kind)
	}

	_, err := NewStrategy(model.StrategyHuman, Params{})
	is.True(err != nil)
}
