package factory

import (
	"time"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/mocks"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/hint"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage/memory"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies,
// the default wheel and rule-based hints
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(
		store,
		mockClock,
		mockRandom,
		wheel.DefaultSegments(),
		hint.RuleBased{},
		model.DefaultRoundConfig(),
		testutil.NopLogger(),
	)
	if err != nil {
		panic(err) // default wheel is always valid
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	words := []string{
		"a", "i", "of", "on", "in", "to", "the", "and",
		"cat", "dog", "sun", "day", "big", "red",
		"good", "luck", "time", "wish", "wind",
		"wheel", "whale", "world", "peace", "happy",
		"fortune", "journey", "kitchen", "holiday",
	}
	return t.DictionaryService.LoadWords(words)
}

// AddPuzzle registers a puzzle so new rounds draw it
func (t *TestApp) AddPuzzle(solution, category string) (model.Puzzle, error) {
	p, err := model.NewPuzzle(solution, category)
	if err != nil {
		return model.Puzzle{}, err
	}
	t.PuzzleService.Add(p)
	return p, nil
}
