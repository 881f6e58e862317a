package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage"
)

//go:embed words.txt
var defaultWords string

// DefaultWords returns the built-in list of common English words
func DefaultWords() []string {
	return strings.Fields(defaultWords)
}

// Service holds the word list used to reconstruct partially revealed puzzles
type Service struct {
	storage storage.Storage
	logger  zerolog.Logger

	mu       sync.RWMutex
	words    map[string]struct{}
	byLength map[int][]string
	loaded   bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger zerolog.Logger) *Service {
	return &Service{
		storage:  storage,
		logger:   logger.With().Str("component", "dictionary").Logger(),
		words:    make(map[string]struct{}),
		byLength: make(map[int][]string),
	}
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary: %w", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadDefault loads the built-in word list
func (s *Service) LoadDefault() error {
	return s.loadWords(DefaultWords())
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	s.byLength = make(map[int][]string)
	for _, word := range words {
		// Store upper case to match puzzle solutions
		word = strings.ToUpper(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		if _, dup := s.words[word]; dup {
			continue
		}
		s.words[word] = struct{}{}
		n := len([]rune(word))
		s.byLength[n] = append(s.byLength[n], word)
	}
	for _, bucket := range s.byLength {
		sort.Strings(bucket)
	}
	s.loaded = true

	s.logger.Debug().Int("words", len(s.words)).Msg("dictionary loaded")
	return nil
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Match returns the words fitting a rendered word pattern in alphabetical
// order. Placeholder positions accept any letter not in excluded; every
// other position must match exactly.
func (s *Service) Match(pattern string, excluded model.LetterSet) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil
	}

	want := []rune(strings.ToUpper(pattern))
	var matches []string
	for _, word := range s.byLength[len(want)] {
		if fits(want, []rune(word), excluded) {
			matches = append(matches, word)
		}
	}
	return matches
}

func fits(pattern, word []rune, excluded model.LetterSet) bool {
	for i, p := range pattern {
		if p == model.Placeholder {
			if !model.IsLetter(word[i]) || excluded.Has(word[i]) {
				return false
			}
			continue
		}
		if word[i] != p {
			return false
		}
	}
	return true
}

// ServiceInterface describes the dictionary operations used by strategies
type ServiceInterface interface {
	IsLoaded() bool
	WordCount() int
	Match(pattern string, excluded model.LetterSet) []string
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadDefault() error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
