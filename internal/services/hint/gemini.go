package hint

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured
const DefaultModel = "gemini-1.5-flash"

var errLeakedAnswer = errors.New("hint reveals the answer")

// Config selects and tunes the hint provider
type Config struct {
	APIKey   string
	Model    string
	Timeout  time.Duration
	Attempts uint
}

// DefaultConfig returns the hint defaults
func DefaultConfig() Config {
	return Config{
		Model:    DefaultModel,
		Timeout:  30 * time.Second,
		Attempts: 3,
	}
}

// New returns a Gemini-backed provider when an API key is configured and
// the rule-based provider otherwise
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (Provider, error) {
	if cfg.APIKey == "" {
		return RuleBased{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return NewGemini(client.Models, cfg, logger), nil
}

// generator is the part of the genai client used to produce hints
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini asks a Gemini model for crossword-style hints
type Gemini struct {
	models   generator
	model    string
	timeout  time.Duration
	attempts uint
	fallback Provider
	logger   zerolog.Logger
}

// Ensure Gemini implements Provider
var _ Provider = (*Gemini)(nil)

// NewGemini creates a provider over a genai model client
func NewGemini(models generator, cfg Config, logger zerolog.Logger) *Gemini {
	defaults := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = defaults.Attempts
	}
	return &Gemini{
		models:   models,
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		attempts: cfg.Attempts,
		fallback: RuleBased{},
		logger:   logger.With().Str("component", "hint").Str("model", cfg.Model).Logger(),
	}
}

// RequestHint returns the model's hint, or a rule-based hint if the model
// fails, returns nothing or gives the answer away
func (g *Gemini) RequestHint(ctx context.Context, req Request) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var text string
	err := retry.Do(
		func() error {
			resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(req)), g.generationConfig())
			if err != nil {
				return err
			}
			text = strings.TrimSpace(resp.Text())
			if text == "" {
				return errors.New("empty hint")
			}
			if leaks(text, req) {
				return retry.Unrecoverable(errLeakedAnswer)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(g.attempts),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			g.logger.Warn().Err(err).Uint("attempt", n).Msg("hint request failed, retrying")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		g.logger.Warn().Err(err).Msg("using rule-based hint")
		return g.fallback.RequestHint(ctx, req)
	}

	g.logger.Debug().
		Str("difficulty", string(req.Difficulty)).
		Int("hints_used", req.HintsUsed).
		Msg("hint generated")
	return text
}

func (g *Gemini) generationConfig() *genai.GenerateContentConfig {
	block := genai.HarmBlockThresholdBlockMediumAndAbove
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopK:            genai.Ptr[float32](40),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: 100,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: "You are a professional crossword puzzle writer creating hints for a Wheel of Fortune game."},
		}},
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: block},
			{Category: genai.HarmCategoryHateSpeech, Threshold: block},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: block},
			{Category: genai.HarmCategoryDangerousContent, Threshold: block},
		},
	}
}

// leaks reports whether a hint contains the whole solution
func leaks(text string, req Request) bool {
	solution := strings.Join(req.Puzzle.Words(), " ")
	return solution != "" && strings.Contains(strings.ToUpper(text), solution)
}
