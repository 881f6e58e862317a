package bot

import (
	"fmt"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/wheel"
)

// Params are the shared inputs of the computer strategies
type Params struct {
	VowelCost int
	Wheel     wheel.Stats
	Lexicon   Lexicon
}

// NewStrategy builds the computer strategy of the given kind. Human players
// need an Input and are built with NewHumanStrategy.
func NewStrategy(kind model.StrategyKind, p Params) (Strategy, error) {
	switch kind {
	case model.StrategyMorse:
		return NewMorseStrategy(p.VowelCost, p.Lexicon), nil
	case model.StrategyOxford:
		return NewOxfordStrategy(p.VowelCost, p.Lexicon), nil
	case model.StrategyTrigram:
		return NewTrigramStrategy(p.VowelCost, p.Lexicon), nil
	case model.StrategySmart:
		return NewSmartStrategy(p.Wheel, p.VowelCost, p.Lexicon), nil
	case model.StrategyConservative:
		return NewConservativeStrategy(p.Wheel, p.VowelCost, p.Lexicon), nil
	case model.StrategyAggressive:
		return NewAggressiveStrategy(p.Wheel, p.VowelCost, p.Lexicon), nil
	default:
		return nil, fmt.Errorf("%w: %q has no computer strategy", model.ErrUnknownStrategy, kind)
	}
}

// NewStrategies builds every computer strategy
func NewStrategies(p Params) map[model.StrategyKind]Strategy {
	strategies := make(map[model.StrategyKind]Strategy)
	for _, kind := range model.Strategies() {
		if !kind.IsAI() {
			continue
		}
		st, err := NewStrategy(kind, p)
		if err != nil {
			continue
		}
		strategies[kind] = st
	}
	return strategies
}
