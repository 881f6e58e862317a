package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/factory"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/game"
)

// HistogramBins is the number of buckets in the winning score histogram
const HistogramBins = 15

// AppFactory builds an isolated application for one simulated round
type AppFactory func(ctx context.Context, seed uint64) (*factory.App, error)

// Simulator plays computer-only rounds concurrently and tallies results
type Simulator struct {
	Rounds  int
	Workers int
	Players []model.StrategyKind
	// Seed makes a batch reproducible: round i is seeded with Seed+i.
	// Zero leaves every round unseeded.
	Seed   uint64
	NewApp AppFactory
}

// SeatSummary aggregates the results of one seat across a batch
type SeatSummary struct {
	Seat      int     `json:"seat"`
	Strategy  string  `json:"strategy"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
	MeanScore float64 `json:"mean_score"`
	MaxScore  int     `json:"max_score"`
}

// SimulationSummary is the outcome of a batch of rounds
type SimulationSummary struct {
	Rounds        int           `json:"rounds"`
	Seed          uint64        `json:"seed,omitempty"`
	Seats         []SeatSummary `json:"seats"`
	NoWinner      int           `json:"no_winner"`
	MeanTurns     float64       `json:"mean_turns"`
	WinningScores []float64     `json:"winning_scores,omitempty"`
}

type roundOutcome struct {
	winner int // Seat index, -1 when nobody solved
	scores []int
	turns  int
}

// Run plays every round and summarizes them
func (s *Simulator) Run(ctx context.Context) (SimulationSummary, error) {
	if s.Rounds <= 0 {
		return SimulationSummary{}, fmt.Errorf("%w: rounds must be positive", model.ErrConfiguration)
	}
	if len(s.Players) == 0 {
		return SimulationSummary{}, model.ErrNotEnoughPlayers
	}
	for _, p := range s.Players {
		if !p.IsAI() {
			return SimulationSummary{}, fmt.Errorf("%w: simulations seat computer players only", model.ErrUnknownStrategy)
		}
	}

	outcomes := make([]roundOutcome, s.Rounds)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.Workers, 1))
	for i := range s.Rounds {
		g.Go(func() error {
			o, err := s.playOne(gctx, i)
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SimulationSummary{}, err
	}
	return s.summarize(outcomes), nil
}

func (s *Simulator) playOne(ctx context.Context, i int) (roundOutcome, error) {
	var seed uint64
	if s.Seed != 0 {
		seed = s.Seed + uint64(i)
	}
	app, err := s.NewApp(ctx, seed)
	if err != nil {
		return roundOutcome{}, err
	}
	defer func() { _ = app.Close() }()

	req := game.NewRoundRequest{
		Players: lo.Map(s.Players, func(k model.StrategyKind, _ int) game.NewPlayer {
			return game.NewPlayer{Strategy: k}
		}),
	}
	r, err := app.GameController.NewRound(ctx, req)
	if err != nil {
		return roundOutcome{}, err
	}
	final, _, err := app.BotService.PlayRound(ctx, r.ID)
	if err != nil {
		return roundOutcome{}, err
	}

	o := roundOutcome{winner: -1, turns: final.Turn}
	for seat, p := range final.Players {
		o.scores = append(o.scores, p.Score)
		if p.ID == final.Winner {
			o.winner = seat
		}
	}
	return o, nil
}

func (s *Simulator) summarize(outcomes []roundOutcome) SimulationSummary {
	summary := SimulationSummary{
		Rounds: len(outcomes),
		Seed:   s.Seed,
		Seats:  make([]SeatSummary, len(s.Players)),
	}
	for seat, k := range s.Players {
		scores := lo.Map(outcomes, func(o roundOutcome, _ int) float64 {
			return float64(o.scores[seat])
		})
		wins := lo.CountBy(outcomes, func(o roundOutcome) bool { return o.winner == seat })
		summary.Seats[seat] = SeatSummary{
			Seat:      seat + 1,
			Strategy:  string(k),
			Wins:      wins,
			WinRate:   float64(wins) / float64(len(outcomes)),
			MeanScore: stat.Mean(scores, nil),
			MaxScore:  lo.Max(lo.Map(outcomes, func(o roundOutcome, _ int) int { return o.scores[seat] })),
		}
	}

	turns := make([]float64, 0, len(outcomes))
	for _, o := range outcomes {
		turns = append(turns, float64(o.turns))
		if o.winner < 0 {
			summary.NoWinner++
			continue
		}
		summary.WinningScores = append(summary.WinningScores, float64(o.scores[o.winner]))
	}
	summary.MeanTurns = stat.Mean(turns, nil)
	return summary
}

func (o *Output) printSummary(s SimulationSummary) {
	fmt.Fprintf(o.out, "Rounds: %d", s.Rounds)
	if s.Seed != 0 {
		fmt.Fprintf(o.out, " (seed %d)", s.Seed)
	}
	fmt.Fprintln(o.out)
	fmt.Fprintf(o.out, "Mean turns: %.1f\n", s.MeanTurns)
	fmt.Fprintf(o.out, "No winner: %d\n\n", s.NoWinner)

	fmt.Fprintf(o.out, "  %-4s %-13s %6s %7s %10s %9s\n", "Seat", "Strategy", "Wins", "Win %", "Mean $", "Max $")
	for _, seat := range s.Seats {
		fmt.Fprintf(o.out, "  %-4d %-13s %6d %6.1f%% %10.1f %9d\n",
			seat.Seat, seat.Strategy, seat.Wins, seat.WinRate*100, seat.MeanScore, seat.MaxScore)
	}

	if len(s.WinningScores) > 0 {
		fmt.Fprintln(o.out, "\nWinning scores:")
		_ = histogram.Fprint(o.out, histogram.Hist(HistogramBins, s.WinningScores), histogram.Linear(40))
	}
}

func newSimulateCmd() *cobra.Command {
	var (
		rounds  int
		workers int
		players []string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play computer strategies against each other",
		Example: `  wheel simulate --rounds 500 --players smart,conservative,aggressive
  wheel simulate --rounds 100 --players morse,oxford,trigram --seed 42 -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := make([]model.StrategyKind, len(players))
			for i, p := range players {
				kind, err := model.ParseStrategy(p)
				if err != nil {
					return err
				}
				kinds[i] = kind
			}

			base := factory.FromConfig(appCfg, logger)
			// Rounds are throwaway and computer players never ask for hints
			base.StorageType = factory.StorageTypeMemory
			base.RedisConfig = nil
			base.Hint.APIKey = ""
			sim := &Simulator{
				Rounds:  rounds,
				Workers: workers,
				Players: kinds,
				Seed:    appCfg.Seed,
				NewApp: func(ctx context.Context, seed uint64) (*factory.App, error) {
					cfg := base
					cfg.Seed = seed
					return factory.New(ctx, cfg)
				},
			}

			logger.Info().
				Int("rounds", rounds).
				Int("workers", workers).
				Strs("players", players).
				Msg("simulation started")

			summary, err := sim.Run(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(opts.Output).Print(summary)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rounds, "rounds", "n", 100, "Number of rounds to play")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "Rounds played concurrently")
	cmd.Flags().StringSliceVar(&players, "players", []string{"smart", "conservative", "aggressive"}, "Computer strategies in seat order")

	return cmd
}
