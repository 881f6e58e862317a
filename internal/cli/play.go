package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/response"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/factory"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/bot"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/game"
)

func newPlayCmd() *cobra.Command {
	var (
		players  []string
		names    []string
		solution string
		category string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a round in the terminal",
		Long: `Play a round in the terminal. Human seats are prompted for their moves,
computer seats play automatically. Type help at the prompt for commands.`,
		Example: `  wheel play
  wheel play --players human,human,aggressive --names Ana,Ben
  wheel play --puzzle "wheel of fortune" --category "TV Show"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRoundRequest(players, names, solution, category)
			if err != nil {
				return err
			}

			app, err := factory.New(cmd.Context(), factory.FromConfig(appCfg, logger))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			rl, err := newReadline(filepath.Join(os.TempDir(), "wheel_history"))
			if err != nil {
				return err
			}
			defer func() { _ = rl.Close() }()

			input := NewTerminalInput(rl, rl.Stdout())
			g := &terminalGame{
				controller: app.GameController,
				bots:       app.BotService.WithStrategy(bot.NewHumanStrategy(input)),
				out:        newOutputTo(rl.Stdout(), rl.Stderr(), opts.Output),
			}
			return g.run(cmd.Context(), req)
		},
	}

	cmd.Flags().StringSliceVar(&players, "players", []string{"human", "smart"}, "Strategies in seat order")
	cmd.Flags().StringSliceVar(&names, "names", nil, "Player names in seat order")
	cmd.Flags().StringVar(&solution, "puzzle", "", "Play this puzzle instead of a random one")
	cmd.Flags().StringVar(&category, "category", "Phrase", "Category for --puzzle")

	return cmd
}

// buildRoundRequest seats the given strategies, naming them from names
// where one is supplied
func buildRoundRequest(players, names []string, solution, category string) (game.NewRoundRequest, error) {
	var req game.NewRoundRequest
	for i, p := range players {
		kind, err := model.ParseStrategy(p)
		if err != nil {
			return req, err
		}
		np := game.NewPlayer{Strategy: kind}
		if i < len(names) {
			np.Name = names[i]
		}
		req.Players = append(req.Players, np)
	}
	if solution != "" {
		puzzle, err := model.NewPuzzle(solution, category)
		if err != nil {
			return req, err
		}
		req.Puzzle = &puzzle
	}
	return req, nil
}

// terminalGame drives one round, printing each move as it is played
type terminalGame struct {
	controller game.ControllerInterface
	bots       *bot.Service
	out        *Output
}

func (g *terminalGame) run(ctx context.Context, req game.NewRoundRequest) error {
	r, err := g.controller.NewRound(ctx, req)
	if err != nil {
		return err
	}
	g.out.Print(response.RoundFromModel(r, false))

	for !r.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		move, err := g.bots.Step(ctx, r.ID)
		switch {
		case errors.Is(err, errQuit):
			g.out.PrintMessage(fmt.Sprintf("Left round %s. The solution was %s.", r.ID, r.State.Puzzle.Solution))
			return nil
		case err != nil && (model.IsRecoverable(err) || errors.Is(err, model.ErrIllegalAction)):
			// A human's move was rejected, ask again
			g.out.PrintError(err)
			continue
		case err != nil:
			return err
		}

		g.out.Print(response.MoveFromBot(move))

		r, err = g.controller.GetRound(ctx, r.ID)
		if err != nil {
			return err
		}
		if r.IsOver() || (move.Result.TurnPassed && !r.CurrentPlayer().Strategy.IsAI()) || !move.Strategy.IsAI() {
			fmt.Fprintln(g.out.out)
			g.out.Print(response.RoundFromModel(r, false))
		}
	}
	return nil
}
