package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/request"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/response"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Play against a running server",
		Long: `Commands that talk to a wheel server over its JSON API.
Use --server or WHEEL_SERVER to point at the server.`,
	}

	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newStrategiesCmd())
	cmd.AddCommand(newRemoteWheelCmd())
	cmd.AddCommand(newRoundNewCmd())
	cmd.AddCommand(newRoundShowCmd())
	cmd.AddCommand(newRoundActCmd())
	cmd.AddCommand(newRoundAITurnCmd())
	cmd.AddCommand(newRoundHintCmd())
	cmd.AddCommand(newRoundDeleteCmd())

	return cmd
}

func roundPath(id string, parts ...string) string {
	return "/api/v1/rounds/" + url.PathEscape(strings.ToUpper(id)) + strings.Join(parts, "")
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.HealthResponse
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}
			NewOutput(opts.Output).Print(result)
			return nil
		},
	}
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the strategies a seat can use",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.StrategiesResponse
			if err := client.Get("/api/v1/strategies", &result); err != nil {
				return err
			}
			NewOutput(opts.Output).Print(result)
			return nil
		},
	}
}

func newRemoteWheelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wheel",
		Short: "Show the server's wheel",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WheelResponse
			if err := client.Get("/api/v1/wheel", &result); err != nil {
				return err
			}
			NewOutput(opts.Output).Print(result)
			return nil
		},
	}
}

func newRoundNewCmd() *cobra.Command {
	var (
		players  []string
		names    []string
		solution string
		category string
		maxHints int
	)

	cmd := &cobra.Command{
		Use:     "new",
		Short:   "Start a round on the server",
		Example: `  wheel remote new --players human,smart,aggressive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateRoundRequest{}
			for i, p := range players {
				spec := request.PlayerSpec{Strategy: p}
				if i < len(names) {
					spec.Name = names[i]
				}
				req.Players = append(req.Players, spec)
			}
			if solution != "" {
				req.Puzzle = &request.PuzzleSpec{Solution: solution, Category: category}
			}
			if cmd.Flags().Changed("max-hints") {
				req.Config = &request.RoundConfigSpec{MaxHints: &maxHints}
			}

			var result response.Round
			if err := client.Post("/api/v1/rounds", req, &result); err != nil {
				return err
			}
			NewOutput(opts.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&players, "players", []string{"human", "smart"}, "Strategies in seat order")
	cmd.Flags().StringSliceVar(&names, "names", nil, "Player names in seat order")
	cmd.Flags().StringVar(&solution, "puzzle", "", "Play this puzzle instead of a random one")
	cmd.Flags().StringVar(&category, "category", "Phrase", "Category for --puzzle")
	cmd.Flags().IntVar(&maxHints, "max-hints", 3, "Hints available in the round")

	return cmd
}

func newRoundShowCmd() *cobra.Command {
	var history bool

	cmd := &cobra.Command{
		Use:   "show ROUND_ID",
		Short: "Show a round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := roundPath(args[0])
			if history {
				path += "?history=true"
			}
			var result response.Round
			if err := client.Get(path, &result); err != nil {
				return err
			}
			NewOutput(opts.Output).Print(result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&history, "history", false, "Include the event history")
	return cmd
}

func newRoundActCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "act ROUND_ID COMMAND...",
		Short: "Play a move for the current player",
		Long:  "Play a move for the current player.\n\n" + commandHelp,
		Example: `  wheel remote act K7QM2XPA spin T
  wheel remote act K7QM2XPA buy E
  wheel remote act K7QM2XPA solve "wheel of fortune"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := parseArgs(args[1:])
			if err != nil {
				return err
			}
			var result response.ActionResponse
			if err := client.Post(roundPath(args[0], "/actions"), actionRequest(action), &result); err != nil {
				return err
			}
			NewOutput(opts.Output).Print(result)
			return nil
		},
	}
}

// parseArgs parses a command already split by the user's shell
func parseArgs(args []string) (model.Action, error) {
	action, err := parseCommand(shellquote.Join(args...))
	if errors.Is(err, errHelp) || errors.Is(err, errQuit) {
		return model.Action{}, fmt.Errorf("%w: %q", errBadCommand, args[0])
	}
	return action, err
}

func actionRequest(a model.Action) request.ActionRequest {
	req := request.ActionRequest{
		Kind:       string(a.Kind),
		Guess:      a.Guess,
		Difficulty: a.Difficulty,
	}
	if a.Letter != 0 {
		req.Letter = string(a.Letter)
	}
	return req
}

func newRoundAITurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ai-turn ROUND_ID",
		Short: "Let computer players move until a human is to act",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.AITurnResponse
			if err := client.Post(roundPath(args[0], "/ai-turn"), nil, &result); err != nil {
				return err
			}
			NewOutput(opts.Output).Print(result)
			return nil
		},
	}
}

func newRoundHintCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "hint ROUND_ID",
		Short: "Ask for a hint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.HintRequest{Difficulty: difficulty}
			var result response.HintResponse
			if err := client.Post(roundPath(args[0], "/hint"), req, &result); err != nil {
				return err
			}
			NewOutput(opts.Output).Print(result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "Hint difficulty: easy, medium, hard")
	return cmd
}

func newRoundDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ROUND_ID",
		Short: "Delete a round",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(roundPath(args[0])); err != nil {
				return err
			}
			NewOutput(opts.Output).PrintMessage("Round deleted")
			return nil
		},
	}
}
