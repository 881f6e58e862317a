package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/services/bot"
)

// lineReader is the part of a readline instance the terminal needs
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// TerminalInput reads a human player's decisions from the terminal
type TerminalInput struct {
	reader lineReader
	out    io.Writer
}

// Ensure TerminalInput implements bot.Input
var _ bot.Input = (*TerminalInput)(nil)

// NewTerminalInput creates a terminal input reading from reader
func NewTerminalInput(reader lineReader, out io.Writer) *TerminalInput {
	return &TerminalInput{reader: reader, out: out}
}

// newReadline opens an interactive line editor with history
func newReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistoryFile:       historyFile,
		EOFPrompt:         "quit",
		InterruptPrompt:   "^C",
		HistorySearchFold: true,
		FuncFilterInputRune: func(r rune) (rune, bool) {
			// Block Ctrl-Z, it would suspend the game mid-turn
			if r == readline.CharCtrlZ {
				return r, false
			}
			return r, true
		},
	})
}

// read prompts for one line. Ctrl-D, or Ctrl-C on an empty line, quits.
func (t *TerminalInput) read(prompt string) (string, error) {
	t.reader.SetPrompt(prompt)
	for {
		line, err := t.reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return "", errQuit
			}
			continue
		case errors.Is(err, io.EOF):
			return "", errQuit
		case err != nil:
			return "", err
		}
		return strings.TrimSpace(line), nil
	}
}

func (t *TerminalInput) ChooseAction(state *model.PuzzleState, score, hintsRemaining int) (model.Action, error) {
	prompt := fmt.Sprintf("[$%d, %d hints] > ", score, hintsRemaining)
	for {
		line, err := t.read(prompt)
		if err != nil {
			return model.Action{}, err
		}
		action, err := parseCommand(line)
		switch {
		case err == nil:
			return action, nil
		case errors.Is(err, errQuit):
			return model.Action{}, err
		case errors.Is(err, errHelp):
			fmt.Fprintln(t.out, commandHelp)
		case errors.Is(err, errNoCommand):
		default:
			fmt.Fprintf(t.out, "%s (type help for commands)\n", err)
		}
	}
}

func (t *TerminalInput) ChooseLetter(state *model.PuzzleState, vowel bool) (rune, error) {
	prompt := "Call a consonant > "
	if vowel {
		prompt = "Buy a vowel > "
	}
	for {
		line, err := t.read(prompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return 0, errQuit
		}
		letter, err := parseLetter(line)
		if err != nil {
			fmt.Fprintln(t.out, err)
			continue
		}
		return letter, nil
	}
}

func (t *TerminalInput) ChooseSolveGuess(state *model.PuzzleState) (string, bool) {
	line, err := t.read("Solve > ")
	if err != nil || line == "" {
		return "", false
	}
	return line, true
}
