package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kballard/go-shellquote"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

var (
	errQuit       = errors.New("quit")
	errHelp       = errors.New("help")
	errNoCommand  = errors.New("no command entered")
	errBadCommand = errors.New("unrecognized command")
)

const commandHelp = `Commands:
  spin [LETTER]      spin the wheel, optionally calling a consonant
  LETTER             call a consonant (after a spin) or buy a vowel
  buy VOWEL          buy a vowel
  call CONSONANT     call a consonant after a bare spin
  solve PHRASE       solve, e.g. solve "wheel of fortune"
  hint [DIFFICULTY]  ask for a hint: easy, medium or hard
  pass               hand the turn on
  help               show this help
  quit               leave the game`

// parseCommand turns one line of terminal input into an action. A bare
// vowel is a purchase and a bare consonant is a spin calling it.
func parseCommand(line string) (model.Action, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return model.Action{}, fmt.Errorf("%w: %w", errBadCommand, err)
	}
	if len(words) == 0 {
		return model.Action{}, errNoCommand
	}

	verb := strings.ToLower(words[0])
	args := words[1:]

	switch verb {
	case "spin":
		if len(args) == 0 {
			return model.Spin(0), nil
		}
		letter, err := parseLetter(args[0])
		if err != nil {
			return model.Action{}, err
		}
		return model.Spin(letter), nil
	case "buy", "vowel":
		if len(args) == 0 {
			return model.Action{}, fmt.Errorf("%w: buy needs a vowel", errBadCommand)
		}
		letter, err := parseLetter(args[0])
		if err != nil {
			return model.Action{}, err
		}
		return model.BuyVowel(letter), nil
	case "call", "consonant":
		if len(args) == 0 {
			return model.Action{}, fmt.Errorf("%w: call needs a consonant", errBadCommand)
		}
		letter, err := parseLetter(args[0])
		if err != nil {
			return model.Action{}, err
		}
		return model.GuessConsonant(letter), nil
	case "solve":
		guess := strings.Join(args, " ")
		if strings.TrimSpace(guess) == "" {
			return model.Action{}, fmt.Errorf("%w: solve needs a guess", errBadCommand)
		}
		return model.Solve(guess), nil
	case "hint":
		difficulty := ""
		if len(args) > 0 {
			difficulty = args[0]
		}
		return model.Hint(difficulty), nil
	case "pass":
		return model.Pass(), nil
	case "help", "?":
		return model.Action{}, errHelp
	case "quit", "exit":
		return model.Action{}, errQuit
	}

	if len(args) == 0 && utf8.RuneCountInString(verb) == 1 {
		letter, err := parseLetter(verb)
		if err != nil {
			return model.Action{}, err
		}
		if model.IsVowel(letter) {
			return model.BuyVowel(letter), nil
		}
		return model.Spin(letter), nil
	}
	return model.Action{}, fmt.Errorf("%w: %q", errBadCommand, words[0])
}

func parseLetter(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single letter", model.ErrInvalidLetter, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	r = model.NormalizeLetter(r)
	if !model.IsLetter(r) {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidLetter, s)
	}
	return r, nil
}
