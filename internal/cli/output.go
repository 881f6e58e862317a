package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/response"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return newOutputTo(os.Stdout, os.Stderr, format)
}

func newOutputTo(out, errOut io.Writer, format string) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// IsJSON reports whether output is machine readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Round:
		o.printRound(v)
	case response.ActionResponse:
		o.printResult(v.Result, v.Hint)
		fmt.Fprintln(o.out)
		o.printRound(v.Round)
	case response.Move:
		o.printMove(v)
	case response.AITurnResponse:
		for _, m := range v.Moves {
			o.printMove(m)
		}
		fmt.Fprintln(o.out)
		o.printRound(v.Round)
	case response.HintResponse:
		fmt.Fprintf(o.out, "Hint: %s\n", v.Hint)
		fmt.Fprintf(o.out, "Hints remaining: %d\n", v.HintsRemaining)
	case response.StrategiesResponse:
		o.printStrategies(v)
	case response.WheelResponse:
		o.printWheel(v)
	case response.HealthResponse:
		fmt.Fprintf(o.out, "Status: %s\n", v.Status)
	case SimulationSummary:
		o.printSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printRound(r response.Round) {
	fmt.Fprintf(o.out, "Round: %s\n", r.ID)
	fmt.Fprintf(o.out, "Category: %s\n", r.Category)
	fmt.Fprintf(o.out, "\n    %s\n\n", spaced(r.Display))
	fmt.Fprintf(o.out, "Guessed: %s\n", r.Guessed)
	fmt.Fprintf(o.out, "Phase: %s", r.Phase)
	if r.Phase == string(model.PhaseAwaitingConsonant) {
		fmt.Fprintf(o.out, " ($%d pending)", r.PendingValue)
	}
	fmt.Fprintln(o.out)
	fmt.Fprintf(o.out, "Hints remaining: %d\n", r.HintsRemaining)

	players := r.Players
	if len(r.Standings) > 0 {
		players = r.Standings
	}
	fmt.Fprintf(o.out, "Players (%d):\n", len(players))
	for _, p := range players {
		marker := "  "
		if p.ID == r.CurrentPlayer {
			marker = "> "
		}
		fmt.Fprintf(o.out, "  %s%s (%s, %s): $%d\n", marker, p.Name, p.ID, p.Strategy, p.Score)
	}

	if r.Solution != "" {
		fmt.Fprintf(o.out, "\nSolution: %s\n", r.Solution)
		if r.Winner != "" {
			fmt.Fprintf(o.out, "Winner: %s\n", r.Winner)
		} else {
			fmt.Fprintln(o.out, "No winner")
		}
	}

	if len(r.History) > 0 {
		fmt.Fprintln(o.out, "\nHistory:")
		for _, e := range r.History {
			fmt.Fprintf(o.out, "  [%d] %s %s", e.Turn, e.PlayerID, e.Type)
			if e.Letter != "" {
				fmt.Fprintf(o.out, " %s", e.Letter)
			}
			if e.Count > 0 {
				fmt.Fprintf(o.out, " x%d", e.Count)
			}
			if e.Amount != 0 {
				fmt.Fprintf(o.out, " $%d", e.Amount)
			}
			if e.Detail != "" {
				fmt.Fprintf(o.out, " (%s)", e.Detail)
			}
			fmt.Fprintln(o.out)
		}
	}
}

func (o *Output) printMove(m response.Move) {
	fmt.Fprintf(o.out, "%s [%s]: ", m.PlayerID, m.Strategy)
	o.printResult(m.Result, m.Hint)
	if m.Fallback {
		fmt.Fprintln(o.out, "  (fell back to pass)")
	}
}

func (o *Output) printResult(r response.Result, hint string) {
	fmt.Fprintln(o.out, describeResult(r, hint))
}

// describeResult renders one action outcome as a sentence
func describeResult(r response.Result, hint string) string {
	var b strings.Builder
	switch r.Action.Kind {
	case "spin":
		fmt.Fprintf(&b, "spun %s", r.Outcome)
		if r.Action.Letter != "" {
			fmt.Fprintf(&b, ", called %s", r.Action.Letter)
		}
	case "guess_consonant":
		fmt.Fprintf(&b, "called %s", r.Action.Letter)
	case "buy_vowel":
		fmt.Fprintf(&b, "bought %s", r.Action.Letter)
	case "solve":
		fmt.Fprintf(&b, "tried to solve %q", r.Action.Guess)
	case "hint":
		fmt.Fprintf(&b, "asked for a hint: %s", hint)
	case "pass":
		b.WriteString("passed")
	default:
		b.WriteString(r.Action.Kind)
	}

	switch {
	case r.AwaitingConsonant:
		b.WriteString(", now call a consonant")
	case r.Action.Kind == "solve" && r.Correct:
		b.WriteString(", correct!")
	case r.Action.Kind == "solve":
		b.WriteString(", wrong")
	case r.Action.Letter != "":
		fmt.Fprintf(&b, " (%d found)", r.Occurrences)
	}
	if r.ScoreDelta != 0 {
		fmt.Fprintf(&b, " %+d", r.ScoreDelta)
	}
	if r.TurnPassed && !r.RoundOver {
		b.WriteString(", turn passes")
	}
	return b.String()
}

func (o *Output) printStrategies(s response.StrategiesResponse) {
	fmt.Fprintln(o.out, "Strategies:")
	for _, st := range s.Strategies {
		kind := "computer"
		if !st.IsAI {
			kind = "human"
		}
		fmt.Fprintf(o.out, "  %-13s %-18s %s\n", st.Kind, st.Name, kind)
	}
}

func (o *Output) printWheel(w response.WheelResponse) {
	fmt.Fprintf(o.out, "Segments (%d): %s\n", len(w.Segments), strings.Join(w.Segments, ", "))
	fmt.Fprintf(o.out, "Mean payout: $%.2f\n", w.MeanPayout)
	fmt.Fprintf(o.out, "Mean cash wedge: $%.2f\n", w.MeanCash)
	fmt.Fprintf(o.out, "Max cash wedge: $%.0f\n", w.MaxCash)
	fmt.Fprintf(o.out, "Bankrupt density: %.3f\n", w.BankruptDensity)
	fmt.Fprintf(o.out, "Lose a turn density: %.3f\n", w.LoseTurnDensity)
}

// spaced widens a puzzle display so blanks can be counted
func spaced(display string) string {
	var b strings.Builder
	for i, r := range display {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r == ' ' {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
