package hint

import (
	"fmt"
	"strings"
)

var difficultyInstructions = map[Difficulty]string{
	DifficultyEasy: "Create a straightforward, helpful hint that gives clear direction about the answer. " +
		"You may reference specific words or parts of the phrase directly. " +
		"Make it easier for the player to guess.",
	DifficultyMedium: "Create a New York Times crossword-style clue that's clever but fair. " +
		"Use wordplay, synonyms, or indirect references. " +
		"The hint should be challenging but solvable.",
	DifficultyHard: "Create a cryptic, challenging hint that requires creative thinking. " +
		"Use metaphors, very indirect references, or wordplay. " +
		"Make it quite difficult but not impossible.",
}

func buildPrompt(req Request) string {
	difficulty := req.Difficulty
	if _, ok := difficultyInstructions[difficulty]; !ok {
		difficulty = DifficultyMedium
	}

	var b strings.Builder
	b.WriteString("You are creating a crossword-style hint for a Wheel of Fortune puzzle.\n\n")
	fmt.Fprintf(&b, "Puzzle Answer: %q\n", req.Puzzle.Solution)
	fmt.Fprintf(&b, "Category: %s\n", req.Puzzle.Category)
	fmt.Fprintf(&b, "Difficulty Level: %s\n", difficulty)
	if req.Display != "" {
		fmt.Fprintf(&b, "Current puzzle state: %s\n", req.Display)
	}
	if req.HintsUsed > 0 {
		fmt.Fprintf(&b, "Hints already given: %d. Offer a different angle from earlier hints.\n", req.HintsUsed)
	}
	fmt.Fprintf(&b, "\nInstructions for %s difficulty:\n%s\n\n", difficulty, difficultyInstructions[difficulty])
	b.WriteString("Rules:\n")
	b.WriteString("1. Do NOT reveal the exact answer or any letters directly\n")
	b.WriteString("2. Keep the hint concise (1-2 sentences max)\n")
	b.WriteString("3. Make it appropriate for a family game show\n")
	b.WriteString("4. The hint should help players think about the answer without giving it away\n")
	b.WriteString("5. Consider the category when crafting your hint\n\n")
	b.WriteString("Generate only the hint text, nothing else:")
	return b.String()
}
