package puzzles

import (
	"encoding/csv"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
)

// ParseCSV reads puzzle rows of the form puzzle,category[,date[,round_type]].
// A header row is skipped, HTML entities are decoded and rows without a
// playable letter are dropped.
func ParseCSV(r io.Reader) ([]model.Puzzle, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var puzzles []model.Puzzle
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("puzzle csv line %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "puzzle") {
			continue
		}
		if p, ok := fromFields(record); ok {
			puzzles = append(puzzles, p)
		}
	}
	return puzzles, nil
}

// ParseHTML reads puzzles from the rows of the first table in an HTML page,
// using the same column order as ParseCSV. Header rows are skipped.
func ParseHTML(r io.Reader) ([]model.Puzzle, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing puzzle html: %w", err)
	}

	var puzzles []model.Puzzle
	doc.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}
		fields := cells.Map(func(_ int, cell *goquery.Selection) string {
			return cell.Text()
		})
		if p, ok := fromFields(fields); ok {
			puzzles = append(puzzles, p)
		}
	})
	return puzzles, nil
}

func fromFields(fields []string) (model.Puzzle, bool) {
	if len(fields) < 2 {
		return model.Puzzle{}, false
	}
	clean := func(i int) string {
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(html.UnescapeString(fields[i]))
	}

	p, err := model.NewPuzzle(clean(0), clean(1))
	if err != nil {
		return model.Puzzle{}, false
	}
	p.Date = clean(2)
	p.RoundType = clean(3)
	return p, true
}
