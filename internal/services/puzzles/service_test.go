package puzzles

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/dependencies/mocks"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage/memory"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/testutil"
)

const sampleCSV = `puzzle,clue,date,game_type
BREAK A LEG,Phrase,2023-05-01,Toss Up
"SALT &amp; PEPPER",Things,2023-05-02,Round 1
12345,Numbers,2023-05-03,Round 2
SOLO,,
`

const sampleHTML = `<html><body>
<table>
  <tr><th>Puzzle</th><th>Category</th><th>Date</th><th>Round</th></tr>
  <tr><td>BREAK A LEG</td><td>Phrase</td><td>2023-05-01</td><td>Toss Up</td></tr>
  <tr><td> Rock &amp; Roll </td><td>Music</td><td>2023-05-02</td><td>Round 1</td></tr>
  <tr><td>lonely</td></tr>
</table>
<table><tr><td>IGNORED</td><td>Other</td></tr></table>
</body></html>`

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestParseCSV() {
	puzzles, err := ParseCSV(strings.NewReader(sampleCSV))
	s.Require().NoError(err)
	s.Require().Len(puzzles, 3)

	s.Equal("BREAK A LEG", puzzles[0].Solution)
	s.Equal("Phrase", puzzles[0].Category)
	s.Equal("2023-05-01", puzzles[0].Date)
	s.Equal("Toss Up", puzzles[0].RoundType)

	s.Equal("SALT & PEPPER", puzzles[1].Solution)
	s.Equal("SOLO", puzzles[2].Solution)
	s.Empty(puzzles[2].Category)
}

func (s *ServiceSuite) TestParseHTML() {
	puzzles, err := ParseHTML(strings.NewReader(sampleHTML))
	s.Require().NoError(err)
	s.Require().Len(puzzles, 2)
	s.Equal("BREAK A LEG", puzzles[0].Solution)
	s.Equal("ROCK & ROLL", puzzles[1].Solution)
	s.Equal("Music", puzzles[1].Category)
}

func (s *ServiceSuite) TestRandomFallsBackWhenEmpty() {
	p := s.service.Random()
	s.Equal(Fallback(), p)
	s.Equal("WHEEL OF FORTUNE", p.Solution)
	s.Equal("TV Show", p.Category)
}

func (s *ServiceSuite) TestLoadFromFileCSV() {
	path := filepath.Join(s.T().TempDir(), "valid.csv")
	s.Require().NoError(os.WriteFile(path, []byte(sampleCSV), 0o644))

	added, err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(3, added)
	s.Equal(3, s.service.Count())

	stored, err := s.storage.GetPuzzles(s.ctx)
	s.Require().NoError(err)
	s.Len(stored, 3)
}

func (s *ServiceSuite) TestLoadFromFileHTML() {
	path := filepath.Join(s.T().TempDir(), "puzzles.html")
	s.Require().NoError(os.WriteFile(path, []byte(sampleHTML), 0o644))

	added, err := s.service.LoadFromFile(s.ctx, path)
	s.Require().NoError(err)
	s.Equal(2, added)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	_, err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "nope.csv"))
	s.Error(err)
}

func (s *ServiceSuite) TestAddDeduplicates() {
	a, _ := model.NewPuzzle("BREAK A LEG", "Phrase")
	b, _ := model.NewPuzzle("break a leg", "phrase")
	s.Equal(1, s.service.Add(a, b))
	s.Equal(1, s.service.Count())
}

func (s *ServiceSuite) TestRandomUsesRandomSource() {
	a, _ := model.NewPuzzle("BREAK A LEG", "Phrase")
	b, _ := model.NewPuzzle("ROCK AND ROLL", "Music")
	s.service.Add(a, b)

	s.random.QueueIntn(1, 0)
	s.Equal(b, s.service.Random())
	s.Equal(a, s.service.Random())
}

func (s *ServiceSuite) TestLoadFromStorageAndGet() {
	a, _ := model.NewPuzzle("BREAK A LEG", "Phrase")
	s.Require().NoError(s.storage.SavePuzzles(s.ctx, []model.Puzzle{a}))

	got, err := s.service.Get(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal(a, got)

	n, err := s.service.LoadFromStorage(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	_, err = s.service.Get(s.ctx, "missing")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}
