package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api/response"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/factory"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "wheel-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wheel")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

// run executes the CLI with JSON output, returning stdout and stderr
func (r *cliRunner) run(args ...string) (string, string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
		"--log-level", "error",
	}, args...)

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = append(os.Environ(), "GEMINI_API_KEY=", "GOOGLE_API_KEY=", "WHEEL_GEMINI_API_KEY=")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	logger := testutil.NopLogger()
	app, err := factory.New(context.Background(), factory.Config{
		Seed:   7,
		Logger: logger,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		BotService:     app.BotService,
		Wheel:          app.Wheel,
		RoundDefaults:  model.DefaultRoundConfig(),
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("server did not become ready in time")
}

type simulationResponse struct {
	Rounds int `json:"rounds"`
	Seats  []struct {
		Strategy string `json:"strategy"`
		Wins     int    `json:"wins"`
	} `json:"seats"`
	NoWinner int `json:"no_winner"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// newRound starts a round on the server and returns it
func newRound(t *testing.T, cli *cliRunner, args ...string) response.Round {
	t.Helper()
	stdout, stderr, err := cli.run(append([]string{"remote", "new"}, args...)...)
	require.NoError(t, err, "stderr: %s", stderr)

	var round response.Round
	require.NoError(t, json.Unmarshal([]byte(stdout), &round))
	return round
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	stdout, stderr, err := cli.run("remote", "health")
	require.NoError(t, err, "stderr: %s", stderr)

	var resp response.HealthResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_Strategies(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	stdout, stderr, err := cli.run("remote", "strategies")
	require.NoError(t, err, "stderr: %s", stderr)

	var resp response.StrategiesResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Strategies, 7)
	assert.Equal(t, "human", resp.Strategies[0].Kind)
	assert.False(t, resp.Strategies[0].IsAI)
}

func TestCLI_RoundSolve(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	round := newRound(t, cli, "--players", "human,smart", "--names", "Ann", "--puzzle", "good luck")
	assert.Equal(t, "____ ____", round.Display)
	assert.Equal(t, "p1", round.CurrentPlayer)
	assert.Equal(t, "Ann", round.Players[0].Name)
	assert.Empty(t, round.Solution)

	// Solve in one go
	stdout, stderr, err := cli.run("remote", "act", round.ID, "solve", "good luck")
	require.NoError(t, err, "stderr: %s", stderr)

	var act response.ActionResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &act))
	assert.True(t, act.Result.Correct)
	assert.True(t, act.Result.RoundOver)
	assert.Equal(t, "p1", act.Round.Winner)
	assert.Equal(t, "GOOD LUCK", act.Round.Solution)

	// The round is over now
	_, stderr, err = cli.run("remote", "act", round.ID, "pass")
	require.Error(t, err)
	assert.Contains(t, stderr, "ROUND_OVER")

	// History shows the solve
	stdout, stderr, err = cli.run("remote", "show", round.ID, "--history")
	require.NoError(t, err, "stderr: %s", stderr)

	var shown response.Round
	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	require.NotEmpty(t, shown.History)
	assert.Equal(t, "round_over", shown.History[len(shown.History)-1].Type)
}

func TestCLI_ActionErrors(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)
	round := newRound(t, cli, "--players", "human", "--puzzle", "wheel of fortune")

	// No money for a vowel
	_, stderr, err := cli.run("remote", "act", round.ID, "buy", "e")
	require.Error(t, err)
	assert.Contains(t, stderr, "INSUFFICIENT_FUNDS")

	// Vowels are not called on a spin
	_, stderr, err = cli.run("remote", "act", round.ID, "spin", "a")
	require.Error(t, err)
	assert.Contains(t, stderr, "INVALID_LETTER")

	// Bad commands never reach the server
	_, stderr, err = cli.run("remote", "act", round.ID, "dance")
	require.Error(t, err)
	assert.Contains(t, stderr, "unrecognized command")

	// Unknown round
	_, stderr, err = cli.run("remote", "show", "NOPE1234")
	require.Error(t, err)
	assert.Contains(t, stderr, "ROUND_NOT_FOUND")
}

func TestCLI_Hint(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)
	round := newRound(t, cli, "--players", "human", "--puzzle", "good luck", "--max-hints", "1")
	assert.Equal(t, 1, round.HintsRemaining)

	stdout, stderr, err := cli.run("remote", "hint", round.ID, "-d", "easy")
	require.NoError(t, err, "stderr: %s", stderr)

	var resp response.HintResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Contains(t, resp.Hint, "2 words")
	assert.Equal(t, 0, resp.HintsRemaining)

	_, stderr, err = cli.run("remote", "hint", round.ID)
	require.Error(t, err)
	assert.Contains(t, stderr, "HINT_QUOTA_EXHAUSTED")
}

func TestCLI_AITurn(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)
	round := newRound(t, cli, "--players", "smart,human", "--puzzle", "wheel of fortune")

	stdout, stderr, err := cli.run("remote", "ai-turn", round.ID)
	require.NoError(t, err, "stderr: %s", stderr)

	var resp response.AITurnResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.NotEmpty(t, resp.Moves)
	for _, m := range resp.Moves {
		assert.Equal(t, "smart", m.Strategy)
	}
	if !resp.Moves[len(resp.Moves)-1].Result.RoundOver {
		assert.Equal(t, "p2", resp.Round.CurrentPlayer)
	}
}

func TestCLI_DeleteRound(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)
	round := newRound(t, cli, "--players", "human")

	stdout, stderr, err := cli.run("remote", "delete", round.ID)
	require.NoError(t, err, "stderr: %s", stderr)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &msg))
	assert.Equal(t, "Round deleted", msg.Message)

	_, stderr, err = cli.run("remote", "show", round.ID)
	require.Error(t, err)
	assert.Contains(t, stderr, "ROUND_NOT_FOUND")
}

func TestCLI_Stats(t *testing.T) {
	cli := newCLIRunner(t, "")

	stdout, stderr, err := cli.run("stats")
	require.NoError(t, err, "stderr: %s", stderr)

	var resp response.WheelResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Len(t, resp.Segments, 24)
	assert.InDelta(t, 593.75, resp.MeanPayout, 1e-9)
}

func TestCLI_StatsCustomWheel(t *testing.T) {
	cli := newCLIRunner(t, "")

	path := filepath.Join(t.TempDir(), "wheel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("segments: [1000, BANKRUPT]\n"), 0o600))

	stdout, stderr, err := cli.run("stats", "--wheel-path", path)
	require.NoError(t, err, "stderr: %s", stderr)

	var resp response.WheelResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, []string{"$1000", "BANKRUPT"}, resp.Segments)
	assert.InDelta(t, 500, resp.MeanPayout, 1e-9)
}

func TestCLI_Simulate(t *testing.T) {
	cli := newCLIRunner(t, "")

	stdout, stderr, err := cli.run("simulate", "--rounds", "4", "--players", "smart,aggressive", "--seed", "11", "--workers", "2")
	require.NoError(t, err, "stderr: %s", stderr)

	var resp simulationResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, 4, resp.Rounds)
	require.Len(t, resp.Seats, 2)
	assert.Equal(t, "aggressive", resp.Seats[1].Strategy)
	assert.Equal(t, 4, resp.Seats[0].Wins+resp.Seats[1].Wins+resp.NoWinner)
}

func TestCLI_SimulateRejectsHuman(t *testing.T) {
	cli := newCLIRunner(t, "")

	_, stderr, err := cli.run("simulate", "--rounds", "1", "--players", "human,smart")
	require.Error(t, err)
	assert.True(t, strings.Contains(stderr, "computer players only"), "stderr: %s", stderr)
}
