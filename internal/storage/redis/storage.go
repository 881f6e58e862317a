package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/model"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Round operations

func (s *Storage) SaveRound(ctx context.Context, round *model.Round) error {
	data, err := json.Marshal(round)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, roundKey(round.ID), data, s.cfg.RoundTTL).Err()
}

func (s *Storage) GetRound(ctx context.Context, id model.RoundID) (*model.Round, error) {
	data, err := s.client.Get(ctx, roundKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoundNotFound
		}
		return nil, err
	}

	var round model.Round
	if err := json.Unmarshal(data, &round); err != nil {
		return nil, err
	}
	return &round, nil
}

func (s *Storage) DeleteRound(ctx context.Context, id model.RoundID) error {
	return s.client.Del(ctx, roundKey(id)).Err()
}

func (s *Storage) RoundExists(ctx context.Context, id model.RoundID) (bool, error) {
	n, err := s.client.Exists(ctx, roundKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Puzzle operations

func (s *Storage) SavePuzzles(ctx context.Context, puzzles []model.Puzzle) error {
	if len(puzzles) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, p := range puzzles {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		pipe.HSet(ctx, puzzlesKey(), string(p.ID), data)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPuzzles(ctx context.Context) ([]model.Puzzle, error) {
	entries, err := s.client.HGetAll(ctx, puzzlesKey()).Result()
	if err != nil {
		return nil, err
	}

	puzzles := make([]model.Puzzle, 0, len(entries))
	for _, data := range entries {
		var p model.Puzzle
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}
	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})
	return puzzles, nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	data, err := s.client.HGet(ctx, puzzlesKey(), string(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var p model.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	// Check if dictionary exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.SMembers(ctx, key).Result()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := dictionaryKey()

	// Replace the existing dictionary atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}
