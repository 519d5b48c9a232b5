package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

var ErrHistoryNotFound = errors.New("match history not found")

// RecordRepository exports match move records for display and undo tooling.
type RecordRepository interface {
	Append(ctx context.Context, matchID string, records ...gomoku.MoveRecord) error
	List(ctx context.Context, matchID string) ([]gomoku.MoveRecord, error)
}

type dbRecord struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecordRepository - ttl of zero keeps the history forever.
func NewRecordRepository(client *redis.Client, ttl time.Duration) RecordRepository {
	return &dbRecord{
		client: client,
		ttl:    ttl,
	}
}

func historyKey(matchID string) string {
	return "match:" + matchID + ":history"
}

func (that *dbRecord) Append(ctx context.Context, matchID string, records ...gomoku.MoveRecord) error {
	if len(records) == 0 {
		return nil
	}

	values := make([]any, 0, len(records))
	for _, record := range records {
		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("could not marshal record: %w", err)
		}
		values = append(values, recordJSON)
	}

	key := historyKey(matchID)

	pipe := that.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if that.ttl > 0 {
		pipe.Expire(ctx, key, that.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append records: %w", err)
	}

	return nil
}

func (that *dbRecord) List(ctx context.Context, matchID string) ([]gomoku.MoveRecord, error) {
	response, err := that.client.LRange(ctx, historyKey(matchID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}

	if len(response) == 0 {
		return nil, ErrHistoryNotFound
	}

	records := make([]gomoku.MoveRecord, 0, len(response))
	for _, item := range response {
		var record gomoku.MoveRecord
		if err = json.Unmarshal([]byte(item), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}
