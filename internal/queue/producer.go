package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

type Producer interface {
	Enqueue(ctx context.Context, event UsageEvent) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
}

func NewRedisProducer(client *redis.Client, stream string) Producer {
	return &redisProducer{
		client: client,
		stream: stream,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, event UsageEvent) error {
	attempt := event.Attempt
	if attempt <= 0 {
		attempt = 1
	}

	fields := map[string]any{
		"user_id":       event.UserID,
		"language":      event.Language,
		"code_size":     event.CodeSize,
		"findings":      event.Findings,
		"overall_score": event.OverallScore,
		"tokens_used":   event.TokensUsed,
		"analysis_time": event.AnalysisTime,
		"attempt":       attempt,
	}

	if event.Filename != "" {
		fields["filename"] = event.Filename
	}
	if event.TraceID != nil && *event.TraceID != "" {
		fields["trace_id"] = *event.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue usage event: %w", err)
	}

	slog.InfoContext(ctx, "enqueued usage event",
		"user_id", event.UserID,
		"language", event.Language,
		"findings", event.Findings,
		"attempt", attempt)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
