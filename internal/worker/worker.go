package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lintora.co/server/common/id"
	"lintora.co/server/common/logger"
	"lintora.co/server/internal/model"
	"lintora.co/server/internal/queue"
	"lintora.co/server/internal/store"
)

type Config struct {
	MaxAttempts int
}

// Worker drains usage events off the Redis stream and persists them as
// review rows. The API server never writes reviews directly.
type Worker struct {
	consumer *queue.RedisConsumer
	reviews  store.ReviewStore
	cfg      Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer *queue.RedisConsumer, reviews store.ReviewStore, cfg Config) *Worker {
	return &Worker{
		consumer:  consumer,
		reviews:   reviews,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"message_id", msg.ID,
				"user_id", msg.Event.UserID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID,
				"user_id", msg.Event.UserID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:    logger.Ptr(msg.Event.UserID),
		Language:  logger.Ptr(msg.Event.Language),
		Component: "lintora.worker",
	})

	slog.InfoContext(ctx, "processing usage event",
		"message_id", msg.ID,
		"findings", msg.Event.Findings,
		"attempt", msg.Attempt)

	var filename *string
	if msg.Event.Filename != "" {
		filename = &msg.Event.Filename
	}

	record := &model.ReviewRecord{
		ID:           id.New(),
		UserID:       msg.Event.UserID,
		Language:     msg.Event.Language,
		Filename:     filename,
		CodeSize:     msg.Event.CodeSize,
		Findings:     msg.Event.Findings,
		OverallScore: msg.Event.OverallScore,
		TokensUsed:   msg.Event.TokensUsed,
		AnalysisTime: msg.Event.AnalysisTime,
	}

	if err := w.reviews.Create(ctx, record); err != nil {
		return fmt.Errorf("persisting review record: %w", err)
	}

	if err := w.consumer.Ack(ctx, msg); err != nil {
		// Redelivery would insert a duplicate row, but losing the ACK is
		// rare enough that we only log it.
		slog.WarnContext(ctx, "failed to ACK message",
			"error", err,
			"message_id", msg.ID)
	}

	slog.InfoContext(ctx, "usage event persisted",
		"review_id", record.ID,
		"overall_score", record.OverallScore)
	return nil
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= w.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"user_id", msg.Event.UserID,
			"attempts", msg.Attempt)
		if dlqErr := w.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"user_id", msg.Event.UserID,
		"attempt", msg.Attempt)
	if requeueErr := w.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}
