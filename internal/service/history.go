package service

import (
	"context"
	"fmt"

	"lintora.co/server/internal/model"
	"lintora.co/server/internal/store"
)

// HistoryService lists past review usage records for an account.
type HistoryService interface {
	ListReviews(ctx context.Context, userID int64, limit int) ([]model.ReviewRecord, error)
}

type historyService struct {
	reviewStore store.ReviewStore
}

func NewHistoryService(reviewStore store.ReviewStore) HistoryService {
	return &historyService{reviewStore: reviewStore}
}

func (s *historyService) ListReviews(ctx context.Context, userID int64, limit int) ([]model.ReviewRecord, error) {
	records, err := s.reviewStore.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	return records, nil
}
