package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"lintora.co/server/internal/model"
	"lintora.co/server/internal/store"
)

var (
	ErrQuotaExceeded = errors.New("review quota exceeded")
	ErrInvalidPlan   = errors.New("invalid plan")
)

// PlanSpec is one entry in the pricing catalogue.
type PlanSpec struct {
	Plan         model.Plan `json:"plan"`
	PriceUSD     int        `json:"priceUsd"`
	TotalReviews int        `json:"totalReviews"` // -1 = unlimited
}

var planCatalogue = []PlanSpec{
	{Plan: model.PlanFree, PriceUSD: 0, TotalReviews: 10},
	{Plan: model.PlanPro, PriceUSD: 29, TotalReviews: 1000},
	{Plan: model.PlanEnterprise, PriceUSD: 99, TotalReviews: model.UnlimitedReviews},
}

// DefaultSubscription is what every new account starts on.
func DefaultSubscription() model.Subscription {
	return model.Subscription{
		Plan:                model.PlanFree,
		Status:              model.SubscriptionActive,
		ReviewsLeft:         10,
		ReviewsUsed:         0,
		TotalReviewsAllowed: 10,
		StartDate:           time.Now(),
	}
}

type SubscriptionService interface {
	// CheckQuota returns ErrQuotaExceeded when the account may not start
	// another review.
	CheckQuota(user *model.User) error
	// ChargeReview debits one review from the ledger after a successful
	// analysis. Admins and unlimited plans are never charged.
	ChargeReview(ctx context.Context, user *model.User) error
	Upgrade(ctx context.Context, user *model.User, plan model.Plan) (*model.Subscription, error)
	Plans() []PlanSpec
}

type subscriptionService struct {
	userStore store.UserStore
}

func NewSubscriptionService(userStore store.UserStore) SubscriptionService {
	return &subscriptionService{userStore: userStore}
}

func (s *subscriptionService) CheckQuota(user *model.User) error {
	if !user.HasQuota() {
		return ErrQuotaExceeded
	}
	return nil
}

func (s *subscriptionService) ChargeReview(ctx context.Context, user *model.User) error {
	if user.ChargeExempt() {
		slog.DebugContext(ctx, "review not charged, account exempt",
			"user_id", user.ID,
			"role", user.Role,
			"plan", user.Subscription.Plan)
		return nil
	}

	left, used, err := s.userStore.ChargeReview(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("charging review: %w", err)
	}

	user.Subscription.ReviewsLeft = left
	user.Subscription.ReviewsUsed = used

	slog.InfoContext(ctx, "review charged",
		"user_id", user.ID,
		"reviews_left", left,
		"reviews_used", used)
	return nil
}

func (s *subscriptionService) Upgrade(ctx context.Context, user *model.User, plan model.Plan) (*model.Subscription, error) {
	spec, ok := paidPlan(plan)
	if !ok {
		return nil, ErrInvalidPlan
	}

	endDate := time.Now().Add(30 * 24 * time.Hour)
	sub := model.Subscription{
		Plan:                spec.Plan,
		Status:              model.SubscriptionActive,
		ReviewsLeft:         spec.TotalReviews,
		ReviewsUsed:         0,
		TotalReviewsAllowed: spec.TotalReviews,
		StartDate:           time.Now(),
		EndDate:             &endDate,
	}

	if err := s.userStore.UpdateSubscription(ctx, user.ID, sub); err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	user.Subscription = sub

	slog.InfoContext(ctx, "subscription upgraded",
		"user_id", user.ID,
		"plan", sub.Plan)
	return &sub, nil
}

func (s *subscriptionService) Plans() []PlanSpec {
	plans := make([]PlanSpec, len(planCatalogue))
	copy(plans, planCatalogue)
	return plans
}

// paidPlan resolves an upgrade target. Free is not an upgrade.
func paidPlan(plan model.Plan) (PlanSpec, bool) {
	for _, spec := range planCatalogue {
		if spec.Plan == plan && spec.Plan != model.PlanFree {
			return spec, true
		}
	}
	return PlanSpec{}, false
}
