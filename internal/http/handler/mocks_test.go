package handler_test

import (
	"context"

	"lintora.co/server/internal/model"
	"lintora.co/server/internal/review"
	"lintora.co/server/internal/service"
)

type mockAuthService struct {
	validateSessionFn func(ctx context.Context, sessionID int64) (*model.User, error)
	logoutFn          func(ctx context.Context, sessionID int64) error
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	return "https://auth.example.com?state=" + state, nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	return nil, nil, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, sessionID)
	}
	return nil, service.ErrSessionExpired
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

type mockReviewService struct {
	analyzeCodeFn        func(ctx context.Context, user *model.User, req review.Request) (*model.AnalysisResult, error)
	analyzeIncrementalFn func(ctx context.Context, user *model.User, req review.IncrementalRequest) (*model.AnalysisResult, error)
	generateFixFn        func(ctx context.Context, code string, finding model.Finding, language string) (string, error)
	completeFixFn        func(ctx context.Context, code, language string, findings []model.Finding) (string, error)
	lastRequest          review.Request
}

func (m *mockReviewService) AnalyzeCode(ctx context.Context, user *model.User, req review.Request) (*model.AnalysisResult, error) {
	m.lastRequest = req
	if m.analyzeCodeFn != nil {
		return m.analyzeCodeFn(ctx, user, req)
	}
	return &model.AnalysisResult{}, nil
}

func (m *mockReviewService) AnalyzeIncremental(ctx context.Context, user *model.User, req review.IncrementalRequest) (*model.AnalysisResult, error) {
	if m.analyzeIncrementalFn != nil {
		return m.analyzeIncrementalFn(ctx, user, req)
	}
	return &model.AnalysisResult{}, nil
}

func (m *mockReviewService) GenerateFix(ctx context.Context, code string, finding model.Finding, language string) (string, error) {
	if m.generateFixFn != nil {
		return m.generateFixFn(ctx, code, finding, language)
	}
	return "", nil
}

func (m *mockReviewService) GenerateCompleteFix(ctx context.Context, code, language string, findings []model.Finding) (string, error) {
	if m.completeFixFn != nil {
		return m.completeFixFn(ctx, code, language, findings)
	}
	return "", nil
}

type mockHistoryService struct {
	listReviewsFn func(ctx context.Context, userID int64, limit int) ([]model.ReviewRecord, error)
}

func (m *mockHistoryService) ListReviews(ctx context.Context, userID int64, limit int) ([]model.ReviewRecord, error) {
	if m.listReviewsFn != nil {
		return m.listReviewsFn(ctx, userID, limit)
	}
	return nil, nil
}

type mockSubscriptionService struct {
	checkQuotaFn func(user *model.User) error
	upgradeFn    func(ctx context.Context, user *model.User, plan model.Plan) (*model.Subscription, error)
}

func (m *mockSubscriptionService) CheckQuota(user *model.User) error {
	if m.checkQuotaFn != nil {
		return m.checkQuotaFn(user)
	}
	return nil
}

func (m *mockSubscriptionService) ChargeReview(ctx context.Context, user *model.User) error {
	return nil
}

func (m *mockSubscriptionService) Upgrade(ctx context.Context, user *model.User, plan model.Plan) (*model.Subscription, error) {
	if m.upgradeFn != nil {
		return m.upgradeFn(ctx, user, plan)
	}
	return &model.Subscription{Plan: plan}, nil
}

func (m *mockSubscriptionService) Plans() []service.PlanSpec {
	return []service.PlanSpec{
		{Plan: model.PlanFree, PriceUSD: 0, TotalReviews: 10},
		{Plan: model.PlanPro, PriceUSD: 29, TotalReviews: 1000},
		{Plan: model.PlanEnterprise, PriceUSD: 99, TotalReviews: model.UnlimitedReviews},
	}
}
