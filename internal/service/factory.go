package service

import (
	"lintora.co/server/common/llm"
	"lintora.co/server/core/config"
	"lintora.co/server/internal/queue"
	"lintora.co/server/internal/store"
)

// Services wires the service layer together. Constructed once at startup.
type Services struct {
	auth          AuthService
	subscriptions SubscriptionService
	reviews       ReviewService
	history       HistoryService
}

func NewServices(stores *store.Stores, llmClient llm.Client, producer queue.Producer, cfg config.Config) *Services {
	subscriptions := NewSubscriptionService(stores.Users())

	return &Services{
		auth:          NewAuthService(stores.Users(), stores.Sessions(), cfg.WorkOS, cfg.AdminEmails),
		subscriptions: subscriptions,
		reviews:       NewReviewService(llmClient, subscriptions, producer, cfg.LLM),
		history:       NewHistoryService(stores.Reviews()),
	}
}

func (s *Services) Auth() AuthService {
	return s.auth
}

func (s *Services) Subscriptions() SubscriptionService {
	return s.subscriptions
}

func (s *Services) Reviews() ReviewService {
	return s.reviews
}

func (s *Services) History() HistoryService {
	return s.history
}
