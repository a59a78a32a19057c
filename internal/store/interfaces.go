package store

import (
	"context"

	"lintora.co/server/internal/model"
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// UpsertByWorkOSID creates or refreshes the account keyed on the
	// external auth ID, preserving role and subscription on conflict.
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
	UpdateSubscription(ctx context.Context, userID int64, sub model.Subscription) error
	// ChargeReview atomically decrements reviews_left and increments
	// reviews_used for capped accounts with quota remaining. Uncapped
	// accounts and empty ledgers are not modified; the resulting
	// counters are returned either way.
	ChargeReview(ctx context.Context, userID int64) (reviewsLeft, reviewsUsed int, err error)
}

type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	// GetValid returns the session only if it has not expired.
	GetValid(ctx context.Context, id int64) (*model.Session, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewStore interface {
	Create(ctx context.Context, record *model.ReviewRecord) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]model.ReviewRecord, error)
}
