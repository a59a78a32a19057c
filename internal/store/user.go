package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lintora.co/server/internal/model"
)

const userColumns = `id, name, email, avatar_url, role, workos_id,
	plan, subscription_status, reviews_left, reviews_used, total_reviews_allowed,
	subscription_start, subscription_end, created_at, updated_at`

type userStore struct {
	pool *pgxpool.Pool
}

func newUserStore(pool *pgxpool.Pool) UserStore {
	return &userStore{pool: pool}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *userStore) UpsertByWorkOSID(ctx context.Context, user *model.User) error {
	// Conflict keeps the existing role and ledger; only the profile
	// fields refresh on repeat logins.
	row := s.pool.QueryRow(ctx, `
		INSERT INTO users (
			id, name, email, avatar_url, role, workos_id,
			plan, subscription_status, reviews_left, reviews_used, total_reviews_allowed,
			subscription_start
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (workos_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = now()
		RETURNING `+userColumns,
		user.ID, user.Name, user.Email, user.AvatarURL, user.Role, user.WorkOSID,
		user.Subscription.Plan, user.Subscription.Status,
		user.Subscription.ReviewsLeft, user.Subscription.ReviewsUsed,
		user.Subscription.TotalReviewsAllowed,
	)

	stored, err := scanUser(row)
	if err != nil {
		return err
	}
	*user = *stored
	return nil
}

func (s *userStore) UpdateSubscription(ctx context.Context, userID int64, sub model.Subscription) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE users SET
			plan = $2,
			subscription_status = $3,
			reviews_left = $4,
			reviews_used = $5,
			total_reviews_allowed = $6,
			subscription_start = $7,
			subscription_end = $8,
			updated_at = now()
		WHERE id = $1`,
		userID, sub.Plan, sub.Status,
		sub.ReviewsLeft, sub.ReviewsUsed, sub.TotalReviewsAllowed,
		sub.StartDate, sub.EndDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ChargeReview is the quota ledger's single mutation: one atomic
// read-modify-write in the database, so two concurrent reviews on the
// same account can never both observe the pre-decrement counter. The
// unlimited sentinel (-1) and an already-empty ledger are both excluded
// in the WHERE clause, so racing charges at zero cannot inflate
// reviews_used; for those the counters are read back unchanged.
func (s *userStore) ChargeReview(ctx context.Context, userID int64) (int, int, error) {
	var reviewsLeft, reviewsUsed int
	err := s.pool.QueryRow(ctx, `
		UPDATE users SET
			reviews_left = GREATEST(reviews_left - 1, 0),
			reviews_used = reviews_used + 1,
			updated_at = now()
		WHERE id = $1 AND total_reviews_allowed <> -1 AND reviews_left > 0
		RETURNING reviews_left, reviews_used`,
		userID,
	).Scan(&reviewsLeft, &reviewsUsed)
	if err == nil {
		return reviewsLeft, reviewsUsed, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, err
	}

	err = s.pool.QueryRow(ctx,
		`SELECT reviews_left, reviews_used FROM users WHERE id = $1`,
		userID,
	).Scan(&reviewsLeft, &reviewsUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, ErrNotFound
		}
		return 0, 0, err
	}
	return reviewsLeft, reviewsUsed, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.Role, &u.WorkOSID,
		&u.Subscription.Plan, &u.Subscription.Status,
		&u.Subscription.ReviewsLeft, &u.Subscription.ReviewsUsed,
		&u.Subscription.TotalReviewsAllowed,
		&u.Subscription.StartDate, &u.Subscription.EndDate,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
