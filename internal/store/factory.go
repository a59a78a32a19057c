package store

import "github.com/jackc/pgx/v5/pgxpool"

type Stores struct {
	pool *pgxpool.Pool
}

func NewStores(pool *pgxpool.Pool) *Stores {
	return &Stores{pool: pool}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.pool)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.pool)
}

func (s *Stores) Reviews() ReviewStore {
	return newReviewStore(s.pool)
}
