package repository

import (
	"context"

	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/persistence"
)

const sessionKeyPrefix = "session:"

// SessionRepository stores one session blob per token. Sessions are
// write-once; there is no delete, expiry is the caller's concern.
type SessionRepository interface {
	Get(ctx context.Context, token string) (*domain.Session, bool, error)
	Put(ctx context.Context, session *domain.Session) error
}

type sessionRepository struct {
	store persistence.BlobStore
}

// NewSessionRepository returns a BlobStore-backed implementation.
func NewSessionRepository(store persistence.BlobStore) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*domain.Session, bool, error) {
	var session domain.Session
	found, err := r.store.GetJSON(ctx, sessionKeyPrefix+token, &session)
	if err != nil || !found {
		return nil, false, err
	}
	return &session, true, nil
}

func (r *sessionRepository) Put(ctx context.Context, session *domain.Session) error {
	return r.store.SetJSON(ctx, sessionKeyPrefix+session.Token, session)
}
