package ports

import (
	"context"

	"github.com/kintelligence/strawberry-cookie-tools/internal/domain"
)

type SessionStore interface {
	Save(ctx context.Context, record domain.SessionRecord) error
	Get(ctx context.Context, id domain.SessionID) (domain.SessionRecord, error)
	List(ctx context.Context) ([]domain.SessionRecord, error)
	Delete(ctx context.Context, id domain.SessionID) error
}

// SessionSource exposes the client's ambient login state.
type SessionSource interface {
	SessionID() domain.SessionID
	Character() (domain.Character, bool)
}

type PIDFunc func() int
