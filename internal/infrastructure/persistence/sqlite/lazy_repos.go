package sqlite

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/domain/repository"
)

// lazyNavigationLog resolves the SQL repository on its first call.
type lazyNavigationLog struct {
	provider port.DatabaseProvider

	mu   sync.Mutex
	repo repository.NavigationLogRepository
}

// NewLazyNavigationLogRepository returns a navigation log that opens the
// database through provider only when first used.
func NewLazyNavigationLogRepository(provider port.DatabaseProvider) repository.NavigationLogRepository {
	return &lazyNavigationLog{provider: provider}
}

func (l *lazyNavigationLog) resolve(ctx context.Context) (repository.NavigationLogRepository, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.repo != nil {
		return l.repo, nil
	}
	db, err := l.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	l.repo = NewNavigationLogRepository(db)
	return l.repo, nil
}

func (l *lazyNavigationLog) Save(ctx context.Context, record *entity.NavigationRecord) error {
	repo, err := l.resolve(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, record)
}

func (l *lazyNavigationLog) GetRecent(ctx context.Context, limit, offset int) ([]*entity.NavigationRecord, error) {
	repo, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetRecent(ctx, limit, offset)
}

func (l *lazyNavigationLog) GetBySession(ctx context.Context, sessionID string) ([]*entity.NavigationRecord, error) {
	repo, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetBySession(ctx, sessionID)
}

func (l *lazyNavigationLog) GetStats(ctx context.Context) (*entity.NavigationStats, error) {
	repo, err := l.resolve(ctx)
	if err != nil {
		return nil, err
	}
	return repo.GetStats(ctx)
}

func (l *lazyNavigationLog) DeleteOlderThan(ctx context.Context, before time.Time) error {
	repo, err := l.resolve(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteOlderThan(ctx, before)
}

func (l *lazyNavigationLog) DeleteAll(ctx context.Context) error {
	repo, err := l.resolve(ctx)
	if err != nil {
		return err
	}
	return repo.DeleteAll(ctx)
}
