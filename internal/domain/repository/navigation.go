package repository

import (
	"context"
	"time"

	"github.com/bnema/pagehost/internal/domain/entity"
)

// NavigationLogRepository persists policy decisions for later inspection.
type NavigationLogRepository interface {
	// Save appends a record and sets its ID.
	Save(ctx context.Context, record *entity.NavigationRecord) error

	// GetRecent retrieves the newest records first, with pagination.
	GetRecent(ctx context.Context, limit, offset int) ([]*entity.NavigationRecord, error)

	// GetBySession retrieves the records of one browse session, oldest first.
	GetBySession(ctx context.Context, sessionID string) ([]*entity.NavigationRecord, error)

	// GetStats counts decisions by outcome.
	GetStats(ctx context.Context) (*entity.NavigationStats, error)

	// DeleteOlderThan removes records created before the given time.
	DeleteOlderThan(ctx context.Context, before time.Time) error

	// DeleteAll removes every record.
	DeleteAll(ctx context.Context) error
}
