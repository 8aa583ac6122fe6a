package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/domain/repository"
	"github.com/bnema/pagehost/internal/logging"
)

const logURLMaxLen = 60

const (
	insertNavigation = `INSERT INTO navigation_log (session_id, url, host, decision, reason, subframe, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectNavigation = `SELECT id, session_id, url, host, decision, reason, subframe, created_at FROM navigation_log`
)

type navigationRepo struct {
	db *sql.DB
}

// NewNavigationLogRepository creates a SQLite-backed navigation log.
func NewNavigationLogRepository(db *sql.DB) repository.NavigationLogRepository {
	return &navigationRepo{db: db}
}

func (r *navigationRepo) Save(ctx context.Context, record *entity.NavigationRecord) error {
	logging.FromContext(ctx).Debug().
		Str("url", logging.TruncateURL(record.URL, logURLMaxLen)).
		Str("decision", record.Decision.String()).
		Msg("saving navigation record")

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx, insertNavigation,
		record.SessionID,
		record.URL,
		record.Host,
		record.Decision.String(),
		string(record.Reason),
		boolToInt(record.Subframe),
		createdAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert navigation record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("navigation record id: %w", err)
	}
	record.ID = id
	record.CreatedAt = createdAt
	return nil
}

func (r *navigationRepo) GetRecent(ctx context.Context, limit, offset int) ([]*entity.NavigationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		selectNavigation+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent navigation: %w", err)
	}
	return scanRecords(rows)
}

func (r *navigationRepo) GetBySession(ctx context.Context, sessionID string) ([]*entity.NavigationRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		selectNavigation+` WHERE session_id = ? ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query session navigation: %w", err)
	}
	return scanRecords(rows)
}

func (r *navigationRepo) GetStats(ctx context.Context) (*entity.NavigationStats, error) {
	stats := &entity.NavigationStats{}
	err := r.db.QueryRowContext(ctx, `SELECT
	COUNT(*),
	COALESCE(SUM(CASE WHEN decision = 'allow' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN decision = 'cancel' THEN 1 ELSE 0 END), 0)
FROM navigation_log`).Scan(&stats.Total, &stats.Allowed, &stats.Cancelled)
	if err != nil {
		return nil, fmt.Errorf("query navigation stats: %w", err)
	}
	return stats, nil
}

func (r *navigationRepo) DeleteOlderThan(ctx context.Context, before time.Time) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM navigation_log WHERE created_at < ?`, before.UnixMilli())
	if err != nil {
		return fmt.Errorf("prune navigation log: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logging.FromContext(ctx).Debug().Int64("deleted", n).Msg("pruned navigation log")
	}
	return nil
}

func (r *navigationRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM navigation_log`); err != nil {
		return fmt.Errorf("clear navigation log: %w", err)
	}
	return nil
}

func scanRecords(rows *sql.Rows) ([]*entity.NavigationRecord, error) {
	defer rows.Close()

	records := make([]*entity.NavigationRecord, 0)
	for rows.Next() {
		var (
			rec       entity.NavigationRecord
			decision  string
			reason    string
			subframe  int64
			createdAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.URL, &rec.Host, &decision, &reason, &subframe, &createdAt); err != nil {
			return nil, fmt.Errorf("scan navigation record: %w", err)
		}
		// The CHECK constraint keeps decision parseable.
		rec.Decision, _ = entity.ParseNavigationDecision(decision)
		rec.Reason = entity.DecisionReason(reason)
		rec.Subframe = subframe != 0
		rec.CreatedAt = time.UnixMilli(createdAt)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate navigation records: %w", err)
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
