package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/pagehost/internal/application/port"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/domain/repository"
	"github.com/bnema/pagehost/internal/logging"
)

const (
	// defaultNavigationQueueSize is the buffer size for the async log queue.
	// If the queue is full, new records are dropped with a warning.
	defaultNavigationQueueSize = 100

	// logURLMaxLen is the max length for URLs in log messages.
	logURLMaxLen = 60

	// navigationFlushInterval coalesces bursts into fewer persistence writes.
	navigationFlushInterval = 100 * time.Millisecond
)

// explainingPolicy is a policy that also reports which rule decided.
// *policy.NavigationDecider implements it.
type explainingPolicy interface {
	Decide(ctx context.Context, req entity.NavigationRequest) (entity.NavigationDecision, entity.DecisionReason)
}

// NavigationLogUseCase records policy decisions to the navigation log
// without blocking the engine callback.
type NavigationLogUseCase struct {
	repo repository.NavigationLogRepository

	queue chan *entity.NavigationRecord
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
	ctx   context.Context // Base context for background worker
}

// NewNavigationLogUseCase creates the use case and starts its worker.
// A nil repo disables persistence; decisions are still logged.
func NewNavigationLogUseCase(ctx context.Context, repo repository.NavigationLogRepository, queueSize int) *NavigationLogUseCase {
	if queueSize <= 0 {
		queueSize = defaultNavigationQueueSize
	}
	uc := &NavigationLogUseCase{
		repo:  repo,
		queue: make(chan *entity.NavigationRecord, queueSize),
		done:  make(chan struct{}),
		ctx:   context.WithoutCancel(ctx),
	}

	if repo != nil {
		uc.wg.Add(1)
		go uc.worker()
	}
	return uc
}

// Close stops the worker after draining pending records.
func (uc *NavigationLogUseCase) Close() {
	uc.once.Do(func() {
		close(uc.done)
		uc.wg.Wait()
	})
}

// Wrap returns a port.NavigationPolicy that decides with inner and records
// every decision under sessionID.
func (uc *NavigationLogUseCase) Wrap(inner explainingPolicy, sessionID string) port.NavigationPolicy {
	return &recordingPolicy{inner: inner, log: uc, sessionID: sessionID}
}

// Record queues rec for persistence. Never blocks.
func (uc *NavigationLogUseCase) Record(ctx context.Context, rec *entity.NavigationRecord) {
	if uc.repo == nil || rec == nil {
		return
	}
	select {
	case <-uc.done:
		return
	default:
	}

	select {
	case uc.queue <- rec:
	default:
		logging.FromContext(ctx).Warn().
			Str("url", logging.TruncateURL(rec.URL, logURLMaxLen)).
			Msg("navigation log queue full, dropping record")
	}
}

func (uc *NavigationLogUseCase) worker() {
	defer uc.wg.Done()
	defer logging.Recover(uc.ctx, "navigation log worker")

	log := logging.FromContext(uc.ctx).With().
		Str("component", "navigation-log-worker").
		Logger()

	ticker := time.NewTicker(navigationFlushInterval)
	defer ticker.Stop()

	var pending []*entity.NavigationRecord
	flush := func() {
		for _, rec := range pending {
			if err := uc.repo.Save(uc.ctx, rec); err != nil {
				log.Warn().Err(err).Str("url", logging.TruncateURL(rec.URL, logURLMaxLen)).Msg("failed to save navigation record")
			}
		}
		pending = pending[:0]
	}

	drain := func() {
		for {
			select {
			case rec := <-uc.queue:
				pending = append(pending, rec)
			default:
				return
			}
		}
	}

	for {
		select {
		case rec := <-uc.queue:
			pending = append(pending, rec)
		case <-ticker.C:
			flush()
		case <-uc.done:
			log.Debug().Int("remaining", len(uc.queue)).Msg("draining navigation log queue")
			drain()
			flush()
			log.Debug().Msg("navigation log worker shutdown complete")
			return
		}
	}
}

// NavigationLogInput selects records to list.
type NavigationLogInput struct {
	SessionID string
	Limit     int
	Offset    int
}

// NavigationLogOutput contains listed records and overall stats.
type NavigationLogOutput struct {
	Records []*entity.NavigationRecord `json:"records"`
	Stats   *entity.NavigationStats    `json:"stats"`
}

// List returns recent records, or every record of one session.
func (uc *NavigationLogUseCase) List(ctx context.Context, input NavigationLogInput) (*NavigationLogOutput, error) {
	if uc.repo == nil {
		return &NavigationLogOutput{Stats: &entity.NavigationStats{}}, nil
	}

	var (
		records []*entity.NavigationRecord
		err     error
	)
	if input.SessionID != "" {
		records, err = uc.repo.GetBySession(ctx, input.SessionID)
	} else {
		limit := input.Limit
		if limit <= 0 {
			limit = 50
		}
		records, err = uc.repo.GetRecent(ctx, limit, input.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list navigation log: %w", err)
	}

	stats, err := uc.repo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read navigation stats: %w", err)
	}
	return &NavigationLogOutput{Records: records, Stats: stats}, nil
}

// Prune removes records older than maxAge. maxAge <= 0 clears the log.
func (uc *NavigationLogUseCase) Prune(ctx context.Context, maxAge time.Duration) error {
	if uc.repo == nil {
		return nil
	}
	if maxAge <= 0 {
		return uc.repo.DeleteAll(ctx)
	}
	return uc.repo.DeleteOlderThan(ctx, time.Now().Add(-maxAge))
}

type recordingPolicy struct {
	inner     explainingPolicy
	log       *NavigationLogUseCase
	sessionID string
}

func (p *recordingPolicy) DecidePolicy(ctx context.Context, req entity.NavigationRequest) entity.NavigationDecision {
	decision, reason := p.inner.Decide(ctx, req)

	logging.FromContext(ctx).Debug().
		Str("url", logging.TruncateURL(req.URL, logURLMaxLen)).
		Bool("subframe", req.IsSubframe()).
		Str("decision", decision.String()).
		Str("reason", string(reason)).
		Msg("navigation decided")

	p.log.Record(ctx, entity.NewNavigationRecord(p.sessionID, req, decision, reason))
	return decision
}
