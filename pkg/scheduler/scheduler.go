package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// FeedStore selects feeds due for polling
type FeedStore interface {
	GetDueFeeds(ctx context.Context, olderThan time.Time) ([]domain.Feed, error)
}

// Fetcher runs one feed's fetch cycle
type Fetcher interface {
	Fetch(ctx context.Context, feed *domain.Feed) (*domain.FetchResult, error)
}

// Scheduler polls due feeds in bounded-concurrency waves and aggregates
// per-feed outcomes into a run summary. A feed is due when it has never been
// fetched or its last fetch is older than the refresh interval. Waves run
// sequentially; feeds within a wave run concurrently, which caps peak
// outbound connections while keeping forward progress when one feed is slow.
type Scheduler struct {
	feeds   FeedStore
	fetcher Fetcher

	refreshInterval time.Duration
	waveSize        int
	feedTimeout     time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	RefreshInterval time.Duration
	WaveSize        int
	FeedTimeout     time.Duration
}

// NewScheduler creates a scheduler with the given stores and options
func NewScheduler(feeds FeedStore, fetcher Fetcher, cfg Config) *Scheduler {
	if cfg.RefreshInterval == 0 {
		cfg.RefreshInterval = 15 * time.Minute
	}
	if cfg.WaveSize == 0 {
		cfg.WaveSize = 5
	}
	if cfg.FeedTimeout == 0 {
		cfg.FeedTimeout = 30 * time.Second
	}

	return &Scheduler{
		feeds:           feeds,
		fetcher:         fetcher,
		refreshInterval: cfg.RefreshInterval,
		waveSize:        cfg.WaveSize,
		feedTimeout:     cfg.FeedTimeout,
	}
}

// RunOnce polls all currently due feeds and returns the aggregate summary.
// One failing feed never aborts the batch; its error is converted to a
// per-feed outcome. Safe to call repeatedly, already-seen content is skipped.
func (s *Scheduler) RunOnce(ctx context.Context) (*domain.BatchSummary, error) {
	cutoff := time.Now().Add(-s.refreshInterval)
	feeds, err := s.feeds.GetDueFeeds(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("get due feeds: %w", err)
	}

	summary := &domain.BatchSummary{Results: []domain.FeedOutcome{}}
	if len(feeds) == 0 {
		return summary, nil
	}

	lgr.Printf("[INFO] polling %d due feeds, wave size %d", len(feeds), s.waveSize)

	for start := 0; start < len(feeds); start += s.waveSize {
		end := min(start+s.waveSize, len(feeds))
		wave := feeds[start:end]

		outcomes := make([]domain.FeedOutcome, len(wave))
		var g errgroup.Group
		for i, fd := range wave {
			g.Go(func() error {
				outcomes[i] = s.processFeed(ctx, fd)
				return nil
			})
		}
		_ = g.Wait() // workers never return errors, failures become outcomes

		summary.Results = append(summary.Results, outcomes...)
	}

	for _, outcome := range summary.Results {
		summary.TotalFeeds++
		if outcome.Error != nil {
			summary.Failures++
			continue
		}
		summary.Successes++
		if outcome.Result.Updated {
			summary.UpdatedFeeds++
		}
		summary.ArticlesCreated += outcome.Result.ArticlesCreated
		summary.ArticlesSkipped += outcome.Result.ArticlesSkipped
	}

	lgr.Printf("[INFO] batch done: %d feeds, %d ok, %d failed, %d articles created, %d skipped",
		summary.TotalFeeds, summary.Successes, summary.Failures, summary.ArticlesCreated, summary.ArticlesSkipped)

	return summary, nil
}

// processFeed runs one feed's fetch under the per-feed timeout and converts
// any failure into a structured outcome
func (s *Scheduler) processFeed(ctx context.Context, fd domain.Feed) domain.FeedOutcome {
	fctx, cancel := context.WithTimeout(ctx, s.feedTimeout)
	defer cancel()

	result, err := s.fetcher.Fetch(fctx, &fd)
	if err == nil {
		return domain.FeedOutcome{FeedID: fd.ID, Result: result}
	}

	outcome := domain.FeedOutcome{FeedID: fd.ID, Error: &domain.OutcomeError{Code: domain.ErrUnknown, Message: err.Error()}}

	// the deadline check comes first: a timed-out fetch usually surfaces as a
	// transport error wrapping context.DeadlineExceeded
	switch {
	case errors.Is(fctx.Err(), context.DeadlineExceeded):
		outcome.Error.Code = domain.ErrTimeout
		outcome.Error.Message = fmt.Sprintf("feed fetch exceeded %s timeout", s.feedTimeout)
	default:
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			outcome.Error.Code = fetchErr.Code
			outcome.Error.Message = fetchErr.Error()
		}
	}

	lgr.Printf("[WARN] feed %d (%s) failed: %s: %s", fd.ID, fd.URL, outcome.Error.Code, outcome.Error.Message)
	return outcome
}

// Start launches the background polling loop, running one batch immediately
// and then one per refresh interval. Use Stop for a graceful shutdown.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.refreshInterval)
		defer ticker.Stop()

		if _, err := s.RunOnce(ctx); err != nil {
			lgr.Printf("[ERROR] feed batch failed: %v", err)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.RunOnce(ctx); err != nil {
					lgr.Printf("[ERROR] feed batch failed: %v", err)
				}
			}
		}
	}()

	lgr.Printf("[INFO] scheduler started, refresh interval %v, feed timeout %v", s.refreshInterval, s.feedTimeout)
}

// Stop gracefully stops the background polling loop
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}
