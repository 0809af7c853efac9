package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/internal/store"
	"github.com/tupyy/graph-crawler/pkg/crawler"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
	"github.com/tupyy/graph-crawler/pkg/scheduler"
	"github.com/tupyy/graph-crawler/pkg/writer"
)

const lastCrawledProperty = "last_crawled"

// storeSource adapts the graph store to the crawler's read-side interface.
type storeSource struct {
	store *store.Store
}

func (s *storeSource) Node(ctx context.Context, id string) (models.Node, error) {
	return s.store.Nodes().Get(ctx, id)
}

func (s *storeSource) Neighbors(ctx context.Context, id string) ([]models.Node, error) {
	return s.store.Relationships().Neighbors(ctx, id)
}

// CrawlerService runs one traversal at a time over the stored graph. The
// traversal itself runs on the scheduler pool and only reads; every matched
// node is stamped through the single-threaded writer.
type CrawlerService struct {
	store     *store.Store
	writer    *writer.Writer[*store.Store]
	scheduler *scheduler.Scheduler
	opts      []crawler.Option
	handler   crawler.Handler

	mu     sync.Mutex
	status models.CrawlStatus
	cancel context.CancelFunc
}

func NewCrawlerService(st *store.Store, w *writer.Writer[*store.Store], s *scheduler.Scheduler, opts ...crawler.Option) *CrawlerService {
	svc := &CrawlerService{
		store:     st,
		writer:    w,
		scheduler: s,
		opts:      opts,
		status:    models.CrawlStatus{State: models.CrawlStateReady},
	}
	svc.handler = svc.stampNode
	return svc
}

// SetHandler replaces the per-node handler. The default stamps each matched
// node with a last_crawled timestamp. Must be called before Start.
func (c *CrawlerService) SetHandler(h crawler.Handler) {
	c.handler = h
}

// Start begins a traversal from the given seeds. Only one crawl may run at
// a time; a second Start returns CrawlInProgressError.
func (c *CrawlerService) Start(ctx context.Context, seeds []string) (models.CrawlStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.status.State {
	case models.CrawlStateRunning, models.CrawlStateCanceling:
		return c.status, srvErrors.NewCrawlInProgressError(c.status.RunID)
	}

	runID := uuid.NewString()
	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.status = models.CrawlStatus{
		RunID:     runID,
		State:     models.CrawlStateRunning,
		StartedAt: time.Now(),
	}

	zap.S().Named("crawler").Infow("crawl started", "run_id", runID, "seeds", seeds)

	c.scheduler.AddWork(func(_ context.Context) (any, error) {
		c.run(runCtx, runID, seeds)
		return nil, nil
	})

	return c.status, nil
}

// Cancel requests the running crawl to stop. It returns immediately; the
// state moves to canceled once the traversal winds down.
func (c *CrawlerService) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status.State != models.CrawlStateRunning {
		return
	}

	c.status.State = models.CrawlStateCanceling
	if c.cancel != nil {
		c.cancel()
	}
	zap.S().Named("crawler").Infow("crawl cancel requested", "run_id", c.status.RunID)
}

// Status returns a snapshot of the current crawl.
func (c *CrawlerService) Status() models.CrawlStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *CrawlerService) run(ctx context.Context, runID string, seeds []string) {
	logger := zap.S().Named("crawler")

	cr := crawler.New(&storeSource{store: c.store}, c.opts...)
	stats, err := cr.Crawl(ctx, seeds, func(ctx context.Context, node models.Node) error {
		if err := c.handler(ctx, node); err != nil {
			return err
		}
		c.mu.Lock()
		c.status.Matched++
		c.mu.Unlock()
		return nil
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	c.status.Visited = stats.Visited
	c.status.Matched = stats.Matched
	c.cancel = nil

	switch {
	case err == nil:
		c.status.State = models.CrawlStateCompleted
		logger.Infow("crawl completed", "run_id", runID, "visited", stats.Visited, "matched", stats.Matched)
	case ctx.Err() != nil:
		c.status.State = models.CrawlStateCanceled
		logger.Infow("crawl canceled", "run_id", runID, "visited", stats.Visited)
	default:
		c.status.State = models.CrawlStateError
		c.status.Error = err
		logger.Errorw("crawl failed", "run_id", runID, "error", err)
	}
}

// stampNode records the visit on the node through the writer without
// waiting for the write to land.
func (c *CrawlerService) stampNode(ctx context.Context, node models.Node) error {
	_, err := c.writer.Submit(ctx, func(ctx context.Context, st *store.Store) (any, error) {
		return nil, st.Nodes().SetProperty(ctx, node.ID, lastCrawledProperty, time.Now().UTC().Format(time.RFC3339))
	}, "stamp-"+node.ID, 0)
	return err
}

// ID implements runtime.Module.
func (c *CrawlerService) ID() string {
	return "crawler"
}

// Initialize implements runtime.Module.
func (c *CrawlerService) Initialize(ctx context.Context) error {
	return nil
}

// Shutdown implements runtime.Module. It cancels any running crawl.
func (c *CrawlerService) Shutdown(ctx context.Context) error {
	c.Cancel()
	return nil
}
