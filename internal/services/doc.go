// Package services implements the business logic layer for the graph-crawler.
//
// This package contains services that act as intermediaries between HTTP
// handlers and the data store, providing a clean separation of concerns.
// Each service encapsulates specific domain logic and manages its own state
// where applicable.
//
// # Service Dependency Graph
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	Services Layer
//	    ├── CrawlerService ──► Store, Writer, Scheduler
//	    ├── ImporterService ─► Writer
//	    └── GraphService ────► Store
//
// # CrawlerService
//
// CrawlerService runs breadth-first traversals over the stored graph, one
// at a time.
//
// State Machine:
//
//	┌───────┐    ┌─────────┐    ┌───────────┐
//	│ Ready │───►│ Running │───►│ Completed │
//	└───────┘    └─────────┘    └───────────┘
//	                  │
//	       (cancel)   │   (handler/source error)
//	         ┌────────┴────────┐
//	         ▼                 ▼
//	   ┌───────────┐     ┌──────────┐
//	   │ Canceling │     │  Error   │
//	   └───────────┘     └──────────┘
//	         │
//	         ▼
//	   ┌───────────┐
//	   │ Canceled  │
//	   └───────────┘
//
// Key behaviors:
//   - Only one crawl can run at a time (returns CrawlInProgressError otherwise)
//   - The traversal runs on the scheduler pool and only reads the graph
//   - Matched nodes are stamped with last_crawled through the writer,
//     fire-and-forget, so the traversal never blocks on writes
//   - A finished run (completed, canceled or error) can be restarted
//   - Implements runtime.Module: Shutdown cancels a running crawl
//
// Usage:
//
//	crawlerSvc := services.NewCrawlerService(store, writer, scheduler,
//	    crawler.WithStrategy(strategy), crawler.WithMaxDepth(3))
//	status, err := crawlerSvc.Start(ctx, []string{"seed-1"})
//	status = crawlerSvc.Status()
//	crawlerSvc.Cancel()
//
// # ImporterService
//
// ImporterService loads a graph from an xlsx workbook. The workbook carries
// a "nodes" sheet and an optional "relationships" sheet:
//
//	nodes:          id │ label │ <property columns...>
//	relationships:  id │ type │ start_id │ end_id │ <property columns...>
//
// Every row becomes one writer task with a bounded wait. Rows shed by the
// writer under overload are counted in ImportSummary.Dropped instead of
// failing the import; a malformed row aborts with an ImportError naming
// the sheet and row.
//
// # GraphService
//
// GraphService provides read-only access to the stored graph: node lookup,
// filtered listing with pagination, and relationship lookup.
//
// Usage:
//
//	graphSvc := services.NewGraphService(store)
//	result, err := graphSvc.List(ctx, services.NodeListParams{
//	    Labels: []string{"person"},
//	    Limit:  50,
//	})
//
// # Thread Safety
//
// CrawlerService protects its status with a sync.Mutex; the crawl goroutine
// is managed through context cancellation. ImporterService and GraphService
// are stateless.
package services
