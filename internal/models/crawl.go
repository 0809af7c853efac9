package models

import "time"

// CrawlState represents the current state of the graph crawler.
type CrawlState string

const (
	// CrawlStateReady - waiting for a crawl request
	CrawlStateReady CrawlState = "ready"
	// CrawlStateRunning - traversal in progress
	CrawlStateRunning CrawlState = "running"
	// CrawlStateCanceling - crawler winding down after a cancel request
	CrawlStateCanceling CrawlState = "canceling"
	// CrawlStateCanceled - crawl canceled before completion
	CrawlStateCanceled CrawlState = "canceled"
	// CrawlStateCompleted - traversal finished
	CrawlStateCompleted CrawlState = "completed"
	// CrawlStateError - traversal aborted on error
	CrawlStateError CrawlState = "error"
)

// CrawlStatus holds the current crawler state and run metadata.
type CrawlStatus struct {
	RunID     string
	State     CrawlState
	Visited   int
	Matched   int
	StartedAt time.Time
	Error     error
}

// ImportSummary reports what a workbook import wrote to the graph.
type ImportSummary struct {
	Nodes         int
	Relationships int
	Dropped       int
}
