package v1

import "time"

// WriterStatus describes the write-queue worker.
type WriterStatus struct {
	State         string `json:"state"`
	QueueDepth    int    `json:"queueDepth"`
	QueueCapacity int    `json:"queueCapacity"`
}

// Node is the API representation of a graph node.
type Node struct {
	Id         string         `json:"id"`
	Label      string         `json:"label"`
	Properties map[string]any `json:"properties,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Relationship is the API representation of a graph edge.
type Relationship struct {
	Id         string         `json:"id"`
	Type       string         `json:"type"`
	StartId    string         `json:"startId"`
	EndId      string         `json:"endId"`
	Properties map[string]any `json:"properties,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// NodeListResponse is the paginated node listing.
type NodeListResponse struct {
	Page      int    `json:"page"`
	PageCount int    `json:"pageCount"`
	Total     int    `json:"total"`
	Nodes     []Node `json:"nodes"`
}

// StartCrawlRequest starts a traversal from the given seed node ids.
type StartCrawlRequest struct {
	Seeds []string `json:"seeds"`
}

// CrawlStatus describes the current or last traversal.
type CrawlStatus struct {
	RunId     string     `json:"runId,omitempty"`
	State     string     `json:"state"`
	Visited   int        `json:"visited"`
	Matched   int        `json:"matched"`
	StartedAt *time.Time `json:"startedAt,omitempty"`
	Error     *string    `json:"error,omitempty"`
}

// ImportResponse summarizes a workbook import.
type ImportResponse struct {
	Nodes         int `json:"nodes"`
	Relationships int `json:"relationships"`
	Dropped       int `json:"dropped"`
}
