// Package handlers implements the HTTP API layer for the graph-crawler.
//
// This package contains HTTP handlers that expose the crawler's
// functionality via a RESTful API. Handlers delegate business logic to the
// services layer and focus on request validation, response formatting, and
// HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request validation                                           │
//	│  - Parameter parsing                                            │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  Graph │ Crawler │ Importer                + Writer status      │
//	└─────────────────────────────────────────────────────────────────┘
//
// # API Endpoints
//
// Writer (writer.go):
//
//	┌────────┬──────────┬─────────────────────────────────────────────┐
//	│ Method │ Endpoint │ Description                                 │
//	├────────┼──────────┼─────────────────────────────────────────────┤
//	│ GET    │ /writer  │ Writer state, queue depth and capacity      │
//	└────────┴──────────┴─────────────────────────────────────────────┘
//
// Graph (graph.go):
//
//	┌────────┬─────────────────────┬──────────────────────────────────┐
//	│ Method │ Endpoint            │ Description                      │
//	├────────┼─────────────────────┼──────────────────────────────────┤
//	│ GET    │ /nodes              │ List nodes (filter + paging)     │
//	│ GET    │ /nodes/{id}         │ Get one node                     │
//	│ GET    │ /relationships/{id} │ Get one relationship             │
//	└────────┴─────────────────────┴──────────────────────────────────┘
//
// Crawl (crawl.go):
//
//	┌────────┬──────────┬─────────────────────────────────────────────┐
//	│ Method │ Endpoint │ Description                                 │
//	├────────┼──────────┼─────────────────────────────────────────────┤
//	│ POST   │ /crawl   │ Start a traversal (409 when one is running) │
//	│ GET    │ /crawl   │ Current or last traversal status            │
//	│ DELETE │ /crawl   │ Cancel the running traversal                │
//	└────────┴──────────┴─────────────────────────────────────────────┘
//
// Import (import.go):
//
//	┌────────┬──────────┬─────────────────────────────────────────────┐
//	│ Method │ Endpoint │ Description                                 │
//	├────────┼──────────┼─────────────────────────────────────────────┤
//	│ POST   │ /import  │ Load a graph from an xlsx workbook upload   │
//	└────────┴──────────┴─────────────────────────────────────────────┘
//
// # Error Mapping
//
//	ResourceNotFoundError  → 404 Not Found
//	CrawlInProgressError   → 409 Conflict
//	ImportError            → 422 Unprocessable Entity
//	anything else          → 500 Internal Server Error
package handlers
